package domain

import (
	"context"
	"strings"
	"time"
)

// AssetURLResolver turns a stored asset path into a URL the public website can load.
type AssetURLResolver interface {
	PublicURL(path string) string
}

// PublicVenue is the venue summary attached to a PublicEvent.
// swagger:model PublicVenue
type PublicVenue struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  *string `json:"address"`
	Capacity *int    `json:"capacity"`
}

// PublicEvent is the restricted shape served to the external website.
// swagger:model PublicEvent
type PublicEvent struct {
	ID                      string       `json:"id"`
	Slug                    string       `json:"slug"`
	Title                   string       `json:"title"`
	Teaser                  *string      `json:"teaser"`
	Description             *string      `json:"description"`
	Highlights              []string     `json:"highlights"`
	BookingType             *BookingType `json:"bookingType"`
	TicketPrice             *float64     `json:"ticketPrice"`
	CheckInCutoffMinutes    *int         `json:"checkInCutoffMinutes"`
	AgePolicy               *string      `json:"agePolicy"`
	AccessibilityNotes      *string      `json:"accessibilityNotes"`
	CancellationWindowHours *int         `json:"cancellationWindowHours"`
	Terms                   *string      `json:"terms"`
	BookingURL              *string      `json:"bookingUrl"`
	EventImageURL           *string      `json:"eventImageUrl"`
	SEOTitle                *string      `json:"seoTitle"`
	SEODescription          *string      `json:"seoDescription"`
	SEOSlug                 *string      `json:"seoSlug"`
	EventType               string       `json:"eventType"`
	Status                  EventStatus  `json:"status"`
	StartAt                 time.Time    `json:"startAt"`
	EndAt                   *time.Time   `json:"endAt"`
	VenueSpaces             []string     `json:"venueSpaces"`
	Notes                   *string      `json:"notes"`
	WetPromo                *string      `json:"wetPromo"`
	FoodPromo               *string      `json:"foodPromo"`
	UpdatedAt               time.Time    `json:"updatedAt"`
	Venue                   PublicVenue  `json:"venue"`
}

// ProjectPublicEvent builds the public shape of ev. The status is checked before anything else;
// a non-publishable record yields a *NotPublicError and no projection.
// Slug is left empty; callers set it with BuildSlug.
func ProjectPublicEvent(ev *Event, assets AssetURLResolver) (*PublicEvent, error) {
	if !IsPublishable(ev.Status) {
		return nil, &NotPublicError{ID: ev.ID, Status: ev.Status}
	}

	highlights := make([]string, 0, len(ev.PublicHighlights))
	highlights = append(highlights, ev.PublicHighlights...)

	var imageURL *string
	if ev.EventImagePath != nil && strings.TrimSpace(*ev.EventImagePath) != "" && assets != nil {
		u := assets.PublicURL(*ev.EventImagePath)
		imageURL = &u
	}

	return &PublicEvent{
		ID:                      ev.ID,
		Title:                   publicTitle(ev),
		Teaser:                  trimmedOrNil(ev.PublicTeaser),
		Description:             trimmedOrNil(ev.PublicDescription),
		Highlights:              highlights,
		BookingType:             ev.BookingType,
		TicketPrice:             ev.TicketPrice,
		CheckInCutoffMinutes:    ev.CheckInCutoffMinutes,
		AgePolicy:               ev.AgePolicy,
		AccessibilityNotes:      ev.AccessibilityNotes,
		CancellationWindowHours: ev.CancellationWindowHours,
		Terms:                   ev.TermsText,
		BookingURL:              ev.BookingURL,
		EventImageURL:           imageURL,
		SEOTitle:                ev.SEOTitle,
		SEODescription:          ev.SEODescription,
		SEOSlug:                 ev.SEOSlug,
		EventType:               ev.EventType,
		Status:                  ev.Status,
		StartAt:                 ev.StartAt,
		EndAt:                   ev.EndAt,
		VenueSpaces:             ParseVenueSpaces(ev.VenueSpace),
		Notes:                   ev.Notes,
		WetPromo:                ev.WetPromo,
		FoodPromo:               ev.FoodPromo,
		UpdatedAt:               ev.UpdatedAt,
		Venue: PublicVenue{
			ID:       ev.Venue.ID,
			Name:     ev.Venue.Name,
			Address:  ev.Venue.Address,
			Capacity: ev.Venue.Capacity,
		},
	}, nil
}

// ParseVenueSpaces splits a comma-separated venue_space value, trimming each entry and
// dropping empty ones. Order is preserved.
func ParseVenueSpaces(raw *string) []string {
	spaces := []string{}
	if raw == nil {
		return spaces
	}
	for _, part := range strings.Split(*raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			spaces = append(spaces, part)
		}
	}
	return spaces
}

func publicTitle(ev *Event) string {
	if ev.PublicTitle != nil {
		if t := strings.TrimSpace(*ev.PublicTitle); t != "" {
			return t
		}
	}
	return strings.TrimSpace(ev.Title)
}

// trimmedOrNil treats a blank override the same as a missing one.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// PublicEventService serves the public read API.
type PublicEventService interface {
	ListPublicEvents(ctx context.Context, params PublicEventListParams) (*PublicEventPage, error)
	GetPublicEventBySlug(ctx context.Context, slug string) (*PublicEvent, *PublicEventLookupMeta, error)
}
