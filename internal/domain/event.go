package domain

import (
	"context"
	"time"
)

// EventStatus is the workflow state of an event draft.
type EventStatus string

const (
	StatusDraft          EventStatus = "draft"
	StatusSubmitted      EventStatus = "submitted"
	StatusNeedsRevisions EventStatus = "needs_revisions"
	StatusApproved       EventStatus = "approved"
	StatusRejected       EventStatus = "rejected"
	StatusPublished      EventStatus = "published"
	StatusCompleted      EventStatus = "completed"
)

// BookingType is how guests book an event. A nil *BookingType means not set.
type BookingType string

const (
	BookingFree     BookingType = "free"
	BookingTicketed BookingType = "ticketed"
)

var publishable = map[EventStatus]struct{}{
	StatusApproved:  {},
	StatusPublished: {},
	StatusCompleted: {},
}

// IsPublishable reports whether events in the given status may appear in public output.
func IsPublishable(status EventStatus) bool {
	_, ok := publishable[status]
	return ok
}

// PublishableStatuses returns the allow-list in a stable order, for use in storage queries.
func PublishableStatuses() []EventStatus {
	return []EventStatus{StatusApproved, StatusPublished, StatusCompleted}
}

// Venue is the venue an event is held at.
type Venue struct {
	ID       string
	Name     string
	Address  *string
	Capacity *int
}

// Event is the internal event record as stored. Optional columns are pointers so that
// an absent value stays distinguishable from a zero value.
type Event struct {
	ID    string
	Title string

	PublicTitle       *string
	PublicTeaser      *string
	PublicDescription *string
	PublicHighlights  []string

	BookingType             *BookingType
	TicketPrice             *float64
	CheckInCutoffMinutes    *int
	AgePolicy               *string
	AccessibilityNotes      *string
	CancellationWindowHours *int
	TermsText               *string
	BookingURL              *string
	EventImagePath          *string

	SEOTitle       *string
	SEODescription *string
	SEOSlug        *string

	EventType  string
	Status     EventStatus
	StartAt    time.Time
	EndAt      *time.Time
	VenueSpace *string

	Notes     *string
	WetPromo  *string
	FoodPromo *string

	SubmittedAt           *time.Time
	AssignedReviewerEmail *string
	UpdatedAt             time.Time

	Venue Venue
}

// PublicEventRepository reads events for the public API and the review queue.
type PublicEventRepository interface {
	// ListPublic returns at most q.Limit rows ordered by (start_at, id), restricted to q.Statuses.
	ListPublic(ctx context.Context, q PublicEventQuery) ([]*Event, error)
	// GetPublicByID returns ErrNotFound when no row with the id has one of the statuses.
	GetPublicByID(ctx context.Context, id string, statuses []EventStatus) (*Event, error)
	// ListAwaitingReview returns submitted events ordered by submission time.
	ListAwaitingReview(ctx context.Context) ([]*Event, error)
}
