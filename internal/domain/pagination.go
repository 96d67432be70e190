package domain

import "time"

// Public listing limits.
const (
	DefaultPublicLimit = 50
	MaxPublicLimit     = 200
)

// PublicEventFilter narrows a public listing. Nil fields are not applied.
type PublicEventFilter struct {
	From         *time.Time // start_at >= From
	To           *time.Time // start_at <= To
	EndsAfter    *time.Time // coalesce(end_at, start_at) >= EndsAfter
	UpdatedSince *time.Time // updated_at >= UpdatedSince
	VenueID      *string
	EventType    *string
}

// CursorPosition is a decoded cursor in the form the storage query needs.
type CursorPosition struct {
	StartAt time.Time
	ID      string
}

// PublicEventQuery is what the service asks the repository for.
type PublicEventQuery struct {
	Statuses []EventStatus
	Filter   PublicEventFilter
	After    *CursorPosition
	Limit    int
}

// PublicEventListParams is a validated listing request.
type PublicEventListParams struct {
	Limit  int
	Cursor *Cursor
	Filter PublicEventFilter
}

// PublicEventPageMeta is the meta object of a listing response.
// swagger:model PublicEventPageMeta
type PublicEventPageMeta struct {
	NextCursor *string `json:"nextCursor"`
	Limit      int     `json:"limit"`
}

// PublicEventPage is one page of public events.
type PublicEventPage struct {
	Events []*PublicEvent
	Meta   PublicEventPageMeta
}

// PublicEventLookupMeta describes how a slug lookup matched.
// swagger:model PublicEventLookupMeta
type PublicEventLookupMeta struct {
	RequestedSlug string `json:"requestedSlug"`
	CanonicalSlug string `json:"canonicalSlug"`
	IsCanonical   bool   `json:"isCanonical"`
}
