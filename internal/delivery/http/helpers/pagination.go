package helpers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/timeutil"

	"github.com/google/uuid"
)

// ParsePublicListParams reads limit, cursor and filters for GET /public/events.
// A missing limit defaults to domain.DefaultPublicLimit and values above domain.MaxPublicLimit are clamped.
// Any malformed value is returned as a *domain.ValidationError.
func ParsePublicListParams(r *http.Request) (domain.PublicEventListParams, error) {
	q := r.URL.Query()
	params := domain.PublicEventListParams{Limit: domain.DefaultPublicLimit}

	if s := strings.TrimSpace(q.Get("limit")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return params, domain.NewValidationError("limit", "limit must be a positive integer")
		}
		params.Limit = min(v, domain.MaxPublicLimit)
	}

	if s := strings.TrimSpace(q.Get("cursor")); s != "" {
		c, ok := domain.DecodeCursor(s)
		if !ok {
			return params, &domain.ValidationError{Code: domain.CodeInvalidCursor, Message: "cursor is malformed"}
		}
		params.Cursor = &c
	}

	var err error
	f := &params.Filter
	if f.From, err = instantParam(q, "from"); err != nil {
		return params, err
	}
	if f.To, err = instantParam(q, "to"); err != nil {
		return params, err
	}
	if f.EndsAfter, err = instantParam(q, "endsAfter"); err != nil {
		return params, err
	}
	if f.UpdatedSince, err = instantParam(q, "updatedSince"); err != nil {
		return params, err
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return params, domain.NewValidationError("from", "from must not be after to")
	}

	if s := strings.TrimSpace(q.Get("venueId")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return params, domain.NewValidationError("venueId", "venueId must be a UUID")
		}
		v := id.String()
		f.VenueID = &v
	}
	if s := strings.TrimSpace(q.Get("eventType")); s != "" {
		f.EventType = &s
	}
	return params, nil
}

func instantParam(q url.Values, name string) (*time.Time, error) {
	s := strings.TrimSpace(q.Get(name))
	if s == "" {
		return nil, nil
	}
	t, err := timeutil.ParseInstant(s)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be an RFC 3339 timestamp or a local date/time")
	}
	return &t, nil
}
