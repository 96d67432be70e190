package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventhub/internal/domain"
)

const eventColumns = `
		e.id, e.title, e.public_title, e.public_teaser, e.public_description, e.public_highlights,
		e.booking_type, e.ticket_price, e.check_in_cutoff_minutes, e.age_policy, e.accessibility_notes,
		e.cancellation_window_hours, e.terms_text, e.booking_url, e.event_image_path,
		e.seo_title, e.seo_description, e.seo_slug, e.event_type, e.status, e.start_at, e.end_at,
		e.venue_space, e.notes, e.wet_promo, e.food_promo, e.submitted_at, e.assigned_reviewer_email,
		e.updated_at, v.id, v.name, v.address, v.capacity`

const eventFrom = `
		FROM events e
		JOIN venues v ON v.id = e.venue_id`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.PublicEventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) ListPublic(ctx context.Context, q domain.PublicEventQuery) ([]*domain.Event, error) {
	where := []string{"e.status = ANY($1)"}
	args := []interface{}{pq.Array(statusStrings(q.Statuses))}
	n := 2
	add := func(cond string, vals ...interface{}) {
		where = append(where, fmt.Sprintf(cond, n))
		args = append(args, vals...)
		n += len(vals)
	}

	f := q.Filter
	if f.From != nil {
		add("e.start_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("e.start_at <= $%d", *f.To)
	}
	if f.EndsAfter != nil {
		add("COALESCE(e.end_at, e.start_at) >= $%d", *f.EndsAfter)
	}
	if f.UpdatedSince != nil {
		add("e.updated_at >= $%d", *f.UpdatedSince)
	}
	if f.VenueID != nil {
		add("e.venue_id = $%d", *f.VenueID)
	}
	if f.EventType != nil {
		add("e.event_type = $%d", *f.EventType)
	}
	if q.After != nil {
		where = append(where, fmt.Sprintf("(e.start_at > $%d OR (e.start_at = $%d AND e.id > $%d))", n, n, n+1))
		args = append(args, q.After.StartAt, q.After.ID)
		n += 2
	}
	args = append(args, q.Limit)

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE %s
		ORDER BY e.start_at ASC, e.id ASC
		LIMIT $%d
	`, eventColumns, eventFrom, strings.Join(where, " AND "), n)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetPublicByID(ctx context.Context, id string, statuses []domain.EventStatus) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE e.id = $1 AND e.status = ANY($2)
	`, eventColumns, eventFrom)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id, pq.Array(statusStrings(statuses))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListAwaitingReview(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE e.status = $1
		ORDER BY COALESCE(e.submitted_at, e.updated_at) ASC, e.id ASC
	`, eventColumns, eventFrom)
	rows, err := r.DB.QueryContext(ctx, query, string(domain.StatusSubmitted))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var (
		publicTitle, teaser, description                  sql.NullString
		bookingType, agePolicy, accessibility, terms      sql.NullString
		bookingURL, imagePath, seoTitle, seoDesc, seoSlug sql.NullString
		venueSpace, notes, wetPromo, foodPromo, reviewer  sql.NullString
		status, address                                   sql.NullString
		highlights                                        []sql.NullString
		price                                             sql.NullFloat64
		cutoff, window, capacity                          sql.NullInt64
		endAt, submittedAt                                sql.NullTime
	)
	err := row.Scan(
		&e.ID, &e.Title, &publicTitle, &teaser, &description, pq.GenericArray{A: &highlights},
		&bookingType, &price, &cutoff, &agePolicy, &accessibility,
		&window, &terms, &bookingURL, &imagePath,
		&seoTitle, &seoDesc, &seoSlug, &e.EventType, &status, &e.StartAt, &endAt,
		&venueSpace, &notes, &wetPromo, &foodPromo, &submittedAt, &reviewer,
		&e.UpdatedAt, &e.Venue.ID, &e.Venue.Name, &address, &capacity,
	)
	if err != nil {
		return nil, err
	}

	e.Status = domain.EventStatus(status.String)
	e.PublicTitle = nullString(publicTitle)
	e.PublicTeaser = nullString(teaser)
	e.PublicDescription = nullString(description)
	e.PublicHighlights = highlightList(highlights)
	if bookingType.Valid {
		bt := domain.BookingType(bookingType.String)
		e.BookingType = &bt
	}
	if price.Valid {
		e.TicketPrice = &price.Float64
	}
	e.CheckInCutoffMinutes = nullInt(cutoff)
	e.AgePolicy = nullString(agePolicy)
	e.AccessibilityNotes = nullString(accessibility)
	e.CancellationWindowHours = nullInt(window)
	e.TermsText = nullString(terms)
	e.BookingURL = nullString(bookingURL)
	e.EventImagePath = nullString(imagePath)
	e.SEOTitle = nullString(seoTitle)
	e.SEODescription = nullString(seoDesc)
	e.SEOSlug = nullString(seoSlug)
	if endAt.Valid {
		e.EndAt = &endAt.Time
	}
	e.VenueSpace = nullString(venueSpace)
	e.Notes = nullString(notes)
	e.WetPromo = nullString(wetPromo)
	e.FoodPromo = nullString(foodPromo)
	if submittedAt.Valid {
		e.SubmittedAt = &submittedAt.Time
	}
	e.AssignedReviewerEmail = nullString(reviewer)
	e.Venue.Address = nullString(address)
	e.Venue.Capacity = nullInt(capacity)
	return e, nil
}

// highlightList keeps a NULL column as nil. An array holding a NULL element is not a list of
// strings, so it becomes an empty list rather than failing the whole row.
func highlightList(elems []sql.NullString) []string {
	if elems == nil {
		return nil
	}
	out := make([]string, 0, len(elems))
	for _, el := range elems {
		if !el.Valid {
			return []string{}
		}
		out = append(out, el.String)
	}
	return out
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func statusStrings(statuses []domain.EventStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
