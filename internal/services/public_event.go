package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"eventhub/internal/domain"
)

// ProjectionObserver counts projection outcomes. Metrics implement it; nil disables counting.
type ProjectionObserver interface {
	ObserveProjection(outcome string)
}

type publicEventService struct {
	repo           domain.PublicEventRepository
	assets         domain.AssetURLResolver
	observer       ProjectionObserver
	contextTimeout time.Duration
}

// NewPublicEventService returns the public read service. A nil repo means storage is not
// configured and every call fails with domain.ErrNotConfigured.
func NewPublicEventService(repo domain.PublicEventRepository, assets domain.AssetURLResolver, observer ProjectionObserver, timeout time.Duration) domain.PublicEventService {
	return &publicEventService{
		repo:           repo,
		assets:         assets,
		observer:       observer,
		contextTimeout: timeout,
	}
}

func (s *publicEventService) ListPublicEvents(ctx context.Context, params domain.PublicEventListParams) (*domain.PublicEventPage, error) {
	limit := params.Limit
	if limit < 1 {
		limit = domain.DefaultPublicLimit
	}
	if limit > domain.MaxPublicLimit {
		limit = domain.MaxPublicLimit
	}

	q := domain.PublicEventQuery{
		Statuses: domain.PublishableStatuses(),
		Filter:   params.Filter,
		Limit:    limit + 1,
	}
	if params.Cursor != nil {
		pos, err := cursorPosition(*params.Cursor)
		if err != nil {
			return nil, err
		}
		q.After = pos
	}

	if s.repo == nil {
		return nil, domain.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, err := s.repo.ListPublic(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list public events: %w", err)
	}

	page := &domain.PublicEventPage{
		Events: make([]*domain.PublicEvent, 0, len(rows)),
		Meta:   domain.PublicEventPageMeta{Limit: limit},
	}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next := domain.EncodeCursor(domain.CursorFor(last.StartAt, last.ID))
		page.Meta.NextCursor = &next
	}
	for _, row := range rows {
		pe, err := s.project(row)
		if err != nil {
			// The query already filtered on status, so this is a storage inconsistency.
			return nil, fmt.Errorf("project event %s: %w", row.ID, err)
		}
		page.Events = append(page.Events, pe)
	}
	return page, nil
}

func (s *publicEventService) GetPublicEventBySlug(ctx context.Context, slug string) (*domain.PublicEvent, *domain.PublicEventLookupMeta, error) {
	id, ok := domain.ExtractIDFromSlug(slug)
	if !ok {
		return nil, nil, &domain.ValidationError{
			Code:    domain.CodeInvalidRequest,
			Message: "slug does not end with an event id",
			Details: map[string]any{"slug": slug},
		}
	}
	if s.repo == nil {
		return nil, nil, domain.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ev, err := s.repo.GetPublicByID(ctx, id, domain.PublishableStatuses())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("get public event: %w", err)
	}
	pe, err := s.project(ev)
	if err != nil {
		var npe *domain.NotPublicError
		if errors.As(err, &npe) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, fmt.Errorf("project event %s: %w", id, err)
	}
	return pe, &domain.PublicEventLookupMeta{
		RequestedSlug: slug,
		CanonicalSlug: pe.Slug,
		IsCanonical:   slug == pe.Slug,
	}, nil
}

// project applies the projector and attaches the canonical slug.
func (s *publicEventService) project(ev *domain.Event) (*domain.PublicEvent, error) {
	pe, err := domain.ProjectPublicEvent(ev, s.assets)
	if err != nil {
		s.observe("rejected")
		return nil, err
	}
	pe.Slug = domain.BuildSlug(pe.ID, pe.Title, pe.SEOSlug)
	s.observe("ok")
	return pe, nil
}

func (s *publicEventService) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveProjection(outcome)
	}
}

func cursorPosition(c domain.Cursor) (*domain.CursorPosition, error) {
	at, err := c.Time()
	if err != nil {
		return nil, &domain.ValidationError{Code: domain.CodeInvalidCursor, Message: "cursor is invalid"}
	}
	// Event ids are UUIDs; anything else cannot be compared against the id column.
	if _, err := uuid.Parse(c.ID); err != nil {
		return nil, &domain.ValidationError{Code: domain.CodeInvalidCursor, Message: "cursor is invalid"}
	}
	return &domain.CursorPosition{StartAt: at, ID: c.ID}, nil
}
