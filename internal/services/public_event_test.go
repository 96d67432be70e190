package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory PublicEventRepository that mimics the SQL ordering and predicates.
type fakeEventRepo struct {
	events    []*domain.Event
	err       error
	lastQuery domain.PublicEventQuery
}

func (f *fakeEventRepo) ListPublic(ctx context.Context, q domain.PublicEventQuery) ([]*domain.Event, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	allowed := make(map[domain.EventStatus]bool)
	for _, s := range q.Statuses {
		allowed[s] = true
	}
	var out []*domain.Event
	for _, e := range f.events {
		if !allowed[e.Status] {
			continue
		}
		if q.After != nil && !(e.StartAt.After(q.After.StartAt) || (e.StartAt.Equal(q.After.StartAt) && e.ID > q.After.ID)) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].StartAt.Before(out[j].StartAt)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (f *fakeEventRepo) GetPublicByID(ctx context.Context, id string, statuses []domain.EventStatus) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.ID != id {
			continue
		}
		for _, s := range statuses {
			if e.Status == s {
				return e, nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) ListAwaitingReview(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.events {
		if e.Status == domain.StatusSubmitted {
			out = append(out, e)
		}
	}
	return out, nil
}

// statusIgnoringRepo returns rows regardless of status, as a misbehaving store would.
type statusIgnoringRepo struct{ fakeEventRepo }

func (f *statusIgnoringRepo) GetPublicByID(ctx context.Context, id string, _ []domain.EventStatus) (*domain.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *statusIgnoringRepo) ListPublic(ctx context.Context, q domain.PublicEventQuery) ([]*domain.Event, error) {
	return f.events, nil
}

type countingObserver struct{ counts map[string]int }

func (c *countingObserver) ObserveProjection(outcome string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	c.counts[outcome]++
}

type pathResolver struct{}

func (pathResolver) PublicURL(path string) string { return "https://cdn.example.com/" + path }

var baseStart = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

func eventID(n int) string {
	return fmt.Sprintf("aaaaaaa1-0000-4000-8000-%012d", n)
}

func publishedEvents(n int) []*domain.Event {
	out := make([]*domain.Event, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &domain.Event{
			ID:      eventID(i),
			Title:   fmt.Sprintf("Event %d", i),
			Status:  domain.StatusPublished,
			StartAt: baseStart.Add(time.Duration(i/2) * time.Hour),
		})
	}
	return out
}

func newTestService(repo domain.PublicEventRepository) domain.PublicEventService {
	return NewPublicEventService(repo, pathResolver{}, nil, time.Second)
}

func TestListPublicEvents_Termination(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		rows     int
		limit    int
		wantLen  int
		wantNext bool
	}{
		{"exactly limit", 5, 5, 5, false},
		{"limit plus one", 6, 5, 5, true},
		{"many more", 20, 5, 5, true},
		{"fewer", 2, 5, 2, false},
		{"empty", 0, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeEventRepo{events: publishedEvents(tt.rows)}
			page, err := newTestService(repo).ListPublicEvents(ctx, domain.PublicEventListParams{Limit: tt.limit})
			require.NoError(t, err)
			require.Len(t, page.Events, tt.wantLen)
			require.Equal(t, tt.limit+1, repo.lastQuery.Limit)
			require.Equal(t, domain.PublishableStatuses(), repo.lastQuery.Statuses)
			assert.Equal(t, tt.limit, page.Meta.Limit)
			if !tt.wantNext {
				assert.Nil(t, page.Meta.NextCursor)
				return
			}
			require.NotNil(t, page.Meta.NextCursor)
			c, ok := domain.DecodeCursor(*page.Meta.NextCursor)
			require.True(t, ok)
			last := page.Events[len(page.Events)-1]
			assert.Equal(t, last.ID, c.ID)
			at, err := c.Time()
			require.NoError(t, err)
			assert.True(t, last.StartAt.Equal(at))
		})
	}
}

func TestListPublicEvents_WalksAllPages(t *testing.T) {
	ctx := context.Background()
	all := publishedEvents(13)
	all = append(all, &domain.Event{ID: eventID(99), Title: "Draft", Status: domain.StatusDraft, StartAt: baseStart})
	svc := newTestService(&fakeEventRepo{events: all})

	var seen []string
	params := domain.PublicEventListParams{Limit: 4}
	for pages := 0; pages < 10; pages++ {
		page, err := svc.ListPublicEvents(ctx, params)
		require.NoError(t, err)
		for _, e := range page.Events {
			seen = append(seen, e.ID)
		}
		if page.Meta.NextCursor == nil {
			break
		}
		c, ok := domain.DecodeCursor(*page.Meta.NextCursor)
		require.True(t, ok)
		params.Cursor = &c
	}
	require.Len(t, seen, 13)
	assert.NotContains(t, seen, eventID(99))
	for i := 1; i < len(seen); i++ {
		assert.NotEqual(t, seen[i-1], seen[i])
	}
}

func TestListPublicEvents_ProjectsWithSlug(t *testing.T) {
	seo := "jazz-brunch-special"
	path := "events/jazz.jpg"
	repo := &fakeEventRepo{events: []*domain.Event{
		{ID: eventID(1), Title: "City Tap Jazz Brunch", Status: domain.StatusApproved, StartAt: baseStart, EventImagePath: &path},
		{ID: eventID(2), Title: "Quiz", Status: domain.StatusCompleted, StartAt: baseStart, SEOSlug: &seo},
	}}
	obs := &countingObserver{}
	svc := NewPublicEventService(repo, pathResolver{}, obs, time.Second)
	page, err := svc.ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 50})
	require.NoError(t, err)
	require.Len(t, page.Events, 2)
	assert.Equal(t, "city-tap-jazz-brunch--"+eventID(1), page.Events[0].Slug)
	assert.Equal(t, "https://cdn.example.com/events/jazz.jpg", *page.Events[0].EventImageURL)
	assert.Equal(t, "jazz-brunch-special--"+eventID(2), page.Events[1].Slug)
	assert.Equal(t, 2, obs.counts["ok"])
}

func TestListPublicEvents_LimitBounds(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := newTestService(repo)

	page, err := svc.ListPublicEvents(context.Background(), domain.PublicEventListParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPublicLimit, page.Meta.Limit)

	page, err = svc.ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPublicLimit, page.Meta.Limit)
	assert.Equal(t, domain.MaxPublicLimit+1, repo.lastQuery.Limit)
}

func TestListPublicEvents_CursorIsPassedToQuery(t *testing.T) {
	repo := &fakeEventRepo{}
	c := domain.CursorFor(baseStart, eventID(3))
	_, err := newTestService(repo).ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 10, Cursor: &c})
	require.NoError(t, err)
	require.NotNil(t, repo.lastQuery.After)
	assert.Equal(t, eventID(3), repo.lastQuery.After.ID)
	assert.True(t, baseStart.Equal(repo.lastQuery.After.StartAt))
}

func TestListPublicEvents_InvalidCursorID(t *testing.T) {
	c := domain.Cursor{StartAt: "2025-06-01T18:00:00Z", ID: "not-a-uuid"}
	_, err := newTestService(&fakeEventRepo{}).ListPublicEvents(context.Background(), domain.PublicEventListParams{Cursor: &c})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, domain.CodeInvalidCursor, ve.Code)
}

func TestListPublicEvents_Errors(t *testing.T) {
	_, err := newTestService(nil).ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 5})
	require.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = newTestService(&fakeEventRepo{err: errors.New("connection reset")}).ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 5})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotConfigured)

	leaky := &statusIgnoringRepo{fakeEventRepo{events: []*domain.Event{
		{ID: eventID(1), Title: "Secret", Status: domain.StatusDraft, StartAt: baseStart},
	}}}
	page, err := newTestService(leaky).ListPublicEvents(context.Background(), domain.PublicEventListParams{Limit: 5})
	require.Nil(t, page)
	var npe *domain.NotPublicError
	require.True(t, errors.As(err, &npe))
}

func TestGetPublicEventBySlug(t *testing.T) {
	seo := "jazz-brunch-special"
	repo := &fakeEventRepo{events: []*domain.Event{
		{ID: eventID(3), Title: "City Tap Jazz Brunch", Status: domain.StatusPublished, StartAt: baseStart},
		{ID: eventID(4), Title: "Quiz", Status: domain.StatusApproved, StartAt: baseStart, SEOSlug: &seo},
		{ID: eventID(5), Title: "Draft", Status: domain.StatusDraft, StartAt: baseStart},
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	t.Run("canonical", func(t *testing.T) {
		slug := "city-tap-jazz-brunch--" + eventID(3)
		ev, meta, err := svc.GetPublicEventBySlug(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, eventID(3), ev.ID)
		assert.Equal(t, slug, ev.Slug)
		assert.Equal(t, &domain.PublicEventLookupMeta{RequestedSlug: slug, CanonicalSlug: slug, IsCanonical: true}, meta)
	})

	t.Run("stale prefix", func(t *testing.T) {
		slug := "old-name--" + eventID(4)
		_, meta, err := svc.GetPublicEventBySlug(ctx, slug)
		require.NoError(t, err)
		assert.Equal(t, "jazz-brunch-special--"+eventID(4), meta.CanonicalSlug)
		assert.False(t, meta.IsCanonical)
	})

	t.Run("not public", func(t *testing.T) {
		_, _, err := svc.GetPublicEventBySlug(ctx, "draft--"+eventID(5))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := svc.GetPublicEventBySlug(ctx, "gone--"+eventID(42))
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no id in slug", func(t *testing.T) {
		_, _, err := svc.GetPublicEventBySlug(ctx, "city-tap-jazz-brunch")
		var ve *domain.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, domain.CodeInvalidRequest, ve.Code)
	})
}

func TestGetPublicEventBySlug_DefenceInDepth(t *testing.T) {
	leaky := &statusIgnoringRepo{fakeEventRepo{events: []*domain.Event{
		{ID: eventID(6), Title: "Hidden", Status: domain.StatusRejected, StartAt: baseStart},
	}}}
	_, _, err := newTestService(leaky).GetPublicEventBySlug(context.Background(), "hidden--"+eventID(6))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPublicEventBySlug_Errors(t *testing.T) {
	slug := "x--" + eventID(1)
	_, _, err := newTestService(nil).GetPublicEventBySlug(context.Background(), slug)
	require.ErrorIs(t, err, domain.ErrNotConfigured)

	_, _, err = newTestService(&fakeEventRepo{err: errors.New("timeout")}).GetPublicEventBySlug(context.Background(), slug)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
