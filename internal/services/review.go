package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"eventhub/internal/domain"
	"eventhub/internal/timeutil"
)

type reviewService struct {
	repo           domain.PublicEventRepository
	emailService   domain.EmailService
	slaDays        int
	now            func() time.Time
	contextTimeout time.Duration
}

// NewReviewService returns the reviewer queue service. Reviews are due slaDays after submission.
func NewReviewService(repo domain.PublicEventRepository, emailService domain.EmailService, slaDays int, timeout time.Duration) domain.ReviewService {
	return &reviewService{
		repo:           repo,
		emailService:   emailService,
		slaDays:        slaDays,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *reviewService) Queue(ctx context.Context) ([]*domain.ReviewItem, error) {
	if s.repo == nil {
		return nil, domain.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAwaitingReview(ctx)
	if err != nil {
		return nil, fmt.Errorf("list awaiting review: %w", err)
	}

	now := s.now()
	loc := timeutil.Location()
	items := make([]*domain.ReviewItem, 0, len(events))
	for _, ev := range events {
		submitted := ev.UpdatedAt
		if ev.SubmittedAt != nil {
			submitted = *ev.SubmittedAt
		}
		due := submitted.AddDate(0, 0, s.slaDays)
		sla := domain.ClassifySLA(due, now, loc)
		items = append(items, &domain.ReviewItem{
			EventID:       ev.ID,
			Title:         ev.Title,
			VenueName:     ev.Venue.Name,
			EventStartAt:  ev.StartAt,
			SubmittedAt:   submitted,
			DueAt:         due,
			DueLocal:      timeutil.UTCToLocal(due),
			DaysRemaining: domain.DaysUntil(due, now, loc),
			SLA:           sla,
			Tone:          sla.Tone(),
			ReviewerEmail: ev.AssignedReviewerEmail,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueAt.Before(items[j].DueAt)
	})
	return items, nil
}

// SendReminders emails the assigned reviewer of every overdue or due-today item.
// Individual send failures are reported in the result, not returned as an error.
func (s *reviewService) SendReminders(ctx context.Context) (*domain.ReminderResult, error) {
	items, err := s.Queue(ctx)
	if err != nil {
		return nil, err
	}
	res := &domain.ReminderResult{Failed: []string{}}
	for _, item := range items {
		if !item.SLA.NeedsReminder() || item.ReviewerEmail == nil || *item.ReviewerEmail == "" {
			continue
		}
		err := s.emailService.SendReviewReminder(ctx, &domain.ReviewReminderEmailData{
			Email:         *item.ReviewerEmail,
			EventTitle:    item.Title,
			VenueName:     item.VenueName,
			DueLocal:      item.DueLocal,
			DaysRemaining: item.DaysRemaining,
			Overdue:       item.SLA == domain.SLAOverdue,
		})
		if err != nil {
			res.Failed = append(res.Failed, item.EventID)
			continue
		}
		res.Sent++
	}
	return res, nil
}
