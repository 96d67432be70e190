package domain

import (
	"context"
	"time"
)

// SLAStatus buckets a review deadline by whole days remaining.
type SLAStatus string

const (
	SLAOverdue  SLAStatus = "overdue"
	SLADueToday SLAStatus = "due_today"
	SLADueSoon  SLAStatus = "due_soon"
	SLAOnTrack  SLAStatus = "on_track"
)

// dueSoonDays is the last day count still reported as due soon.
const dueSoonDays = 2

// Tone is the UI emphasis for an SLA status.
func (s SLAStatus) Tone() string {
	switch s {
	case SLAOverdue:
		return "danger"
	case SLADueToday:
		return "warning"
	case SLADueSoon:
		return "caution"
	default:
		return "neutral"
	}
}

// NeedsReminder reports whether a reviewer should be chased.
func (s SLAStatus) NeedsReminder() bool {
	return s == SLAOverdue || s == SLADueToday
}

// DaysUntil counts calendar days from now to due in loc. Negative when due has passed.
func DaysUntil(due, now time.Time, loc *time.Location) int {
	d := due.In(loc)
	n := now.In(loc)
	dueDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	nowDay := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(dueDay.Sub(nowDay).Hours() / 24)
}

// ClassifySLA buckets a deadline: past days overdue, same day due today,
// one or two days due soon, later on track.
func ClassifySLA(due, now time.Time, loc *time.Location) SLAStatus {
	days := DaysUntil(due, now, loc)
	switch {
	case days < 0:
		return SLAOverdue
	case days == 0:
		return SLADueToday
	case days <= dueSoonDays:
		return SLADueSoon
	default:
		return SLAOnTrack
	}
}

// ReviewItem is one event waiting on a reviewer.
// swagger:model ReviewItem
type ReviewItem struct {
	EventID       string    `json:"eventId"`
	Title         string    `json:"title"`
	VenueName     string    `json:"venueName"`
	EventStartAt  time.Time `json:"eventStartAt"`
	SubmittedAt   time.Time `json:"submittedAt"`
	DueAt         time.Time `json:"dueAt"`
	DueLocal      string    `json:"dueLocal"`
	DaysRemaining int       `json:"daysRemaining"`
	SLA           SLAStatus `json:"sla"`
	Tone          string    `json:"tone"`
	ReviewerEmail *string   `json:"reviewerEmail"`
}

// ReminderResult reports the outcome of a reminder run.
// swagger:model ReminderResult
type ReminderResult struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

// ReviewService exposes the reviewer queue.
type ReviewService interface {
	Queue(ctx context.Context) ([]*ReviewItem, error)
	SendReminders(ctx context.Context) (*ReminderResult, error)
}
