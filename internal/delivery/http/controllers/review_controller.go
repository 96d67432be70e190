package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// ReviewQueueResponse is the success envelope for GET /reviews/queue (200).
type ReviewQueueResponse struct {
	Data []*domain.ReviewItem `json:"data"`
}

// SendRemindersResponse is the success envelope for POST /reviews/reminders (200).
type SendRemindersResponse struct {
	Data *domain.ReminderResult `json:"data"`
}

type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{
		Logger:  logger,
		Service: svc,
	}
}

// Queue godoc
// @Summary Review queue
// @Description Events awaiting review, most urgent first, with the SLA status of each deadline counted in Europe/London calendar days.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.ReviewQueueResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: not_configured"
// @Router /reviews/queue [get]
func (c *ReviewController) Queue(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.Queue(r.Context())
	if err != nil {
		if helpers.WriteDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "operation", "review_queue", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load review queue")
		return
	}
	if items == nil {
		items = []*domain.ReviewItem{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// SendReminders godoc
// @Summary Send review reminders
// @Description Emails the assigned reviewer of every queued event that is overdue or due today. Individual delivery failures are reported in data.failed.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SendRemindersResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: not_configured"
// @Router /reviews/reminders [post]
func (c *ReviewController) SendReminders(w http.ResponseWriter, r *http.Request) {
	result, err := c.Service.SendReminders(r.Context())
	if err != nil {
		if helpers.WriteDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "operation", "send_review_reminders", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to send reminders")
		return
	}
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		c.Logger.InfoContext(r.Context(), "review reminders sent", "user_id", p.UserID, "sent", result.Sent, "failed", len(result.Failed))
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
