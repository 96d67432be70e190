package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// ListPublicEventsResponse is the success envelope for GET /public/events (200).
type ListPublicEventsResponse struct {
	Data []*domain.PublicEvent      `json:"data"`
	Meta domain.PublicEventPageMeta `json:"meta"`
}

// GetPublicEventResponse is the success envelope for GET /public/events/{slug} (200).
type GetPublicEventResponse struct {
	Data *domain.PublicEvent           `json:"data"`
	Meta *domain.PublicEventLookupMeta `json:"meta"`
}

type PublicEventController struct {
	Logger  *slog.Logger
	Service domain.PublicEventService
}

func NewPublicEventController(logger *slog.Logger, svc domain.PublicEventService) *PublicEventController {
	return &PublicEventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListPublicEvents godoc
// @Summary List public events
// @Description Returns publishable events ordered by start time then id, one page at a time. Pass meta.nextCursor back as cursor to fetch the next page; a null nextCursor means the listing is complete. Local date/time filters are read as Europe/London wall time.
// @Tags public
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size (default 50, values above 200 are clamped)"
// @Param cursor query string false "Opaque cursor from meta.nextCursor"
// @Param from query string false "Earliest start (RFC 3339 or local YYYY-MM-DD[THH:MM])"
// @Param to query string false "Latest start (RFC 3339 or local YYYY-MM-DD[THH:MM])"
// @Param endsAfter query string false "Only events still running at or after this time"
// @Param updatedSince query string false "Only events updated at or after this time"
// @Param venueId query string false "Venue ID (UUID)"
// @Param eventType query string false "Exact event type"
// @Success 200 {object} controllers.ListPublicEventsResponse "data contains events, meta the next cursor"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_request or invalid_cursor"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: not_configured"
// @Router /public/events [get]
func (c *PublicEventController) ListPublicEvents(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePublicListParams(r)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	page, err := c.Service.ListPublicEvents(r.Context(), params)
	if err != nil {
		if helpers.WriteDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "operation", "list_public_events", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccessWithMeta(w, http.StatusOK, page.Events, page.Meta)
}

// GetPublicEventBySlug godoc
// @Summary Get a public event by slug
// @Description Resolves the event from the id at the end of the slug. The title part of the slug is ignored for lookup; meta.isCanonical is false when the requested slug differs from the current canonical one, so clients can redirect.
// @Tags public
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Event slug (title--uuid)"
// @Success 200 {object} controllers.GetPublicEventResponse "data contains the event, meta the canonical slug"
// @Failure 400 {object} helpers.APIResponse "error.code: invalid_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 429 {object} helpers.APIResponse "error.code: rate_limited"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Failure 503 {object} helpers.APIResponse "error.code: not_configured"
// @Router /public/events/{slug} [get]
func (c *PublicEventController) GetPublicEventBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	event, meta, err := c.Service.GetPublicEventBySlug(r.Context(), slug)
	if err != nil {
		if helpers.WriteDomainError(w, err) {
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "operation", "get_public_event", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to load event")
		return
	}
	helpers.WriteJSONSuccessWithMeta(w, http.StatusOK, event, meta)
}
