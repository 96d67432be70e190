package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether storage is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Observer is the metrics sink used by the router.
type Observer interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterDeps are the collaborators NewRouter wires together. DB may be nil when storage is not configured.
type RouterDeps struct {
	Logger             *slog.Logger
	PublicEvents       *controllers.PublicEventController
	Reviews            *controllers.ReviewController
	Verifier           domain.TokenVerifier
	APIKeys            domain.APIKeyChecker
	RateLimiter        *middleware.RateLimiter
	Metrics            Observer
	DB                 Pinger
	CORSAllowedOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it in
// logging, CORS and metrics middleware, outermost first.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	public := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.RequireAPIKey(d.APIKeys)(d.RateLimiter.Wrap(next))
	}
	reviewers := middleware.RequireRoles(d.Verifier, d.Logger, domain.RoleReviewer, domain.RoleCentralPlanner, domain.RoleExecutive)
	planners := middleware.RequireRoles(d.Verifier, d.Logger, domain.RoleCentralPlanner, domain.RoleExecutive)

	// Public API
	mux.HandleFunc("GET /public/events", public(d.PublicEvents.ListPublicEvents))
	mux.HandleFunc("GET /public/events/{slug}", public(d.PublicEvents.GetPublicEventBySlug))

	// Reviews
	mux.HandleFunc("GET /reviews/queue", reviewers(d.Reviews.Queue))
	mux.HandleFunc("POST /reviews/reminders", planners(d.Reviews.SendReminders))

	// Ops
	mux.HandleFunc("GET /health", healthHandler(d.DB))
	mux.Handle("GET /metrics", d.Metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = middleware.Metrics(d.Metrics, mux)
	handler = middleware.CORS(d.CORSAllowedOrigins, handler)
	return middleware.LoggingMiddleware(d.Logger, handler)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// healthHandler godoc
// @Summary Health check
// @Description Liveness plus a storage ping. Storage is "not_configured" when no database URL is set.
// @Tags ops
// @Produce json
// @Success 200 {object} http.HealthResponse
// @Failure 503 {object} http.HealthResponse
// @Router /health [get]
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Storage: "not_configured"})
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Storage: "unreachable"})
			return
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Storage: "ok"})
	}
}
