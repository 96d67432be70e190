package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/config"
	"eventhub/docs"
	"eventhub/internal/adapters/assets"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	"eventhub/internal/adapters/metrics"
	deliveryhttp "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"

	_ "github.com/lib/pq"
)

// @title EventHub Public Events API
// @version 1.0
// @description Read-only projection of publishable EventHub events plus the reviewer queue.
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo domain.PublicEventRepository
		db   *sql.DB
	)
	if cfg.StorageConfigured() {
		db, err = sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			logger.Warn("database not reachable at startup", "err", err)
		}
		cancel()
		repo = postgres.NewEventRepository(db)
	} else {
		logger.Warn("DATABASE_URL not set, event endpoints will answer not_configured")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	m := metrics.New()
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	publicEventService := services.NewPublicEventService(repo, assets.NewResolver(cfg.AssetBaseURL), m, cfg.RequestTimeout)
	reviewService := services.NewReviewService(repo, emailService, cfg.ReviewSLADays, cfg.RequestTimeout)

	deps := deliveryhttp.RouterDeps{
		Logger:             logger,
		PublicEvents:       controllers.NewPublicEventController(logger, publicEventService),
		Reviews:            controllers.NewReviewController(logger, reviewService),
		Verifier:           auth.NewJWTVerifier(cfg.JWTSecret),
		APIKeys:            auth.NewAPIKeyChecker(cfg.PublicAPIKeyHashes),
		RateLimiter:        middleware.NewRateLimiter(cfg.PublicRateLimitRPS, cfg.PublicRateBurst, m),
		Metrics:            m,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if db != nil {
		deps.DB = db
	}

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "addr", server.Addr, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
}
