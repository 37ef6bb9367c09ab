package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/config"
	"github.com/localleadbot/leadbot-api/internal/infra/database"
	"github.com/localleadbot/leadbot-api/internal/infra/http/handlers"
	"github.com/localleadbot/leadbot-api/internal/infra/http/middleware"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/sheets"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
	"github.com/localleadbot/leadbot-api/internal/infra/mail"
	"github.com/localleadbot/leadbot-api/internal/infra/queue"
	"github.com/localleadbot/leadbot-api/internal/usecase"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	displayLocation, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.DisplayTimezone).Msg("invalid display timezone")
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	// Alerts are best-effort follow-up work; the service runs without them.
	var alerts usecase.AlertPublisher
	var rabbitConn *amqp.Connection
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, operator alerts disabled")
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		alerts = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
		rabbitConn = rabbitMQ.Conn
	}

	accountRepo := database.NewAccountRepository(db)

	gateway := stripegw.NewClient(stripegw.Config{
		APIKey:     cfg.StripeAPIKey,
		PriceID:    cfg.StripePriceID,
		SuccessURL: cfg.CheckoutSuccessURL,
		CancelURL:  cfg.CheckoutCancelURL,
	})
	sheetsClient := sheets.NewClient(cfg.SheetsAccessToken, cfg.SheetsBaseURL)
	mailSender := mail.NewEmailSender(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass,
		cfg.MailFrom, cfg.WidgetScriptURL,
	)

	startCheckoutUC := usecase.NewStartCheckoutUseCase(gateway)
	onboardAccountUC := usecase.NewOnboardAccountUseCase(accountRepo, sheetsClient, mailSender, alerts)
	captureLeadUC := usecase.NewCaptureLeadUseCase(
		accountRepo, sheetsClient, mailSender, alerts,
		cfg.SharedSpreadsheetID, cfg.NotifyEmail, displayLocation,
	)

	signupHandler := handlers.NewSignupHandler(startCheckoutUC)
	webhookHandler := handlers.NewWebhookHandler(cfg.StripeWebhookSecret, onboardAccountUC)
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	chargeHandler := handlers.NewChargeHandler(gateway)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		// The widget posts leads from arbitrary customer sites.
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/api/leads", leadHandler.Handle)
	r.Post("/api/signup/start", signupHandler.Handle)
	r.Post("/api/webhooks/stripe", webhookHandler.Handle)
	r.Post("/api/charges/lookup", chargeHandler.Handle)
	r.Get("/healthz", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("leadbot API listening")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
