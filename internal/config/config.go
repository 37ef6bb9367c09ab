package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every external dependency setting. It is loaded once in
// main and passed into constructors; no package builds clients at load time.
type Config struct {
	Port string

	DatabaseURL string

	StripeAPIKey        string
	StripeWebhookSecret string
	StripePriceID       string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string

	SheetsBaseURL       string
	SheetsAccessToken   string
	SharedSpreadsheetID string

	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	MailFrom    string
	NotifyEmail string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	WidgetScriptURL string
	DisplayTimezone string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	cfg := &Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		StripeAPIKey:        os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripePriceID:       os.Getenv("STRIPE_PRICE_ID"),
		CheckoutSuccessURL:  getenv("CHECKOUT_SUCCESS_URL", "https://www.localleadbot.pro/thank-you.html"),
		CheckoutCancelURL:   getenv("CHECKOUT_CANCEL_URL", "https://www.localleadbot.pro/signup.html"),

		SheetsBaseURL:       getenv("GOOGLE_SHEETS_URL", "https://sheets.googleapis.com/v4"),
		SheetsAccessToken:   os.Getenv("GOOGLE_SHEETS_TOKEN"),
		SharedSpreadsheetID: os.Getenv("SHARED_SPREADSHEET_ID"),

		SMTPHost:    os.Getenv("SMTP_HOST"),
		SMTPPort:    smtpPort,
		SMTPUser:    os.Getenv("SMTP_USER"),
		SMTPPass:    os.Getenv("SMTP_PASS"),
		MailFrom:    getenv("MAIL_FROM", "Local Lead Bot <no-reply@localleadbot.pro>"),
		NotifyEmail: os.Getenv("NOTIFY_EMAIL"),

		RabbitUser: getenv("RABBITMQ_USER", "guest"),
		RabbitPass: getenv("RABBITMQ_PASS", "guest"),
		RabbitHost: getenv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getenv("RABBITMQ_PORT", "5672"),

		WidgetScriptURL: getenv("WIDGET_SCRIPT_URL", "https://www.localleadbot.pro/chatbot.js"),
		DisplayTimezone: getenv("LEAD_DISPLAY_TIMEZONE", "America/New_York"),

		AllowedOrigins: splitOrigins(getenv("ALLOWED_ORIGINS", "*")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
