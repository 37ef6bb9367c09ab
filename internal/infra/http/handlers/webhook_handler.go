package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	stripelib "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/localleadbot/leadbot-api/internal/entity"
	"github.com/localleadbot/leadbot-api/internal/usecase"
)

const webhookBodyLimit = 1024 * 1024 // 1 MiB

type OnboardAccountUC interface {
	Execute(ctx context.Context, input usecase.CheckoutCompletedInput) (*entity.Account, error)
}

// WebhookHandler receives Stripe event deliveries. The signature is checked
// over the raw body before any JSON parsing; Stripe signs the exact bytes.
type WebhookHandler struct {
	secret           string
	OnboardAccountUC OnboardAccountUC
}

type webhookReceivedResponse struct {
	Received bool `json:"received"`
}

func NewWebhookHandler(secret string, uc OnboardAccountUC) *WebhookHandler {
	return &WebhookHandler{
		secret:           secret,
		OnboardAccountUC: uc,
	}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	if strings.TrimSpace(h.secret) == "" {
		writeErrorResponse(w, http.StatusServiceUnavailable, "not_configured", "webhook secret not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, webhookBodyLimit)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "unreadable_body", "failed to read request body")
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		writeErrorResponse(w, http.StatusBadRequest, "missing_signature", "missing Stripe signature")
		return
	}

	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, h.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_signature", "invalid Stripe signature")
		return
	}

	if err := h.handleEvent(r.Context(), &event); err != nil {
		log.Error().Err(err).
			Str("event_id", event.ID).
			Str("type", string(event.Type)).
			Msg("webhook processing failed")
		writeErrorResponse(w, http.StatusInternalServerError, "processing_failed", "processing failed")
		return
	}

	writeJSON(w, http.StatusOK, webhookReceivedResponse{Received: true})
}

func (h *WebhookHandler) handleEvent(ctx context.Context, event *stripelib.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session checkoutSessionPayload
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("decode checkout.session: %w", err)
		}

		_, err := h.OnboardAccountUC.Execute(ctx, usecase.CheckoutCompletedInput{
			EventID:       event.ID,
			SessionID:     session.ID,
			CustomerEmail: session.Email(),
			CustomerName:  session.CustomerDetails.Name,
			ContactName:   session.Metadata["contact_name"],
			BusinessName:  session.Metadata["business_name"],
		})
		return err

	default:
		log.Info().
			Str("type", string(event.Type)).
			Str("event_id", event.ID).
			Msg("webhook ignored (unhandled type)")
		return nil
	}
}

// checkoutSessionPayload is the minimal slice of a checkout.session object
// this service reads.
type checkoutSessionPayload struct {
	ID                string `json:"id"`
	ClientReferenceID string `json:"client_reference_id"`
	CustomerEmail     string `json:"customer_email"`
	CustomerDetails   struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"customer_details"`
	Metadata map[string]string `json:"metadata"`
}

func (s *checkoutSessionPayload) Email() string {
	if email := strings.TrimSpace(s.CustomerDetails.Email); email != "" {
		return email
	}
	return strings.TrimSpace(s.CustomerEmail)
}
