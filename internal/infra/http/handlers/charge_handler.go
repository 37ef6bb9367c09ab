package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
)

type ChargeGateway interface {
	GetCharge(ctx context.Context, chargeID string) (*stripegw.ChargeOutput, error)
}

// ChargeHandler looks up a charge server-side so the front-end never
// touches the provider key.
type ChargeHandler struct {
	Gateway ChargeGateway
}

func NewChargeHandler(gateway ChargeGateway) *ChargeHandler {
	return &ChargeHandler{Gateway: gateway}
}

func (h *ChargeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ChargeID string `json:"chargeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}
	if strings.TrimSpace(input.ChargeID) == "" {
		writeErrorResponse(w, http.StatusBadRequest, "missing_charge_id", "chargeId is required")
		return
	}

	charge, err := h.Gateway.GetCharge(r.Context(), input.ChargeID)
	if err != nil {
		log.Error().Err(err).Str("charge_id", input.ChargeID).Msg("charge lookup failed")
		writeErrorResponse(w, http.StatusBadGateway, "charge_lookup_failed", "failed to retrieve charge details")
		return
	}

	writeJSON(w, http.StatusOK, charge)
}
