package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/localleadbot/leadbot-api/internal/usecase"
)

type CaptureLeadUC interface {
	Execute(ctx context.Context, input usecase.CaptureLeadInput) (*usecase.CaptureLeadOutput, error)
}

// LeadHandler accepts widget submissions. The endpoint is public on every
// customer site, so it carries its own per-IP rate limit.
type LeadHandler struct {
	CaptureLeadUC CaptureLeadUC
	rateLimiter   *RateLimiter
}

func NewLeadHandler(uc CaptureLeadUC) *LeadHandler {
	return &LeadHandler{
		CaptureLeadUC: uc,
		rateLimiter:   NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "rate_limited", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_json", "request body is not valid JSON")
		return
	}

	output, err := h.CaptureLeadUC.Execute(r.Context(), input)
	if err != nil {
		var vErr *usecase.ValidationFailedError
		var dErr *usecase.DomainError
		switch {
		case errors.As(err, &vErr):
			writeValidationErrors(w, vErr.Errors)
		case errors.As(err, &dErr) && dErr.Code == "ACCOUNT_NOT_FOUND":
			writeErrorResponse(w, http.StatusNotFound, "account_not_found", dErr.Message)
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "internal_error", "failed to capture lead")
		}
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
