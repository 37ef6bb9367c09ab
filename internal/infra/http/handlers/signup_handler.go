package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/localleadbot/leadbot-api/internal/usecase"
)

type StartCheckoutUC interface {
	Execute(ctx context.Context, input usecase.StartCheckoutInput) (*usecase.StartCheckoutOutput, error)
}

// SignupHandler takes the form-encoded signup and redirects the browser to
// the provider-hosted payment page.
type SignupHandler struct {
	StartCheckoutUC StartCheckoutUC
}

func NewSignupHandler(uc StartCheckoutUC) *SignupHandler {
	return &SignupHandler{StartCheckoutUC: uc}
}

func (h *SignupHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_form", "request body is not valid form data")
		return
	}

	input := usecase.StartCheckoutInput{
		Email:        r.PostFormValue("email"),
		ContactName:  r.PostFormValue("contactName"),
		BusinessName: r.PostFormValue("businessName"),
	}

	output, err := h.StartCheckoutUC.Execute(r.Context(), input)
	if err != nil {
		var vErr *usecase.ValidationFailedError
		if errors.As(err, &vErr) {
			writeValidationErrors(w, vErr.Errors)
			return
		}
		writeErrorResponse(w, http.StatusBadGateway, "checkout_failed", "could not create payment session")
		return
	}

	http.Redirect(w, r, output.RedirectURL, http.StatusSeeOther)
}
