package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
)

// StartCheckoutUseCase hands the signup off to the payment provider. No
// account row is written here: the account only comes into existence when
// the payment-completed webhook arrives.
type StartCheckoutUseCase struct {
	Gateway PaymentGateway
}

func NewStartCheckoutUseCase(gateway PaymentGateway) *StartCheckoutUseCase {
	return &StartCheckoutUseCase{Gateway: gateway}
}

func (uc *StartCheckoutUseCase) Execute(ctx context.Context, input StartCheckoutInput) (*StartCheckoutOutput, error) {
	if verrs := ValidateSignupInput(input); len(verrs) > 0 {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	signupRef := uuid.New().String()

	session, err := uc.Gateway.CreateCheckoutSession(ctx, stripegw.CheckoutInput{
		Email:             input.Email,
		ContactName:       input.ContactName,
		BusinessName:      input.BusinessName,
		ClientReferenceID: signupRef,
	})
	if err != nil {
		log.Error().Err(err).
			Str("signup_ref", signupRef).
			Str("email", input.Email).
			Msg("checkout session creation failed")
		return nil, &TechnicalError{
			Code:    "CHECKOUT_FAILED",
			Message: "payment provider rejected the checkout session: " + err.Error(),
		}
	}

	log.Info().
		Str("signup_ref", signupRef).
		Str("session_id", session.SessionID).
		Msg("checkout session created")

	return &StartCheckoutOutput{
		SignupRef:   signupRef,
		RedirectURL: session.URL,
	}, nil
}
