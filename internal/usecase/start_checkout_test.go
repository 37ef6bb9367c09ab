package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
)

func TestStartCheckoutCreatesProviderSession(t *testing.T) {
	gateway := new(MockPaymentGateway)
	gateway.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(input stripegw.CheckoutInput) bool {
		_, err := uuid.Parse(input.ClientReferenceID)
		return err == nil &&
			input.Email == "owner@acmeplumbing.com" &&
			input.BusinessName == "Acme Plumbing"
	})).Return(&stripegw.CheckoutOutput{
		SessionID: "cs_test_456",
		URL:       "https://checkout.stripe.com/pay/cs_test_456",
	}, nil)

	uc := NewStartCheckoutUseCase(gateway)

	output, err := uc.Execute(context.Background(), StartCheckoutInput{
		Email:        "owner@acmeplumbing.com",
		ContactName:  "Pat Owner",
		BusinessName: "Acme Plumbing",
	})

	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_456", output.RedirectURL)
	assert.NotEmpty(t, output.SignupRef)
	gateway.AssertExpectations(t)
}

func TestStartCheckoutValidationFailureSkipsProvider(t *testing.T) {
	gateway := new(MockPaymentGateway)
	uc := NewStartCheckoutUseCase(gateway)

	output, err := uc.Execute(context.Background(), StartCheckoutInput{Email: "nope"})

	assert.Nil(t, output)
	var vErr *ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	gateway := new(MockPaymentGateway)
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, errors.New("provider unavailable"))

	uc := NewStartCheckoutUseCase(gateway)

	output, err := uc.Execute(context.Background(), StartCheckoutInput{
		Email:        "owner@acmeplumbing.com",
		ContactName:  "Pat Owner",
		BusinessName: "Acme Plumbing",
	})

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}
