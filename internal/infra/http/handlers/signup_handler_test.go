package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/localleadbot/leadbot-api/internal/usecase"
)

type MockStartCheckoutUC struct {
	mock.Mock
}

func (m *MockStartCheckoutUC) Execute(ctx context.Context, input usecase.StartCheckoutInput) (*usecase.StartCheckoutOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.StartCheckoutOutput), args.Error(1)
}

func postSignup(handler *SignupHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/signup/start", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestSignupHandlerRedirectsToProvider(t *testing.T) {
	uc := new(MockStartCheckoutUC)
	uc.On("Execute", mock.Anything, usecase.StartCheckoutInput{
		Email:        "owner@acmeplumbing.com",
		ContactName:  "Pat Owner",
		BusinessName: "Acme Plumbing",
	}).Return(&usecase.StartCheckoutOutput{
		SignupRef:   "ref-1",
		RedirectURL: "https://checkout.stripe.com/pay/cs_test_456",
	}, nil)

	handler := NewSignupHandler(uc)
	rec := postSignup(handler, url.Values{
		"email":        {"owner@acmeplumbing.com"},
		"contactName":  {"Pat Owner"},
		"businessName": {"Acme Plumbing"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_456", rec.Header().Get("Location"))
}

func TestSignupHandlerValidationFailure(t *testing.T) {
	uc := new(MockStartCheckoutUC)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &usecase.ValidationFailedError{
		Errors: []usecase.ValidationError{{Field: "email", Message: "is required"}},
	})

	handler := NewSignupHandler(uc)
	rec := postSignup(handler, url.Values{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_failed")
}

func TestSignupHandlerProviderFailure(t *testing.T) {
	uc := new(MockStartCheckoutUC)
	uc.On("Execute", mock.Anything, mock.Anything).
		Return(nil, &usecase.TechnicalError{Code: "CHECKOUT_FAILED", Message: "provider down"})

	handler := NewSignupHandler(uc)
	rec := postSignup(handler, url.Values{
		"email":        {"owner@acmeplumbing.com"},
		"contactName":  {"Pat Owner"},
		"businessName": {"Acme Plumbing"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "checkout_failed")
}
