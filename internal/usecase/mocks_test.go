package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/localleadbot/leadbot-api/internal/entity"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/sheets"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
	"github.com/localleadbot/leadbot-api/internal/infra/mail"
	"github.com/localleadbot/leadbot-api/internal/infra/queue"
)

type MockAccountRepository struct {
	mock.Mock
}

// CreateIfAbsent echoes the input account when the stubbed first return
// value is nil, mirroring the real conditional insert.
func (m *MockAccountRepository) CreateIfAbsent(ctx context.Context, a *entity.Account) (*entity.Account, bool, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return a, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*entity.Account), args.Bool(1), args.Error(2)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByCheckoutRef(ctx context.Context, checkoutRef string) (*entity.Account, error) {
	args := m.Called(ctx, checkoutRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

type MockSpreadsheetProvider struct {
	mock.Mock
}

func (m *MockSpreadsheetProvider) CreateSpreadsheet(ctx context.Context, input sheets.CreateSpreadsheetInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockSpreadsheetProvider) AppendRow(ctx context.Context, spreadsheetID string, row []string) error {
	args := m.Called(ctx, spreadsheetID, row)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(to, name, accountID string) error {
	args := m.Called(to, name, accountID)
	return args.Error(0)
}

func (m *MockEmailService) SendLeadNotification(to string, notification mail.LeadNotification) error {
	args := m.Called(to, notification)
	return args.Error(0)
}

type MockAlertPublisher struct {
	mock.Mock
}

func (m *MockAlertPublisher) PublishAlert(ctx context.Context, alert queue.OperatorAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, input stripegw.CheckoutInput) (*stripegw.CheckoutOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripegw.CheckoutOutput), args.Error(1)
}
