package usecase

import (
	"context"

	"github.com/localleadbot/leadbot-api/internal/entity"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/sheets"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/stripegw"
	"github.com/localleadbot/leadbot-api/internal/infra/mail"
	"github.com/localleadbot/leadbot-api/internal/infra/queue"
)

type AccountRepositoryInterface interface {
	// CreateIfAbsent inserts the account unless one already exists for the
	// same checkout reference. It returns the stored account and whether
	// this call created it.
	CreateIfAbsent(ctx context.Context, a *entity.Account) (*entity.Account, bool, error)
	FindByID(ctx context.Context, id string) (*entity.Account, error)
	FindByCheckoutRef(ctx context.Context, checkoutRef string) (*entity.Account, error)
}

type SpreadsheetProvider interface {
	CreateSpreadsheet(ctx context.Context, input sheets.CreateSpreadsheetInput) (string, error)
	AppendRow(ctx context.Context, spreadsheetID string, row []string) error
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input stripegw.CheckoutInput) (*stripegw.CheckoutOutput, error)
}

type EmailService interface {
	SendWelcome(to, name, accountID string) error
	SendLeadNotification(to string, notification mail.LeadNotification) error
}

type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert queue.OperatorAlert) error
}
