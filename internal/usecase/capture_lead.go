package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/entity"
	"github.com/localleadbot/leadbot-api/internal/infra/http/middleware"
	"github.com/localleadbot/leadbot-api/internal/infra/mail"
	"github.com/localleadbot/leadbot-api/internal/infra/queue"
)

// CaptureLeadUseCase records one widget submission: a spreadsheet row and a
// notification email. The two side effects are independent best-effort
// steps, not a transaction; only when both fail does the submission fail.
type CaptureLeadUseCase struct {
	Accounts AccountRepositoryInterface
	Sheets   SpreadsheetProvider
	Email    EmailService
	Alerts   AlertPublisher

	// Fallbacks for accounts whose dedicated sheet was never provisioned.
	SharedSpreadsheetID string
	DefaultNotifyEmail  string

	DisplayLocation *time.Location

	now func() time.Time
}

func NewCaptureLeadUseCase(
	accounts AccountRepositoryInterface,
	sheetsProvider SpreadsheetProvider,
	emailService EmailService,
	alerts AlertPublisher,
	sharedSpreadsheetID, defaultNotifyEmail string,
	displayLocation *time.Location,
) *CaptureLeadUseCase {
	if displayLocation == nil {
		displayLocation = time.UTC
	}
	return &CaptureLeadUseCase{
		Accounts:            accounts,
		Sheets:              sheetsProvider,
		Email:               emailService,
		Alerts:              alerts,
		SharedSpreadsheetID: sharedSpreadsheetID,
		DefaultNotifyEmail:  defaultNotifyEmail,
		DisplayLocation:     displayLocation,
		now:                 time.Now,
	}
}

func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if verrs := ValidateLeadInput(input); len(verrs) > 0 {
		return nil, &ValidationFailedError{Errors: verrs}
	}

	account, err := uc.Accounts.FindByID(ctx, input.AccountID)
	if errors.Is(err, entity.ErrAccountNotFound) {
		return nil, &DomainError{
			Code:    "ACCOUNT_NOT_FOUND",
			Message: "no account matches the supplied token",
		}
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ACCOUNT_STORE_ERROR",
			Message: "failed to load account: " + err.Error(),
		}
	}

	preferred, err := parsePreferredTime(input.Time, uc.DisplayLocation)
	if err != nil {
		return nil, &ValidationFailedError{Errors: []ValidationError{
			{Field: "time", Message: "must be a valid date-time"},
		}}
	}
	displayTime := formatPreferredTime(preferred, uc.DisplayLocation)
	capturedAt := uc.now().UTC()

	spreadsheetID := account.SpreadsheetRef
	if spreadsheetID == "" {
		spreadsheetID = uc.SharedSpreadsheetID
	}
	notifyTo := account.ContactEmail
	if notifyTo == "" {
		notifyTo = uc.DefaultNotifyEmail
	}

	// Column order is fixed: name, phone, service, time, capturedAt.
	row := []string{input.Name, input.Phone, input.Service, displayTime, capturedAt.Format(time.RFC3339)}

	var appendErr error
	if spreadsheetID == "" {
		appendErr = errors.New("no spreadsheet available for account")
	} else {
		appendErr = uc.Sheets.AppendRow(ctx, spreadsheetID, row)
	}
	if appendErr != nil {
		middleware.RecordIntegrationError("sheets")
		log.Error().Err(appendErr).
			Str("account_id", account.ID).
			Str("spreadsheet_id", spreadsheetID).
			Msg("lead append failed")
		uc.alert(ctx, queue.OperatorAlert{
			Kind:      queue.AlertLeadAppendFailed,
			AccountID: account.ID,
			Detail:    appendErr.Error(),
		})
	}

	var mailErr error
	if notifyTo == "" {
		mailErr = errors.New("no notification address for account")
	} else {
		mailErr = uc.Email.SendLeadNotification(notifyTo, mail.LeadNotification{
			BusinessName:  account.BusinessName,
			Name:          input.Name,
			Phone:         input.Phone,
			Service:       input.Service,
			PreferredTime: displayTime,
		})
	}
	if mailErr != nil {
		middleware.RecordIntegrationError("smtp")
		log.Error().Err(mailErr).
			Str("account_id", account.ID).
			Msg("lead notification email failed")
		uc.alert(ctx, queue.OperatorAlert{
			Kind:      queue.AlertLeadEmailFailed,
			AccountID: account.ID,
			Detail:    mailErr.Error(),
		})
	}

	if appendErr != nil && mailErr != nil {
		return nil, &TechnicalError{
			Code:    "LEAD_DELIVERY_FAILED",
			Message: "lead could not be recorded or forwarded",
		}
	}

	middleware.RecordLeadCaptured()
	return &CaptureLeadOutput{Success: true}, nil
}

func (uc *CaptureLeadUseCase) alert(ctx context.Context, alert queue.OperatorAlert) {
	if uc.Alerts == nil {
		return
	}
	if err := uc.Alerts.PublishAlert(ctx, alert); err != nil {
		log.Error().Err(err).Str("kind", alert.Kind).Msg("operator alert publish failed")
	}
}
