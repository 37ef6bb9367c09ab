package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/entity"
	"github.com/localleadbot/leadbot-api/internal/infra/http/middleware"
	"github.com/localleadbot/leadbot-api/internal/infra/integration/sheets"
	"github.com/localleadbot/leadbot-api/internal/infra/queue"
)

// OnboardAccountUseCase brings a paid checkout to a widget-ready account:
// dedicated spreadsheet (best effort), account record (mandatory), welcome
// email with the installation snippet (best effort). Accounts are created
// only after payment, so a widget token never exists for an unpaid signup.
type OnboardAccountUseCase struct {
	Accounts AccountRepositoryInterface
	Sheets   SpreadsheetProvider
	Email    EmailService
	Alerts   AlertPublisher
}

func NewOnboardAccountUseCase(
	accounts AccountRepositoryInterface,
	sheetsProvider SpreadsheetProvider,
	emailService EmailService,
	alerts AlertPublisher,
) *OnboardAccountUseCase {
	return &OnboardAccountUseCase{
		Accounts: accounts,
		Sheets:   sheetsProvider,
		Email:    emailService,
		Alerts:   alerts,
	}
}

func (uc *OnboardAccountUseCase) Execute(ctx context.Context, input CheckoutCompletedInput) (*entity.Account, error) {
	if strings.TrimSpace(input.CustomerEmail) == "" {
		// Unrecoverable without manual intervention: there is nobody to
		// send the widget token to.
		return nil, &DomainError{
			Code:    "MISSING_CUSTOMER_EMAIL",
			Message: "checkout session carries no customer email",
		}
	}
	if strings.TrimSpace(input.SessionID) == "" {
		return nil, &DomainError{
			Code:    "MISSING_SESSION_ID",
			Message: "checkout session id is required for de-duplication",
		}
	}

	// Stripe re-delivers events; once an account exists for this checkout,
	// the whole delivery is a no-op.
	existing, err := uc.Accounts.FindByCheckoutRef(ctx, input.SessionID)
	if err != nil && !errors.Is(err, entity.ErrAccountNotFound) {
		return nil, &TechnicalError{
			Code:    "ACCOUNT_STORE_ERROR",
			Message: "failed to check for existing account: " + err.Error(),
		}
	}
	if existing != nil {
		middleware.RecordWebhookDeduplicated()
		log.Info().
			Str("event_id", input.EventID).
			Str("session_id", input.SessionID).
			Str("account_id", existing.ID).
			Msg("duplicate checkout delivery, account already onboarded")
		return existing, nil
	}

	businessName := resolveBusinessName(input)

	var spreadsheetRef string
	sheetID, err := uc.Sheets.CreateSpreadsheet(ctx, sheets.CreateSpreadsheetInput{
		Title:  fmt.Sprintf("%s - Local Lead Bot Leads", businessName),
		Header: sheets.LeadHeaderRow,
	})
	if err != nil {
		// Degraded, not fatal: leads fall back to the shared sheet until an
		// operator provisions one manually.
		middleware.RecordIntegrationError("sheets")
		log.Error().Err(err).
			Str("event_id", input.EventID).
			Str("session_id", input.SessionID).
			Msg("spreadsheet provisioning failed, continuing without dedicated sheet")
		uc.alert(ctx, queue.OperatorAlert{
			Kind:        queue.AlertProvisioningFailed,
			CheckoutRef: input.SessionID,
			Detail:      err.Error(),
		})
	} else {
		spreadsheetRef = sheetID
	}

	account := entity.NewAccount(input.SessionID, input.CustomerEmail, businessName, spreadsheetRef)

	stored, created, err := uc.Accounts.CreateIfAbsent(ctx, account)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ACCOUNT_STORE_ERROR",
			Message: "failed to create account: " + err.Error(),
		}
	}
	if !created {
		// A concurrent delivery won the insert race. The sheet provisioned
		// above (if any) is orphaned; flag it rather than re-emailing.
		log.Warn().
			Str("event_id", input.EventID).
			Str("session_id", input.SessionID).
			Str("account_id", stored.ID).
			Msg("concurrent checkout delivery, keeping stored account")
		if spreadsheetRef != "" {
			uc.alert(ctx, queue.OperatorAlert{
				Kind:        queue.AlertOrphanSpreadsheet,
				AccountID:   stored.ID,
				CheckoutRef: input.SessionID,
				Detail:      "unused spreadsheet " + spreadsheetRef,
			})
		}
		return stored, nil
	}
	middleware.RecordAccountOnboarded()

	welcomeName := input.ContactName
	if strings.TrimSpace(welcomeName) == "" {
		welcomeName = input.CustomerName
	}
	if err := uc.Email.SendWelcome(stored.ContactEmail, welcomeName, stored.ID); err != nil {
		// The account exists and is usable; an operator can resend.
		middleware.RecordIntegrationError("smtp")
		log.Error().Err(err).
			Str("event_id", input.EventID).
			Str("account_id", stored.ID).
			Msg("welcome email failed")
		uc.alert(ctx, queue.OperatorAlert{
			Kind:        queue.AlertWelcomeEmailFailed,
			AccountID:   stored.ID,
			CheckoutRef: input.SessionID,
			Detail:      err.Error(),
		})
	}

	log.Info().
		Str("event_id", input.EventID).
		Str("account_id", stored.ID).
		Bool("has_spreadsheet", stored.SpreadsheetRef != "").
		Msg("account onboarded")
	return stored, nil
}

func (uc *OnboardAccountUseCase) alert(ctx context.Context, alert queue.OperatorAlert) {
	if uc.Alerts == nil {
		return
	}
	if err := uc.Alerts.PublishAlert(ctx, alert); err != nil {
		log.Error().Err(err).Str("kind", alert.Kind).Msg("operator alert publish failed")
	}
}

func resolveBusinessName(input CheckoutCompletedInput) string {
	if name := strings.TrimSpace(input.BusinessName); name != "" {
		return name
	}
	if name := strings.TrimSpace(input.CustomerName); name != "" {
		return name
	}
	return input.CustomerEmail
}
