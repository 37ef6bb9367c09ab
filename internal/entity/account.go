package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAccountNotFound = errors.New("account not found")

// Account represents one paying business customer of the widget. The ID is
// the opaque token the installed widget sends with every lead submission.
type Account struct {
	ID             string    `json:"id"`
	CheckoutRef    string    `json:"checkout_ref"`
	ContactEmail   string    `json:"contact_email"`
	BusinessName   string    `json:"business_name"`
	SpreadsheetRef string    `json:"spreadsheet_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewAccount builds an account for a completed checkout. SpreadsheetRef may
// be empty when provisioning failed; leads then land in the shared sheet.
func NewAccount(checkoutRef, contactEmail, businessName, spreadsheetRef string) *Account {
	now := time.Now()
	return &Account{
		ID:             uuid.New().String(),
		CheckoutRef:    checkoutRef,
		ContactEmail:   contactEmail,
		BusinessName:   businessName,
		SpreadsheetRef: spreadsheetRef,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
