package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/localleadbot/leadbot-api/internal/entity"
)

// AccountRepository persists accounts in Postgres. The unique index on
// checkout_ref is what makes onboarding idempotent: concurrent deliveries of
// the same checkout race on the conditional insert, never on a read.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) CreateIfAbsent(ctx context.Context, a *entity.Account) (*entity.Account, bool, error) {
	query := `
		INSERT INTO accounts (id, checkout_ref, contact_email, business_name, spreadsheet_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (checkout_ref) DO NOTHING
	`

	res, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.CheckoutRef,
		a.ContactEmail,
		a.BusinessName,
		nullString(a.SpreadsheetRef),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}

	if n, err := res.RowsAffected(); err == nil && n == 1 {
		return a, true, nil
	}

	// Lost the race: hand back whatever the winning delivery stored.
	existing, err := r.FindByCheckoutRef(ctx, a.CheckoutRef)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	query := `
		SELECT id, checkout_ref, contact_email, business_name, spreadsheet_ref, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) FindByCheckoutRef(ctx context.Context, checkoutRef string) (*entity.Account, error) {
	query := `
		SELECT id, checkout_ref, contact_email, business_name, spreadsheet_ref, created_at, updated_at
		FROM accounts
		WHERE checkout_ref = $1
	`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, checkoutRef))
}

func (r *AccountRepository) scanOne(row *sql.Row) (*entity.Account, error) {
	var a entity.Account
	var spreadsheetRef sql.NullString

	err := row.Scan(
		&a.ID,
		&a.CheckoutRef,
		&a.ContactEmail,
		&a.BusinessName,
		&spreadsheetRef,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	a.SpreadsheetRef = spreadsheetRef.String
	return &a, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
