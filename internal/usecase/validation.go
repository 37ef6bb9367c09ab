package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// preferredTimeLayouts are the accepted shapes for the widget's time field.
// The first match wins; layouts without a zone are taken in the display
// timezone.
var preferredTimeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// preferredTimeDisplayLayout matches what the owner sees in the sheet and
// the notification email, e.g. "Sunday, June 1, 2025, 2:00 PM".
const preferredTimeDisplayLayout = "Monday, January 2, 2006, 3:04 PM"

func ValidateLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	} else if len(input.Name) > 200 {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Service) == "" {
		errors = append(errors, ValidationError{"service", "is required"})
	} else if len(input.Service) > 200 {
		errors = append(errors, ValidationError{"service", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Time) == "" {
		errors = append(errors, ValidationError{"time", "is required"})
	} else if _, err := parsePreferredTime(input.Time, time.UTC); err != nil {
		errors = append(errors, ValidationError{"time", "must be a valid date-time"})
	}

	if strings.TrimSpace(input.AccountID) == "" {
		errors = append(errors, ValidationError{"accountId", "is required"})
	} else if _, err := uuid.Parse(input.AccountID); err != nil {
		errors = append(errors, ValidationError{"accountId", "is not a valid account token"})
	}

	return errors
}

func ValidateSignupInput(input StartCheckoutInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.ContactName) == "" {
		errors = append(errors, ValidationError{"contactName", "is required"})
	} else if len(input.ContactName) > 200 {
		errors = append(errors, ValidationError{"contactName", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.BusinessName) == "" {
		errors = append(errors, ValidationError{"businessName", "is required"})
	} else if len(input.BusinessName) > 200 {
		errors = append(errors, ValidationError{"businessName", "must not exceed 200 characters"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 10 && len(cleaned) <= 11
}

func parsePreferredTime(raw string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range preferredTimeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", raw)
}

func formatPreferredTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(preferredTimeDisplayLayout)
}
