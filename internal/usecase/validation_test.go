package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLeadInput() CaptureLeadInput {
	return CaptureLeadInput{
		Name:      "Jane Doe",
		Phone:     "(917) 555-1234",
		Service:   "drain cleaning",
		Time:      "2025-06-01T14:00:00-04:00",
		AccountID: "6a9f1f64-9e1e-4c65-8a3c-2f4c1f9c2b7d",
	}
}

func TestValidateLeadInput(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateLeadInput(validLeadInput()))
	})

	t.Run("Missing Everything", func(t *testing.T) {
		errs := ValidateLeadInput(CaptureLeadInput{})
		assert.Len(t, errs, 5)
	})

	cases := []struct {
		name   string
		mutate func(*CaptureLeadInput)
		field  string
	}{
		{"Blank Name", func(i *CaptureLeadInput) { i.Name = "   " }, "name"},
		{"Name Too Long", func(i *CaptureLeadInput) {
			long := make([]byte, 201)
			for j := range long {
				long[j] = 'a'
			}
			i.Name = string(long)
		}, "name"},
		{"Phone Too Short", func(i *CaptureLeadInput) { i.Phone = "12345" }, "phone"},
		{"Phone Too Long", func(i *CaptureLeadInput) { i.Phone = "123456789012" }, "phone"},
		{"Blank Service", func(i *CaptureLeadInput) { i.Service = "" }, "service"},
		{"Unparseable Time", func(i *CaptureLeadInput) { i.Time = "tomorrow-ish" }, "time"},
		{"Non UUID Token", func(i *CaptureLeadInput) { i.AccountID = "user-42" }, "accountId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validLeadInput()
			tc.mutate(&input)
			errs := ValidateLeadInput(input)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidateLeadInputAcceptsFormattedPhones(t *testing.T) {
	for _, phone := range []string{"9175551234", "917-555-1234", "(917) 555 1234", "1 917 555 1234"} {
		input := validLeadInput()
		input.Phone = phone
		assert.Empty(t, ValidateLeadInput(input), "phone %q should be accepted", phone)
	}
}

func TestValidateSignupInput(t *testing.T) {
	valid := StartCheckoutInput{
		Email:        "owner@acmeplumbing.com",
		ContactName:  "Pat Owner",
		BusinessName: "Acme Plumbing",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.Empty(t, ValidateSignupInput(valid))
	})

	t.Run("Bad Email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		errs := ValidateSignupInput(input)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})

	t.Run("Missing Names", func(t *testing.T) {
		input := valid
		input.ContactName = ""
		input.BusinessName = " "
		errs := ValidateSignupInput(input)
		assert.Len(t, errs, 2)
	})
}

func TestParsePreferredTimeLayouts(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	for _, raw := range []string{
		"2025-06-01T14:00:00-04:00",
		"2025-06-01T14:00:00Z",
		"2025-06-01T14:00",
		"2025-06-01 14:00",
	} {
		_, err := parsePreferredTime(raw, loc)
		assert.NoError(t, err, "time %q should parse", raw)
	}

	_, err = parsePreferredTime("June 1st at 2", loc)
	assert.Error(t, err)
}

func TestFormatPreferredTimeNormalizesToDisplayZone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Same instant expressed in UTC lands on the local wall clock.
	parsed, err := parsePreferredTime("2025-06-01T18:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, "Sunday, June 1, 2025, 2:00 PM", formatPreferredTime(parsed, loc))

	parsed, err = parsePreferredTime("2025-06-01T14:00:00-04:00", loc)
	require.NoError(t, err)
	assert.Equal(t, "Sunday, June 1, 2025, 2:00 PM", formatPreferredTime(parsed, loc))
}
