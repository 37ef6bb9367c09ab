package usecase

type StartCheckoutInput struct {
	Email        string `json:"email"`
	ContactName  string `json:"contactName"`
	BusinessName string `json:"businessName"`
}

type StartCheckoutOutput struct {
	SignupRef   string `json:"signup_ref"`
	RedirectURL string `json:"redirect_url"`
}

// CheckoutCompletedInput is the already-verified payload of a
// checkout.session.completed delivery. SessionID doubles as the
// de-duplication key: Stripe re-delivers the same session id verbatim.
type CheckoutCompletedInput struct {
	EventID       string
	SessionID     string
	CustomerEmail string
	CustomerName  string
	ContactName   string
	BusinessName  string
}

type CaptureLeadInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Time      string `json:"time"`
	AccountID string `json:"accountId"`
}

type CaptureLeadOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
