package stripegw

type Config struct {
	APIKey     string
	PriceID    string
	SuccessURL string
	CancelURL  string
}

type CheckoutInput struct {
	Email             string
	ContactName       string
	BusinessName      string
	ClientReferenceID string
}

type CheckoutOutput struct {
	SessionID string
	URL       string
}

type ChargeOutput struct {
	Status     string `json:"status"`
	Amount     int64  `json:"amount"`
	ReceiptURL string `json:"receiptUrl"`
}
