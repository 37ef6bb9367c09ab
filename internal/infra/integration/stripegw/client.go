package stripegw

import (
	"context"
	"fmt"
	"strings"

	stripelib "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/charge"
	stripesession "github.com/stripe/stripe-go/v82/checkout/session"
)

// Client wraps the Stripe SDK behind the shapes the use cases need. The
// session and charge constructors are function fields so tests can stub the
// provider without network calls.
type Client struct {
	cfg           Config
	createSession func(params *stripelib.CheckoutSessionParams) (*stripelib.CheckoutSession, error)
	getCharge     func(id string, params *stripelib.ChargeParams) (*stripelib.Charge, error)
}

func NewClient(cfg Config) *Client {
	stripelib.Key = strings.TrimSpace(cfg.APIKey)
	return &Client{
		cfg:           cfg,
		createSession: stripesession.New,
		getCharge:     charge.Get,
	}
}

// CreateCheckoutSession starts a one-time payment session on the hosted
// checkout page. The signup details ride along in metadata so the webhook
// can build the account without any pre-created row.
func (c *Client) CreateCheckoutSession(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error) {
	params := &stripelib.CheckoutSessionParams{
		Params: stripelib.Params{
			Context: ctx,
		},
		Mode:              stripelib.String(string(stripelib.CheckoutSessionModePayment)),
		SuccessURL:        stripelib.String(c.cfg.SuccessURL),
		CancelURL:         stripelib.String(c.cfg.CancelURL),
		CustomerEmail:     stripelib.String(input.Email),
		ClientReferenceID: stripelib.String(input.ClientReferenceID),
		LineItems: []*stripelib.CheckoutSessionLineItemParams{
			{
				Price:    stripelib.String(c.cfg.PriceID),
				Quantity: stripelib.Int64(1),
			},
		},
		Metadata: map[string]string{
			"contact_name":  input.ContactName,
			"business_name": input.BusinessName,
		},
	}

	session, err := c.createSession(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if session == nil || strings.TrimSpace(session.URL) == "" {
		return nil, fmt.Errorf("create checkout session: provider returned no redirect URL")
	}

	return &CheckoutOutput{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

// GetCharge returns the safe subset of a charge for the front-end.
func (c *Client) GetCharge(ctx context.Context, chargeID string) (*ChargeOutput, error) {
	ch, err := c.getCharge(chargeID, &stripelib.ChargeParams{
		Params: stripelib.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve charge %s: %w", chargeID, err)
	}

	return &ChargeOutput{
		Status:     string(ch.Status),
		Amount:     ch.Amount,
		ReceiptURL: ch.ReceiptURL,
	}, nil
}
