package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"bloodconnect/backend/config"
)

// Session is a hosted checkout session the donor gets redirected to.
type Session struct {
	ID  string
	URL string
}

// SessionStatus is the verified state of a completed (or abandoned) session.
type SessionStatus struct {
	ID          string
	Paid        bool
	AmountTotal int64 // smallest currency unit
	Currency    string
}

// StripeGateway creates and verifies Stripe Checkout sessions.
type StripeGateway struct {
	currency   string
	successURL string
	cancelURL  string
}

// NewStripeGateway configures the Stripe client from payment configuration.
func NewStripeGateway(cfg *config.PaymentConfig) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey
	return &StripeGateway{
		currency:   cfg.Currency,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

// CreateSession opens a one-shot checkout session for the given amount.
// amount is in the smallest currency unit (cents).
func (g *StripeGateway) CreateSession(ctx context.Context, amount int64, donorEmail string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:        stripe.Params{Context: ctx},
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(donorEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("BloodConnect donation fund"),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		// Stripe substitutes the real session id into the placeholder on redirect.
		SuccessURL: stripe.String(g.successURL + "?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.cancelURL),
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &Session{ID: s.ID, URL: s.URL}, nil
}

// VerifySession fetches a session from Stripe and reports its payment state.
func (g *StripeGateway) VerifySession(ctx context.Context, id string) (*SessionStatus, error) {
	s, err := session.Get(id, &stripe.CheckoutSessionParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		return nil, fmt.Errorf("fetch checkout session: %w", err)
	}

	return &SessionStatus{
		ID:          s.ID,
		Paid:        s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		AmountTotal: s.AmountTotal,
		Currency:    string(s.Currency),
	}, nil
}
