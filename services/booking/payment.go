package booking

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates a payment intent for a confirmed booking total.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, amount int, bookingID string) (string, error)
}

// StripePaymentHandler backs PaymentHandler with Stripe payment intents.
type StripePaymentHandler struct {
	Currency string // ISO currency code, e.g. "inr"
	Logger   *zap.Logger
}

// NewStripePaymentHandler returns a Stripe-backed payment handler.
func NewStripePaymentHandler(currency string, logger *zap.Logger) *StripePaymentHandler {
	if currency == "" {
		currency = string(stripe.CurrencyINR)
	}
	return &StripePaymentHandler{Currency: currency, Logger: logger}
}

// CreateIntent creates a Stripe payment intent for the booking total.
// Amounts are whole currency units; Stripe expects minor units.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amount int, bookingID string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(h.Currency),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", bookingID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	h.Logger.Info("created payment intent",
		zap.String("bookingId", bookingID), zap.String("paymentIntentId", pi.ID))
	return pi.ID, nil
}
