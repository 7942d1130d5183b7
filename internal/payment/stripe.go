// Package payment wraps the Stripe payment-intent API.
package payment

import (
	"math"

	stripe "github.com/stripe/stripe-go"
	"github.com/stripe/stripe-go/paymentintent"
)

// IntentCreator is what handlers depend on, so tests can stub the
// provider out.
type IntentCreator interface {
	CreateIntent(amount float64) (clientSecret string, err error)
}

type Client struct {
	Currency string
}

// NewClient sets the package-level Stripe key. The stripe-go client is
// process-global, so there is one of these per process.
func NewClient(secretKey, currency string) *Client {
	stripe.Key = secretKey
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &Client{Currency: currency}
}

func (c *Client) CreateIntent(amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(amount)),
		Currency:           stripe.String(c.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// MinorUnits converts a decimal currency amount to integer minor units
// (cents): truncating, never rounding up. The scale-by-1000 step absorbs
// binary float noise so 19.99 becomes 1999, not 1998, while a genuine
// fractional cent like 19.995 still truncates to 1999.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount*1000) / 10)
}
