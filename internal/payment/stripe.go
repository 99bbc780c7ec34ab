// Package payment wraps the Stripe hosted-checkout flow. The storefront
// creates one session per call with exactly one line item; the frontend
// redirects the browser to the session URL.
package payment

import (
	"context"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// LineItem is the checkout request body: one item per session.
type LineItem struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"` // major currency units
	Quantity int64   `json:"quantity"`
}

type Client interface {
	CreateSession(ctx context.Context, item LineItem) (*stripe.CheckoutSession, error)
}

// BuildSessionParams converts a line item into hosted-session params.
// unit_amount is in minor units, hence the *100. The /sucess suffix is what
// the deployed frontend routes on, misspelling included.
func BuildSessionParams(item LineItem, clientURL, currency string) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:   stripe.String(item.Name),
						Images: stripe.StringSlice([]string{item.Image}),
					},
					UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
				},
				Quantity: stripe.Int64(item.Quantity),
			},
		},
		SuccessURL: stripe.String(clientURL + "/sucess"),
		CancelURL:  stripe.String(clientURL + "/cancel"),
	}
}

type StripeClient struct {
	ClientURL string
	Currency  string
}

func NewStripe(secretKey, clientURL, currency string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{ClientURL: clientURL, Currency: currency}
}

func (s *StripeClient) CreateSession(ctx context.Context, item LineItem) (*stripe.CheckoutSession, error) {
	params := BuildSessionParams(item, s.ClientURL, s.Currency)
	params.Context = ctx
	return session.New(params)
}
