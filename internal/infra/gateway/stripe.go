package gateway

import (
	"context"

	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway adapts the Stripe SDK to the payment port. One client per
// process; the SDK handles its own connection pooling and retries.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string, metadata map[string]string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to create payment intent")
	}
	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, id string) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to retrieve payment intent")
	}
	return toPaymentIntent(pi), nil
}

func (g *StripeGateway) CreateRefund(ctx context.Context, chargeID string, amount int64) (*commands.Refund, error) {
	params := &stripe.RefundParams{
		Charge: stripe.String(chargeID),
		Amount: stripe.Int64(amount),
	}
	params.Context = ctx

	ref, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to create refund")
	}
	return &commands.Refund{
		ID:     ref.ID,
		Amount: ref.Amount,
		Status: string(ref.Status),
	}, nil
}

func toPaymentIntent(pi *stripe.PaymentIntent) *commands.PaymentIntent {
	out := &commands.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pi.Amount,
	}
	if pi.LatestCharge != nil {
		out.LatestChargeID = pi.LatestCharge.ID
	}
	return out
}
