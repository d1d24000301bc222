package payment

import (
	"context"
	"errors"
	"strings"

	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeClient struct {
	api *client.API
}

// NewStripeClient points the SDK at cfg.APIBaseURL so tests and staging can
// swap in a fake without touching the global stripe.Key.
func NewStripeClient(cfg config.StripeConfig) *StripeClient {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(strings.TrimRight(cfg.APIBaseURL, "/")),
		HTTPClient:        newHTTPClient(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})
	return &StripeClient{
		api: client.New(cfg.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}),
	}
}

// CreateSession creates a one-off Checkout Session with an inline price.
func (c *StripeClient) CreateSession(ctx context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(strings.ToLower(req.Currency)),
					UnitAmount: stripe.Int64(req.AmountMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
			},
		},
	}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, stripeError(err)
	}
	if s.ID == "" && s.URL == "" {
		return nil, errs.Mark(errs.New("stripe session has neither id nor url"), errs.ErrUpstreamSessionCreationFailed)
	}
	return &shared.SessionResult{SessionID: s.ID, CheckoutURL: s.URL}, nil
}

func stripeError(err error) error {
	var se *stripe.Error
	if !errors.As(err, &se) {
		return transportError("stripe", err)
	}
	wrapped := errs.Newf("stripe session creation failed: status=%d type=%s", se.HTTPStatusCode, se.Type)
	if se.Msg != "" {
		wrapped = errs.WithHint(wrapped, se.Msg)
	}
	return errs.Mark(wrapped, errs.ErrUpstreamSessionCreationFailed)
}
