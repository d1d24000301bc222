package payment

import (
	dompayment "clipvault/internal/domain/payment"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/usecase/shared"
)

// NewSessionCreators returns one client per provider that creates sessions
// over the network. Clients exist even without credentials; the checkout
// availability gate keeps them from being called.
func NewSessionCreators(cfg config.CheckoutConfig, clk clock.Clock) map[dompayment.Method]shared.SessionCreator {
	return map[dompayment.Method]shared.SessionCreator{
		dompayment.MethodStripe: NewStripeClient(cfg.Stripe),
		dompayment.MethodPayPal: NewPayPalClient(cfg.PayPal, clk),
		dompayment.MethodWho:    NewWhopClient(cfg.Whop),
	}
}
