package components

import (
	"log/slog"

	"clipvault/internal/domain/payment"
	"clipvault/internal/infra/notify"
	infrapayment "clipvault/internal/infra/payment"
	"clipvault/internal/infra/storage"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		// Storage
		fx.Annotate(
			NewFileURLResolver,
			fx.As(new(shared.FileURLResolver)),
		),
		// Payment providers
		NewSessionCreators,
		// Sale notification
		fx.Annotate(
			NewSaleNotifier,
			fx.As(new(shared.SaleNotifier)),
		),
	),
)

func NewFileURLResolver(cfg config.Config) (*storage.PublicURLResolver, error) {
	return storage.NewPublicURLResolver(cfg.Storage.PublicBaseURL)
}

func NewSessionCreators(cfg config.Config, clk clock.Clock) map[payment.Method]shared.SessionCreator {
	return infrapayment.NewSessionCreators(cfg.Checkout, clk)
}

func NewSaleNotifier(cfg config.Config, logger *slog.Logger) *notify.Multi {
	return notify.FromConfig(cfg.Notify, logger)
}
