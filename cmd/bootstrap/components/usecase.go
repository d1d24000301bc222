package components

import (
	"log/slog"

	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/payment"
	"clipvault/internal/handler/api"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/jwt"
	"clipvault/internal/usecase"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/progressive"
	"clipvault/internal/usecase/queries"
	"clipvault/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() *checkout.ProductNameRotator {
		return checkout.NewProductNameRotator()
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewCatalogCache,
		func(c *queries.CatalogCache) queries.CatalogQueries { return c },
		func(c *queries.CatalogCache) commands.CacheInvalidator { return c },
		func(c *queries.CatalogCache) commands.EntryLookup { return c },
		NewPreviewQueries,
		queries.NewPurchaseQueries,
		fx.Annotate(
			NewStreamRegistry,
			fx.As(new(api.StreamLoaders)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCatalogCommands,
		NewCheckoutCommands,
		NewPurchaseCommands,
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		func(cfg config.Config, jwtService *jwt.Service) usecase.AdminAuthUseCase {
			return usecase.NewAdminAuthUseCase(cfg.Admin.PasswordHash, jwtService)
		},
	),
)

func NewCatalogCache(store shared.CatalogStore, resolver shared.FileURLResolver, clk clock.Clock, cfg config.Config, logger *slog.Logger) *queries.CatalogCache {
	return queries.NewCatalogCache(store, resolver, clk, queries.CacheOptions{
		TTL:         cfg.Catalog.CacheTTL,
		Placeholder: cfg.Storage.PlaceholderThumbnail,
	}, logger)
}

func NewPreviewQueries(store shared.CatalogStore, resolver shared.FileURLResolver, cfg config.Config, logger *slog.Logger) queries.PreviewQueries {
	return queries.NewPreviewQueries(store, resolver, cfg.Storage.PlaceholderThumbnail, logger)
}

func NewStreamRegistry(cache *queries.CatalogCache, clk clock.Clock, cfg config.Config, logger *slog.Logger) *progressive.Registry {
	return progressive.NewRegistry(cache, clk, logger, progressive.WithPace(cfg.Catalog.StreamPace))
}

func NewCheckoutCommands(
	entries commands.EntryLookup,
	creators map[payment.Method]shared.SessionCreator,
	cfg config.Config,
	names *checkout.ProductNameRotator,
	clk clock.Clock,
	logger *slog.Logger,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(entries, creators, cfg.Checkout, cfg.Offers, names, clk, logger)
}

func NewPurchaseCommands(
	catalog shared.CatalogStore,
	purchases shared.PurchaseStore,
	notifier shared.SaleNotifier,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) commands.PurchaseCommands {
	return commands.NewPurchaseCommands(catalog, purchases, notifier, cfg.Offers, cfg.Checkout.Currency,
		cfg.Notify.Timeout, commands.GoDispatcher, clk, logger)
}
