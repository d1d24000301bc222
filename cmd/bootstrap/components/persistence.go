package components

import (
	"clipvault/internal/infra/db"
	"clipvault/internal/infra/repository"
	"clipvault/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Catalog
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(shared.CatalogStore)),
		),
		// Purchase
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(shared.PurchaseStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
