package catalog_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/internal/catalog"
	"ohrid/internal/config"
	"ohrid/internal/infra"
	"ohrid/internal/repositories"
	"ohrid/internal/services"
)

var Module = fx.Provide(
	provideCatalogSource, provideCatalogService)

func provideCatalogSource(cfg *config.Config, conns *infra.Connections) (catalog.Source, error) {
	if cfg.Catalog.Source == config.CatalogPostgres {
		db, err := conns.Postgres()
		if err != nil {
			return nil, err
		}
		return repositories.NewDBCatalogSource(
			repositories.NewVenueRepository(db),
			repositories.NewEventRepository(db)), nil
	}
	return catalog.NewFileSource(cfg.Catalog.VenuesPath, cfg.Catalog.EventsPath), nil
}

// The catalog is fetched once at start-up. A failed load is logged and the app
// carries on with whatever loaded.
func provideCatalogService(lc fx.Lifecycle, source catalog.Source, log *zap.Logger) services.CatalogServiceInterface {
	svc := services.NewCatalogService(source, log.Named("catalog"))
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_ = svc.Load(ctx)
			return nil
		},
	})
	return svc
}
