package planner_fx

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/internal/config"
	"ohrid/internal/infra"
	"ohrid/internal/planner"
	"ohrid/internal/repositories"
	"ohrid/internal/services"
	mem "ohrid/pkg/memcache"
)

var Module = fx.Provide(
	provideBlobStore, providePlanStore, planner.NewEditor, provideRecommender, providePlanService)

func provideBlobStore(cfg *config.Config, conns *infra.Connections, memBlobs *mem.Blobs) (planner.BlobStore, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := conns.Postgres()
		if err != nil {
			return nil, err
		}
		return repositories.NewGormBlobRepository(db), nil
	case config.StorageSQLite:
		db, err := conns.SQLite()
		if err != nil {
			return nil, err
		}
		return repositories.NewSQLiteBlobRepository(db), nil
	case config.StorageMemory:
		return memBlobs, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func providePlanStore(cfg *config.Config, blobs planner.BlobStore, log *zap.Logger) *planner.Store {
	return planner.NewStore(context.Background(), blobs, cfg.Storage.Key, log.Named("plan"))
}

func provideRecommender() *planner.Recommender {
	return planner.NewRecommender(nil)
}

func providePlanService(editor *planner.Editor, catalog services.CatalogServiceInterface, cfg *config.Config, loc *time.Location) services.PlanServiceInterface {
	return services.NewPlanService(editor, catalog, cfg.ShareBaseURL, loc)
}
