package jobs_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/internal/config"
	"ohrid/internal/jobs"
	"ohrid/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideRotationRefresher),
	fx.Invoke(func(*jobs.RotationRefresher) {}),
)

func provideRotationRefresher(
	lc fx.Lifecycle,
	cfg *config.Config,
	venues services.VenueServiceInterface,
	loc *time.Location,
	log *zap.Logger,
) (*jobs.RotationRefresher, error) {
	r, err := jobs.NewRotationRefresher(cfg.RotationCron, venues, loc, log.Named("jobs"))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			r.Stop()
			return nil
		},
	})
	return r, nil
}
