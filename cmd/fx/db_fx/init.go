package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/internal/config"
	"ohrid/internal/infra"
)

var Module = fx.Provide(
	provideConnections)

func provideConnections(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *infra.Connections {
	conns := infra.NewConnections(cfg.Storage.PostgresURL, cfg.Storage.SQLitePath, log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			conns.Close()
			return nil
		},
	})
	return conns
}
