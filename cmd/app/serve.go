package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ohrid/cmd/fx/catalog_fx"
	"ohrid/cmd/fx/config_fx"
	"ohrid/cmd/fx/controllers_fx"
	"ohrid/cmd/fx/db_fx"
	"ohrid/cmd/fx/itinerary_fx"
	"ohrid/cmd/fx/jobs_fx"
	"ohrid/cmd/fx/logger_fx"
	"ohrid/cmd/fx/memcache_fx"
	"ohrid/cmd/fx/planner_fx"
	"ohrid/cmd/fx/venues_fx"
	"ohrid/internal/config"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	gin.SetMode(gin.ReleaseMode)

	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		venues_fx.Module,
		controllers_fx.Module,
		jobs_fx.Module,

		fx.Invoke(StartServer),
	)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
