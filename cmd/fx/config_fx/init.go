package config_fx

import (
	"time"

	"go.uber.org/fx"

	"ohrid/internal/config"
	"ohrid/pkg/utils"
)

var Module = fx.Provide(
	provideConfig, provideLocation)

func provideConfig() (*config.Config, error) {
	return config.Load(config.PathFromEnv())
}

func provideLocation(cfg *config.Config) *time.Location {
	return utils.LoadLocation(cfg.Timezone)
}
