package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ohrid/internal/models/db_models"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres: empty connection string")
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	if err := connectionPool.AutoMigrate(&db_models.KVBlob{}, &db_models.Venue{}, &db_models.Event{}); err != nil {
		ClosePostgresql(connectionPool, zap.NewNop())
		return nil, fmt.Errorf("migrating postgres schema: %w", err)
	}

	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed")
	}
}
