package infra

import (
	"database/sql"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Connections opens each database on first use so only the configured drivers connect.
type Connections struct {
	postgresURL string
	sqlitePath  string
	logger      *zap.Logger

	pgOnce sync.Once
	pg     *gorm.DB
	pgErr  error

	liteOnce sync.Once
	lite     *sql.DB
	liteErr  error
}

func NewConnections(postgresURL, sqlitePath string, logger *zap.Logger) *Connections {
	return &Connections{postgresURL: postgresURL, sqlitePath: sqlitePath, logger: logger}
}

func (c *Connections) Postgres() (*gorm.DB, error) {
	c.pgOnce.Do(func() {
		c.pg, c.pgErr = InitPostgresql(c.postgresURL)
		if c.pgErr == nil {
			c.logger.Info("connected to PostgreSQL")
		}
	})
	return c.pg, c.pgErr
}

func (c *Connections) SQLite() (*sql.DB, error) {
	c.liteOnce.Do(func() {
		c.lite, c.liteErr = OpenSQLite(c.sqlitePath)
		if c.liteErr == nil {
			c.logger.Info("opened SQLite database", zap.String("path", c.sqlitePath))
		}
	})
	return c.lite, c.liteErr
}

// Close closes whatever was opened.
func (c *Connections) Close() {
	if c.pg != nil {
		ClosePostgresql(c.pg, c.logger)
	}
	if c.lite != nil {
		if err := c.lite.Close(); err != nil {
			c.logger.Error("closing SQLite database", zap.Error(err))
		}
	}
}
