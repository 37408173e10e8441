package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

// SQLiteBlobRepository keeps plan blobs in the embedded database.
type SQLiteBlobRepository struct {
	db *sql.DB
}

func NewSQLiteBlobRepository(db *sql.DB) *SQLiteBlobRepository {
	return &SQLiteBlobRepository{db: db}
}

func (r *SQLiteBlobRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, "SELECT value FROM kv_blobs WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, planner.ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: reading blob %q: %w", utils.ErrDatabaseError, key, err)
	}
	return value, nil
}

func (r *SQLiteBlobRepository) Save(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv_blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: writing blob %q: %w", utils.ErrDatabaseError, key, err)
	}
	return nil
}
