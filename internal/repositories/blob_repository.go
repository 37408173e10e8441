package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ohrid/internal/models/db_models"
	"ohrid/internal/planner"
	"ohrid/pkg/utils"
)

// GormBlobRepository keeps plan blobs in the kv_blobs table.
type GormBlobRepository struct {
	db *gorm.DB
}

func NewGormBlobRepository(db *gorm.DB) *GormBlobRepository {
	return &GormBlobRepository{db: db}
}

func (r *GormBlobRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var blob db_models.KVBlob
	err := r.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, planner.ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: reading blob %q: %w", utils.ErrDatabaseError, key, err)
	}
	return []byte(blob.Value), nil
}

func (r *GormBlobRepository) Save(ctx context.Context, key string, data []byte) error {
	blob := db_models.KVBlob{Key: key, Value: datatypes.JSON(data)}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&blob).Error
	if err != nil {
		return fmt.Errorf("%w: saving blob %q: %w", utils.ErrDatabaseError, key, err)
	}
	return nil
}
