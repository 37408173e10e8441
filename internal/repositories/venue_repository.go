package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ohrid/internal/catalog"
	"ohrid/internal/models/db_models"
	"ohrid/pkg/utils"
)

type VenueRepository interface {
	Upsert(ctx context.Context, venues []db_models.Venue) error
	GetByID(ctx context.Context, id int) (*db_models.Venue, error)
	ListAll(ctx context.Context) ([]db_models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Upsert(ctx context.Context, venues []db_models.Venue) error {
	if len(venues) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&venues).Error
	if err != nil {
		return fmt.Errorf("%w: upserting venues: %w", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*db_models.Venue, error) {
	var venue db_models.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: loading venue %d: %w", utils.ErrDatabaseError, id, err)
	}
	return &venue, nil
}

// ListAll keeps catalog order, which is ascending id.
func (r *venueRepository) ListAll(ctx context.Context) ([]db_models.Venue, error) {
	var venues []db_models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, fmt.Errorf("%w: listing venues: %w", utils.ErrDatabaseError, err)
	}
	return venues, nil
}

func VenueToCatalog(v db_models.Venue) catalog.Venue {
	return catalog.Venue{
		ID:       v.ID,
		Name:     v.Name,
		Type:     catalog.StringList(v.Types),
		Tags:     catalog.StringList(v.Tags),
		Location: v.Location,
		Rating:   v.Rating,
	}
}

func VenueFromCatalog(v catalog.Venue) db_models.Venue {
	return db_models.Venue{
		ID:       v.ID,
		Name:     v.Name,
		Types:    []string(v.Type),
		Tags:     []string(v.Tags),
		Location: v.Location,
		Rating:   v.Rating,
	}
}
