package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ohrid/internal/catalog"
	"ohrid/internal/models/db_models"
	"ohrid/pkg/utils"
)

type EventRepository interface {
	Upsert(ctx context.Context, events []db_models.Event) error
	ListAll(ctx context.Context) ([]db_models.Event, error)
	ListByDate(ctx context.Context, isoDate string) ([]db_models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Upsert(ctx context.Context, events []db_models.Event) error {
	if len(events) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&events).Error
	if err != nil {
		return fmt.Errorf("%w: upserting events: %w", utils.ErrDatabaseError, err)
	}
	return nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]db_models.Event, error) {
	var events []db_models.Event
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("%w: listing events: %w", utils.ErrDatabaseError, err)
	}
	return events, nil
}

func (r *eventRepository) ListByDate(ctx context.Context, isoDate string) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("iso_date = ?", isoDate).
		Order("start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing events for %s: %w", utils.ErrDatabaseError, isoDate, err)
	}
	return events, nil
}

func EventToCatalog(e db_models.Event) catalog.Event {
	return catalog.Event{
		ID:           e.ID,
		EventName:    e.EventName,
		IsoDate:      e.IsoDate,
		StartTime:    e.StartTime,
		VenueID:      e.VenueID,
		LocationName: e.LocationName,
		Category:     e.Category,
	}
}

func EventFromCatalog(e catalog.Event) db_models.Event {
	return db_models.Event{
		ID:           e.ID,
		EventName:    e.EventName,
		IsoDate:      e.IsoDate,
		StartTime:    e.StartTime,
		VenueID:      e.VenueID,
		LocationName: e.LocationName,
		Category:     e.Category,
	}
}
