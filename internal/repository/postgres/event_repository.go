package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// EventRepository implements repository.EventRepository on gorm
type EventRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewEventRepository creates a new gorm-backed custom event repository
func NewEventRepository(db *gorm.DB, log *zap.Logger) *EventRepository {
	return &EventRepository{db: db, log: log}
}

// ListCustomEvents returns all custom events ordered by name
func (r *EventRepository) ListCustomEvents(ctx context.Context) ([]domain.Event, error) {
	var rows []customEventRow
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list custom events: %w", err)
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toDomain())
	}
	return events, nil
}

// CreateCustomEvent stores a new custom event; an id that is already taken yields repository.ErrConflict
func (r *EventRepository) CreateCustomEvent(ctx context.Context, event *domain.Event) error {
	row := customEventRow{
		ID:                  event.ID,
		Name:                event.Name,
		Stage:               string(event.Stage),
		EstimatedConversion: event.EstimatedConversion,
		Description:         event.Description,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&customEventRow{}).Where("id = ?", row.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return repository.ErrConflict
		}
		return tx.Create(&row).Error
	})
	if errors.Is(err, repository.ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrConflict
	}
	if err != nil {
		return fmt.Errorf("failed to create custom event %s: %w", event.ID, err)
	}

	event.IsCustom = true
	r.log.Info("Custom event created", zap.String("eventID", row.ID), zap.String("stage", row.Stage))
	return nil
}
