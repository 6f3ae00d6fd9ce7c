package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// TemplateStore implements repository.TemplateStore on gorm
type TemplateStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTemplateStore creates a new gorm-backed template store
func NewTemplateStore(db *gorm.DB, log *zap.Logger) *TemplateStore {
	return &TemplateStore{db: db, log: log}
}

func orderedSteps(db *gorm.DB) *gorm.DB {
	return db.Order("step_number ASC")
}

// List returns all templates, oldest first
func (s *TemplateStore) List(ctx context.Context) ([]domain.FunnelTemplate, error) {
	var rows []templateRow
	if err := s.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]domain.FunnelTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, row.toDomain())
	}
	return templates, nil
}

// Get returns a template with its steps ordered by step number
func (s *TemplateStore) Get(ctx context.Context, id string) (*domain.FunnelTemplate, error) {
	var row templateRow
	err := s.db.WithContext(ctx).
		Preload("Steps", orderedSteps).
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}

	t := row.toDomain()
	return &t, nil
}

// Create inserts the template and its steps, filling in generated ids and timestamps
func (s *TemplateStore) Create(ctx context.Context, template *domain.FunnelTemplate) error {
	row := templateToRow(template)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	*template = row.toDomain()
	s.log.Debug("Template created", zap.String("templateID", row.ID), zap.Int("steps", len(row.Steps)))
	return nil
}

// Update replaces the template metadata and its steps.
// The first incoming step carrying the id of a current step keeps that id, and with it its
// keywords; any repeat of the id gets a fresh one. Keywords of steps that disappear are deleted.
func (s *TemplateStore) Update(ctx context.Context, template *domain.FunnelTemplate) error {
	var updated templateRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing templateRow
		if err := tx.First(&existing, "id = ?", template.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		var currentStepIDs []string
		if err := tx.Model(&stepRow{}).Where("template_id = ?", template.ID).Pluck("id", &currentStepIDs).Error; err != nil {
			return err
		}
		current := make(map[string]bool, len(currentStepIDs))
		for _, id := range currentStepIDs {
			current[id] = true
		}

		row := templateToRow(template)
		retained := make(map[string]bool, len(row.Steps))
		for i := range row.Steps {
			id := row.Steps[i].ID
			if current[id] && !retained[id] {
				retained[id] = true
			} else {
				row.Steps[i].ID = ""
			}
		}

		var removed []string
		for _, id := range currentStepIDs {
			if !retained[id] {
				removed = append(removed, id)
			}
		}
		if len(removed) > 0 {
			if err := tx.Where("step_id IN ?", removed).Delete(&stepKeywordRow{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("template_id = ?", template.ID).Delete(&stepRow{}).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"updated_at":    now,
			"name":          row.Name,
			"description":   row.Description,
			"business_goal": row.BusinessGoal,
			"target_users":  row.TargetUsers,
			"budget_range":  row.BudgetRange,
		}).Error; err != nil {
			return err
		}

		if len(row.Steps) > 0 {
			if err := tx.Create(&row.Steps).Error; err != nil {
				return err
			}
		}

		existing.Name = row.Name
		existing.Description = row.Description
		existing.BusinessGoal = row.BusinessGoal
		existing.TargetUsers = row.TargetUsers
		existing.BudgetRange = row.BudgetRange
		existing.Steps = row.Steps
		existing.UpdatedAt = now
		updated = existing
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to update template %s: %w", template.ID, err)
	}

	*template = updated.toDomain()
	return nil
}

// Delete removes the template, its steps and the keywords tagged on them
func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stepIDs []string
		if err := tx.Model(&stepRow{}).Where("template_id = ?", id).Pluck("id", &stepIDs).Error; err != nil {
			return err
		}

		if len(stepIDs) > 0 {
			if err := tx.Where("step_id IN ?", stepIDs).Delete(&stepKeywordRow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("template_id = ?", id).Delete(&stepRow{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", id).Delete(&templateRow{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	return nil
}

// SeedDefaults inserts the starter templates when the store is empty and returns how many were created
func (s *TemplateStore) SeedDefaults(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&templateRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count templates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, t := range domain.DefaultTemplates() {
		t := t
		if err := s.Create(ctx, &t); err != nil {
			return created, err
		}
		created++
	}

	s.log.Info("Seeded default funnel templates", zap.Int("count", created))
	return created, nil
}
