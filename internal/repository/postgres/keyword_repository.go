package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// KeywordRepository implements repository.KeywordRepository on gorm.
// Every write records one keywords_usage_log row per changed keyword in the same transaction.
type KeywordRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewKeywordRepository creates a new gorm-backed keyword repository
func NewKeywordRepository(db *gorm.DB, log *zap.Logger) *KeywordRepository {
	return &KeywordRepository{db: db, log: log}
}

func requireStep(tx *gorm.DB, stepID string) error {
	var count int64
	if err := tx.Model(&stepRow{}).Where("id = ?", stepID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func usageEntry(stepID string, keyword stepKeywordRow, action, actor string, details map[string]interface{}) (*keywordUsageLogRow, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode usage details: %w", err)
	}
	return &keywordUsageLogRow{
		StepID:    stepID,
		KeywordID: keyword.ID,
		Keyword:   keyword.Keyword,
		Action:    action,
		Actor:     actor,
		Details:   datatypes.JSON(raw),
	}, nil
}

// wrap keeps sentinel errors matchable and adds context to everything else
func wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrConflict) {
		return err
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// List returns the keywords tagged on a step in insertion order
func (r *KeywordRepository) List(ctx context.Context, stepID string) ([]domain.StepKeyword, error) {
	var keywords []domain.StepKeyword
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireStep(tx, stepID); err != nil {
			return err
		}

		var rows []stepKeywordRow
		if err := tx.Where("step_id = ?", stepID).Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
			return err
		}

		keywords = make([]domain.StepKeyword, 0, len(rows))
		for _, row := range rows {
			keywords = append(keywords, row.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err, "failed to list keywords for step %s", stepID)
	}
	return keywords, nil
}

// Add tags the step with every normalized keyword it does not already carry.
// Blank keywords and repeats within the batch are skipped.
func (r *KeywordRepository) Add(ctx context.Context, stepID string, keywords []string, actor string) ([]domain.StepKeyword, error) {
	inserted := make([]domain.StepKeyword, 0, len(keywords))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireStep(tx, stepID); err != nil {
			return err
		}

		var existing []string
		if err := tx.Model(&stepKeywordRow{}).Where("step_id = ?", stepID).Pluck("keyword", &existing).Error; err != nil {
			return err
		}
		seen := make(map[string]bool, len(existing)+len(keywords))
		for _, kw := range existing {
			seen[kw] = true
		}

		for _, raw := range keywords {
			kw := domain.NormalizeKeyword(raw)
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true

			row := stepKeywordRow{StepID: stepID, Keyword: kw}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}

			entry, err := usageEntry(stepID, row, domain.KeywordActionAdded, actor, map[string]interface{}{
				"batch_size": len(keywords),
			})
			if err != nil {
				return err
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}

			inserted = append(inserted, row.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, wrap(err, "failed to add keywords to step %s", stepID)
	}

	r.log.Debug("Keywords added", zap.String("stepID", stepID), zap.Int("inserted", len(inserted)))
	return inserted, nil
}

// Update renames a keyword on the step
func (r *KeywordRepository) Update(ctx context.Context, stepID, keywordID, keyword, actor string) (*domain.StepKeyword, error) {
	var updated domain.StepKeyword
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row stepKeywordRow
		if err := tx.First(&row, "id = ? AND step_id = ?", keywordID, stepID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		kw := domain.NormalizeKeyword(keyword)
		previous := row.Keyword
		if kw == previous {
			updated = row.toDomain()
			return nil
		}

		var clash int64
		if err := tx.Model(&stepKeywordRow{}).Where("step_id = ? AND keyword = ?", stepID, kw).Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return repository.ErrConflict
		}

		if err := tx.Model(&row).Update("keyword", kw).Error; err != nil {
			return err
		}
		row.Keyword = kw

		entry, err := usageEntry(stepID, row, domain.KeywordActionUpdated, actor, map[string]interface{}{
			"from": previous,
			"to":   kw,
		})
		if err != nil {
			return err
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		updated = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, wrap(err, "failed to update keyword %s", keywordID)
	}
	return &updated, nil
}

// Remove deletes a keyword from the step
func (r *KeywordRepository) Remove(ctx context.Context, stepID, keywordID, actor string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row stepKeywordRow
		if err := tx.First(&row, "id = ? AND step_id = ?", keywordID, stepID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&row).Error; err != nil {
			return err
		}

		entry, err := usageEntry(stepID, row, domain.KeywordActionRemoved, actor, map[string]interface{}{
			"keyword": row.Keyword,
		})
		if err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	return wrap(err, "failed to remove keyword %s", keywordID)
}

// UsageLog returns the audit trail of a step, newest first
func (r *KeywordRepository) UsageLog(ctx context.Context, stepID string) ([]domain.KeywordUsageLog, error) {
	var rows []keywordUsageLogRow
	if err := r.db.WithContext(ctx).
		Where("step_id = ?", stepID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read usage log for step %s: %w", stepID, err)
	}

	entries := make([]domain.KeywordUsageLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries, nil
}
