package postgres

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

type templateRow struct {
	ID           string `gorm:"primaryKey;size:36"`
	Name         string `gorm:"not null"`
	Description  string
	BusinessGoal string    `gorm:"not null"`
	TargetUsers  string    `gorm:"not null"`
	BudgetRange  string    `gorm:"not null"`
	Steps        []stepRow `gorm:"foreignKey:TemplateID"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (templateRow) TableName() string {
	return "funnel_templates"
}

func (r *templateRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

// stepRow keeps a denormalized copy of the event so that templates survive catalog changes
type stepRow struct {
	ID                       string `gorm:"primaryKey;size:36"`
	TemplateID               string `gorm:"size:36;not null;index:idx_step_template_number,unique"`
	StepNumber               int    `gorm:"not null;index:idx_step_template_number,unique"`
	EventID                  string `gorm:"size:64;not null"`
	EventName                string `gorm:"not null"`
	EventStage               string `gorm:"size:32;not null"`
	EventIsCustom            bool   `gorm:"not null;default:false"`
	EventEstimatedConversion float64
	TargetConversionRate     float64 `gorm:"not null"`
	ActualConversionRate     *float64
	CreatedAt                time.Time `gorm:"autoCreateTime"`
}

func (stepRow) TableName() string {
	return "funnel_template_steps"
}

func (r *stepRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

type stepKeywordRow struct {
	ID        string    `gorm:"primaryKey;size:36"`
	StepID    string    `gorm:"size:36;not null;uniqueIndex:idx_step_keyword"`
	Keyword   string    `gorm:"size:128;not null;uniqueIndex:idx_step_keyword"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (stepKeywordRow) TableName() string {
	return "step_keywords"
}

func (r *stepKeywordRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

// keywordUsageLogRow is append-only and outlives the keyword and step it describes
type keywordUsageLogRow struct {
	ID        string `gorm:"primaryKey;size:36"`
	StepID    string `gorm:"size:36;not null;index:idx_usage_step_date"`
	KeywordID string `gorm:"size:36;not null"`
	Keyword   string `gorm:"size:128;not null"`
	Action    string `gorm:"size:16;not null"`
	Actor     string `gorm:"size:128"`
	Details   datatypes.JSON
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_usage_step_date"`
}

func (keywordUsageLogRow) TableName() string {
	return "keywords_usage_log"
}

func (r *keywordUsageLogRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = newID()
	}
	return nil
}

type customEventRow struct {
	ID                  string  `gorm:"primaryKey;size:64"`
	Name                string  `gorm:"not null"`
	Stage               string  `gorm:"size:32;not null;index"`
	EstimatedConversion float64 `gorm:"not null"`
	Description         string
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (customEventRow) TableName() string {
	return "custom_events"
}

func templateToRow(t *domain.FunnelTemplate) templateRow {
	row := templateRow{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		BusinessGoal: t.BusinessGoal,
		TargetUsers:  t.TargetUsers,
		BudgetRange:  t.BudgetRange,
		Steps:        make([]stepRow, 0, len(t.Steps)),
	}
	for _, s := range t.Steps {
		row.Steps = append(row.Steps, stepToRow(t.ID, s))
	}
	return row
}

func stepToRow(templateID string, s domain.FunnelTemplateStep) stepRow {
	return stepRow{
		ID:                       s.ID,
		TemplateID:               templateID,
		StepNumber:               s.StepNumber,
		EventID:                  s.Event.ID,
		EventName:                s.Event.Name,
		EventStage:               string(s.Event.Stage),
		EventIsCustom:            s.Event.IsCustom,
		EventEstimatedConversion: s.Event.EstimatedConversion,
		TargetConversionRate:     s.TargetConversionRate,
		ActualConversionRate:     s.ActualConversionRate,
	}
}

func (r templateRow) toDomain() domain.FunnelTemplate {
	t := domain.FunnelTemplate{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		BusinessGoal: r.BusinessGoal,
		TargetUsers:  r.TargetUsers,
		BudgetRange:  r.BudgetRange,
		Steps:        make([]domain.FunnelTemplateStep, 0, len(r.Steps)),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, s := range r.Steps {
		t.Steps = append(t.Steps, s.toDomain())
	}
	return t
}

func (r stepRow) toDomain() domain.FunnelTemplateStep {
	return domain.FunnelTemplateStep{
		ID:         r.ID,
		StepNumber: r.StepNumber,
		Event: domain.Event{
			ID:                  r.EventID,
			Name:                r.EventName,
			Stage:               domain.FunnelStage(r.EventStage),
			EstimatedConversion: r.EventEstimatedConversion,
			IsCustom:            r.EventIsCustom,
		},
		TargetConversionRate: r.TargetConversionRate,
		ActualConversionRate: r.ActualConversionRate,
	}
}

func (r stepKeywordRow) toDomain() domain.StepKeyword {
	return domain.StepKeyword{
		ID:        r.ID,
		StepID:    r.StepID,
		Keyword:   r.Keyword,
		CreatedAt: r.CreatedAt,
	}
}

func (r keywordUsageLogRow) toDomain() domain.KeywordUsageLog {
	entry := domain.KeywordUsageLog{
		ID:        r.ID,
		StepID:    r.StepID,
		KeywordID: r.KeywordID,
		Keyword:   r.Keyword,
		Action:    r.Action,
		Actor:     r.Actor,
		CreatedAt: r.CreatedAt,
	}
	if len(r.Details) > 0 {
		// details are written by this package; a decode failure only drops them
		_ = json.Unmarshal(r.Details, &entry.Details)
	}
	return entry
}

func (r customEventRow) toDomain() domain.Event {
	return domain.Event{
		ID:                  r.ID,
		Name:                r.Name,
		Stage:               domain.FunnelStage(r.Stage),
		EstimatedConversion: r.EstimatedConversion,
		IsCustom:            true,
		Description:         r.Description,
	}
}
