package dto

import (
	"time"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/funnel"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error" example:"validation_error"`
	Message string   `json:"message,omitempty" example:"template validation failed"`
	Errors  []string `json:"errors,omitempty" example:"Template name is required"`
}

// FunnelStepResponse is a stored step with its read-time analysis
type FunnelStepResponse struct {
	ID                   string        `json:"id,omitempty"`
	StepNumber           int           `json:"step_number" example:"2"`
	Event                domain.Event  `json:"event"`
	TargetConversionRate float64       `json:"target_conversion_rate" example:"45"`
	ActualConversionRate *float64      `json:"actual_conversion_rate,omitempty" example:"38.2"`
	EffectiveRate        float64       `json:"effective_rate" example:"38.2"`
	PerformanceStatus    funnel.Status `json:"performance_status,omitempty" example:"danger"`
	PerformanceVariance  string        `json:"performance_variance,omitempty" example:"-15.1%"`
	IsDropOffPoint       bool          `json:"is_drop_off_point"`
}

// FunnelTemplateResponse is a template with its derived aggregates
type FunnelTemplateResponse struct {
	ID                    string               `json:"id,omitempty"`
	Name                  string               `json:"name" example:"SaaS Free Trial"`
	Description           string               `json:"description,omitempty"`
	BusinessGoal          string               `json:"business_goal" example:"acquisition"`
	TargetUsers           string               `json:"target_users" example:"smb"`
	BudgetRange           string               `json:"budget_range" example:"$1000-5000"`
	Steps                 []FunnelStepResponse `json:"steps"`
	TargetTotalConversion float64              `json:"target_total_conversion" example:"5.4"`
	ActualTotalConversion *float64             `json:"actual_total_conversion,omitempty" example:"4.1"`
	EstimatedCAC          float64              `json:"estimated_cac" example:"200"`
	EstimatedROI          *float64             `json:"estimated_roi" example:"1.5"`
	DropOffSteps          []int                `json:"drop_off_steps" example:"3"`
	Warnings              []string             `json:"warnings,omitempty"`
	CreatedAt             *time.Time           `json:"created_at,omitempty"`
	UpdatedAt             *time.Time           `json:"updated_at,omitempty"`
}

// NewFunnelTemplateResponse merges a template with its analysis
func NewFunnelTemplateResponse(t domain.FunnelTemplate, a funnel.Analysis) FunnelTemplateResponse {
	resp := FunnelTemplateResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		Description:           t.Description,
		BusinessGoal:          t.BusinessGoal,
		TargetUsers:           t.TargetUsers,
		BudgetRange:           t.BudgetRange,
		Steps:                 make([]FunnelStepResponse, 0, len(t.Steps)),
		TargetTotalConversion: a.TargetTotalConversion,
		ActualTotalConversion: a.ActualTotalConversion,
		EstimatedCAC:          a.Estimate.CAC,
		EstimatedROI:          a.Estimate.ROI,
		DropOffSteps:          a.DropOffSteps,
	}
	if !t.CreatedAt.IsZero() {
		createdAt, updatedAt := t.CreatedAt, t.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	for i, step := range t.Steps {
		sr := FunnelStepResponse{
			ID:                   step.ID,
			StepNumber:           step.StepNumber,
			Event:                step.Event,
			TargetConversionRate: step.TargetConversionRate,
			ActualConversionRate: step.ActualConversionRate,
			EffectiveRate:        step.EffectiveRate(),
		}
		if i < len(a.Steps) {
			sr.PerformanceStatus = a.Steps[i].PerformanceStatus
			sr.PerformanceVariance = a.Steps[i].PerformanceVariance
			sr.IsDropOffPoint = a.Steps[i].IsDropOffPoint
		}
		resp.Steps = append(resp.Steps, sr)
	}
	return resp
}

// TemplateListResponse represents the template list
type TemplateListResponse struct {
	Templates []FunnelTemplateResponse `json:"templates"`
	Count     int                      `json:"count" example:"3"`
}

// PreviewResponse is the builder preview of an unsaved template
type PreviewResponse struct {
	IsValid  bool                   `json:"is_valid" example:"false"`
	Errors   []string               `json:"errors"`
	Warnings []string               `json:"warnings,omitempty"`
	Template FunnelTemplateResponse `json:"template"`
}

// SyncPerformanceResponse represents an accepted performance sync
type SyncPerformanceResponse struct {
	TemplateID  string   `json:"template_id"`
	SnapshotIDs []string `json:"snapshot_ids"`
	Status      string   `json:"status" example:"accepted"`
}

// HistoryPointData is one time bucket of one step
type HistoryPointData struct {
	Bucket         string  `json:"bucket" example:"2024-08-12"`
	StepNumber     int     `json:"step_number" example:"2"`
	AverageRate    float64 `json:"average_rate" example:"41.7"`
	SnapshotCount  uint64  `json:"snapshot_count" example:"24"`
	UsersEntered   uint64  `json:"users_entered" example:"12000"`
	UsersConverted uint64  `json:"users_converted" example:"5004"`
}

// PerformanceHistoryResponse represents the performance history of a template
type PerformanceHistoryResponse struct {
	TemplateID string             `json:"template_id"`
	From       int64              `json:"from" example:"1723475612"`
	To         int64              `json:"to" example:"1723562012"`
	GroupBy    string             `json:"group_by" example:"day"`
	Points     []HistoryPointData `json:"points"`
}

// EventListResponse represents the event catalog
type EventListResponse struct {
	Events []domain.Event `json:"events"`
	Count  int            `json:"count" example:"12"`
}

// KeywordListResponse represents the keywords of a step
type KeywordListResponse struct {
	StepID   string               `json:"step_id"`
	Keywords []domain.StepKeyword `json:"keywords"`
}

// AddKeywordsResponse reports which keywords were tagged
type AddKeywordsResponse struct {
	StepID  string               `json:"step_id"`
	Added   []domain.StepKeyword `json:"added"`
	Skipped int                  `json:"skipped" example:"1"`
}

// UsageLogResponse represents the keyword audit trail of a step
type UsageLogResponse struct {
	StepID  string                   `json:"step_id"`
	Entries []domain.KeywordUsageLog `json:"entries"`
}
