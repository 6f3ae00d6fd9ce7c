package domain

import "time"

// FunnelTemplateStep is one position in an ordered funnel
type FunnelTemplateStep struct {
	ID                   string   `json:"id,omitempty"`
	StepNumber           int      `json:"step_number"`
	Event                Event    `json:"event"`
	TargetConversionRate float64  `json:"target_conversion_rate"`
	ActualConversionRate *float64 `json:"actual_conversion_rate,omitempty"`
}

// EffectiveRate returns the actual rate when present, otherwise the target rate
func (s FunnelTemplateStep) EffectiveRate() float64 {
	if s.ActualConversionRate != nil {
		return *s.ActualConversionRate
	}
	return s.TargetConversionRate
}

// FunnelTemplate is an ordered sequence of steps plus planning metadata
type FunnelTemplate struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	BusinessGoal string               `json:"business_goal"`
	TargetUsers  string               `json:"target_users"`
	BudgetRange  string               `json:"budget_range"`
	Steps        []FunnelTemplateStep `json:"steps"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// Float returns a pointer to v
func Float(v float64) *float64 {
	return &v
}
