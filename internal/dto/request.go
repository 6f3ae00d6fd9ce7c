package dto

// FunnelStepRequest is one step of a template write. Step numbers are assigned from the position in the list.
type FunnelStepRequest struct {
	ID                   string   `json:"id,omitempty" example:"0193a1c2-7d4e-7b21-9a51-2f0c6d1e8b3a"`
	EventID              string   `json:"event_id" example:"sign_up"`
	TargetConversionRate float64  `json:"target_conversion_rate" example:"20"`
	ActualConversionRate *float64 `json:"actual_conversion_rate,omitempty" example:"18.5"`
}

// FunnelTemplateRequest represents a create, update or preview request.
// Field rules are enforced by the template validator so that every violation is reported at once.
type FunnelTemplateRequest struct {
	Name         string              `json:"name" example:"SaaS Free Trial"`
	Description  string              `json:"description" example:"Visitor to trial signup"`
	BusinessGoal string              `json:"business_goal" example:"acquisition"`
	TargetUsers  string              `json:"target_users" example:"smb"`
	BudgetRange  string              `json:"budget_range" example:"$1000-5000"`
	Steps        []FunnelStepRequest `json:"steps"`
}

// StepActualRequest is the observed performance of one step
type StepActualRequest struct {
	StepNumber           int      `json:"step_number" binding:"required,min=1,max=6" example:"2"`
	ActualConversionRate *float64 `json:"actual_conversion_rate,omitempty" example:"42.5"`
	UsersEntered         uint64   `json:"users_entered" example:"1200"`
	UsersConverted       uint64   `json:"users_converted" example:"510"`
}

// SyncPerformanceRequest carries observed step rates captured by an analytics source
type SyncPerformanceRequest struct {
	Source     string              `json:"source" binding:"required" example:"ga4"`
	CapturedAt int64               `json:"captured_at" binding:"min=0" example:"1723475612"`
	Steps      []StepActualRequest `json:"steps" binding:"required,min=1,max=6,dive"`
}

// PerformanceHistoryRequest represents a performance history query
type PerformanceHistoryRequest struct {
	From    int64  `form:"from" binding:"required" example:"1723475612"`
	To      int64  `form:"to" binding:"required" example:"1723562012"`
	GroupBy string `form:"group_by" example:"day"`
}

// ListEventsRequest filters the event catalog
type ListEventsRequest struct {
	Stage string `form:"stage" example:"trial"`
}

// CustomEventRequest represents a custom event definition
type CustomEventRequest struct {
	ID                  string  `json:"id,omitempty" example:"demo_booked"`
	Name                string  `json:"name" binding:"required" example:"Demo Booked"`
	Stage               string  `json:"stage" binding:"required" example:"conversion"`
	EstimatedConversion float64 `json:"estimated_conversion" example:"8"`
	Description         string  `json:"description,omitempty" example:"Prospect booked a sales demo"`
}

// AddKeywordsRequest tags a step with a batch of keywords
type AddKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required,min=1,max=50" example:"trial,signup"`
}

// UpdateKeywordRequest renames a keyword
type UpdateKeywordRequest struct {
	Keyword string `json:"keyword" binding:"required" example:"free trial"`
}
