package domain

import "time"

// PerformanceSnapshot is an observed step conversion rate stored in ClickHouse
type PerformanceSnapshot struct {
	SnapshotID           string    `ch:"snapshot_id" json:"snapshot_id"`
	TemplateID           string    `ch:"template_id" json:"template_id"`
	StepNumber           uint8     `ch:"step_number" json:"step_number"`
	EventID              string    `ch:"event_id" json:"event_id"`
	ActualConversionRate float64   `ch:"actual_conversion_rate" json:"actual_conversion_rate"`
	UsersEntered         uint64    `ch:"users_entered" json:"users_entered"`
	UsersConverted       uint64    `ch:"users_converted" json:"users_converted"`
	Source               string    `ch:"source" json:"source"`
	CapturedAt           int64     `ch:"captured_at" json:"captured_at"`
	ProcessedAt          time.Time `ch:"processed_at" json:"-"`
	Version              uint64    `ch:"version" json:"-"`
}
