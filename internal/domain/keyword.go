package domain

import (
	"strings"
	"time"
)

// Keyword audit actions
const (
	KeywordActionAdded   = "added"
	KeywordActionUpdated = "updated"
	KeywordActionRemoved = "removed"
)

// StepKeyword is a keyword tagged on a funnel step
type StepKeyword struct {
	ID        string    `json:"id"`
	StepID    string    `json:"step_id"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}

// KeywordUsageLog is an audit entry for a keyword change on a step
type KeywordUsageLog struct {
	ID        string         `json:"id"`
	StepID    string         `json:"step_id"`
	KeywordID string         `json:"keyword_id"`
	Keyword   string         `json:"keyword"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NormalizeKeyword trims and lower-cases a keyword so that "Trial" and " trial " tag a step once
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
