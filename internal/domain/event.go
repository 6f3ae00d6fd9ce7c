package domain

import "fmt"

// FunnelStage is the advisory funnel phase of a trackable event
type FunnelStage string

const (
	StageAcquisition FunnelStage = "acquisition"
	StageAwareness   FunnelStage = "awareness"
	StageInterest    FunnelStage = "interest"
	StageTrial       FunnelStage = "trial"
	StageConversion  FunnelStage = "conversion"
)

var stageOrder = map[FunnelStage]int{
	StageAcquisition: 0,
	StageAwareness:   1,
	StageInterest:    2,
	StageTrial:       3,
	StageConversion:  4,
}

// Stages returns all funnel stages in progression order
func Stages() []FunnelStage {
	return []FunnelStage{StageAcquisition, StageAwareness, StageInterest, StageTrial, StageConversion}
}

// ParseStage converts a raw string into a FunnelStage
func ParseStage(s string) (FunnelStage, error) {
	stage := FunnelStage(s)
	if _, ok := stageOrder[stage]; !ok {
		return "", fmt.Errorf("unknown funnel stage: %q", s)
	}
	return stage, nil
}

// Valid reports whether the stage is one of the known stages
func (s FunnelStage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// Rank returns the position of the stage in the funnel progression, or -1 when unknown
func (s FunnelStage) Rank() int {
	if r, ok := stageOrder[s]; ok {
		return r
	}
	return -1
}

// Event represents a trackable action, either a built-in GA4 event or a custom one
type Event struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Stage               FunnelStage `json:"stage"`
	EstimatedConversion float64     `json:"estimated_conversion"`
	IsCustom            bool        `json:"is_custom"`
	Description         string      `json:"description,omitempty"`
}
