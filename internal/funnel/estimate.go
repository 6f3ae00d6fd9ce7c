package funnel

import (
	"math"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

const (
	DefaultBaseCostPerStep       = 50.0
	DefaultAvgRevenuePerCustomer = 300.0

	customEventWeight = 0.5
)

// Estimate is a directional CAC/ROI figure for the template builder.
// ROI is nil when CAC is zero.
type Estimate struct {
	CAC float64  `json:"estimated_cac"`
	ROI *float64 `json:"estimated_roi"`
}

// EstimateCACAndROI derives CAC from step count weighted by custom events, and ROI from CAC
func EstimateCACAndROI(steps []domain.FunnelTemplateStep, baseCostPerStep, avgRevenuePerCustomer float64) Estimate {
	custom := 0
	for _, step := range steps {
		if step.Event.IsCustom {
			custom++
		}
	}

	complexity := float64(len(steps)) + customEventWeight*float64(custom)
	cac := math.Floor(baseCostPerStep*complexity + 0.5)

	est := Estimate{CAC: cac}
	if cac != 0 {
		roi := avgRevenuePerCustomer / cac
		est.ROI = &roi
	}
	return est
}
