// Package funnel computes conversion, performance, validation and cost
// estimates for funnel templates. Every function is pure: no I/O, no shared
// state, safe for concurrent use.
package funnel

import "github.com/Clare-zewei/clickengineA-sub000/internal/domain"

// DefaultDropOffThreshold is the effective rate (percent) below which a step is a drop-off point
const DefaultDropOffThreshold = 30.0

// TotalConversion chains step rates into the share of the entry population
// that completes the funnel. The first step's rate is the starting population
// percentage. An empty step list converts nobody.
func TotalConversion(steps []domain.FunnelTemplateStep, useActual bool) float64 {
	if len(steps) == 0 {
		return 0
	}

	total := stepRate(steps[0], useActual)
	for _, step := range steps[1:] {
		total *= stepRate(step, useActual) / 100
	}

	return total
}

func stepRate(step domain.FunnelTemplateStep, useActual bool) float64 {
	if useActual {
		return step.EffectiveRate()
	}
	return step.TargetConversionRate
}

// DropOffPoints returns the steps whose effective rate is strictly below threshold, in input order
func DropOffPoints(steps []domain.FunnelTemplateStep, threshold float64) []domain.FunnelTemplateStep {
	dropOffs := make([]domain.FunnelTemplateStep, 0)
	for _, step := range steps {
		if step.EffectiveRate() < threshold {
			dropOffs = append(dropOffs, step)
		}
	}
	return dropOffs
}

// hasActualRates reports whether any step carries an observed rate
func hasActualRates(steps []domain.FunnelTemplateStep) bool {
	for _, step := range steps {
		if step.ActualConversionRate != nil {
			return true
		}
	}
	return false
}
