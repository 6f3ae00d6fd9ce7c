package funnel

import "github.com/Clare-zewei/clickengineA-sub000/internal/domain"

// Options tunes the thresholds and revenue constants used by Analyze
type Options struct {
	DropOffThreshold      float64
	BaseCostPerStep       float64
	AvgRevenuePerCustomer float64
}

// DefaultOptions returns the builder defaults
func DefaultOptions() Options {
	return Options{
		DropOffThreshold:      DefaultDropOffThreshold,
		BaseCostPerStep:       DefaultBaseCostPerStep,
		AvgRevenuePerCustomer: DefaultAvgRevenuePerCustomer,
	}
}

// StepAnalysis holds the read-time derived fields of one step
type StepAnalysis struct {
	StepNumber          int     `json:"step_number"`
	EffectiveRate       float64 `json:"effective_rate"`
	PerformanceStatus   Status  `json:"performance_status,omitempty"`
	PerformanceVariance string  `json:"performance_variance,omitempty"`
	IsDropOffPoint      bool    `json:"is_drop_off_point"`
}

// Analysis aggregates everything derived from a step list
type Analysis struct {
	TargetTotalConversion float64        `json:"target_total_conversion"`
	ActualTotalConversion *float64       `json:"actual_total_conversion,omitempty"`
	Estimate              Estimate       `json:"estimate"`
	Steps                 []StepAnalysis `json:"steps"`
	DropOffSteps          []int          `json:"drop_off_steps"`
}

// Analyze derives totals, the estimate and per-step status for steps.
// Status and variance are only set for steps with an observed rate and a positive target.
func Analyze(steps []domain.FunnelTemplateStep, opts Options) Analysis {
	a := Analysis{
		TargetTotalConversion: TotalConversion(steps, false),
		Estimate:              EstimateCACAndROI(steps, opts.BaseCostPerStep, opts.AvgRevenuePerCustomer),
		Steps:                 make([]StepAnalysis, 0, len(steps)),
		DropOffSteps:          make([]int, 0),
	}

	if hasActualRates(steps) {
		actual := TotalConversion(steps, true)
		a.ActualTotalConversion = &actual
	}

	for _, step := range DropOffPoints(steps, opts.DropOffThreshold) {
		a.DropOffSteps = append(a.DropOffSteps, step.StepNumber)
	}

	for _, step := range steps {
		sa := StepAnalysis{
			StepNumber:     step.StepNumber,
			EffectiveRate:  step.EffectiveRate(),
			IsDropOffPoint: step.EffectiveRate() < opts.DropOffThreshold,
		}

		if step.ActualConversionRate != nil && step.TargetConversionRate > 0 {
			// target > 0 is checked above, so neither call can fail
			sa.PerformanceStatus, _ = PerformanceStatus(*step.ActualConversionRate, step.TargetConversionRate)
			sa.PerformanceVariance, _ = PerformanceVariance(*step.ActualConversionRate, step.TargetConversionRate)
		}

		a.Steps = append(a.Steps, sa)
	}

	return a
}
