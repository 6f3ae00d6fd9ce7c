package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

func TestAnalyze_TargetsOnly(t *testing.T) {
	steps := stepsWithTargets(100, 45, 15, 60)

	a := Analyze(steps, DefaultOptions())

	assert.InDelta(t, 4.05, a.TargetTotalConversion, 1e-9)
	assert.Nil(t, a.ActualTotalConversion)
	assert.Equal(t, []int{3}, a.DropOffSteps)
	assert.Equal(t, 200.0, a.Estimate.CAC)
	require.Len(t, a.Steps, 4)
	for _, s := range a.Steps {
		assert.Empty(t, s.PerformanceStatus)
		assert.Empty(t, s.PerformanceVariance)
	}
	assert.True(t, a.Steps[2].IsDropOffPoint)
	assert.False(t, a.Steps[1].IsDropOffPoint)
}

func TestAnalyze_WithActualRates(t *testing.T) {
	steps := []domain.FunnelTemplateStep{
		stepWithActual(1, 100, 100),
		stepWithActual(2, 50, 56),
		stepWithActual(3, 20, 16),
	}

	a := Analyze(steps, DefaultOptions())

	require.NotNil(t, a.ActualTotalConversion)
	assert.InDelta(t, 8.96, *a.ActualTotalConversion, 1e-9)
	assert.InDelta(t, 10.0, a.TargetTotalConversion, 1e-9)

	assert.Equal(t, StatusWarning, a.Steps[0].PerformanceStatus)
	assert.Equal(t, "+0.0%", a.Steps[0].PerformanceVariance)
	assert.Equal(t, StatusSuccess, a.Steps[1].PerformanceStatus)
	assert.Equal(t, "+12.0%", a.Steps[1].PerformanceVariance)
	assert.Equal(t, StatusDanger, a.Steps[2].PerformanceStatus)
	assert.Equal(t, "-20.0%", a.Steps[2].PerformanceVariance)
	assert.Equal(t, []int{3}, a.DropOffSteps)
}

func TestAnalyze_SkipsStatusForNonPositiveTarget(t *testing.T) {
	steps := []domain.FunnelTemplateStep{stepWithActual(1, 0, 50)}

	a := Analyze(steps, DefaultOptions())

	require.Len(t, a.Steps, 1)
	assert.Empty(t, a.Steps[0].PerformanceStatus)
	assert.Equal(t, 50.0, a.Steps[0].EffectiveRate)
}

func TestAnalyze_CustomOptions(t *testing.T) {
	steps := stepsWithTargets(100, 45)

	a := Analyze(steps, Options{DropOffThreshold: 50, BaseCostPerStep: 100, AvgRevenuePerCustomer: 1000})

	assert.Equal(t, []int{2}, a.DropOffSteps)
	assert.Equal(t, 200.0, a.Estimate.CAC)
	require.NotNil(t, a.Estimate.ROI)
	assert.InDelta(t, 5.0, *a.Estimate.ROI, 1e-9)
}
