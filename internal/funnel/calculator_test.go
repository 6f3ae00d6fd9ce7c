package funnel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

func step(number int, target float64) domain.FunnelTemplateStep {
	return domain.FunnelTemplateStep{
		StepNumber:           number,
		Event:                domain.Event{ID: "evt_" + string(rune('a'+number)), Stage: domain.StageAwareness},
		TargetConversionRate: target,
	}
}

func stepWithActual(number int, target, actual float64) domain.FunnelTemplateStep {
	s := step(number, target)
	s.ActualConversionRate = domain.Float(actual)
	return s
}

func TestTotalConversion_SingleStepIdentity(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100)}

	assert.Equal(t, 100.0, TotalConversion(steps, false))
	assert.Equal(t, 100.0, TotalConversion(steps, true))
}

func TestTotalConversion_Chaining(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 50), step(3, 20)}

	assert.InDelta(t, 10.0, TotalConversion(steps, false), 1e-9)
}

func TestTotalConversion_EmptyList(t *testing.T) {
	assert.Equal(t, 0.0, TotalConversion(nil, false))
	assert.Equal(t, 0.0, TotalConversion([]domain.FunnelTemplateStep{}, true))
}

func TestTotalConversion_UseActualFallsBackToTarget(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 40), step(3, 25)}

	assert.Equal(t, TotalConversion(steps, false), TotalConversion(steps, true))
}

func TestTotalConversion_UseActualPrefersObservedRates(t *testing.T) {
	steps := []domain.FunnelTemplateStep{
		step(1, 100),
		stepWithActual(2, 50, 40),
		step(3, 20),
	}

	assert.InDelta(t, 10.0, TotalConversion(steps, false), 1e-9)
	assert.InDelta(t, 8.0, TotalConversion(steps, true), 1e-9)
}

func TestTotalConversion_FirstStepIsStartingPopulation(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 80), step(2, 50)}

	assert.InDelta(t, 40.0, TotalConversion(steps, false), 1e-9)
}

func TestTotalConversion_Idempotent(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), stepWithActual(2, 35, 33.3), step(3, 12.5)}

	first := TotalConversion(steps, true)
	second := TotalConversion(steps, true)

	assert.Equal(t, first, second)
	assert.Equal(t, 33.3, *steps[1].ActualConversionRate, "input must not be mutated")
}

func TestDropOffPoints_DefaultThreshold(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 45), step(3, 15), step(4, 60)}

	dropOffs := DropOffPoints(steps, DefaultDropOffThreshold)

	assert.Len(t, dropOffs, 1)
	assert.Equal(t, 3, dropOffs[0].StepNumber)
	assert.Equal(t, 15.0, dropOffs[0].TargetConversionRate)
}

func TestDropOffPoints_UsesActualRateWhenPresent(t *testing.T) {
	steps := []domain.FunnelTemplateStep{
		step(1, 100),
		stepWithActual(2, 45, 20),
		stepWithActual(3, 15, 35),
	}

	dropOffs := DropOffPoints(steps, 30)

	assert.Len(t, dropOffs, 1)
	assert.Equal(t, 2, dropOffs[0].StepNumber)
}

func TestDropOffPoints_ThresholdIsStrict(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 30), step(3, 29.9)}

	dropOffs := DropOffPoints(steps, 30)

	assert.Len(t, dropOffs, 1)
	assert.Equal(t, 3, dropOffs[0].StepNumber)
}

func TestDropOffPoints_CustomThresholdPreservesOrder(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 45), step(3, 15), step(4, 60)}

	dropOffs := DropOffPoints(steps, 50)

	assert.Len(t, dropOffs, 2)
	assert.Equal(t, 2, dropOffs[0].StepNumber)
	assert.Equal(t, 3, dropOffs[1].StepNumber)
}

func TestDropOffPoints_NoneBelowThreshold(t *testing.T) {
	steps := []domain.FunnelTemplateStep{step(1, 100), step(2, 80)}

	dropOffs := DropOffPoints(steps, DefaultDropOffThreshold)

	assert.NotNil(t, dropOffs)
	assert.Empty(t, dropOffs)
}
