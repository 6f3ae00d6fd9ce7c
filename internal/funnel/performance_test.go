package funnel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerformanceStatus_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		target   float64
		expected Status
	}{
		{"exactly plus ten percent", 110, 100, StatusSuccess},
		{"well above target", 150, 100, StatusSuccess},
		{"just below plus ten percent", 109.9, 100, StatusWarning},
		{"on target", 100, 100, StatusWarning},
		{"exactly minus fifteen percent", 85, 100, StatusWarning},
		{"below minus fifteen percent", 84, 100, StatusDanger},
		{"small target", 5.5, 5, StatusSuccess},
		{"zero actual", 0, 40, StatusDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := PerformanceStatus(tt.actual, tt.target)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestPerformanceStatus_NonPositiveTarget(t *testing.T) {
	status, err := PerformanceStatus(10, 0)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTarget))
	assert.Empty(t, status)

	_, err = PerformanceStatus(10, -5)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestPerformanceVariance_Formatting(t *testing.T) {
	tests := []struct {
		actual   float64
		target   float64
		expected string
	}{
		{105.7, 100, "+5.7%"},
		{86, 100, "-14.0%"},
		{100, 100, "+0.0%"},
		{60, 40, "+50.0%"},
		{10, 40, "-75.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			variance, err := PerformanceVariance(tt.actual, tt.target)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, variance)
		})
	}
}

func TestPerformanceVariance_NonPositiveTarget(t *testing.T) {
	variance, err := PerformanceVariance(50, 0)

	assert.ErrorIs(t, err, ErrInvalidTarget)
	assert.Empty(t, variance)
}
