package funnel

import (
	"errors"
	"fmt"
)

// Status classifies an observed rate against its target
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

const (
	successVariance = 0.10
	warningVariance = -0.15
)

// ErrInvalidTarget is returned when a variance is requested against a non-positive target
var ErrInvalidTarget = errors.New("target conversion rate must be greater than 0")

func variance(actual, target float64) (float64, error) {
	if target <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTarget, target)
	}
	return (actual - target) / target, nil
}

// PerformanceStatus classifies actual against target:
// success at +10% or better, warning down to -15%, danger below that.
func PerformanceStatus(actual, target float64) (Status, error) {
	v, err := variance(actual, target)
	if err != nil {
		return "", err
	}

	switch {
	case v >= successVariance:
		return StatusSuccess, nil
	case v >= warningVariance:
		return StatusWarning, nil
	default:
		return StatusDanger, nil
	}
}

// PerformanceVariance formats the relative variance as a signed percentage, e.g. "+5.7%"
func PerformanceVariance(actual, target float64) (string, error) {
	v, err := variance(actual, target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%+.1f%%", v*100), nil
}
