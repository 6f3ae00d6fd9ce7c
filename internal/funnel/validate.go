package funnel

import (
	"fmt"
	"strings"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

const (
	MinSteps = 2
	MaxSteps = 6

	// EntryStepRate is the required target of step 1, the entry population
	EntryStepRate = 100.0

	// MinTotalConversion is the lowest acceptable total target conversion, in percent
	MinTotalConversion = 0.1
)

// Validation messages
const (
	MsgNameRequired         = "Template name is required"
	MsgBusinessGoalRequired = "Business goal is required"
	MsgTargetUsersRequired  = "Target users are required"
	MsgBudgetRangeRequired  = "Budget range is required"
	MsgTooFewSteps          = "Funnel must have at least 2 steps"
	MsgTooManySteps         = "Funnel cannot have more than 6 steps"
	MsgEntryStepRate        = "Step 1 must have a 100% target conversion rate (it represents the entry population)"
	MsgLowTotalConversion   = "Total target conversion is below 0.1%; review the step targets"
)

// ValidationResult collects every rule violation of a template
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks a possibly incomplete template. Rules are evaluated
// independently and all violations are returned together.
func Validate(t domain.FunnelTemplate) ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, MsgNameRequired)
	}
	if strings.TrimSpace(t.BusinessGoal) == "" {
		errs = append(errs, MsgBusinessGoalRequired)
	}
	if strings.TrimSpace(t.TargetUsers) == "" {
		errs = append(errs, MsgTargetUsersRequired)
	}
	if strings.TrimSpace(t.BudgetRange) == "" {
		errs = append(errs, MsgBudgetRangeRequired)
	}

	count := len(t.Steps)
	if count < MinSteps {
		errs = append(errs, MsgTooFewSteps)
	}
	if count > MaxSteps {
		errs = append(errs, MsgTooManySteps)
	}

	ratesValid := true
	for i, step := range t.Steps {
		n := i + 1
		if strings.TrimSpace(step.Event.ID) == "" {
			errs = append(errs, fmt.Sprintf("Step %d: an event must be selected", n))
		}
		if !validRate(step.TargetConversionRate) {
			ratesValid = false
			errs = append(errs, fmt.Sprintf("Step %d: target conversion rate must be greater than 0 and at most 100", n))
		}
	}

	if count > 0 && t.Steps[0].TargetConversionRate != EntryStepRate {
		errs = append(errs, MsgEntryStepRate)
	}

	if ratesValid && count >= MinSteps && count <= MaxSteps {
		if TotalConversion(t.Steps, false) < MinTotalConversion {
			errs = append(errs, MsgLowTotalConversion)
		}
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func validRate(rate float64) bool {
	return rate > 0 && rate <= 100
}

// StageOrderWarnings reports steps whose event stage comes before the previous
// step's stage. The ordering is advisory and never makes a template invalid.
func StageOrderWarnings(steps []domain.FunnelTemplateStep) []string {
	warnings := make([]string, 0)
	prev := -1
	for i, step := range steps {
		rank := step.Event.Stage.Rank()
		if rank < 0 {
			continue
		}
		if rank < prev {
			warnings = append(warnings, fmt.Sprintf("Step %d: %s stage event follows a later-stage step", i+1, step.Event.Stage))
		}
		prev = rank
	}
	return warnings
}
