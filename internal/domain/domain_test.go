package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStage(t *testing.T) {
	stage, err := ParseStage("trial")
	require.NoError(t, err)
	assert.Equal(t, StageTrial, stage)

	_, err = ParseStage("retention")
	assert.EqualError(t, err, `unknown funnel stage: "retention"`)
}

func TestStages_RankFollowsProgression(t *testing.T) {
	for i, stage := range Stages() {
		assert.True(t, stage.Valid())
		assert.Equal(t, i, stage.Rank())
	}
	assert.Equal(t, -1, FunnelStage("retention").Rank())
}

func TestNormalizeKeyword(t *testing.T) {
	assert.Equal(t, "trial", NormalizeKeyword(" Trial "))
	assert.Equal(t, "free plan", NormalizeKeyword("FREE plan\t"))
	assert.Empty(t, NormalizeKeyword("   "))
}

func TestEffectiveRate(t *testing.T) {
	step := FunnelTemplateStep{TargetConversionRate: 45}
	assert.Equal(t, 45.0, step.EffectiveRate())

	step.ActualConversionRate = Float(38.2)
	assert.Equal(t, 38.2, step.EffectiveRate())
}

func TestDefaultTemplates_UseKnownEvents(t *testing.T) {
	templates := DefaultTemplates()
	require.NotEmpty(t, templates)

	for _, tmpl := range templates {
		require.NotEmpty(t, tmpl.Steps, tmpl.Name)
		assert.Equal(t, 100.0, tmpl.Steps[0].TargetConversionRate, tmpl.Name)
		for i, step := range tmpl.Steps {
			assert.Equal(t, i+1, step.StepNumber, tmpl.Name)
			assert.NotEmpty(t, step.Event.ID, "%s step %d", tmpl.Name, step.StepNumber)
		}
	}
}

func TestFindGA4Event(t *testing.T) {
	event, ok := FindGA4Event("sign_up")
	require.True(t, ok)
	assert.Equal(t, StageTrial, event.Stage)
	assert.False(t, event.IsCustom)

	_, ok = FindGA4Event("webinar_signup")
	assert.False(t, ok)
}
