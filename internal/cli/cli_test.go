package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

const validTemplate = `{
  "name": "Demo funnel",
  "business_goal": "acquisition",
  "target_users": "smb",
  "budget_range": "$1000-5000",
  "steps": [
    {"event_id": "session_start", "target_conversion_rate": 100},
    {"event_id": "view_item", "target_conversion_rate": 45},
    {"event_id": "demo_booked", "target_conversion_rate": 20}
  ],
  "custom_events": [
    {"id": "demo_booked", "name": "Demo Booked", "stage": "conversion", "estimated_conversion": 8}
  ]
}`

const invalidTemplate = `{
  "name": "",
  "business_goal": "acquisition",
  "target_users": "smb",
  "budget_range": "$1000-5000",
  "steps": [
    {"event_id": "session_start", "target_conversion_rate": 80}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep a developer's own config file out of the tests
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate_Valid(t *testing.T) {
	path := writeFile(t, "template.json", validTemplate)

	out, err := run(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeFile(t, "template.json", invalidTemplate)

	out, err := run(t, "validate", path)

	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Contains(t, out, "error: Template name is required")
	assert.Contains(t, out, "error: Funnel must have at least 2 steps")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := run(t, "validate", filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorContains(t, err, "failed to read template file")
}

func decodePreview(t *testing.T, out string) dto.PreviewResponse {
	t.Helper()
	var resp dto.PreviewResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestAnalyze_Defaults(t *testing.T) {
	path := writeFile(t, "template.json", validTemplate)

	out, err := run(t, "analyze", path)
	require.NoError(t, err)

	resp := decodePreview(t, out)
	assert.True(t, resp.IsValid)
	assert.InDelta(t, 9.0, resp.Template.TargetTotalConversion, 1e-9)
	// 3 steps plus half a step for the custom event
	assert.Equal(t, 175.0, resp.Template.EstimatedCAC)
	assert.Equal(t, []int{3}, resp.Template.DropOffSteps)
	assert.True(t, resp.Template.Steps[2].Event.IsCustom)
}

func TestAnalyze_Flags(t *testing.T) {
	path := writeFile(t, "template.json", validTemplate)

	out, err := run(t, "analyze", path, "--threshold", "50", "--base-cost", "100", "--revenue", "700")
	require.NoError(t, err)

	resp := decodePreview(t, out)
	assert.Equal(t, []int{2, 3}, resp.Template.DropOffSteps)
	assert.Equal(t, 350.0, resp.Template.EstimatedCAC)
	require.NotNil(t, resp.Template.EstimatedROI)
	assert.InDelta(t, 2.0, *resp.Template.EstimatedROI, 1e-9)
}

func TestAnalyze_EnvAndConfigFile(t *testing.T) {
	path := writeFile(t, "template.json", validTemplate)
	cfg := writeFile(t, "funnelctl.yaml", "base-cost: 10\nthreshold: 50\n")
	t.Setenv("FUNNELCTL_THRESHOLD", "10")

	out, err := run(t, "analyze", path, "--config", cfg)
	require.NoError(t, err)

	resp := decodePreview(t, out)
	// env wins over the config file
	assert.Empty(t, resp.Template.DropOffSteps)
	assert.Equal(t, 35.0, resp.Template.EstimatedCAC)
}

func TestDefaults(t *testing.T) {
	out, err := run(t, "defaults")
	require.NoError(t, err)

	var templates []domain.FunnelTemplate
	require.NoError(t, json.Unmarshal([]byte(out), &templates))
	assert.Len(t, templates, len(domain.DefaultTemplates()))
}
