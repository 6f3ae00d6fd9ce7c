package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

// JSONSnapshotParser implements MessageParser for JSON-encoded performance snapshots
type JSONSnapshotParser struct{}

// NewJSONSnapshotParser creates a new JSON snapshot parser
func NewJSONSnapshotParser() *JSONSnapshotParser {
	return &JSONSnapshotParser{}
}

// Parse decodes and checks a snapshot message. Messages that fail here can never be stored.
func (p *JSONSnapshotParser) Parse(body []byte) (*domain.PerformanceSnapshot, error) {
	var snapshot domain.PerformanceSnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	switch {
	case snapshot.SnapshotID == "":
		return nil, errors.New("snapshot_id is required")
	case snapshot.TemplateID == "":
		return nil, errors.New("template_id is required")
	case snapshot.StepNumber < 1:
		return nil, errors.New("step_number must be at least 1")
	case snapshot.ActualConversionRate < 0 || snapshot.ActualConversionRate > 100:
		return nil, fmt.Errorf("actual_conversion_rate out of range: %v", snapshot.ActualConversionRate)
	case snapshot.CapturedAt <= 0:
		return nil, errors.New("captured_at is required")
	}

	now := time.Now()
	snapshot.ProcessedAt = now.UTC()
	snapshot.Version = uint64(now.UnixNano())

	return &snapshot, nil
}
