package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// templateFile is a template request plus the custom events its steps may reference
type templateFile struct {
	dto.FunnelTemplateRequest
	CustomEvents []domain.Event `json:"custom_events,omitempty"`
}

func readTemplateFile(path string) (*templateFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var file templateFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", path, err)
	}
	return &file, nil
}

// ResolveEvent finds an event in the GA4 catalog or among the file's custom events
func (f *templateFile) ResolveEvent(_ context.Context, id string) (domain.Event, bool, error) {
	if e, ok := domain.FindGA4Event(id); ok {
		return e, true, nil
	}
	for _, e := range f.CustomEvents {
		if e.ID == id {
			e.IsCustom = true
			return e, true, nil
		}
	}
	return domain.Event{}, false, nil
}
