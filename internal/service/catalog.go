package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

var (
	eventIDPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
)

const maxEventIDLength = 64

// CatalogService serves the built-in GA4 events together with user-defined custom events
type CatalogService struct {
	repository repository.EventRepository
	log        *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.EventRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{
		repository: repo,
		log:        log,
	}
}

// slugify turns "Demo Booked!" into "demo_booked"
func slugify(name string) string {
	return strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

// ListEvents returns the catalog ordered by funnel stage, built-in events first within a stage
func (s *CatalogService) ListEvents(ctx context.Context, stage string) (*dto.EventListResponse, error) {
	var filter domain.FunnelStage
	if stage != "" {
		parsed, err := domain.ParseStage(stage)
		if err != nil {
			return nil, invalid(err.Error())
		}
		filter = parsed
	}

	custom, err := s.repository.ListCustomEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom events: %w", err)
	}

	events := make([]domain.Event, 0, len(domain.GA4Events)+len(custom))
	for _, e := range append(append([]domain.Event{}, domain.GA4Events...), custom...) {
		if filter == "" || e.Stage == filter {
			events = append(events, e)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Stage.Rank() < events[j].Stage.Rank()
	})

	return &dto.EventListResponse{Events: events, Count: len(events)}, nil
}

// ResolveEvent finds a built-in or custom event by id
func (s *CatalogService) ResolveEvent(ctx context.Context, id string) (domain.Event, bool, error) {
	if e, ok := domain.FindGA4Event(id); ok {
		return e, true, nil
	}

	custom, err := s.repository.ListCustomEvents(ctx)
	if err != nil {
		return domain.Event{}, false, fmt.Errorf("failed to list custom events: %w", err)
	}
	for _, e := range custom {
		if e.ID == id {
			return e, true, nil
		}
	}
	return domain.Event{}, false, nil
}

// CreateCustomEvent validates and stores a custom event. The id defaults to a slug of the name.
func (s *CatalogService) CreateCustomEvent(ctx context.Context, req *dto.CustomEventRequest) (*domain.Event, error) {
	name := strings.TrimSpace(req.Name)
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = slugify(name)
	}

	var problems []string
	if name == "" {
		problems = append(problems, "Event name is required")
	}
	if !eventIDPattern.MatchString(id) || len(id) > maxEventIDLength {
		problems = append(problems, fmt.Sprintf("Event id %q must be lower-case letters and digits separated by underscores", id))
	}
	stage, err := domain.ParseStage(req.Stage)
	if err != nil {
		problems = append(problems, err.Error())
	}
	if req.EstimatedConversion < 0 || req.EstimatedConversion > 100 {
		problems = append(problems, "Estimated conversion must be between 0 and 100")
	}
	if len(problems) > 0 {
		return nil, invalid(problems...)
	}

	if _, builtIn := domain.FindGA4Event(id); builtIn {
		return nil, fmt.Errorf("event id %q is a built-in GA4 event: %w", id, repository.ErrConflict)
	}

	event := &domain.Event{
		ID:                  id,
		Name:                name,
		Stage:               stage,
		EstimatedConversion: req.EstimatedConversion,
		IsCustom:            true,
		Description:         strings.TrimSpace(req.Description),
	}

	if err := s.repository.CreateCustomEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create custom event %s: %w", id, err)
	}

	s.log.Info("Custom event created",
		zap.String("event_id", event.ID),
		zap.String("stage", string(event.Stage)))
	return event, nil
}
