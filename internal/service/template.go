package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/funnel"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

// TemplateService validates funnel templates, persists them and derives their analysis on read
type TemplateService struct {
	store   repository.TemplateStore
	events  EventResolver
	options funnel.Options
	metrics *telemetry.Metrics
	log     *zap.Logger
}

// NewTemplateService creates a new template service. metrics may be nil.
func NewTemplateService(store repository.TemplateStore, events EventResolver, options funnel.Options, metrics *telemetry.Metrics, log *zap.Logger) *TemplateService {
	return &TemplateService{
		store:   store,
		events:  events,
		options: options,
		metrics: metrics,
		log:     log,
	}
}

// toDomain resolves the step events and numbers the steps by position.
// Unknown event ids are returned as messages rather than errors.
func (s *TemplateService) toDomain(ctx context.Context, req *dto.FunnelTemplateRequest) (domain.FunnelTemplate, []string, error) {
	t := domain.FunnelTemplate{
		Name:         req.Name,
		Description:  req.Description,
		BusinessGoal: req.BusinessGoal,
		TargetUsers:  req.TargetUsers,
		BudgetRange:  req.BudgetRange,
		Steps:        make([]domain.FunnelTemplateStep, 0, len(req.Steps)),
	}

	var unknown []string
	for i, step := range req.Steps {
		var event domain.Event
		if step.EventID != "" {
			resolved, ok, err := s.events.ResolveEvent(ctx, step.EventID)
			if err != nil {
				return domain.FunnelTemplate{}, nil, fmt.Errorf("failed to resolve event %s: %w", step.EventID, err)
			}
			if !ok {
				unknown = append(unknown, fmt.Sprintf("Step %d: unknown event %q", i+1, step.EventID))
				resolved = domain.Event{ID: step.EventID}
			}
			event = resolved
		}

		t.Steps = append(t.Steps, domain.FunnelTemplateStep{
			ID:                   step.ID,
			StepNumber:           i + 1,
			Event:                event,
			TargetConversionRate: step.TargetConversionRate,
			ActualConversionRate: step.ActualConversionRate,
		})
	}

	return t, unknown, nil
}

// check resolves and validates req, returning a *ValidationError listing every violation
func (s *TemplateService) check(ctx context.Context, req *dto.FunnelTemplateRequest) (domain.FunnelTemplate, error) {
	t, unknown, err := s.toDomain(ctx, req)
	if err != nil {
		return domain.FunnelTemplate{}, err
	}

	result := funnel.Validate(t)
	problems := append(result.Errors, unknown...)
	s.metrics.ValidationOutcome(len(problems) == 0)

	if len(problems) > 0 {
		s.log.Warn("Template validation failed",
			zap.String("name", req.Name),
			zap.Strings("errors", problems))
		return domain.FunnelTemplate{}, invalid(problems...)
	}
	return t, nil
}

func (s *TemplateService) respond(t domain.FunnelTemplate) *dto.FunnelTemplateResponse {
	resp := dto.NewFunnelTemplateResponse(t, funnel.Analyze(t.Steps, s.options))
	resp.Warnings = funnel.StageOrderWarnings(t.Steps)
	return &resp
}

// List returns every template with its derived aggregates
func (s *TemplateService) List(ctx context.Context) (*dto.TemplateListResponse, error) {
	templates, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	resp := &dto.TemplateListResponse{
		Templates: make([]dto.FunnelTemplateResponse, 0, len(templates)),
		Count:     len(templates),
	}
	for _, t := range templates {
		resp.Templates = append(resp.Templates, *s.respond(t))
	}
	return resp, nil
}

// Get returns a single template
func (s *TemplateService) Get(ctx context.Context, id string) (*dto.FunnelTemplateResponse, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", id, err)
	}
	return s.respond(*t), nil
}

// Create validates and stores a new template. Invalid templates never reach the store.
func (s *TemplateService) Create(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error) {
	t, err := s.check(ctx, req)
	if err != nil {
		return nil, err
	}

	// ids are assigned by the store
	for i := range t.Steps {
		t.Steps[i].ID = ""
	}

	if err := s.store.Create(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.log.Info("Template created",
		zap.String("template_id", t.ID),
		zap.String("name", t.Name),
		zap.Int("steps", len(t.Steps)))
	return s.respond(t), nil
}

// Update validates req and replaces the stored template
func (s *TemplateService) Update(ctx context.Context, id string, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error) {
	t, err := s.check(ctx, req)
	if err != nil {
		return nil, err
	}
	t.ID = id

	if err := s.store.Update(ctx, &t); err != nil {
		return nil, fmt.Errorf("failed to update template %s: %w", id, err)
	}

	s.log.Info("Template updated",
		zap.String("template_id", t.ID),
		zap.Int("steps", len(t.Steps)))
	return s.respond(t), nil
}

// Delete removes a template with its steps and their keywords
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}

	s.log.Info("Template deleted", zap.String("template_id", id))
	return nil
}

// Preview validates and analyzes an unsaved template. An invalid template is still analyzed.
func (s *TemplateService) Preview(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.PreviewResponse, error) {
	t, unknown, err := s.toDomain(ctx, req)
	if err != nil {
		return nil, err
	}

	result := funnel.Validate(t)
	errs := append(result.Errors, unknown...)

	return &dto.PreviewResponse{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: funnel.StageOrderWarnings(t.Steps),
		Template: *s.respond(t),
	}, nil
}
