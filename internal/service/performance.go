package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/funnel"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
	"github.com/Clare-zewei/clickengineA-sub000/internal/telemetry"
)

const (
	GroupByDay  = "day"
	GroupByHour = "hour"

	maxHourlyRange = 90 * 24 * time.Hour
)

// PerformanceService publishes observed step rates and reads them back onto templates
type PerformanceService struct {
	store     repository.TemplateStore
	publisher queue.SnapshotPublisher
	repo      repository.PerformanceRepository
	options   funnel.Options
	metrics   *telemetry.Metrics
	log       *zap.Logger
	now       func() time.Time
}

// NewPerformanceService creates a new performance service. metrics may be nil.
func NewPerformanceService(store repository.TemplateStore, publisher queue.SnapshotPublisher, repo repository.PerformanceRepository, options funnel.Options, metrics *telemetry.Metrics, log *zap.Logger) *PerformanceService {
	return &PerformanceService{
		store:     store,
		publisher: publisher,
		repo:      repo,
		options:   options,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// SnapshotID derives a stable id so that resending the same capture is deduplicated by the store
func SnapshotID(templateID string, stepNumber int, capturedAt int64, source string) string {
	key := strings.Join([]string{
		templateID,
		strconv.Itoa(stepNumber),
		strconv.FormatInt(capturedAt, 10),
		source,
	}, "|")
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// observedRate returns the reported rate, or derives it from the user counts.
// A non-empty problem describes why the step was rejected.
func observedRate(step dto.StepActualRequest) (rate float64, problem string) {
	if step.UsersConverted > step.UsersEntered {
		return 0, fmt.Sprintf("Step %d: users converted cannot exceed users entered", step.StepNumber)
	}

	if step.ActualConversionRate != nil {
		rate = *step.ActualConversionRate
		if rate < 0 || rate > 100 {
			return 0, fmt.Sprintf("Step %d: actual conversion rate must be between 0 and 100", step.StepNumber)
		}
		return rate, ""
	}

	if step.UsersEntered == 0 {
		return 0, fmt.Sprintf("Step %d: actual conversion rate or users entered is required", step.StepNumber)
	}
	return float64(step.UsersConverted) / float64(step.UsersEntered) * 100, ""
}

// SyncActuals validates observed rates against the stored template and publishes one snapshot per step
func (s *PerformanceService) SyncActuals(ctx context.Context, templateID string, req *dto.SyncPerformanceRequest) (*dto.SyncPerformanceResponse, error) {
	t, err := s.store.Get(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", templateID, err)
	}

	now := s.now()
	capturedAt := req.CapturedAt
	if capturedAt == 0 {
		capturedAt = now.Unix()
	}

	var problems []string
	switch {
	case capturedAt < 0:
		problems = append(problems, "Captured at must be a positive unix timestamp")
	case capturedAt > now.Unix():
		problems = append(problems, "Captured at cannot be in the future")
	}

	steps := make(map[int]domain.FunnelTemplateStep, len(t.Steps))
	for _, step := range t.Steps {
		steps[step.StepNumber] = step
	}

	seen := make(map[int]bool, len(req.Steps))
	snapshots := make([]*domain.PerformanceSnapshot, 0, len(req.Steps))
	for _, actual := range req.Steps {
		step, ok := steps[actual.StepNumber]
		if !ok {
			problems = append(problems, fmt.Sprintf("Step %d does not exist in template", actual.StepNumber))
			continue
		}
		if seen[actual.StepNumber] {
			problems = append(problems, fmt.Sprintf("Step %d is reported more than once", actual.StepNumber))
			continue
		}
		seen[actual.StepNumber] = true

		rate, problem := observedRate(actual)
		if problem != "" {
			problems = append(problems, problem)
			continue
		}

		snapshots = append(snapshots, &domain.PerformanceSnapshot{
			SnapshotID:           SnapshotID(templateID, actual.StepNumber, capturedAt, req.Source),
			TemplateID:           templateID,
			StepNumber:           uint8(actual.StepNumber),
			EventID:              step.Event.ID,
			ActualConversionRate: rate,
			UsersEntered:         actual.UsersEntered,
			UsersConverted:       actual.UsersConverted,
			Source:               req.Source,
			CapturedAt:           capturedAt,
		})
	}

	if len(problems) > 0 {
		return nil, invalid(problems...)
	}

	if err := s.publisher.PublishSnapshots(ctx, snapshots); err != nil {
		return nil, fmt.Errorf("failed to publish snapshots: %w", err)
	}
	s.metrics.SnapshotsSent(len(snapshots))

	ids := make([]string, 0, len(snapshots))
	for _, snapshot := range snapshots {
		ids = append(ids, snapshot.SnapshotID)
	}

	s.log.Info("Performance snapshots published",
		zap.String("template_id", templateID),
		zap.String("source", req.Source),
		zap.Int("count", len(snapshots)))

	return &dto.SyncPerformanceResponse{
		TemplateID:  templateID,
		SnapshotIDs: ids,
		Status:      "accepted",
	}, nil
}

// GetPerformance returns the template with the latest observed rate of each step overlaid
func (s *PerformanceService) GetPerformance(ctx context.Context, templateID string) (*dto.FunnelTemplateResponse, error) {
	t, err := s.store.Get(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", templateID, err)
	}

	rates, err := s.repo.LatestStepRates(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest step rates: %w", err)
	}

	for i := range t.Steps {
		if rate, ok := rates[t.Steps[i].StepNumber]; ok {
			t.Steps[i].ActualConversionRate = domain.Float(rate)
		}
	}

	resp := dto.NewFunnelTemplateResponse(*t, funnel.Analyze(t.Steps, s.options))
	resp.Warnings = funnel.StageOrderWarnings(t.Steps)
	return &resp, nil
}

// GetHistory returns time-bucketed average observed rates of a template
func (s *PerformanceService) GetHistory(ctx context.Context, templateID string, req *dto.PerformanceHistoryRequest) (*dto.PerformanceHistoryResponse, error) {
	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = GroupByDay
	}

	var problems []string
	if groupBy != GroupByDay && groupBy != GroupByHour {
		problems = append(problems, fmt.Sprintf("Group by must be %q or %q", GroupByDay, GroupByHour))
	}
	if req.From > req.To {
		problems = append(problems, "From must not be after to")
	} else if groupBy == GroupByHour && req.To-req.From > int64(maxHourlyRange/time.Second) {
		problems = append(problems, "Hourly history is limited to 90 days")
	}
	if len(problems) > 0 {
		return nil, invalid(problems...)
	}

	if _, err := s.store.Get(ctx, templateID); err != nil {
		return nil, fmt.Errorf("failed to get template %s: %w", templateID, err)
	}

	points, err := s.repo.GetHistory(ctx, repository.HistoryQuery{
		TemplateID: templateID,
		From:       req.From,
		To:         req.To,
		GroupBy:    groupBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get performance history: %w", err)
	}

	resp := &dto.PerformanceHistoryResponse{
		TemplateID: templateID,
		From:       req.From,
		To:         req.To,
		GroupBy:    groupBy,
		Points:     make([]dto.HistoryPointData, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, dto.HistoryPointData{
			Bucket:         p.Bucket,
			StepNumber:     p.StepNumber,
			AverageRate:    p.AverageRate,
			SnapshotCount:  p.SnapshotCount,
			UsersEntered:   p.UsersEntered,
			UsersConverted: p.UsersConverted,
		})
	}
	return resp, nil
}
