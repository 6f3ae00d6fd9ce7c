package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

const maxKeywordLength = 128

// KeywordService manages the keywords tagged on funnel steps
type KeywordService struct {
	repository repository.KeywordRepository
	log        *zap.Logger
}

// NewKeywordService creates a new keyword service
func NewKeywordService(repository repository.KeywordRepository, log *zap.Logger) *KeywordService {
	return &KeywordService{
		repository: repository,
		log:        log,
	}
}

func checkKeyword(keyword string) string {
	normalized := domain.NormalizeKeyword(keyword)
	if normalized == "" {
		return "Keyword cannot be empty"
	}
	if len(normalized) > maxKeywordLength {
		return fmt.Sprintf("Keyword %q exceeds %d characters", normalized, maxKeywordLength)
	}
	return ""
}

// List returns the keywords of a step
func (s *KeywordService) List(ctx context.Context, stepID string) (*dto.KeywordListResponse, error) {
	keywords, err := s.repository.List(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords of step %s: %w", stepID, err)
	}
	return &dto.KeywordListResponse{StepID: stepID, Keywords: keywords}, nil
}

// Add tags a step with a batch of keywords. Blank entries are ignored and
// keywords already on the step are skipped.
func (s *KeywordService) Add(ctx context.Context, stepID string, req *dto.AddKeywordsRequest, actor string) (*dto.AddKeywordsResponse, error) {
	var (
		keywords []string
		problems []string
	)
	for _, keyword := range req.Keywords {
		if domain.NormalizeKeyword(keyword) == "" {
			continue
		}
		if problem := checkKeyword(keyword); problem != "" {
			problems = append(problems, problem)
			continue
		}
		keywords = append(keywords, keyword)
	}
	if len(problems) > 0 {
		return nil, invalid(problems...)
	}
	if len(keywords) == 0 {
		return nil, invalid("At least one non-empty keyword is required")
	}

	added, err := s.repository.Add(ctx, stepID, keywords, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to add keywords to step %s: %w", stepID, err)
	}

	s.log.Info("Keywords added",
		zap.String("step_id", stepID),
		zap.String("actor", actor),
		zap.Int("added", len(added)),
		zap.Int("requested", len(req.Keywords)))

	return &dto.AddKeywordsResponse{
		StepID:  stepID,
		Added:   added,
		Skipped: len(req.Keywords) - len(added),
	}, nil
}

// Update renames a keyword of a step
func (s *KeywordService) Update(ctx context.Context, stepID, keywordID string, req *dto.UpdateKeywordRequest, actor string) (*domain.StepKeyword, error) {
	if problem := checkKeyword(req.Keyword); problem != "" {
		return nil, invalid(problem)
	}

	keyword, err := s.repository.Update(ctx, stepID, keywordID, req.Keyword, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to update keyword %s: %w", keywordID, err)
	}

	s.log.Info("Keyword updated",
		zap.String("step_id", stepID),
		zap.String("keyword_id", keywordID),
		zap.String("actor", actor))
	return keyword, nil
}

// Remove deletes a keyword from a step. The audit trail is kept.
func (s *KeywordService) Remove(ctx context.Context, stepID, keywordID, actor string) error {
	if err := s.repository.Remove(ctx, stepID, keywordID, actor); err != nil {
		return fmt.Errorf("failed to remove keyword %s: %w", keywordID, err)
	}

	s.log.Info("Keyword removed",
		zap.String("step_id", stepID),
		zap.String("keyword_id", keywordID),
		zap.String("actor", actor))
	return nil
}

// UsageLog returns the keyword audit trail of a step, newest first
func (s *KeywordService) UsageLog(ctx context.Context, stepID string) (*dto.UsageLogResponse, error) {
	entries, err := s.repository.UsageLog(ctx, stepID)
	if err != nil {
		return nil, fmt.Errorf("failed to get keyword usage log of step %s: %w", stepID, err)
	}
	return &dto.UsageLogResponse{StepID: stepID, Entries: entries}, nil
}
