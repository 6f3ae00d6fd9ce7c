package service

import (
	"context"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// TemplateServicer defines the interface for funnel template operations
type TemplateServicer interface {
	List(ctx context.Context) (*dto.TemplateListResponse, error)
	Get(ctx context.Context, id string) (*dto.FunnelTemplateResponse, error)
	Create(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error)
	Update(ctx context.Context, id string, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error)
	Delete(ctx context.Context, id string) error
	Preview(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.PreviewResponse, error)
}

// PerformanceServicer defines the interface for template performance operations
type PerformanceServicer interface {
	SyncActuals(ctx context.Context, templateID string, req *dto.SyncPerformanceRequest) (*dto.SyncPerformanceResponse, error)
	GetPerformance(ctx context.Context, templateID string) (*dto.FunnelTemplateResponse, error)
	GetHistory(ctx context.Context, templateID string, req *dto.PerformanceHistoryRequest) (*dto.PerformanceHistoryResponse, error)
}

// KeywordServicer defines the interface for step keyword operations
type KeywordServicer interface {
	List(ctx context.Context, stepID string) (*dto.KeywordListResponse, error)
	Add(ctx context.Context, stepID string, req *dto.AddKeywordsRequest, actor string) (*dto.AddKeywordsResponse, error)
	Update(ctx context.Context, stepID, keywordID string, req *dto.UpdateKeywordRequest, actor string) (*domain.StepKeyword, error)
	Remove(ctx context.Context, stepID, keywordID, actor string) error
	UsageLog(ctx context.Context, stepID string) (*dto.UsageLogResponse, error)
}

// CatalogServicer defines the interface for event catalog operations
type CatalogServicer interface {
	ListEvents(ctx context.Context, stage string) (*dto.EventListResponse, error)
	CreateCustomEvent(ctx context.Context, req *dto.CustomEventRequest) (*domain.Event, error)
}

// EventResolver looks up a catalog event by id
type EventResolver interface {
	ResolveEvent(ctx context.Context, id string) (domain.Event, bool, error)
}
