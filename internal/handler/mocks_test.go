package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/dto"
)

// MockTemplateService is a mock implementation of service.TemplateServicer
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context) (*dto.TemplateListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TemplateListResponse), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, id string) (*dto.FunnelTemplateResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FunnelTemplateResponse), args.Error(1)
}

func (m *MockTemplateService) Create(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FunnelTemplateResponse), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, id string, req *dto.FunnelTemplateRequest) (*dto.FunnelTemplateResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FunnelTemplateResponse), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTemplateService) Preview(ctx context.Context, req *dto.FunnelTemplateRequest) (*dto.PreviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PreviewResponse), args.Error(1)
}

// MockPerformanceService is a mock implementation of service.PerformanceServicer
type MockPerformanceService struct {
	mock.Mock
}

func (m *MockPerformanceService) SyncActuals(ctx context.Context, templateID string, req *dto.SyncPerformanceRequest) (*dto.SyncPerformanceResponse, error) {
	args := m.Called(ctx, templateID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SyncPerformanceResponse), args.Error(1)
}

func (m *MockPerformanceService) GetPerformance(ctx context.Context, templateID string) (*dto.FunnelTemplateResponse, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FunnelTemplateResponse), args.Error(1)
}

func (m *MockPerformanceService) GetHistory(ctx context.Context, templateID string, req *dto.PerformanceHistoryRequest) (*dto.PerformanceHistoryResponse, error) {
	args := m.Called(ctx, templateID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PerformanceHistoryResponse), args.Error(1)
}

// MockKeywordService is a mock implementation of service.KeywordServicer
type MockKeywordService struct {
	mock.Mock
}

func (m *MockKeywordService) List(ctx context.Context, stepID string) (*dto.KeywordListResponse, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.KeywordListResponse), args.Error(1)
}

func (m *MockKeywordService) Add(ctx context.Context, stepID string, req *dto.AddKeywordsRequest, actor string) (*dto.AddKeywordsResponse, error) {
	args := m.Called(ctx, stepID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AddKeywordsResponse), args.Error(1)
}

func (m *MockKeywordService) Update(ctx context.Context, stepID, keywordID string, req *dto.UpdateKeywordRequest, actor string) (*domain.StepKeyword, error) {
	args := m.Called(ctx, stepID, keywordID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StepKeyword), args.Error(1)
}

func (m *MockKeywordService) Remove(ctx context.Context, stepID, keywordID, actor string) error {
	args := m.Called(ctx, stepID, keywordID, actor)
	return args.Error(0)
}

func (m *MockKeywordService) UsageLog(ctx context.Context, stepID string) (*dto.UsageLogResponse, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UsageLogResponse), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogServicer
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListEvents(ctx context.Context, stage string) (*dto.EventListResponse, error) {
	args := m.Called(ctx, stage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventListResponse), args.Error(1)
}

func (m *MockCatalogService) CreateCustomEvent(ctx context.Context, req *dto.CustomEventRequest) (*domain.Event, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}
