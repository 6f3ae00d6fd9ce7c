package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// MockTemplateStore is a mock implementation of repository.TemplateStore
type MockTemplateStore struct {
	mock.Mock
}

func (m *MockTemplateStore) List(ctx context.Context) ([]domain.FunnelTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FunnelTemplate), args.Error(1)
}

func (m *MockTemplateStore) Get(ctx context.Context, id string) (*domain.FunnelTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FunnelTemplate), args.Error(1)
}

func (m *MockTemplateStore) Create(ctx context.Context, template *domain.FunnelTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateStore) Update(ctx context.Context, template *domain.FunnelTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockTemplateStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of repository.EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) ListCustomEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) CreateCustomEvent(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockKeywordRepository is a mock implementation of repository.KeywordRepository
type MockKeywordRepository struct {
	mock.Mock
}

func (m *MockKeywordRepository) List(ctx context.Context, stepID string) ([]domain.StepKeyword, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StepKeyword), args.Error(1)
}

func (m *MockKeywordRepository) Add(ctx context.Context, stepID string, keywords []string, actor string) ([]domain.StepKeyword, error) {
	args := m.Called(ctx, stepID, keywords, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StepKeyword), args.Error(1)
}

func (m *MockKeywordRepository) Update(ctx context.Context, stepID, keywordID, keyword, actor string) (*domain.StepKeyword, error) {
	args := m.Called(ctx, stepID, keywordID, keyword, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StepKeyword), args.Error(1)
}

func (m *MockKeywordRepository) Remove(ctx context.Context, stepID, keywordID, actor string) error {
	args := m.Called(ctx, stepID, keywordID, actor)
	return args.Error(0)
}

func (m *MockKeywordRepository) UsageLog(ctx context.Context, stepID string) ([]domain.KeywordUsageLog, error) {
	args := m.Called(ctx, stepID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeywordUsageLog), args.Error(1)
}

// MockSnapshotPublisher is a mock implementation of queue.SnapshotPublisher
type MockSnapshotPublisher struct {
	mock.Mock
}

func (m *MockSnapshotPublisher) PublishSnapshots(ctx context.Context, snapshots []*domain.PerformanceSnapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

// MockPerformanceRepository is a mock implementation of repository.PerformanceRepository
type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) InsertBatch(ctx context.Context, snapshots []*domain.PerformanceSnapshot) (int, error) {
	args := m.Called(ctx, snapshots)
	return args.Int(0), args.Error(1)
}

func (m *MockPerformanceRepository) InitSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPerformanceRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPerformanceRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPerformanceRepository) LatestStepRates(ctx context.Context, templateID string) (map[int]float64, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]float64), args.Error(1)
}

func (m *MockPerformanceRepository) GetHistory(ctx context.Context, query repository.HistoryQuery) ([]repository.HistoryPoint, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.HistoryPoint), args.Error(1)
}
