package repository

import (
	"context"
	"errors"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

var (
	// ErrNotFound is returned when a template, step or keyword does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write would duplicate a unique value
	ErrConflict = errors.New("conflict")
)

// TemplateStore defines the persistence operations for funnel templates.
// Steps are owned by their template and replaced wholesale on Update.
type TemplateStore interface {
	List(ctx context.Context) ([]domain.FunnelTemplate, error)
	Get(ctx context.Context, id string) (*domain.FunnelTemplate, error)
	Create(ctx context.Context, template *domain.FunnelTemplate) error
	Update(ctx context.Context, template *domain.FunnelTemplate) error
	Delete(ctx context.Context, id string) error
}

// KeywordRepository stores step keywords and their audit trail
type KeywordRepository interface {
	List(ctx context.Context, stepID string) ([]domain.StepKeyword, error)

	// Add inserts the keywords that are not yet tagged on the step and returns the inserted rows
	Add(ctx context.Context, stepID string, keywords []string, actor string) ([]domain.StepKeyword, error)

	Update(ctx context.Context, stepID, keywordID, keyword, actor string) (*domain.StepKeyword, error)
	Remove(ctx context.Context, stepID, keywordID, actor string) error
	UsageLog(ctx context.Context, stepID string) ([]domain.KeywordUsageLog, error)
}

// EventRepository stores user-defined catalog events
type EventRepository interface {
	ListCustomEvents(ctx context.Context) ([]domain.Event, error)
	CreateCustomEvent(ctx context.Context, event *domain.Event) error
}

// HistoryQuery represents a performance history query
type HistoryQuery struct {
	TemplateID string
	From       int64
	To         int64
	GroupBy    string
}

// HistoryPoint is the average observed rate of one step within one time bucket
type HistoryPoint struct {
	Bucket         string  `json:"bucket"`
	StepNumber     int     `json:"step_number"`
	AverageRate    float64 `json:"average_rate"`
	SnapshotCount  uint64  `json:"snapshot_count"`
	UsersEntered   uint64  `json:"users_entered"`
	UsersConverted uint64  `json:"users_converted"`
}

// PerformanceRepository defines the storage operations for performance snapshots
type PerformanceRepository interface {
	// InsertBatch inserts a batch of snapshots into the storage
	InsertBatch(ctx context.Context, snapshots []*domain.PerformanceSnapshot) (int, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error

	// LatestStepRates returns the most recently captured rate of each step, keyed by step number
	LatestStepRates(ctx context.Context, templateID string) (map[int]float64, error)

	// GetHistory returns time-bucketed average rates per step
	GetHistory(ctx context.Context, query HistoryQuery) ([]HistoryPoint, error)
}
