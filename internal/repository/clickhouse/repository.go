package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

const snapshotTable = "funnel_step_snapshots"

// Repository implements PerformanceRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema initializes the snapshot table. Redelivered snapshots share a snapshot_id and collapse on merge.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		snapshot_id String,
		template_id String,
		step_number UInt8,
		event_id LowCardinality(String),
		actual_conversion_rate Float64,
		users_entered UInt64,
		users_converted UInt64,
		source LowCardinality(String),
		captured_at Int64,
		processed_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (template_id, step_number, snapshot_id)
	ORDER BY (template_id, step_number, snapshot_id)
	PARTITION BY toYYYYMM(toDateTime(captured_at))
	SETTINGS index_granularity = 8192
	`, snapshotTable)

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create %s table: %w", snapshotTable, err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch inserts a batch of snapshots into ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, snapshots []*domain.PerformanceSnapshot) (int, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO "+snapshotTable)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, snapshot := range snapshots {
		if snapshot.Version == 0 {
			snapshot.Version = uint64(time.Now().UnixNano())
		}
		if snapshot.ProcessedAt.IsZero() {
			snapshot.ProcessedAt = time.Now().UTC()
		}

		err := batch.Append(
			snapshot.SnapshotID,
			snapshot.TemplateID,
			snapshot.StepNumber,
			snapshot.EventID,
			snapshot.ActualConversionRate,
			snapshot.UsersEntered,
			snapshot.UsersConverted,
			snapshot.Source,
			snapshot.CapturedAt,
			snapshot.ProcessedAt,
			snapshot.Version,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to append snapshot to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

// LatestStepRates returns the most recently captured rate of every step of a template
func (r *Repository) LatestStepRates(ctx context.Context, templateID string) (map[int]float64, error) {
	query := fmt.Sprintf(`
		SELECT
			step_number,
			argMax(actual_conversion_rate, captured_at) AS latest_rate
		FROM %s FINAL
		WHERE template_id = ?
		GROUP BY step_number
		ORDER BY step_number ASC
	`, snapshotTable)

	rows, err := r.client.Conn().Query(ctx, query, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest step rates: %w", err)
	}
	defer r.closeRows(rows, "latest step rates")

	rates := make(map[int]float64)
	for rows.Next() {
		var (
			stepNumber uint8
			rate       float64
		)
		if err := rows.Scan(&stepNumber, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan latest step rate row: %w", err)
		}
		rates[int(stepNumber)] = rate
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating latest step rate rows: %w", err)
	}
	return rates, nil
}

// GetHistory retrieves per-step average rates grouped by day or hour
func (r *Repository) GetHistory(ctx context.Context, query repository.HistoryQuery) ([]repository.HistoryPoint, error) {
	var bucketField, groupField string
	switch query.GroupBy {
	case "hour":
		bucketField = "formatDateTime(toStartOfHour(toDateTime(captured_at)), '%Y-%m-%d %H:00:00')"
		groupField = "toStartOfHour(toDateTime(captured_at))"
	case "day", "":
		bucketField = "formatDateTime(toStartOfDay(toDateTime(captured_at)), '%Y-%m-%d')"
		groupField = "toStartOfDay(toDateTime(captured_at))"
	default:
		return nil, fmt.Errorf("unsupported group_by value: %s (supported: hour, day)", query.GroupBy)
	}

	historyQuery := fmt.Sprintf(`
		SELECT
			%s AS bucket,
			step_number,
			avg(actual_conversion_rate) AS average_rate,
			count() AS snapshot_count,
			sum(users_entered) AS users_entered,
			sum(users_converted) AS users_converted
		FROM %s FINAL
		WHERE template_id = ? AND captured_at >= ? AND captured_at <= ?
		GROUP BY %s, step_number
		ORDER BY bucket ASC, step_number ASC
	`, bucketField, snapshotTable, groupField)

	rows, err := r.client.Conn().Query(ctx, historyQuery, query.TemplateID, query.From, query.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance history: %w", err)
	}
	defer r.closeRows(rows, "performance history")

	points := []repository.HistoryPoint{}
	for rows.Next() {
		var (
			point      repository.HistoryPoint
			stepNumber uint8
		)
		if err := rows.Scan(
			&point.Bucket,
			&stepNumber,
			&point.AverageRate,
			&point.SnapshotCount,
			&point.UsersEntered,
			&point.UsersConverted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance history row: %w", err)
		}
		point.StepNumber = int(stepNumber)
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performance history rows: %w", err)
	}
	return points, nil
}

func (r *Repository) closeRows(rows driver.Rows, what string) {
	if err := rows.Close(); err != nil {
		r.log.Error("Failed to close rows", zap.String("query", what), zap.Error(err))
	}
}
