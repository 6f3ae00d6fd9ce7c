package consumer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// finalFlushTimeout bounds the last insert and settle once the pipeline is stopping
const finalFlushTimeout = 10 * time.Second

// BatchWriterConfig configures the batch writer
type BatchWriterConfig struct {
	MaxBatchSize int
	FlushTimeout time.Duration
}

// BatchWriter handles batching and writing snapshots to the performance repository
type BatchWriter struct {
	repository repository.PerformanceRepository
	config     BatchWriterConfig
	observer   BatchObserver
	log        *zap.Logger
}

// NewBatchWriter creates a new batch writer. observer may be nil.
func NewBatchWriter(repo repository.PerformanceRepository, config BatchWriterConfig, observer BatchObserver, log *zap.Logger) *BatchWriter {
	return &BatchWriter{
		repository: repo,
		config:     config,
		observer:   observer,
		log:        log,
	}
}

// Start collects envelopes and flushes them when the batch is full, the flush
// timeout elapses, or the input ends. The pending batch is flushed on shutdown
// under a context that outlives ctx by at most finalFlushTimeout.
func (w *BatchWriter) Start(ctx context.Context, in <-chan *Envelope) {
	ticker := time.NewTicker(w.config.FlushTimeout)
	defer ticker.Stop()

	batch := make([]*Envelope, 0, w.config.MaxBatchSize)
	flush := func(ctx context.Context, reason string) {
		if len(batch) == 0 {
			return
		}
		w.log.Debug("Flushing snapshot batch",
			zap.String("reason", reason),
			zap.Int("envelope_count", len(batch)))
		w.processBatch(ctx, batch)
		batch = make([]*Envelope, 0, w.config.MaxBatchSize)
	}
	finalFlush := func(reason string) {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
		defer cancel()
		flush(flushCtx, reason)
	}
	defer w.log.Info("Batch writer shutting down")

	for {
		select {
		case <-ctx.Done():
			finalFlush("shutdown")
			return

		case envelope, ok := <-in:
			if !ok {
				finalFlush("input closed")
				return
			}
			batch = append(batch, envelope)
			if len(batch) >= w.config.MaxBatchSize {
				flush(ctx, "size")
				ticker.Reset(w.config.FlushTimeout)
			}

		case <-ticker.C:
			flush(ctx, "timeout")
		}
	}
}

// processBatch inserts the batch and acks every envelope, or nacks all of them so SQS redelivers
func (w *BatchWriter) processBatch(ctx context.Context, envelopes []*Envelope) {
	if len(envelopes) == 0 {
		return
	}

	snapshots := make([]*domain.PerformanceSnapshot, len(envelopes))
	for i, env := range envelopes {
		snapshots[i] = env.Snapshot
	}

	inserted, err := w.repository.InsertBatch(ctx, snapshots)
	if err == nil && inserted != len(snapshots) {
		err = fmt.Errorf("inserted %d of %d snapshots", inserted, len(snapshots))
	}
	if err != nil {
		w.log.Error("Failed to store snapshot batch, leaving it for redelivery",
			zap.Error(err),
			zap.Int("snapshot_count", len(snapshots)))
		if w.observer != nil {
			w.observer.BatchFailed(len(snapshots))
		}
		w.settle(ctx, envelopes, (*Envelope).Nack, "nack")
		return
	}

	w.log.Info("Stored snapshot batch", zap.Int("count", inserted))
	if w.observer != nil {
		w.observer.BatchInserted(inserted)
	}
	w.settle(ctx, envelopes, (*Envelope).Ack, "ack")
}

// settle applies ack or nack to every envelope; failures are logged and left to SQS visibility
func (w *BatchWriter) settle(ctx context.Context, envelopes []*Envelope, op func(*Envelope, context.Context) error, name string) {
	for _, env := range envelopes {
		if err := op(env, ctx); err != nil {
			w.log.Error("Failed to "+name+" envelope",
				zap.String("snapshot_id", env.Snapshot.SnapshotID),
				zap.Error(err))
		}
	}
}
