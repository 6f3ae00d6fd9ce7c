package consumer

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

// Consumer moves snapshot messages from SQS into the performance store through
// three stages: receive, parse, batch write. Each stage closes its output when
// it stops, so shutdown drains front to back.
type Consumer struct {
	receiver    *Receiver
	parser      *ParserStage
	batchWriter *BatchWriter
	bufferSize  int
	log         *zap.Logger
}

// NewConsumer wires the pipeline. observer may be nil.
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, repo repository.PerformanceRepository, observer BatchObserver, log *zap.Logger) *Consumer {
	c := cfg.Consumer
	return &Consumer{
		receiver: NewReceiver(queueConsumer, ReceiverConfig{
			MaxMessages:     c.ReceiveMaxMessages,
			WaitTimeSeconds: c.ReceiveWaitSec,
			BufferSize:      c.BufferSize,
		}, log),
		parser: NewParserStage(queueConsumer, NewJSONSnapshotParser(), c.RetryDelaySec, log),
		batchWriter: NewBatchWriter(repo, BatchWriterConfig{
			MaxBatchSize: c.BatchSizeMax,
			FlushTimeout: time.Duration(c.BatchTimeoutSec) * time.Second,
		}, observer, log),
		bufferSize: c.BufferSize,
		log:        log,
	}
}

// Start blocks until ctx is cancelled and every stage has returned
func (c *Consumer) Start(ctx context.Context) error {
	messages := make(chan types.Message, c.bufferSize)
	envelopes := make(chan *Envelope, c.bufferSize)

	var wg sync.WaitGroup
	stage := func(run func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run()
		}()
	}
	stage(func() { c.receiver.Start(ctx, messages) })
	stage(func() { c.parser.Start(ctx, messages, envelopes) })
	stage(func() { c.batchWriter.Start(ctx, envelopes) })

	c.log.Info("Snapshot pipeline started")
	wg.Wait()
	return nil
}
