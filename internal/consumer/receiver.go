package consumer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/queue"
)

const (
	minReceiveBackoff = time.Second
	maxReceiveBackoff = 30 * time.Second
)

var snapshotAttributes = []string{queue.AttrTemplateID, queue.AttrSource}

// ReceiverConfig configures the SQS long poll
type ReceiverConfig struct {
	MaxMessages     int32
	WaitTimeSeconds int32
	BufferSize      int
}

// Receiver long-polls the snapshot queue and feeds raw messages to the parser stage
type Receiver struct {
	consumer queue.QueueConsumer
	config   ReceiverConfig
	log      *zap.Logger
}

func NewReceiver(consumer queue.QueueConsumer, config ReceiverConfig, log *zap.Logger) *Receiver {
	return &Receiver{
		consumer: consumer,
		config:   config,
		log:      log,
	}
}

// Start polls until ctx is done, then closes out. Consecutive poll failures
// back off exponentially up to maxReceiveBackoff.
func (r *Receiver) Start(ctx context.Context, out chan<- types.Message) {
	defer close(out)

	backoff := minReceiveBackoff
	for ctx.Err() == nil {
		messages, err := r.receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			r.log.Error("Failed to receive snapshot messages",
				zap.Error(err),
				zap.Duration("backoff", backoff))
			if !sleep(ctx, backoff) {
				break
			}
			backoff = nextBackoff(backoff)
			continue
		}
		backoff = minReceiveBackoff

		if !r.forward(ctx, messages, out) {
			break
		}
	}

	r.log.Info("Receiver shutting down")
}

func (r *Receiver) receive(ctx context.Context) ([]types.Message, error) {
	result, err := r.consumer.ReceiveMessages(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:              aws.String(r.consumer.QueueURL()),
		MaxNumberOfMessages:   r.config.MaxMessages,
		WaitTimeSeconds:       r.config.WaitTimeSeconds,
		MessageAttributeNames: snapshotAttributes,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Messages) > 0 {
		r.log.Debug("Received snapshot messages", zap.Int("message_count", len(result.Messages)))
	}
	return result.Messages, nil
}

// forward reports false when ctx ended before every message was handed off
func (r *Receiver) forward(ctx context.Context, messages []types.Message, out chan<- types.Message) bool {
	for _, msg := range messages {
		select {
		case <-ctx.Done():
			return false
		case out <- msg:
		}
	}
	return true
}

func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > maxReceiveBackoff {
		return maxReceiveBackoff
	}
	return next
}

// sleep waits for d and reports false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
