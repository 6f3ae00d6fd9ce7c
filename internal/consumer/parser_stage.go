package consumer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue"
)

// ParserStage turns raw SQS messages into snapshot envelopes. Messages that can
// never be stored are deleted here and never reach the batch writer.
type ParserStage struct {
	consumer   queue.QueueConsumer
	parser     MessageParser
	retryDelay int32
	log        *zap.Logger
}

// NewParserStage creates a parser stage. Nacked messages become visible again after retryDelaySeconds.
func NewParserStage(consumer queue.QueueConsumer, parser MessageParser, retryDelaySeconds int32, log *zap.Logger) *ParserStage {
	return &ParserStage{
		consumer:   consumer,
		parser:     parser,
		retryDelay: retryDelaySeconds,
		log:        log,
	}
}

// Start parses until in is closed or ctx is done, then closes out
func (p *ParserStage) Start(ctx context.Context, in <-chan types.Message, out chan<- *Envelope) {
	defer close(out)
	defer p.log.Info("Parser stage shutting down")

	for {
		var msg types.Message
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}
			msg = m
		}

		envelope := p.parseMessage(ctx, msg)
		if envelope == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case out <- envelope:
		}
	}
}

func (p *ParserStage) parseMessage(ctx context.Context, msg types.Message) *Envelope {
	messageID := aws.ToString(msg.MessageId)

	snapshot, err := p.parser.Parse([]byte(aws.ToString(msg.Body)))
	if err == nil {
		err = checkAttributes(msg, snapshot)
	}
	if err != nil {
		p.log.Warn("Discarding malformed snapshot message",
			zap.String("message_id", messageID),
			zap.Error(err))
		_ = p.deleteMessage(ctx, msg)
		return nil
	}

	return NewEnvelope(snapshot,
		func(ctx context.Context) error { return p.deleteMessage(ctx, msg) },
		func(ctx context.Context) error { return p.releaseMessage(ctx, msg) },
	)
}

// checkAttributes rejects a message whose TemplateID attribute disagrees with its body
func checkAttributes(msg types.Message, snapshot *domain.PerformanceSnapshot) error {
	attr, ok := msg.MessageAttributes[queue.AttrTemplateID]
	if !ok || attr.StringValue == nil {
		return nil
	}
	if got := aws.ToString(attr.StringValue); got != snapshot.TemplateID {
		return fmt.Errorf("template id attribute %q does not match body %q", got, snapshot.TemplateID)
	}
	return nil
}

func (p *ParserStage) deleteMessage(ctx context.Context, msg types.Message) error {
	_, err := p.consumer.DeleteMessage(ctx, &awssqs.DeleteMessageInput{
		QueueUrl:      aws.String(p.consumer.QueueURL()),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		p.log.Error("Failed to delete message",
			zap.String("message_id", aws.ToString(msg.MessageId)),
			zap.Error(err))
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// releaseMessage shortens the visibility timeout so a failed message is redelivered after the retry delay
func (p *ParserStage) releaseMessage(ctx context.Context, msg types.Message) error {
	_, err := p.consumer.ChangeMessageVisibility(ctx, &awssqs.ChangeMessageVisibilityInput{
		QueueUrl:          aws.String(p.consumer.QueueURL()),
		ReceiptHandle:     msg.ReceiptHandle,
		VisibilityTimeout: p.retryDelay,
	})
	if err != nil {
		p.log.Warn("Failed to release message for redelivery",
			zap.String("message_id", aws.ToString(msg.MessageId)),
			zap.Error(err))
		return fmt.Errorf("failed to release message: %w", err)
	}
	return nil
}
