package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	envConfig "github.com/Clare-zewei/clickengineA-sub000/internal/config"
	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/queue"
)

// Client represents an SQS client
type Client struct {
	client *sqs.Client
	config envConfig.SQS
	log    *zap.Logger
}

// NewClient creates a new SQS client
func NewClient(ctx context.Context, SQSConfig envConfig.SQS, log *zap.Logger) (*Client, error) {
	configOpts := []func(*config.LoadOptions) error{
		config.WithRegion(SQSConfig.Region),
	}

	var clientOpts []func(*sqs.Options)

	// Configure for local development with ElasticMQ
	if SQSConfig.Endpoint != "" {
		log.Info("Configuring SQS for local development",
			zap.String("endpoint", SQSConfig.Endpoint))
		configOpts = append(configOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("dummy", "dummy", "")))

		clientOpts = append(clientOpts, func(o *sqs.Options) {
			o.BaseEndpoint = aws.String(SQSConfig.Endpoint)
		})
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	sqsClient := sqs.NewFromConfig(cfg, clientOpts...)

	log.Info("SQS client created",
		zap.String("region", SQSConfig.Region),
		zap.String("queue_url", SQSConfig.QueueURL))

	return &Client{
		client: sqsClient,
		config: SQSConfig,
		log:    log,
	}, nil
}

// ReceiveMessages receives messages from SQS
func (c *Client) ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error) {
	return c.client.ReceiveMessage(ctx, input)
}

// DeleteMessage deletes a message from SQS
func (c *Client) DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	return c.client.DeleteMessage(ctx, input)
}

// ChangeMessageVisibility changes how long a received message stays hidden from other consumers
func (c *Client) ChangeMessageVisibility(ctx context.Context, input *sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error) {
	return c.client.ChangeMessageVisibility(ctx, input)
}

// QueueURL returns the configured queue URL
func (c *Client) QueueURL() string {
	return c.config.QueueURL
}

// maxBatchEntries is the SQS limit for SendMessageBatch
const maxBatchEntries = 10

// PublishSnapshots publishes snapshots to SQS, one message per snapshot, in batches of up to ten
func (c *Client) PublishSnapshots(ctx context.Context, snapshots []*domain.PerformanceSnapshot) error {
	for start := 0; start < len(snapshots); start += maxBatchEntries {
		end := start + maxBatchEntries
		if end > len(snapshots) {
			end = len(snapshots)
		}
		if err := c.publishBatch(ctx, snapshots[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) publishBatch(ctx context.Context, snapshots []*domain.PerformanceSnapshot) error {
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(snapshots))
	for i, snapshot := range snapshots {
		bodyJSON, err := json.Marshal(snapshot)
		if err != nil {
			c.log.Error("Failed to marshal snapshot",
				zap.String("snapshot_id", snapshot.SnapshotID),
				zap.String("template_id", snapshot.TemplateID),
				zap.Error(err))
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(strconv.Itoa(i)),
			MessageBody: aws.String(string(bodyJSON)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				queue.AttrTemplateID: {
					DataType:    aws.String("String"),
					StringValue: aws.String(snapshot.TemplateID),
				},
				queue.AttrSource: {
					DataType:    aws.String("String"),
					StringValue: aws.String(snapshot.Source),
				},
			},
		})
	}

	out, err := c.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(c.config.QueueURL),
		Entries:  entries,
	})
	if err != nil {
		c.log.Error("Failed to send snapshot batch to SQS",
			zap.Int("count", len(entries)),
			zap.Error(err))
		return fmt.Errorf("failed to send message batch to SQS: %w", err)
	}

	if len(out.Failed) > 0 {
		first := out.Failed[0]
		c.log.Error("SQS rejected snapshot messages",
			zap.Int("failed", len(out.Failed)),
			zap.String("code", aws.ToString(first.Code)),
			zap.String("message", aws.ToString(first.Message)))
		return fmt.Errorf("SQS rejected %d of %d snapshot messages: %s", len(out.Failed), len(entries), aws.ToString(first.Message))
	}

	c.log.Info("Snapshots published to SQS",
		zap.Int("count", len(entries)),
		zap.String("template_id", snapshots[0].TemplateID))

	return nil
}
