package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

// Message attributes carried next to each snapshot body
const (
	AttrTemplateID = "TemplateID"
	AttrSource     = "Source"
)

// SnapshotPublisher defines the interface for publishing performance snapshots to a queue
type SnapshotPublisher interface {
	PublishSnapshots(ctx context.Context, snapshots []*domain.PerformanceSnapshot) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	ChangeMessageVisibility(ctx context.Context, input *sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error)
	QueueURL() string
}
