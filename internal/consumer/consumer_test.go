package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

func testConsumerConfig() *config.Config {
	return &config.Config{
		Consumer: config.Consumer{
			BatchSizeMax:       10,
			BatchTimeoutSec:    1,
			RetryDelaySec:      testRetryDelay,
			ReceiveMaxMessages: 10,
			ReceiveWaitSec:     20,
			BufferSize:         10,
		},
	}
}

func TestConsumer_Start_PipelineStoresSnapshots(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockRepo := new(MockPerformanceRepository)
	observer := &recordingObserver{}

	message := types.Message{
		MessageId:     aws.String("msg-1"),
		ReceiptHandle: aws.String("receipt-1"),
		Body: aws.String(`{"snapshot_id":"snap-1","template_id":"tmpl-1","step_number":2,` +
			`"event_id":"sign_up","actual_conversion_rate":18.5,"source":"ga4","captured_at":1766702552}`),
	}

	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{message}}, nil).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()
	mockConsumer.On("DeleteMessage", mock.Anything, mock.MatchedBy(func(in *sqs.DeleteMessageInput) bool {
		return aws.ToString(in.ReceiptHandle) == "receipt-1"
	})).Return(&sqs.DeleteMessageOutput{}, nil)

	mockRepo.On("InsertBatch", mock.Anything, mock.MatchedBy(func(snapshots []*domain.PerformanceSnapshot) bool {
		return len(snapshots) == 1 &&
			snapshots[0].SnapshotID == "snap-1" &&
			snapshots[0].StepNumber == 2 &&
			snapshots[0].ActualConversionRate == 18.5
	})).Return(1, nil)

	consumer := NewConsumer(testConsumerConfig(), mockConsumer, mockRepo, observer, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := consumer.Start(ctx)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockConsumer.AssertCalled(t, "DeleteMessage", mock.Anything, mock.Anything)
	assert.Equal(t, int32(1), observer.inserted.Load())
}

func TestConsumer_Start_GracefulShutdown(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	mockRepo := new(MockPerformanceRepository)

	mockConsumer.On("QueueURL").Return(testQueueURL).Maybe()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	consumer := NewConsumer(testConsumerConfig(), mockConsumer, mockRepo, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- consumer.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Graceful shutdown took too long")
	}

	mockRepo.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestConsumer_NewConsumer_ComponentInitialization(t *testing.T) {
	consumer := NewConsumer(testConsumerConfig(), new(MockQueueConsumer), new(MockPerformanceRepository), nil, zap.NewNop())

	assert.NotNil(t, consumer.receiver)
	assert.NotNil(t, consumer.parser)
	assert.NotNil(t, consumer.batchWriter)
	assert.Equal(t, testRetryDelay, consumer.parser.retryDelay)
	assert.Equal(t, 10, consumer.batchWriter.config.MaxBatchSize)
	assert.Equal(t, time.Second, consumer.batchWriter.config.FlushTimeout)
}
