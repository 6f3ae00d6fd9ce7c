package consumer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testQueueURL = "https://sqs.eu-central-1.amazonaws.com/123/funnel-snapshots"

// MockQueueConsumer is a mock implementation of queue.QueueConsumer
type MockQueueConsumer struct {
	mock.Mock
}

func (m *MockQueueConsumer) ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ReceiveMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.DeleteMessageOutput), args.Error(1)
}

func (m *MockQueueConsumer) ChangeMessageVisibility(ctx context.Context, input *sqs.ChangeMessageVisibilityInput) (*sqs.ChangeMessageVisibilityOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqs.ChangeMessageVisibilityOutput), args.Error(1)
}

func (m *MockQueueConsumer) QueueURL() string {
	return m.Called().String(0)
}

func snapshotMessage(i int) types.Message {
	return types.Message{
		MessageId:     aws.String(fmt.Sprintf("msg-%d", i)),
		Body:          aws.String(fmt.Sprintf(`{"snapshot_id": "snap-%d"}`, i)),
		ReceiptHandle: aws.String(fmt.Sprintf("receipt-%d", i)),
	}
}

func defaultReceiverConfig() ReceiverConfig {
	return ReceiverConfig{
		MaxMessages:     10,
		WaitTimeSeconds: 20,
		BufferSize:      100,
	}
}

func TestReceiver_Start_Success(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	receiver := NewReceiver(mockConsumer, defaultReceiverConfig(), zap.NewNop())

	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
		return aws.ToString(in.QueueUrl) == testQueueURL && in.MaxNumberOfMessages == 10
	})).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{snapshotMessage(1), snapshotMessage(2)}}, nil).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	out := make(chan types.Message, 10)
	go receiver.Start(ctx, out)

	var received []types.Message
	for msg := range out {
		received = append(received, msg)
	}

	assert.Len(t, received, 2)
	assert.Equal(t, "msg-1", aws.ToString(received[0].MessageId))
	assert.Equal(t, "msg-2", aws.ToString(received[1].MessageId))
}

func TestReceiver_Start_ReceiveErrorBacksOffUntilShutdown(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	receiver := NewReceiver(mockConsumer, defaultReceiverConfig(), zap.NewNop())

	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(nil, errors.New("SQS connection error"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	out := make(chan types.Message, 10)
	done := make(chan struct{})
	go func() {
		receiver.Start(ctx, out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Receiver did not stop during error backoff")
	}

	_, ok := <-out
	assert.False(t, ok)
	mockConsumer.AssertNumberOfCalls(t, "ReceiveMessages", 1)
}

func TestReceiver_Start_ContextCancellation(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	receiver := NewReceiver(mockConsumer, defaultReceiverConfig(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan types.Message, 10)
	receiver.Start(ctx, out)

	_, ok := <-out
	assert.False(t, ok, "Channel should be closed after context cancellation")
	mockConsumer.AssertNotCalled(t, "ReceiveMessages", mock.Anything, mock.Anything)
}

func TestReceiver_Start_BufferBackpressure(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	cfg := defaultReceiverConfig()
	cfg.BufferSize = 2
	receiver := NewReceiver(mockConsumer, cfg, zap.NewNop())

	messages := make([]types.Message, 5)
	for i := range messages {
		messages[i] = snapshotMessage(i)
	}

	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: messages}, nil).Once()
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.Anything).
		Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil).Maybe()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out := make(chan types.Message, cfg.BufferSize)
	go receiver.Start(ctx, out)

	var received []types.Message
	for i := 0; i < len(messages); i++ {
		select {
		case msg := <-out:
			received = append(received, msg)
			time.Sleep(10 * time.Millisecond)
		case <-ctx.Done():
		}
	}

	assert.Len(t, received, len(messages))
}

func TestNextBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextBackoff(time.Second))
	assert.Equal(t, 16*time.Second, nextBackoff(8*time.Second))
	assert.Equal(t, maxReceiveBackoff, nextBackoff(20*time.Second))
	assert.Equal(t, maxReceiveBackoff, nextBackoff(maxReceiveBackoff))
}

func TestReceiver_RequestsSnapshotAttributes(t *testing.T) {
	mockConsumer := new(MockQueueConsumer)
	receiver := NewReceiver(mockConsumer, defaultReceiverConfig(), zap.NewNop())

	mockConsumer.On("QueueURL").Return(testQueueURL)
	mockConsumer.On("ReceiveMessages", mock.Anything, mock.MatchedBy(func(in *sqs.ReceiveMessageInput) bool {
		return assert.ObjectsAreEqual([]string{"TemplateID", "Source"}, in.MessageAttributeNames) &&
			in.WaitTimeSeconds == 20
	})).Return(&sqs.ReceiveMessageOutput{Messages: []types.Message{snapshotMessage(7)}}, nil).Once()

	messages, err := receiver.receive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	mockConsumer.AssertExpectations(t)
}
