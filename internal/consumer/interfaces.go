package consumer

import (
	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into snapshots
type MessageParser interface {
	Parse(body []byte) (*domain.PerformanceSnapshot, error)
}

// BatchObserver is notified about the outcome of every batch write
type BatchObserver interface {
	BatchInserted(count int)
	BatchFailed(count int)
}
