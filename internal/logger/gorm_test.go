package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(environment string) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), environment), logs
}

func sqlFunc() (string, int64) {
	return "SELECT * FROM funnel_templates", 3
}

func TestGormLogger_TraceError(t *testing.T) {
	l, logs := newObservedGormLogger("production")

	l.Trace(context.Background(), time.Now(), sqlFunc, errors.New("connection reset"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Query failed", entries[0].Message)
	assert.Equal(t, "SELECT * FROM funnel_templates", entries[0].ContextMap()["sql"])
}

func TestGormLogger_TraceRecordNotFoundIsNotAnError(t *testing.T) {
	l, logs := newObservedGormLogger("production")

	l.Trace(context.Background(), time.Now(), sqlFunc, gorm.ErrRecordNotFound)

	assert.Empty(t, logs.All())
}

func TestGormLogger_TraceQueriesInDevelopment(t *testing.T) {
	l, logs := newObservedGormLogger("development")

	l.Trace(context.Background(), time.Now(), sqlFunc, nil)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Query executed", entries[0].Message)
}

func TestGormLogger_SlowQuery(t *testing.T) {
	l, logs := newObservedGormLogger("production")
	l = l.LogMode(gormlogger.Warn).(*GormLogger)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc, nil)

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "Slow query", entries[0].Message)
}

func TestGormLogger_Silent(t *testing.T) {
	l, logs := newObservedGormLogger("development")
	silent := l.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))
	silent.Error(context.Background(), "ignored %s", "message")

	assert.Empty(t, logs.All())
}
