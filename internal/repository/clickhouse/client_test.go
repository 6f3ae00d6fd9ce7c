package clickhouse

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
)

func TestBuildOptions(t *testing.T) {
	cfg := &config.ClickHouse{
		Host:            "clickhouse",
		Port:            "9000",
		Database:        "funnels",
		User:            "reader",
		Password:        "secret",
		MaxOpenConns:    8,
		MaxIdleConns:    3,
		ConnMaxLifetime: 120,
	}

	opts := buildOptions(cfg)

	assert.Equal(t, []string{"clickhouse:9000"}, opts.Addr)
	assert.Equal(t, "funnels", opts.Auth.Database)
	assert.Equal(t, "reader", opts.Auth.Username)
	assert.Equal(t, "secret", opts.Auth.Password)
	assert.Equal(t, 8, opts.MaxOpenConns)
	assert.Equal(t, 3, opts.MaxIdleConns)
	assert.Equal(t, 2*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, maxExecutionSeconds, opts.Settings["max_execution_time"])
	assert.Nil(t, opts.TLS)
}

func TestBuildOptions_TLS(t *testing.T) {
	opts := buildOptions(&config.ClickHouse{Host: "::1", Port: "9440", UseTLS: true})

	assert.Equal(t, []string{"[::1]:9440"}, opts.Addr)
	require.NotNil(t, opts.TLS)
	assert.Equal(t, uint16(tls.VersionTLS12), opts.TLS.MinVersion)
}
