package clickhouse

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/config"
)

const (
	dialTimeout = 5 * time.Second
	// snapshot history queries scan at most a few partitions
	maxExecutionSeconds = 60
)

// Client owns the snapshot store connection
type Client struct {
	conn driver.Conn
	log  *zap.Logger
}

// buildOptions maps the service configuration onto driver options
func buildOptions(cfg *config.ClickHouse) *clickhouse.Options {
	opts := &clickhouse.Options{
		Addr: []string{net.JoinHostPort(cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": maxExecutionSeconds,
		},
		DialTimeout:      dialTimeout,
		MaxOpenConns:     cfg.MaxOpenConns,
		MaxIdleConns:     cfg.MaxIdleConns,
		ConnMaxLifetime:  time.Duration(cfg.ConnMaxLifetime) * time.Second,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
	}
	if cfg.UseTLS {
		opts.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

// NewClient opens and pings the snapshot store
func NewClient(ctx context.Context, cfg *config.ClickHouse, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to ClickHouse",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Bool("use_tls", cfg.UseTLS))

	conn, err := clickhouse.Open(buildOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open ClickHouse connection: %w", err)
	}

	client := &Client{conn: conn, log: log}
	if err := client.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Info("ClickHouse connection established")
	return client, nil
}

// Conn exposes the driver connection to the repository
func (c *Client) Conn() driver.Conn {
	return c.conn
}

func (c *Client) Ping(ctx context.Context) error {
	if err := c.conn.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping ClickHouse: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		c.log.Error("Failed to close ClickHouse connection", zap.Error(err))
		return fmt.Errorf("failed to close ClickHouse connection: %w", err)
	}
	return nil
}
