package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment. Nested structs prefix their fields,
// e.g. Service.APIPort is read from SERVICE_API_PORT.
type Config struct {
	Service    Service    `envconfig:"SERVICE"`
	Database   Database   `envconfig:"DATABASE"`
	Redis      Redis      `envconfig:"REDIS"`
	ClickHouse ClickHouse `envconfig:"CLICKHOUSE"`
	SQS        SQS        `envconfig:"SQS"`
	Consumer   Consumer   `envconfig:"CONSUMER"`
	Funnel     Funnel     `envconfig:"FUNNEL"`
}

type Service struct {
	Environment    string   `split_words:"true" required:"true"`
	APIPort        string   `split_words:"true" default:"8080"`
	Host           string   `split_words:"true" default:"localhost:8080"`
	LogLevel       string   `split_words:"true"`
	AllowedOrigins []string `split_words:"true" default:"http://localhost:3000"`
}

// Database is only required by the API; the consumer never opens it
type Database struct {
	// Driver is "postgres" or "sqlite"
	Driver             string `split_words:"true" default:"postgres"`
	URL                string `split_words:"true"`
	MaxOpenConns       int    `split_words:"true" default:"5"`
	MaxIdleConns       int    `split_words:"true" default:"2"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"300"`
	SeedDefaults       bool   `split_words:"true" default:"true"`
}

// Redis is optional: template caching and rate limiting are disabled when URL is empty
type Redis struct {
	URL                 string `split_words:"true"`
	TemplateCacheTTLSec int    `split_words:"true" default:"300"`
	RateLimitRequests   int    `split_words:"true" default:"100"`
	RateLimitWindowSec  int    `split_words:"true" default:"60"`
}

type ClickHouse struct {
	Host            string `split_words:"true" required:"true"`
	Port            string `split_words:"true" required:"true"`
	Database        string `split_words:"true" required:"true"`
	User            string `split_words:"true" default:""`
	Password        string `split_words:"true" default:""`
	UseTLS          bool   `split_words:"true" default:"false"`
	MaxOpenConns    int    `split_words:"true" default:"5"`
	MaxIdleConns    int    `split_words:"true" default:"2"`
	ConnMaxLifetime int    `split_words:"true" default:"3600"`
}

type SQS struct {
	Endpoint string `split_words:"true"`
	QueueURL string `split_words:"true" required:"true"`
	Region   string `split_words:"true" required:"true"`
}

type Consumer struct {
	BatchSizeMax    int    `split_words:"true" default:"500"`
	BatchTimeoutSec int    `split_words:"true" default:"10"`
	RetryDelaySec   int32  `split_words:"true" default:"30"`
	HealthCheckPort string `split_words:"true" default:"8081"`
	// ReceiveMaxMessages is capped at 10 by SQS
	ReceiveMaxMessages int32 `split_words:"true" default:"10"`
	ReceiveWaitSec     int32 `split_words:"true" default:"20"`
	BufferSize         int   `split_words:"true" default:"100"`
}

type Funnel struct {
	DropOffThreshold      float64 `split_words:"true" default:"30"`
	BaseCostPerStep       float64 `split_words:"true" default:"50"`
	AvgRevenuePerCustomer float64 `split_words:"true" default:"300"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
