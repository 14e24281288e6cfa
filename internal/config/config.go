package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full service configuration, loaded from the environment
type Config struct {
	Service    Service
	SQS        SQS
	ClickHouse ClickHouse
	Consumer   Consumer
	Analysis   Analysis
}

type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

type SQS struct {
	Endpoint string `envconfig:"SQS_ENDPOINT"`
	QueueURL string `envconfig:"SQS_QUEUE_URL" required:"true"`
	Region   string `envconfig:"SQS_REGION" required:"true"`
}

type ClickHouse struct {
	Host            string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port            string `envconfig:"CLICKHOUSE_PORT" required:"true"`
	Database        string `envconfig:"CLICKHOUSE_DB" required:"true"`
	User            string `envconfig:"CLICKHOUSE_USER" default:""`
	Password        string `envconfig:"CLICKHOUSE_PASSWORD" default:""`
	UseTLS          bool   `envconfig:"CLICKHOUSE_USE_TLS" default:"false"`
	MaxOpenConns    int    `envconfig:"CLICKHOUSE_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int    `envconfig:"CLICKHOUSE_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime int    `envconfig:"CLICKHOUSE_CONN_MAX_LIFETIME_SEC" default:"3600"`
}

type Consumer struct {
	BatchSizeMin    int    `envconfig:"CONSUMER_BATCH_SIZE_MIN" default:"100"`
	BatchSizeMax    int    `envconfig:"CONSUMER_BATCH_SIZE_MAX" default:"2000"`
	BatchTimeoutSec int    `envconfig:"CONSUMER_BATCH_TIMEOUT_SEC" default:"10"`
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
	MaxMessages     int32  `envconfig:"CONSUMER_MAX_MESSAGES" default:"10"`
	WaitTimeSeconds int32  `envconfig:"CONSUMER_WAIT_TIME_SECONDS" default:"20"`
}

// Analysis holds defaults for the attribution and significance endpoints
type Analysis struct {
	DefaultModel           string  `envconfig:"ANALYSIS_DEFAULT_MODEL" default:"linear"`
	DefaultConfidenceLevel float64 `envconfig:"ANALYSIS_DEFAULT_CONFIDENCE_LEVEL" default:"0.95"`
	MaxTouchpoints         int     `envconfig:"ANALYSIS_MAX_TOUCHPOINTS" default:"10000"`
}

func Load() (*Config, error) {
	var cfg Config

	// Sections are processed separately so keys are not prefixed with the
	// section's field name.
	sections := []interface{}{&cfg.Service, &cfg.SQS, &cfg.ClickHouse, &cfg.Consumer, &cfg.Analysis}
	for _, section := range sections {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process config: %w", err)
		}
	}

	if cfg.Analysis.DefaultConfidenceLevel <= 0 || cfg.Analysis.DefaultConfidenceLevel >= 1 {
		return nil, fmt.Errorf("ANALYSIS_DEFAULT_CONFIDENCE_LEVEL must be between 0 and 1, got %v", cfg.Analysis.DefaultConfidenceLevel)
	}

	if err := cfg.Consumer.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Consumer) validate() error {
	if c.BatchTimeoutSec <= 0 {
		return fmt.Errorf("CONSUMER_BATCH_TIMEOUT_SEC must be positive, got %d", c.BatchTimeoutSec)
	}
	if c.BatchSizeMax <= 0 {
		return fmt.Errorf("CONSUMER_BATCH_SIZE_MAX must be positive, got %d", c.BatchSizeMax)
	}
	if c.BatchSizeMin < 0 || c.BatchSizeMin > c.BatchSizeMax {
		return fmt.Errorf("CONSUMER_BATCH_SIZE_MIN must be between 0 and CONSUMER_BATCH_SIZE_MAX (%d), got %d", c.BatchSizeMax, c.BatchSizeMin)
	}
	return nil
}
