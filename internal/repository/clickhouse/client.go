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

	"github.com/BarkinBalci/marketing-effectiveness-service/internal/config"
)

const (
	dialTimeout = 5 * time.Second
	// metrics and attribution reads are bounded server-side
	queryTimeoutSeconds = 60
)

// Client owns the connection pool to the touchpoint store
type Client struct {
	conn driver.Conn
	log  *zap.Logger
}

// connectionOptions maps the service config onto driver options
func connectionOptions(cfg *config.ClickHouse) *clickhouse.Options {
	opts := &clickhouse.Options{
		Addr: []string{net.JoinHostPort(cfg.Host, cfg.Port)},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.User,
			Password: cfg.Password,
		},
		Settings: clickhouse.Settings{
			"max_execution_time": queryTimeoutSeconds,
		},
		DialTimeout:      dialTimeout,
		MaxOpenConns:     cfg.MaxOpenConns,
		MaxIdleConns:     cfg.MaxIdleConns,
		ConnMaxLifetime:  time.Duration(cfg.ConnMaxLifetime) * time.Second,
		ConnOpenStrategy: clickhouse.ConnOpenInOrder,
		BlockBufferSize:  10,
	}
	if cfg.UseTLS {
		opts.TLS = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}
	return opts
}

// NewClient opens the pool and verifies it with a ping
func NewClient(ctx context.Context, cfg *config.ClickHouse, log *zap.Logger) (*Client, error) {
	log = log.With(zap.String("database", cfg.Database))
	log.Info("Connecting to touchpoint store",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.Port),
		zap.Bool("tls", cfg.UseTLS))

	conn, err := clickhouse.Open(connectionOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open touchpoint store: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping touchpoint store: %w", err)
	}

	log.Info("Touchpoint store connected",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns))

	return &Client{conn: conn, log: log}, nil
}

// Conn returns the underlying driver connection
func (c *Client) Conn() driver.Conn {
	return c.conn
}

func (c *Client) Close() error {
	if err := c.conn.Close(); err != nil {
		return fmt.Errorf("failed to close touchpoint store: %w", err)
	}
	c.log.Info("Touchpoint store connection closed")
	return nil
}
