// Package journal records menu transitions in DuckDB for later analysis.
// The journal is write-only from the menu's point of view: nothing in it is
// ever used to restore state.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// ClientConfig holds configuration options for the database.
type ClientConfig struct {
	Threads       int           // Number of threads for DuckDB (0 = default)
	MemoryLimitMB int           // Memory limit in MB (0 = default)
	Timeout       time.Duration // Connect timeout (0 = none)
}

// Client manages the physical connection to a DuckDB database.
type Client struct {
	db     *sql.DB
	config ClientConfig
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) ClientOption {
	return func(c *Client) {
		c.config.Threads = n
	}
}

// WithMemoryLimit sets the DuckDB memory limit in MB.
func WithMemoryLimit(mb int) ClientOption {
	return func(c *Client) {
		c.config.MemoryLimitMB = mb
	}
}

// WithTimeout bounds the initial ping.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.config.Timeout = d
	}
}

// NewClient opens dsn. An empty dsn means an in-memory database.
func NewClient(dsn string, opts ...ClientOption) (*Client, error) {
	client := &Client{}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	ctx := context.Background()
	if client.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.config.Timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// One writer; an in-memory database also lives only as long as its
	// single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	client.db = db
	if err := client.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure duckdb: %w", err)
	}
	return client, nil
}

func (c *Client) configure() error {
	if c.config.Threads > 0 {
		if _, err := c.db.Exec(fmt.Sprintf("PRAGMA threads=%d", c.config.Threads)); err != nil {
			return fmt.Errorf("setting threads: %w", err)
		}
	}
	if c.config.MemoryLimitMB > 0 {
		if _, err := c.db.Exec(fmt.Sprintf("PRAGMA memory_limit='%dMB'", c.config.MemoryLimitMB)); err != nil {
			return fmt.Errorf("setting memory limit: %w", err)
		}
	}
	return nil
}

// DB returns the underlying sql.DB instance.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close releases database resources.
func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
