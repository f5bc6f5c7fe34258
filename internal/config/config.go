package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress              string
	DatabaseURI             string
	TokenSecret             string
	ShutdownTimeout         time.Duration
	StockPollInterval       time.Duration
	StockAlertThreshold     int
	WorkerPoolSize          int
	StockBatchSize          int
	RejectInsufficientStock bool
}

const (
	defaultRunAddress          = ":8080"
	defaultTokenSecret         = "change-me-in-production"
	defaultShutdownTimeout     = 10 * time.Second
	defaultStockPollInterval   = 30 * time.Second
	defaultStockAlertThreshold = 5
	defaultWorkerPoolSize      = 4
	defaultStockBatchSize      = 32
)

// Load parses configuration from .env file, environment variables and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:             getString(lookup, "DATABASE_URI", ""),
		TokenSecret:             getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		ShutdownTimeout:         getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		StockPollInterval:       getDuration(lookup, "STOCK_POLL_INTERVAL", defaultStockPollInterval),
		StockAlertThreshold:     getInt(lookup, "STOCK_ALERT_THRESHOLD", defaultStockAlertThreshold),
		WorkerPoolSize:          getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		StockBatchSize:          getInt(lookup, "STOCK_BATCH_SIZE", defaultStockBatchSize),
		RejectInsufficientStock: getBool(lookup, "REJECT_INSUFFICIENT_STOCK", false),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.StockPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent stock monitor workers")
	fs.IntVar(&cfg.StockAlertThreshold, "stock-threshold", cfg.StockAlertThreshold, "Stock level that triggers low-stock alerts")
	fs.IntVar(&cfg.StockBatchSize, "stock-batch", cfg.StockBatchSize, "Maximum products per stock monitor batch")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between stock monitor scans")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.RejectInsufficientStock, "reject-insufficient-stock", cfg.RejectInsufficientStock, "Reject fulfillment when stock would go negative")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StockPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.StockBatchSize <= 0 {
		cfg.StockBatchSize = defaultStockBatchSize
	}

	if cfg.StockPollInterval <= 0 {
		cfg.StockPollInterval = defaultStockPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.StockAlertThreshold < 0 {
		cfg.StockAlertThreshold = defaultStockAlertThreshold
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
