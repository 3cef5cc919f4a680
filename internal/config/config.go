package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultMetricsAddr  = ":9090"
	defaultReportSecret = "teller-report-secret"
	defaultJournalSize  = 1000
)

type Config struct {
	HTTPAddr     string
	MetricsAddr  string
	ReportSecret string
	LogLevel     slog.Level
	JournalSize  int
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:     envOr("TELLER_HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:  envOr("TELLER_METRICS_ADDR", defaultMetricsAddr),
		ReportSecret: envOr("TELLER_REPORT_SECRET", defaultReportSecret),
		LogLevel:     slog.LevelInfo,
		JournalSize:  defaultJournalSize,
	}

	if raw := strings.TrimSpace(os.Getenv("TELLER_LOG_LEVEL")); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid TELLER_LOG_LEVEL %q: %w", raw, err)
		}
	}

	if raw := strings.TrimSpace(os.Getenv("TELLER_JOURNAL_SIZE")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return Config{}, fmt.Errorf("invalid TELLER_JOURNAL_SIZE %q: must be a positive integer", raw)
		}
		cfg.JournalSize = size
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
