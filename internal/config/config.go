package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type UpstreamConfig struct {
	// BaseURL of the accounting backend API.
	BaseURL string
	// Timeout for backend calls. Zero disables the client-side timeout;
	// failed requests surface once and the user retries.
	Timeout time.Duration
}

type AppConfig struct {
	LogLevel          string
	PreviewSampleRows int
	MetricsNamespace  string
}

func Load() (*Config, error) {
	baseURL := getEnv("UPSTREAM_BASE_URL", "")
	if baseURL == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	timeoutSeconds, err := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "0"))
	if err != nil || timeoutSeconds < 0 {
		timeoutSeconds = 0
	}

	sampleRows, err := strconv.Atoi(getEnv("PREVIEW_SAMPLE_ROWS", "5"))
	if err != nil || sampleRows <= 0 {
		sampleRows = 5
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Upstream: UpstreamConfig{
			BaseURL: baseURL,
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
		App: AppConfig{
			LogLevel:          getEnv("LOG_LEVEL", "info"),
			PreviewSampleRows: sampleRows,
			MetricsNamespace:  getEnv("METRICS_NAMESPACE", "recon_gateway"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
