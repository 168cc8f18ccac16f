package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	outbound "github.com/peteraglen/outbound-go-client"
)

// config is the resolved CLI configuration. Flags win over the
// OUTBOUND_* environment variables.
type config struct {
	APIKey   string
	BaseURL  string
	LogLevel outbound.Level
	Timeout  time.Duration
}

type rootFlags struct {
	apiKey     string
	baseURL    string
	logLevel   string
	timeout    time.Duration
	numericIDs bool
}

func (f rootFlags) resolve(getenv func(string) string) (config, error) {
	apiKey := firstNonEmpty(f.apiKey, getenv("OUTBOUND_API_KEY"))
	if apiKey == "" {
		return config{}, errors.New("OUTBOUND_API_KEY or --api-key required")
	}

	levelText := firstNonEmpty(f.logLevel, getenv("OUTBOUND_LOG_LEVEL"), "error")
	level, err := outbound.ParseLevel(levelText)
	if err != nil {
		return config{}, err
	}

	if f.timeout < 0 {
		return config{}, fmt.Errorf("--timeout must be non-negative, got %v", f.timeout)
	}

	return config{
		APIKey:   apiKey,
		BaseURL:  firstNonEmpty(f.baseURL, getenv("OUTBOUND_BASE_URL"), outbound.DefaultBaseURL),
		LogLevel: level,
		Timeout:  f.timeout,
	}, nil
}

func (c config) options() []outbound.Option {
	return []outbound.Option{
		outbound.WithBaseURL(c.BaseURL),
		outbound.WithLogLevel(c.LogLevel),
		outbound.WithTimeout(c.Timeout),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}

	return ""
}
