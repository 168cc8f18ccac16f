package outbound

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.outbound.io/v2"

	clientHeader    = "X-Outbound-Client"
	apiKeyHeader    = "X-Outbound-Key"
	requestIDHeader = "X-Request-Id"
)

type Option func(*Options)

type Options struct {
	baseURL        string
	timeout        time.Duration
	requestLogger  RequestLogger
	requestHeaders map[string]string
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			clientHeader:   "Go/" + Version,
		},
	}
}

// WithBaseURL points the client at a different API root. A trailing slash
// is dropped; blank values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout bounds each call. Zero leaves calls unbounded apart from the
// context passed in.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithLogLevel installs a [LevelLogger] writing to stderr.
func WithLogLevel(level Level) Option {
	return func(o *Options) {
		o.requestLogger = NewLevelLogger(os.Stderr, level)
	}
}

// WithRequestHeader adds a static header to every request. Headers the
// client manages itself cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isReservedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

func isReservedHeader(header string) bool {
	for _, reserved := range []string{"Content-Type", clientHeader, apiKeyHeader, requestIDHeader} {
		if strings.EqualFold(header, reserved) {
			return true
		}
	}

	return false
}

func (o *Options) Validate() error {
	if o.baseURL == "" {
		return errors.New("base URL must be set")
	}

	u, err := url.Parse(o.baseURL)
	if err != nil {
		return fmt.Errorf("base URL is invalid: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return errors.New("base URL must include a host")
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	return nil
}
