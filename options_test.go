package outbound

import (
	"strings"
	"testing"
	"time"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.baseURL != DefaultBaseURL {
		t.Errorf("expected baseURL=%s, got %s", DefaultBaseURL, opts.baseURL)
	}

	if opts.timeout != 0 {
		t.Errorf("expected timeout=0, got %v", opts.timeout)
	}

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["X-Outbound-Client"] != "Go/"+Version {
		t.Errorf("expected X-Outbound-Client=Go/%s, got %s", Version, opts.requestHeaders["X-Outbound-Client"])
	}
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid", "http://localhost:9000", "http://localhost:9000"},
		{"trailing slash trimmed", "https://api.example.com/v2/", "https://api.example.com/v2"},
		{"whitespace trimmed", "  https://api.example.com  ", "https://api.example.com"},
		{"empty ignored", "", DefaultBaseURL},
		{"blank ignored", "   ", DefaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithBaseURL(tt.input)(opts)

			if opts.baseURL != tt.expected {
				t.Errorf("expected baseURL=%s, got %s", tt.expected, opts.baseURL)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 2 * time.Second, 2 * time.Second},
		{"zero", 0, 0},
		{"negative ignored", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithTimeout(tt.input)(opts)

			if opts.timeout != tt.expected {
				t.Errorf("expected timeout=%v, got %v", tt.expected, opts.timeout)
			}
		})
	}
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		logger := &NoopLogger{}
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected requestLogger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		originalLogger := opts.requestLogger
		WithRequestLogger(nil)(opts)

		if opts.requestLogger != originalLogger {
			t.Error("nil logger should be ignored")
		}
	})
}

func TestWithLogLevel(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithLogLevel(LevelDebug)(opts)

	logger, ok := opts.requestLogger.(*LevelLogger)
	if !ok {
		t.Fatalf("expected *LevelLogger, got %T", opts.requestLogger)
	}

	if logger.Level() != LevelDebug {
		t.Errorf("expected level=DEBUG, got %v", logger.Level())
	}
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		value         string
		expectIgnored bool
	}{
		{"valid header", "X-Custom", "value", false},
		{"empty header ignored", "", "value", true},
		{"whitespace header ignored", "   ", "value", true},
		{"Content-Type protected", "Content-Type", "text/plain", true},
		{"content-type protected (case insensitive)", "content-type", "text/plain", true},
		{"client header protected", "x-outbound-client", "ruby", true},
		{"api key header protected", "X-Outbound-Key", "other", true},
		{"request id header protected", "X-REQUEST-ID", "fixed", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			originalLen := len(opts.requestHeaders)
			originalClient := opts.requestHeaders["X-Outbound-Client"]

			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectIgnored {
				if len(opts.requestHeaders) != originalLen {
					t.Errorf("expected header %q to be ignored", tt.header)
				}
				if opts.requestHeaders["X-Outbound-Client"] != originalClient {
					t.Error("X-Outbound-Client should not be changed")
				}
			} else if opts.requestHeaders[tt.header] != tt.value {
				t.Errorf("expected header %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Options)
		wantError string
	}{
		{
			name:      "valid defaults",
			modify:    func(_ *Options) {},
			wantError: "",
		},
		{
			name:      "plain http allowed",
			modify:    func(o *Options) { o.baseURL = "http://localhost:9000/v2" },
			wantError: "",
		},
		{
			name:      "empty baseURL",
			modify:    func(o *Options) { o.baseURL = "" },
			wantError: "base URL must be set",
		},
		{
			name:      "unparsable baseURL",
			modify:    func(o *Options) { o.baseURL = "http://[::1" },
			wantError: "base URL is invalid",
		},
		{
			name:      "unsupported scheme",
			modify:    func(o *Options) { o.baseURL = "ftp://example.com" },
			wantError: `base URL scheme must be http or https, got "ftp"`,
		},
		{
			name:      "missing host",
			modify:    func(o *Options) { o.baseURL = "https:///v2" },
			wantError: "base URL must include a host",
		},
		{
			name:      "negative timeout",
			modify:    func(o *Options) { o.timeout = -time.Second },
			wantError: "timeout must be non-negative",
		},
		{
			name:      "nil requestLogger",
			modify:    func(o *Options) { o.requestLogger = nil },
			wantError: "requestLogger must not be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.modify(opts)

			err := opts.Validate()

			if tt.wantError == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantError)
				} else if !strings.HasPrefix(err.Error(), tt.wantError) {
					t.Errorf("expected error %q, got %q", tt.wantError, err.Error())
				}
			}
		})
	}
}
