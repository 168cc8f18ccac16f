package outbound

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Version is the library version reported in the X-Outbound-Client header.
const Version = "0.1.0"

// Client sends requests to the Outbound API. It is immutable once built by
// [New] and safe for concurrent use.
type Client struct {
	apiKey      string
	options     *Options
	restyClient *resty.Client
	configErr   error
	now         func() time.Time
}

// New creates a client for the given API key. Configuration problems are
// not returned here; every call on a misconfigured client returns a
// [Result] wrapping [ErrInvalidOptions].
func New(apiKey string, opts ...Option) *Client {
	options := newClientOptions()

	for _, o := range opts {
		o(options)
	}

	c := &Client{
		apiKey:  apiKey,
		options: options,
		now:     time.Now,
	}

	if strings.TrimSpace(apiKey) == "" {
		c.configErr = fmt.Errorf("%w: api key must be set", ErrInvalidOptions)
		return c
	}

	if err := options.Validate(); err != nil {
		c.configErr = fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		return c
	}

	// Keep-alives are off so that every call opens its own connection.
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DisableKeepAlives:   true,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	c.restyClient = resty.New().
		SetBaseURL(options.baseURL).
		SetTransport(transport).
		SetHeaders(options.requestHeaders).
		SetTimeout(options.timeout).
		SetRetryCount(0).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetLogger(options.requestLogger)

	return c
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	if c == nil || c.options == nil {
		return ""
	}

	return c.options.baseURL
}

// ready returns a non-nil error result when the client cannot send.
func (c *Client) ready() *Result {
	if c == nil || c.options == nil {
		res := Result{Err: ErrInit}
		fallbackLogger.Errorf("%v", res.Err)
		return &res
	}

	if c.configErr != nil {
		return c.reject(c.configErr)
	}

	if c.restyClient == nil {
		return c.reject(ErrInit)
	}

	return nil
}

func (c *Client) reject(err error) *Result {
	c.options.requestLogger.Errorf("%v", err)
	return &Result{Err: err}
}

func (c *Client) post(ctx context.Context, path string, body any) Result {
	payload, err := json.Marshal(body)
	if err != nil {
		return *c.reject(fmt.Errorf("failed to encode request body for %s: %w", path, err))
	}

	logger := c.options.requestLogger
	requestID := uuid.NewString()

	logger.Debugf("POST %s (request %s): %s", path, requestID, payload)

	response, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, c.apiKey).
		SetHeader(requestIDHeader, requestID).
		SetBody(payload).
		Post(path)
	if err != nil {
		logger.Errorf("POST %s (request %s) failed with %s error: %v", path, requestID, transportFailureKind(err), err)
		return Result{Err: fmt.Errorf("%w: POST %s: %w", ErrConnection, path, err)}
	}

	status := response.StatusCode()

	if status >= http.StatusOK && status < http.StatusBadRequest {
		logger.Debugf("POST %s (request %s) returned %d", path, requestID, status)
		return Result{ReceivedCall: true}
	}

	httpErr := &HTTPError{
		StatusCode: status,
		Body:       strings.TrimSpace(string(response.Body())),
	}

	logger.Errorf("POST %s (request %s) failed: %v", path, requestID, httpErr)

	return Result{Err: httpErr, ReceivedCall: true}
}

// fallbackLogger reports calls on a client that was never initialized.
var fallbackLogger RequestLogger = NewLevelLogger(os.Stderr, LevelError)
