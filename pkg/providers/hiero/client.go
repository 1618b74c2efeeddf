package hiero

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledger"
	"github.com/hashgraph-labs/ledgerkit/pkg/logging"
	"github.com/hashgraph-labs/ledgerkit/pkg/redact"
	"github.com/hashgraph-labs/ledgerkit/pkg/resilience"
)

// Per-network gateway endpoints.
var gatewayURLs = map[string]string{
	"mainnet":    "https://gateway.hiero.mainnet.example.com/api/v1",
	"testnet":    "https://gateway.hiero.testnet.example.com/api/v1",
	"previewnet": "https://gateway.hiero.previewnet.example.com/api/v1",
}

type Config struct {
	Network     string
	Operator    ledger.EntityID
	OperatorKey string
	// BaseURL overrides the per-network gateway endpoint. Used in tests.
	BaseURL string

	RequestTimeout time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	// RequestsPerSecond throttles outgoing gateway calls. Zero means the
	// gateway default of 10 rps.
	RequestsPerSecond float64
}

// Client talks to a transaction gateway over HTTPS. Transient gateway
// failures are retried; business refusals come back as the sentinel
// errors in the ledger package and are never retried.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryPolicy
	logger  *slog.Logger
}

func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		var ok bool
		baseURL, ok = gatewayURLs[cfg.Network]
		if !ok {
			return nil, fmt.Errorf("unknown network %q", cfg.Network)
		}
	}
	if cfg.Operator.IsZero() {
		return nil, errors.New("operator account required")
	}
	if cfg.OperatorKey == "" {
		return nil, errors.New("operator key required")
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}

	retry := resilience.NewRetryPolicy(cfg.MaxRetries, cfg.RetryBackoff)
	retry.IsRetryable = func(err error) bool {
		if ledger.IsRejection(err) {
			return false
		}
		return resilience.IsRateLimit(err) || errors.Is(err, errGatewayUnavailable)
	}

	return &Client{
		cfg:     cfg,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), int(rps)),
		breaker: resilience.NewCircuitBreaker(3, 30*time.Second),
		retry:   retry,
		logger:  logging.NewComponentLogger(slog.Default(), "hiero_gateway"),
	}, nil
}

func (c *Client) Operator() ledger.EntityID {
	return c.cfg.Operator
}

var errGatewayUnavailable = errors.New("gateway unavailable")

// errorBody is the gateway's error envelope. Status carries a network
// response code such as INSUFFICIENT_PAYER_BALANCE.
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// do issues one gateway request and decodes the response into out.
// Retries and the circuit breaker wrap it; do itself makes one attempt.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Operator-Account", c.cfg.Operator.String())
	req.Header.Set("Authorization", "Bearer "+c.cfg.OperatorKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		raw, _ := io.ReadAll(resp.Body)
		return resilience.RateLimitError{Backend: "hiero", Message: string(raw)}
	case resp.StatusCode >= 500:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s: %s", errGatewayUnavailable, resp.Status, raw)
	case resp.StatusCode >= 400:
		var eb errorBody
		if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil {
			return fmt.Errorf("gateway error %s", resp.Status)
		}
		return mapStatus(eb)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// call runs do under the rate-limit circuit breaker and retry policy.
func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	if !c.breaker.Allow() {
		return fmt.Errorf("%w: circuit open after repeated rate limits", errGatewayUnavailable)
	}
	err := c.retry.Do(ctx, func() error {
		return c.do(ctx, method, path, in, out)
	})
	if err != nil {
		c.breaker.OnError(err)
		if !ledger.IsRejection(err) {
			c.logger.Error("gateway_call_failed",
				slog.String("method", method),
				slog.String("path", path),
				slog.String("error", redact.Text(err.Error())))
		}
		return err
	}
	c.breaker.OnSuccess()
	return nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.call(ctx, http.MethodPost, path, in, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.call(ctx, http.MethodGet, path, nil, out)
}
