package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/ecotips/internal/adapters/http/middleware"
	"github.com/jsamuelsen/ecotips/internal/platform/config"
	"github.com/jsamuelsen/ecotips/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/ecotips/internal/adapters/clients"

	// maxErrorBody caps how much of a failed response is kept in a StatusError.
	maxErrorBody = 4 << 10

	// maxResponseBody caps how much of a successful response is decoded.
	maxResponseBody = 8 << 20
)

// Client is a GET-only JSON client for the tips API with retries, a circuit
// breaker, tracing, metrics and request/correlation ID propagation.
type Client struct {
	http    *http.Client
	baseURL string
	name    string
	retry   config.RetryConfig
	logger  *slog.Logger
	breaker *CircuitBreaker
	tracer  trace.Tracer

	duration metric.Float64Histogram
	requests metric.Int64Counter

	// sleep waits between attempts. Tests replace it.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a client for cfg.BaseURL. A nil logger falls back to slog.Default().
func New(cfg config.ClientConfig, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base url is required")
	}

	if cfg.ServiceName == "" {
		return nil, errors.New("service name is required")
	}

	if cfg.Retry.MaxAttempts < 1 {
		cfg.Retry.MaxAttempts = 1
	}

	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "clients.Client"),
		slog.String("downstream", cfg.ServiceName),
	)

	meter := otel.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of tips API requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration metric: %w", err)
	}

	requests, err := meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of tips API requests"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request counter: %w", err)
	}

	breaker := NewCircuitBreaker(cfg.CircuitBreaker, func(t Transition) {
		logger.Warn("circuit breaker state changed",
			slog.String("from", t.From.String()),
			slog.String("to", t.To.String()),
		)
	})

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        cfg.Transport.MaxIdleConns,
				MaxIdleConnsPerHost: cfg.Transport.MaxIdleConnsPerHost,
				IdleConnTimeout:     cfg.Transport.IdleConnTimeout,
			},
		},
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		name:     cfg.ServiceName,
		retry:    cfg.Retry,
		logger:   logger,
		breaker:  breaker,
		tracer:   otel.Tracer(instrumentationName),
		duration: duration,
		requests: requests,
		sleep:    sleepCtx,
	}, nil
}

// ServiceName returns the downstream name used in logs, spans and errors.
func (c *Client) ServiceName() string {
	return c.name
}

// CircuitState returns the current state of the circuit breaker.
func (c *Client) CircuitState() State {
	return c.breaker.State()
}

// GetJSON fetches path and decodes a 2xx JSON body into out.
// Non-2xx responses return a *StatusError. Transport failures and 5xx responses
// are retried and end in ErrMaxRetriesExceeded; ErrCircuitOpen is returned while
// the breaker rejects calls.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody)).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return nil
}

// Get performs a GET request. The caller must close the response body.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	start := time.Now()
	logger := logging.FromContext(ctx).With(
		slog.String("downstream", c.name),
		slog.String("path", path),
	)

	if !c.breaker.Allow() {
		c.record(ctx, 0, time.Since(start), "circuit_open")
		logger.Warn("request blocked by circuit breaker")

		return nil, ErrCircuitOpen
	}

	ctx, span := c.tracer.Start(ctx, "GET "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("url.path", path),
			attribute.String("peer.service", c.name),
		),
	)
	defer span.End()

	resp, err := c.attempt(ctx, path, logger)
	elapsed := time.Since(start)

	if err != nil {
		c.breaker.Record(false)
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, 0, elapsed, "error")
		logger.Error("request failed",
			slog.Duration("duration", elapsed),
			slog.Any("error", err),
		)

		return nil, err
	}

	// A 4xx still proves the API is up.
	c.breaker.Record(true)
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	c.record(ctx, resp.StatusCode, elapsed, fmt.Sprintf("%dxx", resp.StatusCode/100))
	logger.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", elapsed),
	)

	return resp, nil
}

// attempt runs up to retry.MaxAttempts tries, backing off between them.
func (c *Client) attempt(ctx context.Context, path string, logger *slog.Logger) (*http.Response, error) {
	var lastErr error

	for n := range c.retry.MaxAttempts {
		if n > 0 {
			wait := c.backoff(n)
			logger.Debug("retrying request",
				slog.Int("attempt", n+1),
				slog.Duration("backoff", wait),
			)

			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
		}

		req, err := c.newRequest(ctx, path)
		if err != nil {
			return nil, err
		}

		resp, err := c.http.Do(req)

		switch {
		case err != nil:
			if !retryable(err) {
				return nil, err
			}

			lastErr = err

		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)

		default:
			return resp, nil
		}

		logger.Debug("attempt failed",
			slog.Int("attempt", n+1),
			slog.Any("error", lastErr),
		)
	}

	return nil, fmt.Errorf("%w: %w", ErrMaxRetriesExceeded, lastErr)
}

func (c *Client) newRequest(ctx context.Context, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}

	if id := middleware.CorrelationIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.HeaderCorrelationID, id)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return req, nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}

// backoff returns InitialInterval * Multiplier^(attempt-1), capped at MaxInterval,
// with ±JitterFactor jitter.
func (c *Client) backoff(attempt int) time.Duration {
	d := float64(c.retry.InitialInterval) * math.Pow(c.retry.Multiplier, float64(attempt-1))
	if limit := float64(c.retry.MaxInterval); limit > 0 && d > limit {
		d = limit
	}

	jitter := (rand.Float64()*2 - 1) * c.retry.JitterFactor //nolint:gosec // jitter only

	return time.Duration(d + d*jitter)
}

func (c *Client) record(ctx context.Context, status int, elapsed time.Duration, result string) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", http.MethodGet),
		attribute.String("peer.service", c.name),
		attribute.String("result", result),
	}

	if status > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", status))
	}

	c.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
	c.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// retryable reports whether err is a network failure worth another attempt.
// Cancellation and deadline errors are final.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError

	return errors.As(err, &opErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
