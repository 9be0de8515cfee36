// Reelmatch - Genre-based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// HTTPSourceConfig configures a remote catalog.
type HTTPSourceConfig struct {
	// URL of the catalog document. Required.
	URL string

	// Format of the document. Empty infers from the URL path, then from
	// the response Content-Type.
	Format Format

	// Options control row conversion.
	Options LoadOptions

	// Timeout bounds a single HTTP attempt. Default: 30s
	Timeout time.Duration

	// RetryMax is the number of retries after the first attempt. Zero uses
	// the default of 3; a negative value disables retries.
	RetryMax int

	// MaxBytes caps the response body; a larger body fails the load with
	// ErrCatalogTooLarge. Default: 64 MiB
	MaxBytes int64

	// FailureThreshold is the number of consecutive failed loads that opens
	// the circuit breaker. Default: 3
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before a trial load.
	// Default: 1m
	OpenTimeout time.Duration
}

func (c *HTTPSourceConfig) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.RetryMax < 0 {
		c.RetryMax = 0
	} else if c.RetryMax == 0 {
		c.RetryMax = 3
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 64 << 20
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 3
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = time.Minute
	}
}

// HTTPSource fetches the catalog over HTTP. Transient failures are retried
// with exponential backoff; repeated failed loads trip a circuit breaker so
// a dead upstream is not hammered on every refresh tick.
type HTTPSource struct {
	cfg     HTTPSourceConfig
	client  *retryablehttp.Client
	breaker *gobreaker.CircuitBreaker[[]Item]
	logger  zerolog.Logger
}

// NewHTTPSource creates an HTTPSource.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewHTTPSource(cfg HTTPSourceConfig, logger zerolog.Logger) (*HTTPSource, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("catalog url must be an absolute http(s) URL, got %q", cfg.URL)
	}
	if _, err := ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = retryLogger{logger: logger}

	s := &HTTPSource{cfg: cfg, client: client, logger: logger}
	s.breaker = gobreaker.NewCircuitBreaker[[]Item](gobreaker.Settings{
		Name:        "catalog-http",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Catalog source circuit breaker state changed")
		},
	})

	return s, nil
}

// Name implements Source.
func (s *HTTPSource) Name() string {
	return "http:" + s.cfg.URL
}

// Load implements Source. While the breaker is open Load fails fast with
// gobreaker.ErrOpenState.
func (s *HTTPSource) Load(ctx context.Context) ([]Item, error) {
	items, err := s.breaker.Execute(func() ([]Item, error) {
		return s.fetch(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return items, nil
}

// BreakerState reports the circuit breaker state.
func (s *HTTPSource) BreakerState() gobreaker.State {
	return s.breaker.State()
}

func (s *HTTPSource) fetch(ctx context.Context) ([]Item, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv, application/json;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %d", ErrFetchStatus, resp.StatusCode)
	}

	format := s.cfg.Format
	if format == "" {
		if u, perr := url.Parse(s.cfg.URL); perr == nil {
			format, _ = FormatFromPath(u.Path)
		}
	}
	if format == "" {
		if format, err = FormatFromContentType(resp.Header.Get("Content-Type")); err != nil {
			return nil, err
		}
	}

	// One byte past the cap distinguishes a full body from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read catalog body: %w", err)
	}
	if int64(len(body)) > s.cfg.MaxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrCatalogTooLarge, s.cfg.MaxBytes)
	}
	return Decode(bytes.NewReader(body), format, s.cfg.Options)
}

// retryLogger adapts zerolog to retryablehttp.LeveledLogger.
type retryLogger struct {
	logger zerolog.Logger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.emit(l.logger.Error(), msg, kv) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.emit(l.logger.Warn(), msg, kv) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.emit(l.logger.Debug(), msg, kv) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.emit(l.logger.Trace(), msg, kv) }

func (l retryLogger) emit(e *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}
