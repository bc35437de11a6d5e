// Package marvel is a typed client for the Marvel Comics API.
//
// A Session signs every request, caches raw responses by a canonical request
// key and turns the API's irregular JSON into typed models:
//
//	s, err := marvel.New(publicKey, privateKey, marvel.WithCache(c))
//	comic, err := s.Comic(ctx, 4372)
//
// Errors are one of *AuthenticationError, *APIError or *CacheError.
package marvel

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/lepinkainen/marvelgo/internal/auth"
	"github.com/lepinkainen/marvelgo/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Version is reported in the User-Agent header.
var Version = "0.3.0"

const (
	// DefaultBaseURL is the public API root.
	DefaultBaseURL = "http://gateway.marvel.com:80/v1/public"
	// DefaultTimeout bounds a single upstream request.
	DefaultTimeout = 10 * time.Second
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Getter is the read capability a cache must provide.
type Getter interface {
	Get(key string) (string, bool, error)
}

// Storer is the write capability a cache must provide.
type Storer interface {
	Store(key, payload string) error
}

// Session requests Marvel API endpoints.
type Session struct {
	signer     *auth.Signer
	baseURL    string
	userAgent  string
	httpClient HTTPDoer
	timeout    time.Duration
	cache      any
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

// Option is a functional option for configuring the Session.
type Option func(*Session)

// New creates a Session. Both keys are required.
func New(publicKey, privateKey string, opts ...Option) (*Session, error) {
	if publicKey == "" || privateKey == "" {
		return nil, &AuthenticationError{Message: "a public and a private key are required"}
	}

	s := &Session{
		baseURL:    DefaultBaseURL,
		userAgent:  fmt.Sprintf("marvelgo/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.signer = auth.NewSigner(publicKey, privateKey).WithClock(s.now)

	return s, nil
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(s *Session) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithBaseURL sets a custom API root.
func WithBaseURL(base string) Option {
	return func(s *Session) {
		if base != "" {
			s.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCache sets the response cache. c must implement Getter and Storer; a
// cache missing either fails with a *CacheError when first used.
func WithCache(c any) Option {
	return func(s *Session) {
		s.cache = c
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics registers the client's Prometheus collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Session) {
		if reg != nil {
			s.metrics = metrics.New(reg)
		}
	}
}

// WithTimeout bounds each upstream request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithClock overrides the clock used to sign requests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// BaseURL returns the API root requests are sent to.
func (s *Session) BaseURL() string {
	return s.baseURL
}

// UserAgent returns the User-Agent header sent with every request.
func (s *Session) UserAgent() string {
	return s.userAgent
}
