// Package cache provides response caches for the Marvel client.
//
// Every backend stores raw response bodies under a canonical request key and
// exposes the same capability pair the client looks for: Get and Store. Entries
// carry an expiry date ("YYYY-MM-DD"); Sweep removes entries whose expiry is
// strictly before today. Without a configured lifetime entries are stamped with
// NoExpiry and are never swept.
package cache

import (
	"errors"
	"log/slog"
	"time"
)

// DateLayout is the layout of stored expiry dates.
const DateLayout = "2006-01-02"

// NoExpiry is the expiry stamped on entries when no lifetime is configured.
const NoExpiry = "9999-12-31"

// ErrClosed is returned by operations on a closed cache.
var ErrClosed = errors.New("cache is closed")

// Cache is the full contract implemented by every backend in this package.
// The client itself only requires Get and Store.
type Cache interface {
	// Get returns the payload stored under key. A missing key is not an error.
	Get(key string) (string, bool, error)
	// Store writes payload under key, replacing any previous entry.
	Store(key, payload string) error
	// Sweep deletes every entry that expired before today.
	Sweep() error
	// Clear deletes every entry.
	Clear() error
	Close() error
}

// Option configures a cache backend.
type Option func(*options)

type options struct {
	expireDays int
	now        func() time.Time
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		now:    time.Now,
		logger: slog.Default(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithExpireDays sets how many days a stored entry stays valid. Zero or a
// negative value disables expiry.
func WithExpireDays(days int) Option {
	return func(o *options) {
		o.expireDays = days
	}
}

// WithClock overrides the clock used to compute expiry dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// ExpiryDate returns the expiry stamp for an entry stored at now.
func ExpiryDate(now time.Time, days int) string {
	if days <= 0 {
		return NoExpiry
	}
	return now.UTC().AddDate(0, 0, days).Format(DateLayout)
}

// Today returns now formatted as an expiry date.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

func (o options) expiry() string {
	return ExpiryDate(o.now(), o.expireDays)
}

func (o options) today() string {
	return Today(o.now())
}

// ttl returns the lifetime backends with native expiry should use. Zero means none.
func (o options) ttl() time.Duration {
	if o.expireDays <= 0 {
		return 0
	}
	return time.Duration(o.expireDays) * 24 * time.Hour
}
