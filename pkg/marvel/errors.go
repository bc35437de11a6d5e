package marvel

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is wrapped by AuthenticationError when a key is empty.
	ErrMissingCredentials = errors.New("missing public or private key")
	// ErrNoResults is wrapped by APIError when a single-item request returns nothing.
	ErrNoResults = errors.New("no results")
	// ErrMissingCapability is wrapped by CacheError when the cache lacks Get or Store.
	ErrMissingCapability = errors.New("cache is missing a required method")
)

// AuthenticationError is returned by New when credentials are missing.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "marvel: authentication: " + e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return ErrMissingCredentials
}

// APIError is the single error kind for upstream failures: error messages,
// non-success status codes and payloads that cannot be turned into models.
type APIError struct {
	// Message is the upstream message or status description.
	Message string
	// Code is the upstream code field, when present.
	Code string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("marvel api: %s: %v", e.Message, e.Cause)
	}
	return "marvel api: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// CacheError reports a broken cache: a missing capability or a failing backend.
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("marvel cache %s: %v", e.Op, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// IsAuthenticationError checks if an error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAPIError checks if an error is an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsCacheError checks if an error is a CacheError.
func IsCacheError(err error) bool {
	var cacheErr *CacheError
	return errors.As(err, &cacheErr)
}
