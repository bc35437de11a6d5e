package marvel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lepinkainen/marvelgo/internal/auth"
	"github.com/lepinkainen/marvelgo/internal/metrics"
	"github.com/lepinkainen/marvelgo/internal/normalize"
)

// successCode is the envelope code of a successful response.
const successCode = "200"

// envelope is the wrapper around every API response.
type envelope struct {
	Code    json.RawMessage `json:"code"`
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    *struct {
		Offset  int                `json:"offset"`
		Limit   int                `json:"limit"`
		Total   int                `json:"total"`
		Count   int                `json:"count"`
		Results []normalize.Object `json:"results"`
	} `json:"data"`
}

// page is the unwrapped data section of a response.
type page struct {
	Offset  int
	Limit   int
	Total   int
	Count   int
	Results []normalize.Object
}

// decodeEnvelope parses a response body, keeping numbers as json.Number.
func decodeEnvelope(body []byte) (*envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

// code returns the envelope code as a string, or "" when absent.
func (e *envelope) code() string {
	if len(e.Code) == 0 || string(e.Code) == "null" {
		return ""
	}
	return strings.Trim(string(e.Code), `"`)
}

// message returns the envelope message and whether one was present.
func (e *envelope) message() (string, bool) {
	if len(e.Message) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(e.Message, &s); err == nil {
		return s, true
	}
	return string(e.Message), true
}

// err maps an upstream failure to an APIError, or returns nil.
func (e *envelope) err(statusCode int) error {
	if msg, ok := e.message(); ok {
		return &APIError{Message: msg, Code: e.code(), StatusCode: statusCode}
	}
	if c := e.code(); c != "" && c != successCode {
		status := e.Status
		if status == "" {
			status = "request failed with code " + c
		}
		return &APIError{Message: status, Code: c, StatusCode: statusCode}
	}
	return nil
}

func (e *envelope) page() *page {
	if e.Data == nil {
		return &page{}
	}
	return &page{
		Offset:  e.Data.Offset,
		Limit:   e.Data.Limit,
		Total:   e.Data.Total,
		Count:   e.Data.Count,
		Results: e.Data.Results,
	}
}

// endpoint joins path segments under the base URL.
func (s *Session) endpoint(path []string) string {
	return s.baseURL + "/" + strings.Join(path, "/")
}

// CacheKey returns the canonical cache key of a request: the endpoint URL
// followed by the query parameters sorted by name. Authentication parameters
// are excluded.
func (s *Session) CacheKey(path []string, params url.Values) string {
	key := s.endpoint(path)

	query := make(url.Values, len(params))
	for name, values := range params {
		if auth.IsAuthParam(name) {
			continue
		}
		query[name] = values
	}
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	return key
}

func (s *Session) cacheGet(key string) (string, bool, error) {
	if s.cache == nil {
		return "", false, nil
	}
	getter, ok := s.cache.(Getter)
	if !ok {
		return "", false, &CacheError{Op: "get", Err: fmt.Errorf("%T has no Get method: %w", s.cache, ErrMissingCapability)}
	}
	payload, found, err := getter.Get(key)
	if err != nil {
		return "", false, &CacheError{Op: "get", Err: err}
	}
	return payload, found, nil
}

func (s *Session) cacheStore(key, payload string) error {
	if s.cache == nil {
		return nil
	}
	storer, ok := s.cache.(Storer)
	if !ok {
		return &CacheError{Op: "store", Err: fmt.Errorf("%T has no Store method: %w", s.cache, ErrMissingCapability)}
	}
	if err := storer.Store(key, payload); err != nil {
		return &CacheError{Op: "store", Err: err}
	}
	return nil
}

// fetch returns the results of a GET request, from the cache when possible.
// The cache holds the complete response body, so hits and fresh responses go
// through the same decoding.
func (s *Session) fetch(ctx context.Context, path []string, params url.Values) (*page, error) {
	key := s.CacheKey(path, params)

	cached, found, err := s.cacheGet(key)
	if err != nil {
		s.metrics.IncError("cache")
		return nil, err
	}
	if found {
		env, err := decodeEnvelope([]byte(cached))
		if err == nil {
			s.logger.Debug("Cache hit", "key", key)
			s.metrics.IncCache(metrics.CacheHit)
			return env.page(), nil
		}
		s.logger.Warn("Failed to decode cached response, will refetch", "key", key, "error", err)
	}
	if s.cache != nil {
		s.logger.Debug("Cache miss", "key", key)
		s.metrics.IncCache(metrics.CacheMiss)
	}

	body, statusCode, err := s.get(ctx, path, params)
	if err != nil {
		s.metrics.IncError("transport")
		return nil, err
	}

	env, err := decodeEnvelope(body)
	if err != nil {
		s.metrics.IncError("api")
		return nil, &APIError{Message: "invalid response body", StatusCode: statusCode, Cause: err}
	}
	if err := env.err(statusCode); err != nil {
		s.metrics.IncError("api")
		return nil, err
	}
	if statusCode != http.StatusOK {
		s.metrics.IncError("api")
		return nil, &APIError{Message: http.StatusText(statusCode), StatusCode: statusCode}
	}

	if err := s.cacheStore(key, string(body)); err != nil {
		s.metrics.IncError("cache")
		return nil, err
	}
	if s.cache != nil {
		s.logger.Debug("Response cached", "key", key)
	}
	return env.page(), nil
}

// fetchOne returns the first result of a request.
func (s *Session) fetchOne(ctx context.Context, path []string) (normalize.Object, error) {
	p, err := s.fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if len(p.Results) == 0 {
		return nil, &APIError{Message: "no results for " + strings.Join(path, "/"), Cause: ErrNoResults}
	}
	return p.Results[0], nil
}

// get signs and sends the request, returning the body and HTTP status.
func (s *Session) get(ctx context.Context, path []string, params url.Values) ([]byte, int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	endpoint := s.endpoint(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+s.signer.Sign(params).Encode(), nil)
	if err != nil {
		return nil, 0, &APIError{Message: "invalid request", Cause: err}
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	s.logger.Debug("Requesting", "endpoint", endpoint)
	start := time.Now()
	resp, err := s.httpClient.Do(req)
	s.metrics.ObserveDuration(time.Since(start))
	if err != nil {
		s.metrics.IncRequest(path[0], 0)
		return nil, 0, &APIError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	s.metrics.IncRequest(path[0], resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &APIError{Message: "read response", StatusCode: resp.StatusCode, Cause: err}
	}
	return body, resp.StatusCode, nil
}

// pathID formats a resource id as a path segment.
func pathID(id int) string {
	return strconv.Itoa(id)
}
