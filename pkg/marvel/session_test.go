package marvel

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/lepinkainen/marvelgo/internal/auth"
	"github.com/lepinkainen/marvelgo/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		public  string
		private string
	}{
		{name: "no public key", private: "priv"},
		{name: "no private key", public: "pub"},
		{name: "no keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.public, tt.private)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, IsAuthenticationError(err))
			assert.ErrorIs(t, err, ErrMissingCredentials)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	s, err := New("pub", "priv")
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, s.BaseURL())
	assert.Equal(t, DefaultTimeout, s.timeout)
	assert.Nil(t, s.cache)
	assert.Equal(t, "marvelgo/"+Version+" ("+runtime.GOOS+"; "+runtime.GOARCH+")", s.UserAgent())
}

func TestNew_Options(t *testing.T) {
	s, err := New("pub", "priv",
		WithBaseURL("http://example.test/v1/public/"),
		WithTimeout(3*time.Second),
		WithHTTPClient(nil),
	)
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/v1/public", s.BaseURL())
	assert.Equal(t, 3*time.Second, s.timeout)
	assert.NotNil(t, s.httpClient)
}

func TestSession_SignsRequests(t *testing.T) {
	s, transport := newTestSession(t)

	transport.RegisterResponder("GET", testBaseURL+"/series/466",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			ts := testNow.Format(auth.TimestampLayout)

			assert.Equal(t, ts, q.Get("ts"))
			assert.Equal(t, testPublicKey, q.Get("apikey"))
			assert.Equal(t, auth.NewSigner(testPublicKey, testPrivateKey).Hash(ts), q.Get("hash"))
			assert.Equal(t, s.UserAgent(), req.Header.Get("User-Agent"))
			return httpmock.NewStringResponse(200, testutil.Envelope(testutil.Fixture(t, "series"))), nil
		})

	got, err := s.Series(context.Background(), 466)
	require.NoError(t, err)
	assert.Equal(t, int64(466), got.ID)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestSession_ErrorMapping(t *testing.T) {
	c := newMapCache()
	s, transport := newTestSession(t, WithCache(c))
	transport.RegisterResponder("GET", testBaseURL+"/series/-1",
		httpmock.NewStringResponder(409, testutil.ErrorBody(409, "bad request")))

	_, err := s.Series(context.Background(), -1)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.Contains(t, err.Error(), "bad request")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "409", apiErr.Code)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Zero(t, c.stores, "failed responses are not cached")
}

func TestSession_MessageError(t *testing.T) {
	s, transport := newTestSession(t)
	transport.RegisterResponder("GET", testBaseURL+"/comics/1",
		httpmock.NewStringResponder(401, testutil.MessageBody("InvalidCredentials", "The passed API key is invalid.")))

	_, err := s.Comic(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "The passed API key is invalid.", apiErr.Message)
	assert.Equal(t, "InvalidCredentials", apiErr.Code)
}

func TestSession_StringCodeSuccess(t *testing.T) {
	s, transport := newTestSession(t)
	body := strings.Replace(testutil.Envelope(testutil.Fixture(t, "story")), `"code":200`, `"code":"200"`, 1)
	transport.RegisterResponder("GET", testBaseURL+"/stories/93246", httpmock.NewStringResponder(200, body))

	got, err := s.Story(context.Background(), 93246)
	require.NoError(t, err)
	assert.Equal(t, "AVX #1", got.Title)
}

func TestSession_HTTPStatusWithoutEnvelopeCode(t *testing.T) {
	s, transport := newTestSession(t)
	transport.RegisterResponder("GET", testBaseURL+"/events/1",
		httpmock.NewStringResponder(503, `{}`))

	_, err := s.Event(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestSession_InvalidBody(t *testing.T) {
	s, transport := newTestSession(t)
	transport.RegisterResponder("GET", testBaseURL+"/creators/87",
		httpmock.NewStringResponder(502, "<html>Bad Gateway</html>"))

	_, err := s.Creator(context.Background(), 87)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
}

func TestSession_TransportError(t *testing.T) {
	s, transport := newTestSession(t)
	transport.RegisterResponder("GET", testBaseURL+"/creators/87",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := s.Creator(context.Background(), 87)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSession_NoResults(t *testing.T) {
	s, transport := newTestSession(t)
	transport.RegisterResponder("GET", testBaseURL+"/characters/5",
		httpmock.NewStringResponder(200, testutil.Envelope()))

	_, err := s.Character(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, IsAPIError(err))
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSession_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	s, transport := newTestSession(t, WithCache(newMapCache()), WithMetrics(reg))
	transport.RegisterResponder("GET", testBaseURL+"/series/466",
		httpmock.NewStringResponder(200, testutil.Envelope(testutil.Fixture(t, "series"))))

	for range 2 {
		_, err := s.Series(context.Background(), 466)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, promtestutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues("series", "2xx")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(s.metrics.CacheTotal.WithLabelValues("hit")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(s.metrics.CacheTotal.WithLabelValues("miss")))
}
