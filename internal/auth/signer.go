// Package auth builds the authentication parameters required by every Marvel API call.
package auth

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"time"
)

// Query parameter names added by the signer. They change on every call and must never
// take part in cache keys.
const (
	ParamTimestamp = "ts"
	ParamAPIKey    = "apikey"
	ParamHash      = "hash"
)

// TimestampLayout is the second-resolution timestamp format sent as "ts".
const TimestampLayout = "2006-01-0215:04:05"

// Signer produces the ts/apikey/hash triple for a key pair.
type Signer struct {
	publicKey  string
	privateKey string
	now        func() time.Time
}

// NewSigner creates a Signer for the given key pair.
func NewSigner(publicKey, privateKey string) *Signer {
	return &Signer{
		publicKey:  publicKey,
		privateKey: privateKey,
		now:        time.Now,
	}
}

// WithClock returns a copy of the signer that reads the current time from now.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s2 := *s
	if now != nil {
		s2.now = now
	}
	return &s2
}

// Hash returns md5(ts + privateKey + publicKey) as lowercase hex.
func (s *Signer) Hash(ts string) string {
	h := md5.New()
	h.Write([]byte(ts))
	h.Write([]byte(s.privateKey))
	h.Write([]byte(s.publicKey))
	return hex.EncodeToString(h.Sum(nil))
}

// Sign returns a copy of params extended with the authentication triple.
// The caller's params are left untouched.
func (s *Signer) Sign(params url.Values) url.Values {
	signed := make(url.Values, len(params)+3)
	for k, v := range params {
		signed[k] = append([]string(nil), v...)
	}

	ts := s.now().Format(TimestampLayout)
	signed.Set(ParamTimestamp, ts)
	signed.Set(ParamAPIKey, s.publicKey)
	signed.Set(ParamHash, s.Hash(ts))
	return signed
}

// IsAuthParam reports whether name is one of the signer's parameters.
func IsAuthParam(name string) bool {
	switch name {
	case ParamTimestamp, ParamAPIKey, ParamHash:
		return true
	}
	return false
}
