package testutil

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

//go:embed testdata/*.json
var fixtures embed.FS

// Fixture returns the raw JSON of a canned API result object, e.g. "comic".
func Fixture(t testing.TB, name string) string {
	t.Helper()

	data, err := fixtures.ReadFile("testdata/" + name + ".json")
	if err != nil {
		t.Fatalf("failed to read fixture %q: %v", name, err)
	}
	return string(data)
}

// Object decodes a fixture into a generic JSON object, keeping numbers as json.Number.
func Object(t testing.TB, name string) map[string]any {
	t.Helper()
	return Decode(t, Fixture(t, name))
}

// Decode decodes raw JSON into a generic object the way the client does.
func Decode(t testing.TB, raw string) map[string]any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	return out
}

// Envelope wraps raw result objects in a successful API response envelope.
func Envelope(results ...string) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, `{"code":200,"status":"Ok","etag":"f0fbae65eb2f8f28bdeea0a29be8749a","data":{"offset":0,"limit":20,"total":%d,"count":%d,"results":[`,
		len(results), len(results))
	b.WriteString(strings.Join(results, ","))
	b.WriteString(`]}}`)
	return b.String()
}

// ErrorBody returns an upstream error body carrying a code and status.
func ErrorBody(code int, status string) string {
	return fmt.Sprintf(`{"code":%d,"status":%q}`, code, status)
}

// MessageBody returns an upstream error body carrying a code and message,
// the shape used for authentication failures.
func MessageBody(code, message string) string {
	return fmt.Sprintf(`{"code":%q,"message":%q}`, code, message)
}
