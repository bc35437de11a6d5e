// Package normalize turns raw Marvel API result objects into canonical JSON.
//
// The upstream API is inconsistent: nested collections arrive wrapped in
// {available, returned, items} envelopes, images are split into path and
// extension, dates/prices/urls are arrays of type-tagged objects, some modified
// timestamps are the malformed "-0001-11-30T00:00:00-0500" sentinel and isbn or
// diamondCode can be either numbers or strings. The functions in this package
// repair those shapes so the result can be decoded field-by-field into typed
// models. They never mutate their input and applying them twice yields the same
// output as applying them once.
//
// Raw objects are expected to be decoded with json.Decoder.UseNumber so numeric
// values arrive as json.Number and survive re-encoding without loss.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Object is a decoded JSON object.
type Object = map[string]any

var (
	// ErrMissingResourceURI is returned when an object has no resourceURI, so its id cannot be derived.
	ErrMissingResourceURI = errors.New("missing resourceURI")
	// ErrUnexpectedShape is returned for values that match none of the known upstream shapes.
	ErrUnexpectedShape = errors.New("unexpected shape")
)

// Wire field names shared by every resource.
const (
	FieldID          = "id"
	FieldResourceURI = "resourceURI"
	FieldModified    = "modified"
	FieldThumbnail   = "thumbnail"
	FieldURLs        = "urls"
)

// FieldError reports which field of which resource failed to normalize.
type FieldError struct {
	Kind  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("normalize %s: field %q: %v", e.Kind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Clone returns a shallow copy of obj.
func Clone(obj Object) Object {
	out := make(Object, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	return out
}

// IsSentinel reports whether s is one of the malformed "-..." date strings.
func IsSentinel(s string) bool {
	return strings.HasPrefix(s, "-")
}

// DropBadModified removes a modified timestamp that is empty or a sentinel.
func DropBadModified(obj Object) {
	v, ok := obj[FieldModified]
	if !ok {
		return
	}
	if s, isString := v.(string); isString && (s == "" || IsSentinel(s)) {
		delete(obj, FieldModified)
	}
}

// DeriveID sets obj["id"] from the trailing path segment of obj["resourceURI"].
// An explicit id already present in obj is overwritten.
func DeriveID(obj Object) error {
	uri, _ := obj[FieldResourceURI].(string)
	if uri == "" {
		return ErrMissingResourceURI
	}
	id, err := IDFromURI(uri)
	if err != nil {
		return err
	}
	obj[FieldID] = id
	return nil
}

// IDFromURI parses the integer in the last path segment of uri.
func IDFromURI(uri string) (int64, error) {
	trimmed := strings.TrimRight(uri, "/")
	tail := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, err := strconv.ParseInt(tail, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("resourceURI %q has no numeric id: %w", uri, ErrUnexpectedShape)
	}
	return id, nil
}

// ImageURL collapses a {path, extension} image object into "path.extension".
// nil stays nil and an already collapsed string is returned unchanged.
func ImageURL(v any) (any, error) {
	switch img := v.(type) {
	case nil:
		return nil, nil
	case string:
		return img, nil
	case Object:
		path, _ := img["path"].(string)
		ext, _ := img["extension"].(string)
		if path == "" {
			return nil, fmt.Errorf("image without path: %w", ErrUnexpectedShape)
		}
		if ext == "" {
			return path, nil
		}
		return path + "." + ext, nil
	default:
		return nil, fmt.Errorf("image of type %T: %w", v, ErrUnexpectedShape)
	}
}

// ImageURLs collapses every image object in a list.
func ImageURLs(v any) (any, error) {
	if v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("images of type %T: %w", v, ErrUnexpectedShape)
	}
	out := make([]any, 0, len(list))
	for _, item := range list {
		u, err := ImageURL(item)
		if err != nil {
			return nil, err
		}
		if u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

// UnwrapItems returns the items array of an {available, returned, items} envelope.
// A bare array is returned unchanged and nil becomes an empty list.
func UnwrapItems(v any) ([]any, error) {
	switch c := v.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return c, nil
	case Object:
		items, ok := c["items"]
		if !ok {
			return nil, fmt.Errorf("collection without items: %w", ErrUnexpectedShape)
		}
		if items == nil {
			return []any{}, nil
		}
		list, ok := items.([]any)
		if !ok {
			return nil, fmt.Errorf("items of type %T: %w", items, ErrUnexpectedShape)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("collection of type %T: %w", v, ErrUnexpectedShape)
	}
}

// Summary normalizes a cross-reference object: its id is derived from resourceURI.
// nil stays nil.
func Summary(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(Object)
	if !ok {
		return nil, fmt.Errorf("summary of type %T: %w", v, ErrUnexpectedShape)
	}
	out := Clone(obj)
	if err := DeriveID(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summaries unwraps an items envelope and normalizes every summary in it.
func Summaries(v any) ([]any, error) {
	items, err := UnwrapItems(v)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		s, err := Summary(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Collapse describes how a type-keyed array is flattened into an object.
type Collapse struct {
	// ValueField is the key holding each entry's value ("date", "price", "url").
	ValueField string
	// DropSentinel skips entries whose string value starts with "-".
	DropSentinel bool
	// DropEmpty skips entries whose value is empty, null or numerically zero.
	DropEmpty bool
}

// Flatten collapses [{type, <value>}, ...] into {type: value}. The last entry wins
// when a type repeats. An already flattened object is returned as a copy and nil
// stays nil.
func (c Collapse) Flatten(v any) (any, error) {
	switch entries := v.(type) {
	case nil:
		return nil, nil
	case Object:
		return Clone(entries), nil
	case []any:
		out := make(Object, len(entries))
		for i, e := range entries {
			entry, ok := e.(Object)
			if !ok {
				return nil, fmt.Errorf("entry %d of type %T: %w", i, e, ErrUnexpectedShape)
			}
			kind, _ := entry["type"].(string)
			if kind == "" {
				return nil, fmt.Errorf("entry %d without type: %w", i, ErrUnexpectedShape)
			}
			value := entry[c.ValueField]
			if c.DropSentinel {
				if s, isString := value.(string); isString && IsSentinel(s) {
					continue
				}
			}
			if c.DropEmpty && isEmptyValue(value) {
				continue
			}
			out[kind] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("type-keyed array of type %T: %w", v, ErrUnexpectedShape)
	}
}

var (
	// DatesCollapse flattens comic dates, dropping sentinel dates.
	DatesCollapse = Collapse{ValueField: "date", DropSentinel: true, DropEmpty: true}
	// PricesCollapse flattens comic prices, dropping empty amounts.
	PricesCollapse = Collapse{ValueField: "price", DropEmpty: true}
	// URLsCollapse flattens the urls array every resource carries.
	URLsCollapse = Collapse{ValueField: "url", DropEmpty: true}
)

// Stringify coerces a number to its decimal string form. Strings and nil pass through.
func Stringify(v any) (any, error) {
	switch n := v.(type) {
	case nil, string:
		return n, nil
	case json.Number:
		return n.String(), nil
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	default:
		return nil, fmt.Errorf("value of type %T is not a string or number: %w", v, ErrUnexpectedShape)
	}
}

func isEmptyValue(v any) bool {
	switch n := v.(type) {
	case nil:
		return true
	case string:
		return n == ""
	case json.Number:
		f, err := n.Float64()
		return err == nil && f == 0
	case float64:
		return n == 0
	}
	return false
}
