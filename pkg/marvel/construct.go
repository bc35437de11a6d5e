package marvel

import (
	"encoding/json"
	"fmt"

	"github.com/lepinkainen/marvelgo/internal/normalize"
)

// resource ties a model type to its API collection and normalizer.
type resource[T any] struct {
	kind      string
	path      string
	normalize func(normalize.Object) (normalize.Object, error)
}

var (
	characters = resource[Character]{kind: "character", path: "characters", normalize: normalize.Character}
	comics     = resource[Comic]{kind: "comic", path: "comics", normalize: normalize.Comic}
	creators   = resource[Creator]{kind: "creator", path: "creators", normalize: normalize.Creator}
	events     = resource[Event]{kind: "event", path: "events", normalize: normalize.Event}
	series     = resource[Series]{kind: "series", path: "series", normalize: normalize.Series}
	stories    = resource[Story]{kind: "story", path: "stories", normalize: normalize.Story}
)

// construct turns one raw result object into a validated model.
func (r resource[T]) construct(raw normalize.Object) (T, error) {
	var out T

	canonical, err := r.normalize(raw)
	if err != nil {
		return out, err
	}
	data, err := json.Marshal(canonical)
	if err != nil {
		return out, fmt.Errorf("encode canonical %s: %w", r.kind, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", r.kind, err)
	}
	if err := validate.Struct(&out); err != nil {
		return out, fmt.Errorf("%s: %w", r.kind, validationError(err))
	}
	return out, nil
}

// constructAll builds every result. Construction is all-or-nothing.
func (r resource[T]) constructAll(results []normalize.Object) ([]T, error) {
	out := make([]T, 0, len(results))
	for i, raw := range results {
		item, err := r.construct(raw)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// invalidPayload wraps a construction failure in the API error taxonomy.
func (r resource[T]) invalidPayload(err error) error {
	return &APIError{Message: "invalid " + r.kind + " payload", Cause: err}
}
