package normalize

// Shape lists the irregular fields of one resource kind. Every shape also gets the
// base treatment: id derivation, modified sentinel removal, thumbnail collapse and
// urls flattening.
type Shape struct {
	Kind string
	// Collections are summary lists, either items-wrapped or bare arrays.
	Collections []string
	// Summaries are single, nullable cross-references.
	Summaries []string
	// Images are lists of {path, extension} objects.
	Images []string
	// Strings are fields that may arrive as numbers but are strings in the model.
	Strings []string
	// Collapses flattens type-keyed arrays, keyed by field name.
	Collapses map[string]Collapse
}

// Normalize applies the shape to a raw result object and returns a new canonical object.
func (s Shape) Normalize(raw Object) (Object, error) {
	if raw == nil {
		return nil, &FieldError{Kind: s.Kind, Field: FieldResourceURI, Err: ErrMissingResourceURI}
	}
	obj := Clone(raw)

	if err := DeriveID(obj); err != nil {
		return nil, &FieldError{Kind: s.Kind, Field: FieldResourceURI, Err: err}
	}
	DropBadModified(obj)

	if err := s.apply(obj, FieldThumbnail, ImageURL); err != nil {
		return nil, err
	}
	if err := s.apply(obj, FieldURLs, URLsCollapse.Flatten); err != nil {
		return nil, err
	}

	for _, field := range s.Collections {
		if err := s.apply(obj, field, func(v any) (any, error) { return Summaries(v) }); err != nil {
			return nil, err
		}
	}
	for _, field := range s.Summaries {
		if err := s.apply(obj, field, Summary); err != nil {
			return nil, err
		}
	}
	for _, field := range s.Images {
		if err := s.apply(obj, field, ImageURLs); err != nil {
			return nil, err
		}
	}
	for _, field := range s.Strings {
		if err := s.apply(obj, field, Stringify); err != nil {
			return nil, err
		}
	}
	for field, c := range s.Collapses {
		if err := s.apply(obj, field, c.Flatten); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// apply replaces obj[field] with fn(obj[field]) when the field is present.
func (s Shape) apply(obj Object, field string, fn func(any) (any, error)) error {
	v, ok := obj[field]
	if !ok {
		return nil
	}
	out, err := fn(v)
	if err != nil {
		return &FieldError{Kind: s.Kind, Field: field, Err: err}
	}
	obj[field] = out
	return nil
}

// Shapes of the six resource kinds.
var (
	CharacterShape = Shape{
		Kind:        "character",
		Collections: []string{"comics", "series", "stories", "events"},
	}

	ComicShape = Shape{
		Kind: "comic",
		Collections: []string{
			"creators", "characters", "stories", "events",
			"variants", "collections", "collectedIssues",
		},
		Summaries: []string{"series"},
		Images:    []string{"images"},
		Strings:   []string{"isbn", "diamondCode", "upc", "ean", "issn", "issueNumber"},
		Collapses: map[string]Collapse{
			"dates":  DatesCollapse,
			"prices": PricesCollapse,
		},
	}

	CreatorShape = Shape{
		Kind:        "creator",
		Collections: []string{"comics", "series", "stories", "events"},
	}

	SeriesShape = Shape{
		Kind:        "series",
		Collections: []string{"creators", "characters", "stories", "comics", "events"},
		Summaries:   []string{"next", "previous"},
	}

	EventShape = Shape{
		Kind:        "event",
		Collections: []string{"creators", "characters", "stories", "comics", "series"},
		Summaries:   []string{"next", "previous"},
	}

	StoryShape = Shape{
		Kind:        "story",
		Collections: []string{"creators", "characters", "series", "comics", "events"},
		Summaries:   []string{"originalIssue"},
	}
)

// Character normalizes a raw character result.
func Character(raw Object) (Object, error) { return CharacterShape.Normalize(raw) }

// Comic normalizes a raw comic result.
func Comic(raw Object) (Object, error) { return ComicShape.Normalize(raw) }

// Creator normalizes a raw creator result.
func Creator(raw Object) (Object, error) { return CreatorShape.Normalize(raw) }

// Series normalizes a raw series result.
func Series(raw Object) (Object, error) { return SeriesShape.Normalize(raw) }

// Event normalizes a raw event result.
func Event(raw Object) (Object, error) { return EventShape.Normalize(raw) }

// Story normalizes a raw story result.
func Story(raw Object) (Object, error) { return StoryShape.Normalize(raw) }
