package marvel

import (
	"context"
	"net/url"
)

// Character requests a character by id.
func (s *Session) Character(ctx context.Context, id int) (*Character, error) {
	return getOne(ctx, s, characters, id)
}

// CharactersList requests characters matching params.
func (s *Session) CharactersList(ctx context.Context, params url.Values) (*List[Character], error) {
	return getList(ctx, s, characters, params, characters.path)
}

// CharacterComics requests the comics a character appears in.
func (s *Session) CharacterComics(ctx context.Context, id int, params url.Values) (*List[Comic], error) {
	return related(ctx, s, characters.path, id, comics, params)
}

// CharacterEvents requests the events a character appears in.
func (s *Session) CharacterEvents(ctx context.Context, id int, params url.Values) (*List[Event], error) {
	return related(ctx, s, characters.path, id, events, params)
}

// CharacterSeries requests the series a character appears in.
func (s *Session) CharacterSeries(ctx context.Context, id int, params url.Values) (*List[Series], error) {
	return related(ctx, s, characters.path, id, series, params)
}

// CharacterStories requests the stories a character appears in.
func (s *Session) CharacterStories(ctx context.Context, id int, params url.Values) (*List[Story], error) {
	return related(ctx, s, characters.path, id, stories, params)
}
