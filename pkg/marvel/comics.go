package marvel

import (
	"context"
	"net/url"
)

// Comic requests a comic by id.
func (s *Session) Comic(ctx context.Context, id int) (*Comic, error) {
	return getOne(ctx, s, comics, id)
}

// ComicsList requests comics matching params.
func (s *Session) ComicsList(ctx context.Context, params url.Values) (*List[Comic], error) {
	return getList(ctx, s, comics, params, comics.path)
}

// ComicCharacters requests the characters appearing in a comic.
func (s *Session) ComicCharacters(ctx context.Context, id int, params url.Values) (*List[Character], error) {
	return related(ctx, s, comics.path, id, characters, params)
}

// ComicCreators requests the creators credited on a comic.
func (s *Session) ComicCreators(ctx context.Context, id int, params url.Values) (*List[Creator], error) {
	return related(ctx, s, comics.path, id, creators, params)
}

// ComicEvents requests the events a comic takes part in.
func (s *Session) ComicEvents(ctx context.Context, id int, params url.Values) (*List[Event], error) {
	return related(ctx, s, comics.path, id, events, params)
}

// ComicStories requests the stories in a comic.
func (s *Session) ComicStories(ctx context.Context, id int, params url.Values) (*List[Story], error) {
	return related(ctx, s, comics.path, id, stories, params)
}
