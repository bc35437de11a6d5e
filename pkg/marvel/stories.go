package marvel

import (
	"context"
	"net/url"
)

// Story requests a story by id.
func (s *Session) Story(ctx context.Context, id int) (*Story, error) {
	return getOne(ctx, s, stories, id)
}

// StoriesList requests stories matching params.
func (s *Session) StoriesList(ctx context.Context, params url.Values) (*List[Story], error) {
	return getList(ctx, s, stories, params, stories.path)
}

func (s *Session) StoryCharacters(ctx context.Context, id int, params url.Values) (*List[Character], error) {
	return related(ctx, s, stories.path, id, characters, params)
}

func (s *Session) StoryComics(ctx context.Context, id int, params url.Values) (*List[Comic], error) {
	return related(ctx, s, stories.path, id, comics, params)
}

func (s *Session) StoryCreators(ctx context.Context, id int, params url.Values) (*List[Creator], error) {
	return related(ctx, s, stories.path, id, creators, params)
}

func (s *Session) StoryEvents(ctx context.Context, id int, params url.Values) (*List[Event], error) {
	return related(ctx, s, stories.path, id, events, params)
}

func (s *Session) StorySeries(ctx context.Context, id int, params url.Values) (*List[Series], error) {
	return related(ctx, s, stories.path, id, series, params)
}
