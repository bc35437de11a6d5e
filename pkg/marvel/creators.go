package marvel

import (
	"context"
	"net/url"
)

// Creator requests a creator by id.
func (s *Session) Creator(ctx context.Context, id int) (*Creator, error) {
	return getOne(ctx, s, creators, id)
}

// CreatorsList requests creators matching params.
func (s *Session) CreatorsList(ctx context.Context, params url.Values) (*List[Creator], error) {
	return getList(ctx, s, creators, params, creators.path)
}

func (s *Session) CreatorComics(ctx context.Context, id int, params url.Values) (*List[Comic], error) {
	return related(ctx, s, creators.path, id, comics, params)
}

func (s *Session) CreatorEvents(ctx context.Context, id int, params url.Values) (*List[Event], error) {
	return related(ctx, s, creators.path, id, events, params)
}

func (s *Session) CreatorSeries(ctx context.Context, id int, params url.Values) (*List[Series], error) {
	return related(ctx, s, creators.path, id, series, params)
}

func (s *Session) CreatorStories(ctx context.Context, id int, params url.Values) (*List[Story], error) {
	return related(ctx, s, creators.path, id, stories, params)
}
