package marvel

import (
	"context"
	"net/url"
)

// Series requests a series by id.
func (s *Session) Series(ctx context.Context, id int) (*Series, error) {
	return getOne(ctx, s, series, id)
}

// SeriesList requests series matching params.
func (s *Session) SeriesList(ctx context.Context, params url.Values) (*List[Series], error) {
	return getList(ctx, s, series, params, series.path)
}

// SeriesCharacters requests the characters appearing in a series.
func (s *Session) SeriesCharacters(ctx context.Context, id int, params url.Values) (*List[Character], error) {
	return related(ctx, s, series.path, id, characters, params)
}

// SeriesComics requests the comics in a series.
func (s *Session) SeriesComics(ctx context.Context, id int, params url.Values) (*List[Comic], error) {
	return related(ctx, s, series.path, id, comics, params)
}

// SeriesCreators requests the creators who worked on a series.
func (s *Session) SeriesCreators(ctx context.Context, id int, params url.Values) (*List[Creator], error) {
	return related(ctx, s, series.path, id, creators, params)
}

// SeriesEvents requests the events a series takes part in.
func (s *Session) SeriesEvents(ctx context.Context, id int, params url.Values) (*List[Event], error) {
	return related(ctx, s, series.path, id, events, params)
}

// SeriesStories requests the stories in a series.
func (s *Session) SeriesStories(ctx context.Context, id int, params url.Values) (*List[Story], error) {
	return related(ctx, s, series.path, id, stories, params)
}
