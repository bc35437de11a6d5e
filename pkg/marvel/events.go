package marvel

import (
	"context"
	"net/url"
)

// Event requests an event by id.
func (s *Session) Event(ctx context.Context, id int) (*Event, error) {
	return getOne(ctx, s, events, id)
}

// EventsList requests events matching params.
func (s *Session) EventsList(ctx context.Context, params url.Values) (*List[Event], error) {
	return getList(ctx, s, events, params, events.path)
}

// EventCharacters requests the characters featured in an event.
func (s *Session) EventCharacters(ctx context.Context, id int, params url.Values) (*List[Character], error) {
	return related(ctx, s, events.path, id, characters, params)
}

// EventComics requests the comics that are part of an event.
func (s *Session) EventComics(ctx context.Context, id int, params url.Values) (*List[Comic], error) {
	return related(ctx, s, events.path, id, comics, params)
}

// EventCreators requests the creators who worked on an event.
func (s *Session) EventCreators(ctx context.Context, id int, params url.Values) (*List[Creator], error) {
	return related(ctx, s, events.path, id, creators, params)
}

// EventSeries requests the series that are part of an event.
func (s *Session) EventSeries(ctx context.Context, id int, params url.Values) (*List[Series], error) {
	return related(ctx, s, events.path, id, series, params)
}

// EventStories requests the stories that are part of an event.
func (s *Session) EventStories(ctx context.Context, id int, params url.Values) (*List[Story], error) {
	return related(ctx, s, events.path, id, stories, params)
}
