package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/lepinkainen/marvelgo/pkg/marvel"
)

type getFunc func(ctx context.Context, s *marvel.Session, id int) (any, error)

type listFunc func(ctx context.Context, s *marvel.Session, params url.Values) (any, error)

type relatedFunc func(ctx context.Context, s *marvel.Session, id int, params url.Values) (any, error)

type api = marvel.Session

var getters = map[string]getFunc{
	"character": getter((*api).Character),
	"comic":     getter((*api).Comic),
	"creator":   getter((*api).Creator),
	"event":     getter((*api).Event),
	"series":    getter((*api).Series),
	"story":     getter((*api).Story),
}

var listers = map[string]listFunc{
	"character": lister((*api).CharactersList),
	"comic":     lister((*api).ComicsList),
	"creator":   lister((*api).CreatorsList),
	"event":     lister((*api).EventsList),
	"series":    lister((*api).SeriesList),
	"story":     lister((*api).StoriesList),
}

// relations maps a kind to the related collections it exposes.
var relations = map[string]map[string]relatedFunc{
	"character": {
		"comics":  relater((*api).CharacterComics),
		"events":  relater((*api).CharacterEvents),
		"series":  relater((*api).CharacterSeries),
		"stories": relater((*api).CharacterStories),
	},
	"comic": {
		"characters": relater((*api).ComicCharacters),
		"creators":   relater((*api).ComicCreators),
		"events":     relater((*api).ComicEvents),
		"stories":    relater((*api).ComicStories),
	},
	"creator": {
		"comics":  relater((*api).CreatorComics),
		"events":  relater((*api).CreatorEvents),
		"series":  relater((*api).CreatorSeries),
		"stories": relater((*api).CreatorStories),
	},
	"event": {
		"characters": relater((*api).EventCharacters),
		"comics":     relater((*api).EventComics),
		"creators":   relater((*api).EventCreators),
		"series":     relater((*api).EventSeries),
		"stories":    relater((*api).EventStories),
	},
	"series": {
		"characters": relater((*api).SeriesCharacters),
		"comics":     relater((*api).SeriesComics),
		"creators":   relater((*api).SeriesCreators),
		"events":     relater((*api).SeriesEvents),
		"stories":    relater((*api).SeriesStories),
	},
	"story": {
		"characters": relater((*api).StoryCharacters),
		"comics":     relater((*api).StoryComics),
		"creators":   relater((*api).StoryCreators),
		"events":     relater((*api).StoryEvents),
		"series":     relater((*api).StorySeries),
	},
}

func getter[T any](fn func(*marvel.Session, context.Context, int) (*T, error)) getFunc {
	return func(ctx context.Context, s *marvel.Session, id int) (any, error) {
		v, err := fn(s, ctx, id)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func lister[T any](fn func(*marvel.Session, context.Context, url.Values) (*marvel.List[T], error)) listFunc {
	return func(ctx context.Context, s *marvel.Session, params url.Values) (any, error) {
		l, err := fn(s, ctx, params)
		if err != nil {
			return nil, err
		}
		return newListOutput(l), nil
	}
}

func relater[T any](fn func(*marvel.Session, context.Context, int, url.Values) (*marvel.List[T], error)) relatedFunc {
	return func(ctx context.Context, s *marvel.Session, id int, params url.Values) (any, error) {
		l, err := fn(s, ctx, id, params)
		if err != nil {
			return nil, err
		}
		return newListOutput(l), nil
	}
}

// listOutput is the printed form of a list response.
type listOutput[T any] struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Total   int `json:"total"`
	Count   int `json:"count"`
	Results []T `json:"results"`
}

func newListOutput[T any](l *marvel.List[T]) listOutput[T] {
	return listOutput[T]{
		Offset:  l.Offset,
		Limit:   l.Limit,
		Total:   l.Total,
		Count:   l.Count,
		Results: l.Items(),
	}
}

func toValues(params map[string]string) url.Values {
	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}
	return values
}

// GetCmd fetches a single resource.
type GetCmd struct {
	Kind string `arg:"" enum:"character,comic,creator,event,series,story" help:"Resource kind: character, comic, creator, event, series or story"`
	ID   int    `arg:"" help:"Resource id"`
}

func (g *GetCmd) Run(cli *CLI) error {
	return withSession(func(ctx context.Context, s *marvel.Session) error {
		v, err := getters[g.Kind](ctx, s, g.ID)
		if err != nil {
			return fmt.Errorf("get %s %d: %w", g.Kind, g.ID, err)
		}
		return writeOutput(stdout, cli.Format, v)
	})
}

// ListCmd lists resources of one kind.
type ListCmd struct {
	Kind   string            `arg:"" enum:"character,comic,creator,event,series,story" help:"Resource kind"`
	Params map[string]string `short:"p" help:"Query parameter as key=value, repeatable"`
}

func (l *ListCmd) Run(cli *CLI) error {
	return withSession(func(ctx context.Context, s *marvel.Session) error {
		v, err := listers[l.Kind](ctx, s, toValues(l.Params))
		if err != nil {
			return fmt.Errorf("list %s: %w", l.Kind, err)
		}
		return writeOutput(stdout, cli.Format, v)
	})
}

// RelatedCmd lists resources related to another resource.
type RelatedCmd struct {
	Kind     string            `arg:"" enum:"character,comic,creator,event,series,story" help:"Parent resource kind"`
	ID       int               `arg:"" help:"Parent resource id"`
	Relation string            `arg:"" enum:"characters,comics,creators,events,series,stories" help:"Related collection"`
	Params   map[string]string `short:"p" help:"Query parameter as key=value, repeatable"`
}

func (r *RelatedCmd) Run(cli *CLI) error {
	fn, ok := relations[r.Kind][r.Relation]
	if !ok {
		return fmt.Errorf("a %s has no %s", r.Kind, r.Relation)
	}
	return withSession(func(ctx context.Context, s *marvel.Session) error {
		v, err := fn(ctx, s, r.ID, toValues(r.Params))
		if err != nil {
			return fmt.Errorf("%s %d %s: %w", r.Kind, r.ID, r.Relation, err)
		}
		return writeOutput(stdout, cli.Format, v)
	})
}

func withSession(fn func(ctx context.Context, s *marvel.Session) error) error {
	ctx := context.Background()
	s, closeSession, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer closeSession()
	return fn(ctx, s)
}
