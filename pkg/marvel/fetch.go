package marvel

import (
	"context"
	"net/url"
)

// getOne requests a single resource by id and constructs it.
func getOne[T any](ctx context.Context, s *Session, r resource[T], id int) (*T, error) {
	raw, err := s.fetchOne(ctx, []string{r.path, pathID(id)})
	if err != nil {
		return nil, err
	}
	item, err := r.construct(raw)
	if err != nil {
		s.metrics.IncError("api")
		return nil, r.invalidPayload(err)
	}
	return &item, nil
}

// getList requests a list endpoint and constructs every result as r.
func getList[T any](ctx context.Context, s *Session, r resource[T], params url.Values, path ...string) (*List[T], error) {
	p, err := s.fetch(ctx, path, params)
	if err != nil {
		return nil, err
	}
	items, err := r.constructAll(p.Results)
	if err != nil {
		s.metrics.IncError("api")
		return nil, r.invalidPayload(err)
	}
	return &List[T]{
		items:  items,
		Offset: p.Offset,
		Limit:  p.Limit,
		Total:  p.Total,
		Count:  p.Count,
	}, nil
}

// related requests the r resources linked to the parent resource id.
func related[T any](ctx context.Context, s *Session, parent string, id int, r resource[T], params url.Values) (*List[T], error) {
	return getList(ctx, s, r, params, parent, pathID(id), r.path)
}
