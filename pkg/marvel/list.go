package marvel

import "iter"

// List is an ordered, read-only sequence of models returned by a list request,
// together with the paging information of the response.
type List[T any] struct {
	items []T

	// Offset, Limit, Total and Count echo the response's paging fields.
	Offset int
	Limit  int
	Total  int
	Count  int
}

// NewList wraps items in a List.
func NewList[T any](items []T) *List[T] {
	return &List[T]{items: items, Count: len(items), Total: len(items)}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the item at index i. Negative indexes count from the end.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	n := l.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return zero, false
	}
	return l.items[i], true
}

// Slice returns the items from start up to, but excluding, stop, taking every
// step-th item. Negative bounds count from the end and are clamped to the list.
// A step below one is treated as one.
func (l *List[T]) Slice(start, stop, step int) *List[T] {
	n := l.Len()
	start = clampIndex(start, n)
	stop = clampIndex(stop, n)
	if step < 1 {
		step = 1
	}

	out := make([]T, 0)
	for i := start; i < stop; i += step {
		out = append(out, l.items[i])
	}
	return NewList(out)
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// All iterates over index and item pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range l.Len() {
			if !yield(i, l.items[i]) {
				return
			}
		}
	}
}

// Items returns a copy of the underlying items.
func (l *List[T]) Items() []T {
	out := make([]T, l.Len())
	if l != nil {
		copy(out, l.items)
	}
	return out
}
