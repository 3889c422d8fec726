package models

import (
	"iter"
	"slices"
)

// List is an insertion-ordered collection holding exactly one entity kind.
type List[T any] struct {
	items []T
}

// Append adds v at the end. The element type is checked at compile time.
func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Offer appends v only when it is a T and reports whether it did.
// Values of any other kind are dropped without error.
func (l *List[T]) Offer(v any) bool {
	item, ok := v.(T)
	if !ok {
		return false
	}
	l.Append(item)
	return true
}

// Remove drops the first element equal to v and reports whether one was found.
func (l *List[T]) Remove(v T) bool {
	i := slices.IndexFunc(l.items, func(item T) bool { return any(item) == any(v) })
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List[T]) Len() int { return len(l.items) }

// At returns the i-th element in insertion order.
func (l *List[T]) At(i int) T { return l.items[i] }

// Items returns a copy of the elements in insertion order.
func (l *List[T]) Items() []T { return slices.Clone(l.items) }

// All iterates the elements in insertion order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
