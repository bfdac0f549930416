package utils

import (
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
)

// OrderedSet is a set keeping the order
// in which elements have been added first.
type OrderedSet[T comparable] struct {
	list  []T
	index sets.Set[T]
}

func NewOrderedSet[T comparable](elems ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: sets.New[T]()}
	return s.Add(elems...)
}

// Add appends all elements not yet contained in the set.
func (s *OrderedSet[T]) Add(elems ...T) *OrderedSet[T] {
	for _, e := range elems {
		if !s.index.Has(e) {
			s.index.Insert(e)
			s.list = append(s.list, e)
		}
	}
	return s
}

func (s *OrderedSet[T]) Len() int {
	return len(s.list)
}

// List returns the elements in insertion order.
// The result is a copy.
func (s *OrderedSet[T]) List() []T {
	if s.list == nil {
		return []T{}
	}
	return slices.Clone(s.list)
}
