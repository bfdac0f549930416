package utils

import (
	"cmp"
	"slices"
)

func Pointer[T any](t T) *T {
	return &t
}

func MapKeys[K comparable, V any](m map[K]V, cmp ...func(a, b K) int) []K {
	r := []K{}

	for k := range m {
		r = append(r, k)
	}
	if len(cmp) > 0 {
		slices.SortFunc(r, cmp[0])
	}
	return r
}

func OrderedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	r := MapKeys(m)
	slices.Sort(r)
	return r
}

func TransformSlice[E any, A ~[]E, T any](in A, m func(E) T) []T {
	r := make([]T, len(in))
	for i, v := range in {
		r[i] = m(v)
	}
	return r
}

// TransformSliceErr maps a slice and stops at the first failing element.
func TransformSliceErr[E any, A ~[]E, T any](in A, m func(E) (T, error)) ([]T, error) {
	r := make([]T, len(in))
	for i, v := range in {
		t, err := m(v)
		if err != nil {
			return nil, err
		}
		r[i] = t
	}
	return r, nil
}
