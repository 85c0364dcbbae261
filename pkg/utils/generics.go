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

func JoinFunc[S any](list []S, separator string, f func(S) string) string {
	sep := ""
	r := ""
	for _, e := range list {
		r += sep + f(e)
		sep = separator
	}
	return r
}
