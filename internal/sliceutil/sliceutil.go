// Package sliceutil provides small generic slice helpers.
package sliceutil

// First returns the first element matching pred, and whether one was found.
func First[T any](s []T, pred func(T) bool) (T, bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// FirstEqual returns the first element equal to want, and whether one was
// found. Callers choosing between an exact value and a predicate dispatch
// here or to First explicitly.
func FirstEqual[T comparable](s []T, want T) (T, bool) {
	for _, v := range s {
		if v == want {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element of s, and whether s was non-empty.
func Last[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

// Filter returns the elements of s for which pred is true, in order.
// A nil result means no element matched.
func Filter[T any](s []T, pred func(T) bool) []T {
	var out []T
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map applies f to every element of s.
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Contains reports whether s contains want.
func Contains[T comparable](s []T, want T) bool {
	_, ok := FirstEqual(s, want)
	return ok
}
