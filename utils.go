package sparsecs

import "reflect"

// typeName returns a printable name for T, used in errors and logs.
func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// grow returns s with length n, zero-filling new elements and at least
// doubling the capacity when it has to reallocate.
func grow[T any](s []T, n int) []T {
	if n <= len(s) {
		return s
	}
	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		clear(s[old:])
		return s
	}
	ns := make([]T, n, max(2*cap(s), n))
	copy(ns, s)
	return ns
}
