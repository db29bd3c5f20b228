package ranges

import "container/list"

// This file contains the eager transforms. Each one reads every position of
// its inputs up front and stores the results, so the returned Range is
// expanded and has O(1) access no matter how slow the inputs were.
//
// Multi-range procedures receive one element per input range as a variadic
// slice. The slice is reused between calls: procedures must not keep it.

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn positionally across rs and returns the results as a new
// Range. The result has the length of the shortest input.
//
//	a, _ := ranges.Numeric(0, 3)
//	b, _ := ranges.Numeric(10, 13)
//	sums := ranges.Map(func(xs ...int) int { return xs[0] + xs[1] }, a, b)
//	// → 10 12 14
//
// The order in which fn is applied is unspecified.
func Map[T, U any](fn func(...T) U, rs ...*Range[T]) *Range[U] {
	return Wrap(mapInto(sequential, fn, rs))
}

// MapToSlice is [Map] returning a plain slice.
func MapToSlice[T, U any](fn func(...T) U, rs ...*Range[T]) []U {
	return mapInto(sequential, fn, rs)
}

// MapToList is [Map] returning a [list.List] of U values.
func MapToList[T, U any](fn func(...T) U, rs ...*Range[T]) *list.List {
	return sliceToList(mapInto(sequential, fn, rs))
}

// ─────────────────────────────────────────────────────────────────────────────
// For-each
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn positionally across rs in increasing index order, stopping
// at the end of the shortest input.
func ForEach[T any](fn func(...T), rs ...*Range[T]) {
	n := shortest(rs)
	buf := make([]T, len(rs))
	for i := 0; i < n; i++ {
		fn(gather(buf, rs, i)...)
	}
}

// ForEach calls fn(element) for every element of r in increasing index order.
func (r *Range[T]) ForEach(fn func(T)) {
	for i := 0; i < r.length; i++ {
		fn(r.acc.At(i))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter-map
// ─────────────────────────────────────────────────────────────────────────────

// FilterMap applies fn positionally across rs and keeps the values for which
// fn reports true, in their original relative order.
//
//	r, _ := ranges.Numeric(0, 10)
//	halves := ranges.FilterMap(func(xs ...int) (int, bool) {
//	    return xs[0] / 2, xs[0]%2 == 0
//	}, r) // → 0 1 2 3 4
func FilterMap[T, U any](fn func(...T) (U, bool), rs ...*Range[T]) *Range[U] {
	return Wrap(filterMapInto(sequential, fn, rs))
}

// FilterMapToList is [FilterMap] returning a [list.List].
func FilterMapToList[T, U any](fn func(...T) (U, bool), rs ...*Range[T]) *list.List {
	return sliceToList(filterMapInto(sequential, fn, rs))
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the elements of r for which pred returns true.
func (r *Range[T]) Filter(pred func(T) bool) *Range[T] {
	return Wrap(filterInto(sequential, pred, r, true))
}

// FilterToList is [Range.Filter] returning a [list.List].
func (r *Range[T]) FilterToList(pred func(T) bool) *list.List {
	return sliceToList(filterInto(sequential, pred, r, true))
}

// Remove returns the elements of r for which pred returns false.
// It is the complement of [Range.Filter].
func (r *Range[T]) Remove(pred func(T) bool) *Range[T] {
	return Wrap(filterInto(sequential, pred, r, false))
}

// RemoveToList is [Range.Remove] returning a [list.List].
func (r *Range[T]) RemoveToList(pred func(T) bool) *list.List {
	return sliceToList(filterInto(sequential, pred, r, false))
}
