package ranges

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether all of rs have the same length and eq holds for
// every pair of neighbouring ranges at every index. It returns false at the
// first length mismatch or failed comparison. Fewer than two ranges are
// trivially equal.
//
//	ranges.Equal(func(a, b int) bool { return a == b }, r1, r2)
func Equal[T any](eq func(a, b T) bool, rs ...*Range[T]) bool {
	if len(rs) < 2 {
		return true
	}
	n := rs[0].length
	for _, r := range rs[1:] {
		if r.length != n {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := 1; j < len(rs); j++ {
			if !eq(rs[j-1].acc.At(i), rs[j].acc.At(i)) {
				return false
			}
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Count / Any / Every
// ─────────────────────────────────────────────────────────────────────────────

// Count returns how many positions of rs satisfy pred, up to the shortest
// input.
func Count[T any](pred func(...T) bool, rs ...*Range[T]) int {
	n, c := shortest(rs), 0
	buf := make([]T, len(rs))
	for i := 0; i < n; i++ {
		if pred(gather(buf, rs, i)...) {
			c++
		}
	}
	return c
}

// Any applies fn positionally across rs and returns the first value for which
// fn reports true. It returns the zero value and false if there is none.
func Any[T, U any](fn func(...T) (U, bool), rs ...*Range[T]) (U, bool) {
	n := shortest(rs)
	buf := make([]T, len(rs))
	for i := 0; i < n; i++ {
		if v, ok := fn(gather(buf, rs, i)...); ok {
			return v, true
		}
	}
	var zero U
	return zero, false
}

// Every applies fn positionally across rs. It returns false at the first
// position where fn reports false; otherwise it returns the value of the last
// application and true. With no positions it returns the zero value and true.
func Every[T, U any](fn func(...T) (U, bool), rs ...*Range[T]) (U, bool) {
	var last U
	n := shortest(rs)
	buf := make([]T, len(rs))
	for i := 0; i < n; i++ {
		v, ok := fn(gather(buf, rs, i)...)
		if !ok {
			var zero U
			return zero, false
		}
		last = v
	}
	return last, true
}

// Count returns the number of elements of r satisfying pred.
func (r *Range[T]) Count(pred func(T) bool) int {
	c := 0
	for i := 0; i < r.length; i++ {
		if pred(r.acc.At(i)) {
			c++
		}
	}
	return c
}

// Any reports whether at least one element of r satisfies pred.
func (r *Range[T]) Any(pred func(T) bool) bool {
	return r.Index(pred) >= 0
}

// Every reports whether all elements of r satisfy pred. It is true for an
// empty range.
func (r *Range[T]) Every(pred func(T) bool) bool {
	for i := 0; i < r.length; i++ {
		if !pred(r.acc.At(i)) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Index
// ─────────────────────────────────────────────────────────────────────────────

// Index returns the smallest position at which pred holds across rs, or -1.
// The scan stops at the end of the shortest input.
func Index[T any](pred func(...T) bool, rs ...*Range[T]) int {
	n := shortest(rs)
	buf := make([]T, len(rs))
	for i := 0; i < n; i++ {
		if pred(gather(buf, rs, i)...) {
			return i
		}
	}
	return -1
}

// IndexRight returns the greatest position at which pred holds across rs, or
// -1. Every input must have the same length; otherwise IndexRight returns
// [ErrLengthMismatch] without calling pred.
func IndexRight[T any](pred func(...T) bool, rs ...*Range[T]) (int, error) {
	for _, r := range rs {
		if r.length != rs[0].length {
			return -1, fmt.Errorf("%w: lengths %d and %d", ErrLengthMismatch, rs[0].length, r.length)
		}
	}
	buf := make([]T, len(rs))
	for i := shortest(rs) - 1; i >= 0; i-- {
		if pred(gather(buf, rs, i)...) {
			return i, nil
		}
	}
	return -1, nil
}

// Index returns the position of the first element satisfying pred, or -1.
func (r *Range[T]) Index(pred func(T) bool) int {
	for i := 0; i < r.length; i++ {
		if pred(r.acc.At(i)) {
			return i
		}
	}
	return -1
}

// IndexRight returns the position of the last element satisfying pred, or -1.
func (r *Range[T]) IndexRight(pred func(T) bool) int {
	for i := r.length - 1; i >= 0; i-- {
		if pred(r.acc.At(i)) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Take-while / Drop-while
// ─────────────────────────────────────────────────────────────────────────────

// TakeWhile returns the longest prefix of r whose elements all satisfy pred.
// The result is a view.
func (r *Range[T]) TakeWhile(pred func(T) bool) *Range[T] {
	return r.view(0, r.prefixLen(pred))
}

// DropWhile returns r without the longest prefix whose elements all satisfy
// pred. The result is a view.
func (r *Range[T]) DropWhile(pred func(T) bool) *Range[T] {
	return r.view(r.prefixLen(pred), r.length)
}

// TakeWhileRight returns the longest suffix of r whose elements all satisfy
// pred. The result is a view.
func (r *Range[T]) TakeWhileRight(pred func(T) bool) *Range[T] {
	return r.view(r.suffixStart(pred), r.length)
}

// DropWhileRight returns r without the longest suffix whose elements all
// satisfy pred. The result is a view.
func (r *Range[T]) DropWhileRight(pred func(T) bool) *Range[T] {
	return r.view(0, r.suffixStart(pred))
}

// prefixLen is the index of the first element failing pred, or Len().
func (r *Range[T]) prefixLen(pred func(T) bool) int {
	if i := r.Index(func(v T) bool { return !pred(v) }); i >= 0 {
		return i
	}
	return r.length
}

// suffixStart is one past the index of the last element failing pred, or 0.
func (r *Range[T]) suffixStart(pred func(T) bool) int {
	return r.IndexRight(func(v T) bool { return !pred(v) }) + 1
}

// ─────────────────────────────────────────────────────────────────────────────
// Folds
// ─────────────────────────────────────────────────────────────────────────────

// Fold accumulates across rs from left to right:
//
//	state₀ = seed, stateᵢ₊₁ = kons(stateᵢ, rs[0][i], rs[1][i], …)
//
// and returns the final state, or seed if the shortest input is empty.
//
//	a, _ := ranges.Numeric(0, 100)
//	b, _ := ranges.Numeric(50, 70)
//	ranges.Fold(func(acc int, xs ...int) int { return acc + xs[0] + xs[1] }, 0, a, b)
//	// → 1380
func Fold[T, S any](kons func(S, ...T) S, seed S, rs ...*Range[T]) S {
	n := shortest(rs)
	buf := make([]T, len(rs))
	state := seed
	for i := 0; i < n; i++ {
		state = kons(state, gather(buf, rs, i)...)
	}
	return state
}

// FoldRight is [Fold] walking from the last shared position down to 0.
// kons receives the state first and the elements after it, the same order as
// Fold; list-style fold-right puts the elements first.
//
//	r := ranges.Wrap([]int{1, 2, 3})
//	ranges.FoldRight(func(acc []int, xs ...int) []int { return append(acc, xs[0]) }, nil, r)
//	// → [3 2 1]
func FoldRight[T, S any](kons func(S, ...T) S, seed S, rs ...*Range[T]) S {
	buf := make([]T, len(rs))
	state := seed
	for i := shortest(rs) - 1; i >= 0; i-- {
		state = kons(state, gather(buf, rs, i)...)
	}
	return state
}
