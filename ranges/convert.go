package ranges

import (
	"container/list"
	"fmt"
	"iter"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Materialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToSlice returns a new slice holding every element of r in index order.
func (r *Range[T]) ToSlice() []T {
	out := make([]T, r.length)
	for i := range out {
		out[i] = r.acc.At(i)
	}
	return out
}

// ToList returns a new [list.List] holding every element of r in index order.
func (r *Range[T]) ToList() *list.List {
	l := list.New()
	for i := 0; i < r.length; i++ {
		l.PushBack(r.acc.At(i))
	}
	return l
}

// ToString concatenates the elements of r, which must all be runes.
// Returns [ErrTypeMismatch] naming the first element of another type.
//
//	s, _ := ranges.ToString(ranges.FromString("héllo").Reverse()) // "olléh"
func ToString[T any](r *Range[T]) (string, error) {
	var sb strings.Builder
	sb.Grow(r.length)
	for i := 0; i < r.length; i++ {
		v := r.acc.At(i)
		c, ok := any(v).(rune)
		if !ok {
			return "", fmt.Errorf("%w: element %d is %T, not a rune", ErrTypeMismatch, i, v)
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

func sliceToList[T any](items []T) *list.List {
	l := list.New()
	for _, v := range items {
		l.PushBack(v)
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the index/element pairs of r, like
// [slices.All].
func (r *Range[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(i, r.acc.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of r, like [slices.Values].
func (r *Range[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.length; i++ {
			if !yield(r.acc.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index/element pairs of r from the
// last element to the first, like [slices.Backward].
func (r *Range[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := r.length - 1; i >= 0; i-- {
			if !yield(i, r.acc.At(i)) {
				return
			}
		}
	}
}

// Generator is a single-use, forward-only producer of the elements of a
// Range. It is not safe for concurrent use.
type Generator[T any] struct {
	r    *Range[T]
	next int
}

// ToGenerator returns a [Generator] positioned at the first element of r.
// Construction is O(1).
func (r *Range[T]) ToGenerator() *Generator[T] {
	return &Generator[T]{r: r}
}

// Next returns the next element and true, or the zero value and false once
// the range is exhausted. Calling Next after exhaustion keeps returning false.
func (g *Generator[T]) Next() (T, bool) {
	if g.next >= g.r.length {
		var zero T
		return zero, false
	}
	v := g.r.acc.At(g.next)
	g.next++
	return v, true
}

// Remaining returns the number of elements Next has yet to produce.
func (g *Generator[T]) Remaining() int { return g.r.length - g.next }
