package ranges

import "fmt"

// Accessor maps an index in [0, length) to an element.
//
// Implementations are expected to run in O(1) and must be pure: the same
// index always yields the same element. The time an accessor takes is the
// "average accessing time" of every Range built on top of it.
type Accessor[T any] interface {
	At(i int) T
}

// AccessorFunc adapts a plain function to the [Accessor] interface.
type AccessorFunc[T any] func(i int) T

// At calls f(i).
func (f AccessorFunc[T]) At(i int) T { return f(i) }

// Indexer is a sequence that knows its own length and can be read by index,
// such as a proxy type over some other container.
type Indexer[T any] interface {
	// Len returns the length of the sequence.
	Len() int

	// At returns the element at index i. It is only called with
	// 0 <= i < Len().
	At(i int) T
}

// Range is an immutable, indexable virtual sequence of T.
//
// A Range is a length plus an [Accessor]. Nothing about it changes after
// construction; every operation that looks like a transformation returns a
// new Range. The zero value is not usable; build ranges with the
// constructors in this package.
type Range[T any] struct {
	length int
	acc    Accessor[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Type test
// ─────────────────────────────────────────────────────────────────────────────

// tagged is implemented only by *Range[T]. The method is unexported, so no
// type outside this package can satisfy it, whatever its shape.
type tagged interface {
	isRange() bool
}

func (r *Range[T]) isRange() bool { return r != nil && r.acc != nil }

// IsRange reports whether v is a *Range of any element type. Nil pointers and
// look-alike types are not ranges.
func IsRange(v any) bool {
	t, ok := v.(tagged)
	return ok && t.isRange()
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in r.
func (r *Range[T]) Len() int { return r.length }

// IsEmpty reports whether r has no elements.
func (r *Range[T]) IsEmpty() bool { return r.length == 0 }

// Ref returns the element at index n.
// Returns [ErrInvalidIndex] if n is outside [0, Len()).
func (r *Range[T]) Ref(n int) (T, error) {
	if n < 0 || n >= r.length {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrInvalidIndex, n, r.length)
	}
	return r.acc.At(n), nil
}

// First returns the element at index 0, or [ErrEmptyRange].
func (r *Range[T]) First() (T, error) {
	if r.length == 0 {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrEmptyRange, ErrInvalidIndex)
	}
	return r.acc.At(0), nil
}

// Last returns the element at index Len()-1, or [ErrEmptyRange].
func (r *Range[T]) Last() (T, error) {
	if r.length == 0 {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrEmptyRange, ErrInvalidIndex)
	}
	return r.acc.At(r.length - 1), nil
}

// String returns a short description such as "Range[len=10]".
// It does not read any elements.
func (r *Range[T]) String() string {
	return fmt.Sprintf("Range[len=%d]", r.length)
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal accessor variants
// ─────────────────────────────────────────────────────────────────────────────

// sliceAccessor reads a dense buffer. It backs Wrap (borrowed slice),
// FromSlice and every eager transform (owned slice).
type sliceAccessor[T any] []T

func (s sliceAccessor[T]) At(i int) T { return s[i] }

// window reads parent at base + dir*i. It represents every view: forward
// subranges have dir 1, reversed ones dir -1. Windows over windows are always
// collapsed onto the root accessor.
type window[T any] struct {
	parent Accessor[T]
	base   int
	dir    int
}

func (w window[T]) At(i int) T { return w.parent.At(w.base + w.dir*i) }

// emptyAccessor is never called; it only gives empty ranges a non-nil acc.
type emptyAccessor[T any] struct{}

func (emptyAccessor[T]) At(i int) T {
	panic(fmt.Sprintf("ranges: At(%d) on empty range", i))
}

// ─────────────────────────────────────────────────────────────────────────────
// Multi-range helpers
// ─────────────────────────────────────────────────────────────────────────────

// shortest returns the smallest length among rs, or 0 if rs is empty.
func shortest[T any](rs []*Range[T]) int {
	if len(rs) == 0 {
		return 0
	}
	n := rs[0].length
	for _, r := range rs[1:] {
		if r.length < n {
			n = r.length
		}
	}
	return n
}

// gather reads index i of every range in rs into buf and returns it.
func gather[T any](buf []T, rs []*Range[T], i int) []T {
	for j, r := range rs {
		buf[j] = r.acc.At(i)
	}
	return buf
}
