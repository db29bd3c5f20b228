package ranges

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Views
//
// Every combinator in this file is O(1): it composes index arithmetic over the
// parent accessor and never reads or copies an element.
// ─────────────────────────────────────────────────────────────────────────────

// Subrange returns the view of r over [start, end).
// Returns [ErrInvalidIndex] unless 0 <= start <= end <= Len().
func (r *Range[T]) Subrange(start, end int) (*Range[T], error) {
	if start < 0 || end > r.length || start > end {
		return nil, fmt.Errorf("%w: subrange [%d, %d) of length %d", ErrInvalidIndex, start, end, r.length)
	}
	return r.view(start, end), nil
}

// SplitAt returns the views [0, index) and [index, Len()).
// Returns [ErrInvalidIndex] unless 0 <= index <= Len().
func (r *Range[T]) SplitAt(index int) (*Range[T], *Range[T], error) {
	if index < 0 || index > r.length {
		return nil, nil, fmt.Errorf("%w: split at %d of length %d", ErrInvalidIndex, index, r.length)
	}
	return r.view(0, index), r.view(index, r.length), nil
}

// Take returns the first count elements.
func (r *Range[T]) Take(count int) (*Range[T], error) {
	if err := r.checkCount(count); err != nil {
		return nil, err
	}
	return r.view(0, count), nil
}

// TakeRight returns the last count elements.
func (r *Range[T]) TakeRight(count int) (*Range[T], error) {
	if err := r.checkCount(count); err != nil {
		return nil, err
	}
	return r.view(r.length-count, r.length), nil
}

// Drop returns r without its first count elements.
func (r *Range[T]) Drop(count int) (*Range[T], error) {
	if err := r.checkCount(count); err != nil {
		return nil, err
	}
	return r.view(count, r.length), nil
}

// DropRight returns r without its last count elements.
func (r *Range[T]) DropRight(count int) (*Range[T], error) {
	if err := r.checkCount(count); err != nil {
		return nil, err
	}
	return r.view(0, r.length-count), nil
}

// Segment splits r into consecutive views of size elements; the last one may
// be shorter. An empty r yields no segments. Building the k views is O(k).
//
// Returns [ErrInvalidSegmentSize] if size < 1.
func (r *Range[T]) Segment(size int) ([]*Range[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegmentSize, size)
	}
	segs := make([]*Range[T], 0, (r.length+size-1)/size)
	for i := 0; i < r.length; i += size {
		segs = append(segs, r.view(i, min(i+size, r.length)))
	}
	return segs, nil
}

// Reverse returns a view of r in reverse order. Reversing twice yields a view
// equivalent to r.
func (r *Range[T]) Reverse() *Range[T] {
	if r.length < 2 {
		return r
	}
	last := r.length - 1
	if w, ok := r.acc.(window[T]); ok {
		return &Range[T]{length: r.length, acc: collapse(w.parent, w.base+w.dir*last, -w.dir)}
	}
	return &Range[T]{length: r.length, acc: window[T]{parent: r.acc, base: last, dir: -1}}
}

func (r *Range[T]) checkCount(count int) error {
	if count < 0 || count > r.length {
		return fmt.Errorf("%w: count %d of length %d", ErrInvalidIndex, count, r.length)
	}
	return nil
}

// view builds the range over [start, end) without bounds checks.
func (r *Range[T]) view(start, end int) *Range[T] {
	n := end - start
	switch {
	case n == r.length:
		return r
	case n == 0:
		return Empty[T]()
	}
	// T is rune whenever acc is an asciiAccessor; only an assertion through
	// any can express that.
	if s, ok := any(r.acc).(asciiAccessor); ok {
		return &Range[T]{length: n, acc: any(s[start:end]).(Accessor[T])}
	}
	switch acc := r.acc.(type) {
	case sliceAccessor[T]:
		return &Range[T]{length: n, acc: acc[start:end:end]}
	case window[T]:
		return &Range[T]{length: n, acc: collapse(acc.parent, acc.base+acc.dir*start, acc.dir)}
	}
	return &Range[T]{length: n, acc: window[T]{parent: r.acc, base: start, dir: 1}}
}

// collapse returns parent itself when the window is the identity mapping.
func collapse[T any](parent Accessor[T], base, dir int) Accessor[T] {
	if base == 0 && dir == 1 {
		return parent
	}
	return window[T]{parent: parent, base: base, dir: dir}
}
