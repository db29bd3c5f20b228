package ranges

import "errors"

// Sentinel errors returned by Range operations.
//
// Errors are wrapped with call-site detail; use [errors.Is] for comparisons:
//
//	_, err := r.Ref(42)
//	if errors.Is(err, ranges.ErrInvalidIndex) {
//	    // index outside [0, Len())
//	}
var (
	// ErrInvalidIndex is returned when an index is outside [0, Len()), or a
	// bound passed to a view combinator is outside [0, Len()] or start > end.
	ErrInvalidIndex = errors.New("ranges: index out of range")

	// ErrEmptyRange is returned by First and Last on an empty range. It also
	// matches ErrInvalidIndex.
	ErrEmptyRange = errors.New("ranges: operation on empty range")

	// ErrInvalidStep is returned by Numeric and Iota for a zero or non-finite
	// step, or when the step points away from the end bound.
	ErrInvalidStep = errors.New("ranges: invalid step")

	// ErrNegativeLength is returned when a constructor is given length < 0.
	ErrNegativeLength = errors.New("ranges: length must not be negative")

	// ErrNilAccessor is returned when a constructor is given a nil accessor.
	ErrNilAccessor = errors.New("ranges: accessor must not be nil")

	// ErrInvalidSegmentSize is returned when Segment is called with size < 1.
	ErrInvalidSegmentSize = errors.New("ranges: segment size must be greater than 0")

	// ErrTypeMismatch is returned when an element has the wrong dynamic type,
	// e.g. a non-rune element passed to ToString.
	ErrTypeMismatch = errors.New("ranges: element type mismatch")

	// ErrLengthMismatch is returned by operations that require all input
	// ranges to have the same length.
	ErrLengthMismatch = errors.New("ranges: ranges must have the same length")

	// ErrInvalidOption is returned when ParallelOptions holds a value outside
	// its allowed range.
	ErrInvalidOption = errors.New("ranges: invalid option value")
)
