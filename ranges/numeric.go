package ranges

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types accepted by [Numeric] and [Iota].
type Number interface {
	constraints.Integer | constraints.Float
}

// arithmetic computes start + i*step. Multiplying instead of accumulating
// keeps floating-point error bounded by a single rounding per element.
type arithmetic[N Number] struct {
	start N
	step  N
}

func (a arithmetic[N]) At(i int) N { return a.start + N(i)*a.step }

// Numeric returns the compact arithmetic sequence start, start+step, … of
// every term strictly before end in the direction of step. step defaults to 1.
//
//	ranges.Numeric(0, 5)         // 0 1 2 3 4
//	ranges.Numeric(5, -5, -3)    // 5 2 -1 -4
//	ranges.Numeric(0.0, 1, 0.25) // 0 0.25 0.5 0.75
//
// Construction and access are O(1). Returns [ErrInvalidStep] if step is zero
// or not finite, or if step points away from end (e.g. start < end with a
// negative step). start == end yields an empty range for any valid step.
func Numeric[N Number](start, end N, step ...N) (*Range[N], error) {
	s := N(1)
	if len(step) > 0 {
		s = step[0]
	}
	n, err := numericLength(start, end, s)
	if err != nil {
		return nil, err
	}
	return &Range[N]{length: n, acc: arithmetic[N]{start: start, step: s}}, nil
}

// Iota returns the compact sequence of length terms start, start+step, ….
// startStep optionally supplies start (default 0) and step (default 1).
//
//	ranges.Iota[int](4)          // 0 1 2 3
//	ranges.Iota(3, 10, -2)       // 10 8 6
//
// Returns [ErrNegativeLength] if length < 0 and [ErrInvalidStep] if step is
// zero or not finite.
func Iota[N Number](length int, startStep ...N) (*Range[N], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	}
	var start N
	step := N(1)
	if len(startStep) > 0 {
		start = startStep[0]
	}
	if len(startStep) > 1 {
		step = startStep[1]
	}
	if step == 0 || !finite(step) || !finite(start) {
		return nil, fmt.Errorf("%w: start %v, step %v", ErrInvalidStep, start, step)
	}
	return &Range[N]{length: length, acc: arithmetic[N]{start: start, step: step}}, nil
}

// numericLength returns the number of terms start + k*step strictly before
// end.
func numericLength[N Number](start, end, step N) (int, error) {
	if step == 0 || !finite(step) || !finite(start) || !finite(end) {
		return 0, fmt.Errorf("%w: start %v, end %v, step %v", ErrInvalidStep, start, end, step)
	}
	if start == end {
		return 0, nil
	}
	if (end > start) != (step > 0) {
		return 0, fmt.Errorf("%w: step %v does not lead from %v to %v", ErrInvalidStep, step, start, end)
	}
	if isFloat[N]() {
		return floatLength(start, end, step)
	}
	return intLength(start, end, step)
}

// intLength works on the two's-complement bit patterns in uint64 so that
// spans wider than N itself (int8 from -100 to 100) are still exact.
func intLength[N Number](start, end, step N) (int, error) {
	var dist, stride uint64
	if end > start {
		dist = uint64(end) - uint64(start)
		stride = uint64(step)
	} else {
		dist = uint64(start) - uint64(end)
		stride = 0 - uint64(step)
	}
	q := dist / stride
	if dist%stride != 0 {
		q++
	}
	if q > math.MaxInt {
		return 0, fmt.Errorf("%w: %d terms do not fit in an int", ErrInvalidStep, q)
	}
	return int(q), nil
}

// floatLength estimates ceil((end-start)/step) and then corrects the
// estimate against the terms actually produced by arithmetic.At.
func floatLength[N Number](start, end, step N) (int, error) {
	est := math.Ceil((float64(end) - float64(start)) / float64(step))
	if est >= math.MaxInt {
		return 0, fmt.Errorf("%w: %v terms do not fit in an int", ErrInvalidStep, est)
	}
	n := int(est)
	a := arithmetic[N]{start: start, step: step}
	before := func(v N) bool {
		if step > 0 {
			return v < end
		}
		return v > end
	}
	for n > 0 && !before(a.At(n-1)) {
		n--
	}
	for before(a.At(n)) {
		n++
	}
	return n, nil
}

func isFloat[N Number]() bool {
	var one N = 1
	return one/2 != 0
}

// finite reports whether v is neither NaN nor infinite. Integers always are.
func finite[N Number](v N) bool {
	if !isFloat[N]() {
		return true
	}
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
