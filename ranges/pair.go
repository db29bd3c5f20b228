package ranges

import "fmt"

// Pair is the element of a [Zip] view: the values found at the same index
// of its two inputs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String formats p as "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

type zipAccessor[A, B any] struct {
	a Accessor[A]
	b Accessor[B]
}

func (z zipAccessor[A, B]) At(i int) Pair[A, B] {
	return Pair[A, B]{First: z.a.At(i), Second: z.b.At(i)}
}

// Zip returns a compact view pairing a and b position by position. Its length
// is that of the shorter input. Unlike the multi-range functions, Zip accepts
// inputs of different element types.
//
//	names := ranges.Wrap([]string{"a", "b", "c"})
//	nums, _ := ranges.Numeric(1, 4)
//	ranges.Zip(names, nums) // (a, 1) (b, 2) (c, 3)
func Zip[A, B any](a *Range[A], b *Range[B]) *Range[Pair[A, B]] {
	n := min(a.length, b.length)
	if n == 0 {
		return Empty[Pair[A, B]]()
	}
	return &Range[Pair[A, B]]{length: n, acc: zipAccessor[A, B]{a: a.acc, b: b.acc}}
}
