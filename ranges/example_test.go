package ranges_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-ranges/ranges"
)

func ExampleNumeric() {
	r, _ := ranges.Numeric(5, -5, -3)
	fmt.Println(r.Len(), r.ToSlice())
	// Output: 4 [5 2 -1 -4]
}

func ExampleIota() {
	r, _ := ranges.Iota(4, 10, 5)
	fmt.Println(r.ToSlice())
	// Output: [10 15 20 25]
}

func ExampleRange_Ref() {
	r, _ := ranges.Numeric(10, 30)
	v, _ := r.Ref(5)
	_, err := r.Ref(20)
	fmt.Println(v, errors.Is(err, ranges.ErrInvalidIndex))
	// Output: 15 true
}

func ExampleRange_Segment() {
	r, _ := ranges.Numeric(0, 12)
	segs, _ := r.Segment(4)
	for _, s := range segs {
		fmt.Println(s.ToSlice())
	}
	// Output:
	// [0 1 2 3]
	// [4 5 6 7]
	// [8 9 10 11]
}

func ExampleRange_Subrange() {
	r, _ := ranges.Iota[int](1_000_000)
	mid, _ := r.Subrange(500_000, 500_003)
	fmt.Println(mid.ToSlice())
	// Output: [500000 500001 500002]
}

func ExampleRange_Filter() {
	r, _ := ranges.Numeric(0, 10)
	fmt.Println(r.Filter(func(n int) bool { return n%3 == 0 }).ToSlice())
	// Output: [0 3 6 9]
}

func ExampleAppend() {
	a, _ := ranges.Numeric(0, 3)
	b := ranges.Wrap([]int{7, 8})
	fmt.Println(ranges.Append(a, b, a).ToSlice())
	// Output: [0 1 2 7 8 0 1 2]
}

func ExampleFold() {
	a, _ := ranges.Numeric(0, 100)
	b, _ := ranges.Numeric(50, 70)
	sum := ranges.Fold(func(acc int, xs ...int) int { return acc + xs[0] + xs[1] }, 0, a, b)
	fmt.Println(sum)
	// Output: 1380
}

func ExampleMap() {
	a, _ := ranges.Numeric(1, 4)
	b, _ := ranges.Numeric(10, 40, 10)
	fmt.Println(ranges.Map(func(xs ...int) int { return xs[0] * xs[1] }, a, b).ToSlice())
	// Output: [10 40 90]
}

func ExampleIndexRight() {
	_, err := ranges.IndexRight(func(xs ...int) bool { return true },
		ranges.Wrap([]int{1, 2, 3}), ranges.Wrap([]int{1, 2}))
	fmt.Println(errors.Is(err, ranges.ErrLengthMismatch))
	// Output: true
}

func ExampleToString() {
	s, _ := ranges.ToString(ranges.FromString("ranges").Reverse())
	fmt.Println(s)
	// Output: segnar
}

func ExampleRange_ToGenerator() {
	r, _ := ranges.Numeric(0, 3)
	g := r.ToGenerator()
	for v, ok := g.Next(); ok; v, ok = g.Next() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 0 1 2
}

func ExampleZip() {
	z := ranges.Zip(ranges.Wrap([]string{"a", "b"}), ranges.Wrap([]int{1, 2, 3}))
	z.ForEach(func(p ranges.Pair[string, int]) { fmt.Println(p) })
	// Output:
	// (a, 1)
	// (b, 2)
}
