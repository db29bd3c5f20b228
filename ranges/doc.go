// Package ranges provides immutable, indexable virtual sequences: values that
// describe a collection by a length and an index-to-element mapping instead of
// storing every element.
//
// # Overview
//
// The central type is [Range][T]. A range of a million integers costs a few
// words of memory, yet it can be indexed, sliced, searched and folded like a
// slice:
//
//	r, _ := ranges.Numeric(0, 1_000_000)
//	evens := r.Filter(func(n int) bool { return n%2 == 0 })
//	head, _ := evens.Take(3)
//	fmt.Println(head.ToSlice()) // → [0 2 4]
//
// # Immutability
//
// No operation modifies a Range. Every combinator returns a new value, so a
// Range can be shared between goroutines without locking. The one exception
// is [Wrap], which reads the caller's slice by reference: the caller must not
// mutate that slice while the Range is in use. Use [FromSlice] to copy.
//
// # Compact and expanded ranges
//
// A compact range holds O(1) state beyond what its constructor closed over
// ([New], [Numeric], [Iota], [Wrap], views). An expanded range owns an O(n)
// buffer or table ([FromSlice], [Append], and every eager transform). The
// class is fixed by the constructor; it is not stored or inspected at run
// time.
//
// # Views
//
// [Range.Subrange], [Range.SplitAt], [Range.Take], [Range.Drop] and friends
// are O(1) and never touch elements. A view of a view is rewritten to a single
// offset over the root accessor, so access cost does not grow with nesting:
//
//	r, _ := ranges.Iota[int](100)
//	a, _ := r.Subrange(10, 90)
//	b, _ := a.Subrange(5, 10) // reads r[15:20] directly
//
// # Eager transforms
//
// [Map], [FilterMap], [Range.Filter] and [Range.Remove] evaluate their
// function for every position up front and return an expanded range with O(1)
// access. The order in which the function is applied is unspecified; the
// order of the results is not. The *Parallel variants spread the work across
// goroutines according to [ParallelOptions].
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type, or that take several ranges at
// once, are package-level functions. Their procedure comes first and the
// ranges last:
//
//	sum := ranges.Fold(func(acc int, xs ...int) int { return acc + xs[0] + xs[1] },
//	    0, a, b)
//
// Multi-range functions stop at the shortest input unless documented
// otherwise ([IndexRight] requires equal lengths).
package ranges
