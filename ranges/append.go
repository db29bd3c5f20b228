package ranges

import "github.com/google/btree"

// appendDegree is the B-tree degree of the piece index built by Append.
const appendDegree = 8

// piece is one non-empty input of an appended range, keyed by the index at
// which it starts in the result.
type piece[T any] struct {
	start int
	acc   Accessor[T]
}

func pieceLess[T any](a, b piece[T]) bool { return a.start < b.start }

// appendAccessor dispatches an index to the piece that owns it: the piece
// with the greatest start <= i.
type appendAccessor[T any] struct {
	pieces *btree.BTreeG[piece[T]]
}

func (a appendAccessor[T]) At(i int) T {
	var out T
	a.pieces.DescendLessOrEqual(piece[T]{start: i}, func(p piece[T]) bool {
		out = p.acc.At(i - p.start)
		return false
	})
	return out
}

// Append returns the concatenation of rs in argument order.
//
// No elements are copied. Construction builds an ordered index of the inputs'
// start offsets, and each access finds its owning input in O(log k) for k
// non-empty inputs before making one call to that input's accessor. Inputs
// that are themselves appended ranges are flattened into the same index.
//
// Append() is the empty range and Append(r) returns r.
func Append[T any](rs ...*Range[T]) *Range[T] {
	var parts []piece[T]
	total := 0
	for _, r := range rs {
		if r.length == 0 {
			continue
		}
		if inner, ok := r.acc.(appendAccessor[T]); ok {
			// r may be a prefix view that collapsed onto the appended parent;
			// pieces starting at or past r.length are not part of r.
			offset, limit := total, r.length
			inner.pieces.Ascend(func(p piece[T]) bool {
				if p.start >= limit {
					return false
				}
				parts = append(parts, piece[T]{start: offset + p.start, acc: p.acc})
				return true
			})
		} else {
			parts = append(parts, piece[T]{start: total, acc: r.acc})
		}
		total += r.length
	}

	switch len(parts) {
	case 0:
		return Empty[T]()
	case 1:
		return &Range[T]{length: total, acc: parts[0].acc}
	}
	tree := btree.NewG(appendDegree, pieceLess[T])
	for _, p := range parts {
		tree.ReplaceOrInsert(p)
	}
	return &Range[T]{length: total, acc: appendAccessor[T]{pieces: tree}}
}
