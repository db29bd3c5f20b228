package ranges

import (
	"fmt"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a compact Range of the given length whose element at index i is
// at(i). Construction is O(1); at is not called until an element is read.
//
//	squares, _ := ranges.New(10, func(i int) int { return i * i })
//
// Returns [ErrNegativeLength] if length < 0 and [ErrNilAccessor] if at is nil.
func New[T any](length int, at func(int) T) (*Range[T], error) {
	if at == nil {
		return nil, ErrNilAccessor
	}
	return FromAccessor[T](length, AccessorFunc[T](at))
}

// FromAccessor is the interface form of [New].
func FromAccessor[T any](length int, acc Accessor[T]) (*Range[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	}
	if acc == nil {
		return nil, ErrNilAccessor
	}
	return &Range[T]{length: length, acc: acc}, nil
}

// FromIndexer creates a compact Range over ix. The length is read once, so ix
// must not change length while the Range is in use.
func FromIndexer[T any](ix Indexer[T]) *Range[T] {
	return &Range[T]{length: ix.Len(), acc: ix}
}

// Empty returns a Range of type T with no elements.
func Empty[T any]() *Range[T] {
	return &Range[T]{acc: emptyAccessor[T]{}}
}

// Wrap creates a compact Range that reads items by reference.
//
// Construction is O(1). Mutating items afterwards changes what the Range
// returns; callers that cannot guarantee the slice stays untouched should use
// [FromSlice].
func Wrap[T any](items []T) *Range[T] {
	return &Range[T]{length: len(items), acc: sliceAccessor[T](items)}
}

// FromSlice creates an expanded Range holding a copy of items. Later changes
// to items are not visible through the Range.
func FromSlice[T any](items []T) *Range[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Range[T]{length: len(dst), acc: sliceAccessor[T](dst)}
}

// FromString creates a Range over the characters (runes) of s.
//
// Go strings are UTF-8 bytes, so a rune cannot be found by index in O(1) in
// general. A pure-ASCII string is wrapped as is (compact); any other string is
// decoded once into a rune buffer (expanded). Either way, element access is
// O(1). Invalid UTF-8 bytes decode to [utf8.RuneError], as in a range loop.
func FromString(s string) *Range[rune] {
	if isASCII(s) {
		return &Range[rune]{length: len(s), acc: asciiAccessor(s)}
	}
	return &Range[rune]{length: utf8.RuneCountInString(s), acc: sliceAccessor[rune]([]rune(s))}
}

// asciiAccessor reads a string whose bytes are all below utf8.RuneSelf.
type asciiAccessor string

func (s asciiAccessor) At(i int) rune { return rune(s[i]) }

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
