package ranges_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-ranges/ranges"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func numeric[N ranges.Number](t testing.TB, start, end N, step ...N) *ranges.Range[N] {
	t.Helper()
	r, err := ranges.Numeric(start, end, step...)
	if err != nil {
		t.Fatalf("Numeric(%v, %v, %v): %v", start, end, step, err)
	}
	return r
}

func ints(ns ...int) *ranges.Range[int] { return ranges.FromSlice(ns) }

func assertElems[T any](t *testing.T, r *ranges.Range[T], want []T) {
	t.Helper()
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d; want %d", r.Len(), len(want))
	}
	if diff := cmp.Diff(want, r.ToSlice()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

func intEq(a, b int) bool { return a == b }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	calls := 0
	r, err := ranges.New(5, func(i int) int { calls++; return i * i })
	if err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Fatalf("New called the accessor %d times before any read", calls)
	}
	assertElems(t, r, []int{0, 1, 4, 9, 16})
}

func TestNewErrors(t *testing.T) {
	if _, err := ranges.New(-1, func(i int) int { return i }); !errors.Is(err, ranges.ErrNegativeLength) {
		t.Fatalf("New(-1) err = %v; want ErrNegativeLength", err)
	}
	if _, err := ranges.New[int](3, nil); !errors.Is(err, ranges.ErrNilAccessor) {
		t.Fatalf("New(nil) err = %v; want ErrNilAccessor", err)
	}
	if _, err := ranges.FromAccessor[int](3, nil); !errors.Is(err, ranges.ErrNilAccessor) {
		t.Fatalf("FromAccessor(nil) err = %v; want ErrNilAccessor", err)
	}
}

type letters string

func (l letters) Len() int      { return len(l) }
func (l letters) At(i int) byte { return l[i] }

func TestFromIndexer(t *testing.T) {
	r := ranges.FromIndexer[byte](letters("abc"))
	assertElems(t, r, []byte("abc"))
}

func TestFromAccessor(t *testing.T) {
	r, err := ranges.FromAccessor[string](2, ranges.AccessorFunc[string](func(i int) string {
		return []string{"x", "y"}[i]
	}))
	if err != nil {
		t.Fatal(err)
	}
	assertElems(t, r, []string{"x", "y"})
}

func TestEmpty(t *testing.T) {
	r := ranges.Empty[int]()
	if r.Len() != 0 || !r.IsEmpty() {
		t.Fatal("Empty should have Len 0")
	}
	if !ranges.IsRange(r) {
		t.Fatal("Empty should be a range")
	}
}

func TestWrapSharesStorage(t *testing.T) {
	s := []int{1, 2, 3}
	r := ranges.Wrap(s)
	s[0] = 9
	if v, _ := r.Ref(0); v != 9 {
		t.Fatalf("Wrap should read by reference; got %d", v)
	}
}

func TestFromSliceCopies(t *testing.T) {
	s := []int{1, 2, 3}
	r := ranges.FromSlice(s)
	s[0] = 9
	if v, _ := r.Ref(0); v != 1 {
		t.Fatalf("FromSlice should copy; got %d", v)
	}
}

func TestFromString(t *testing.T) {
	for _, s := range []string{"", "hello", "héllo, 世界"} {
		r := ranges.FromString(s)
		assertElems(t, r, []rune(s))
		got, err := ranges.ToString(r)
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Fatalf("ToString(FromString(%q)) = %q", s, got)
		}
	}
}

func TestFromStringSubrange(t *testing.T) {
	for _, s := range []string{"abcdef", "αβγδεζ"} {
		r := ranges.FromString(s)
		sub, err := r.Subrange(2, 4)
		if err != nil {
			t.Fatal(err)
		}
		assertElems(t, sub, []rune(s)[2:4])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Type test & scalar accessors
// ─────────────────────────────────────────────────────────────────────────────

// lookalike has the same shape as a Range but is not one.
type lookalike struct {
	length int
	acc    ranges.Accessor[int]
}

func (lookalike) Len() int { return 0 }

func TestIsRange(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want bool
	}{
		{"int range", ints(1, 2), true},
		{"string range", ranges.FromString("ab"), true},
		{"pair range", ranges.Zip(ints(1), ints(2)), true},
		{"nil range", (*ranges.Range[int])(nil), false},
		{"slice", []int{1, 2}, false},
		{"lookalike", lookalike{}, false},
		{"lookalike pointer", &lookalike{}, false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ranges.IsRange(tc.v); got != tc.want {
				t.Fatalf("IsRange = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestRef(t *testing.T) {
	r := numeric(t, 10, 30)
	v, err := r.Ref(5)
	if err != nil || v != 15 {
		t.Fatalf("Ref(5) = %d, %v; want 15, nil", v, err)
	}
	for _, n := range []int{-1, 20, 100} {
		if _, err := r.Ref(n); !errors.Is(err, ranges.ErrInvalidIndex) {
			t.Fatalf("Ref(%d) err = %v; want ErrInvalidIndex", n, err)
		}
	}
}

func TestFirstLast(t *testing.T) {
	r := ints(4, 5, 6)
	if v, err := r.First(); err != nil || v != 4 {
		t.Fatalf("First = %d, %v", v, err)
	}
	if v, err := r.Last(); err != nil || v != 6 {
		t.Fatalf("Last = %d, %v", v, err)
	}
	e := ranges.Empty[int]()
	if _, err := e.First(); !errors.Is(err, ranges.ErrEmptyRange) || !errors.Is(err, ranges.ErrInvalidIndex) {
		t.Fatalf("First on empty err = %v", err)
	}
	if _, err := e.Last(); !errors.Is(err, ranges.ErrEmptyRange) {
		t.Fatalf("Last on empty err = %v", err)
	}
}

func TestString(t *testing.T) {
	if s := ints(1, 2, 3).String(); s != "Range[len=3]" {
		t.Fatalf("String() = %q", s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

func TestEqual(t *testing.T) {
	a := numeric(t, 0, 5)
	cases := []struct {
		name string
		rs   []*ranges.Range[int]
		want bool
	}{
		{"none", nil, true},
		{"one", []*ranges.Range[int]{a}, true},
		{"same values", []*ranges.Range[int]{a, ints(0, 1, 2, 3, 4)}, true},
		{"three", []*ranges.Range[int]{a, ints(0, 1, 2, 3, 4), a}, true},
		{"different value", []*ranges.Range[int]{a, ints(0, 1, 2, 3, 5)}, false},
		{"different length", []*ranges.Range[int]{a, ints(0, 1, 2, 3)}, false},
		{"both empty", []*ranges.Range[int]{ranges.Empty[int](), ints()}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ranges.Equal(intEq, tc.rs...); got != tc.want {
				t.Fatalf("Equal = %v; want %v", got, tc.want)
			}
		})
	}
}

func TestEqualShortCircuits(t *testing.T) {
	calls := 0
	eq := func(a, b int) bool { calls++; return a == b }
	ranges.Equal(eq, ints(1, 2, 3, 4), ints(9, 2, 3, 4))
	if calls != 1 {
		t.Fatalf("eq called %d times; want 1", calls)
	}
	calls = 0
	ranges.Equal(eq, ints(1, 2), ints(1, 2, 3))
	if calls != 0 {
		t.Fatalf("eq called %d times on length mismatch; want 0", calls)
	}
}
