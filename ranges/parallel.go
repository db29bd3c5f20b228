package ranges

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ─────────────────────────────────────────────────────────────────────────────
// Options
// ─────────────────────────────────────────────────────────────────────────────

// DefaultChunkSize is the number of positions a worker evaluates per task
// when [DefaultParallelOptions] is used.
const DefaultChunkSize = 1024

// ParallelOptions configures the *Parallel eager transforms.
//
// The element function of Map, FilterMap and Filter may be applied in any
// order, so these transforms can split the positions into chunks and evaluate
// the chunks concurrently. Results are written into a pre-sized buffer by
// position; the output order never depends on scheduling.
type ParallelOptions struct {
	// Workers is the maximum number of goroutines evaluating chunks at once.
	// Must be ≥ 1. A value of 1 evaluates everything on the calling goroutine.
	Workers int

	// ChunkSize is the number of consecutive positions per task. Must be ≥ 1.
	// Inputs no longer than ChunkSize are evaluated on the calling goroutine.
	ChunkSize int
}

// DefaultParallelOptions returns ParallelOptions with one worker per
// available CPU and [DefaultChunkSize].
func DefaultParallelOptions() ParallelOptions {
	return ParallelOptions{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
	}
}

// sequential evaluates every position on the calling goroutine.
var sequential = ParallelOptions{Workers: 1, ChunkSize: 1}

func validateParallelOptions(opts ParallelOptions) error {
	if opts.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidOption, opts.Workers)
	}
	if opts.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size must be ≥ 1, got %d", ErrInvalidOption, opts.ChunkSize)
	}
	return nil
}

// workerPanic carries a panic out of a worker goroutine so it can be raised
// again, unchanged, on the caller's goroutine.
type workerPanic struct {
	value any
}

func (p *workerPanic) Error() string {
	return fmt.Sprintf("ranges: element function panicked: %v", p.value)
}

// run calls fn(lo, hi) for consecutive chunks covering [0, n). With more than
// one worker the chunks run concurrently; run returns once all have finished.
func (opts ParallelOptions) run(n int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if opts.Workers == 1 || n <= opts.ChunkSize {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for lo := 0; lo < n; lo += opts.ChunkSize {
		hi := min(lo+opts.ChunkSize, n)
		g.Go(func() (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = &workerPanic{value: v}
				}
			}()
			fn(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err.(*workerPanic).value)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Parallel transforms
// ─────────────────────────────────────────────────────────────────────────────

// MapParallel is [Map] evaluated according to opts.
// Returns [ErrInvalidOption] if opts fails validation.
func MapParallel[T, U any](opts ParallelOptions, fn func(...T) U, rs ...*Range[T]) (*Range[U], error) {
	if err := validateParallelOptions(opts); err != nil {
		return nil, err
	}
	return Wrap(mapInto(opts, fn, rs)), nil
}

// FilterMapParallel is [FilterMap] evaluated according to opts.
// Returns [ErrInvalidOption] if opts fails validation.
func FilterMapParallel[T, U any](opts ParallelOptions, fn func(...T) (U, bool), rs ...*Range[T]) (*Range[U], error) {
	if err := validateParallelOptions(opts); err != nil {
		return nil, err
	}
	return Wrap(filterMapInto(opts, fn, rs)), nil
}

// FilterParallel is [Range.Filter] evaluated according to opts.
// Returns [ErrInvalidOption] if opts fails validation.
func FilterParallel[T any](opts ParallelOptions, pred func(T) bool, r *Range[T]) (*Range[T], error) {
	if err := validateParallelOptions(opts); err != nil {
		return nil, err
	}
	return Wrap(filterInto(opts, pred, r, true)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared evaluation
// ─────────────────────────────────────────────────────────────────────────────

func mapInto[T, U any](opts ParallelOptions, fn func(...T) U, rs []*Range[T]) []U {
	out := make([]U, shortest(rs))
	opts.run(len(out), func(lo, hi int) {
		buf := make([]T, len(rs))
		for i := lo; i < hi; i++ {
			out[i] = fn(gather(buf, rs, i)...)
		}
	})
	return out
}

func filterMapInto[T, U any](opts ParallelOptions, fn func(...T) (U, bool), rs []*Range[T]) []U {
	n := shortest(rs)
	vals := make([]U, n)
	keep := make([]bool, n)
	opts.run(n, func(lo, hi int) {
		buf := make([]T, len(rs))
		for i := lo; i < hi; i++ {
			vals[i], keep[i] = fn(gather(buf, rs, i)...)
		}
	})
	return compact(vals, keep)
}

// filterInto keeps the elements of r for which pred returns want.
func filterInto[T any](opts ParallelOptions, pred func(T) bool, r *Range[T], want bool) []T {
	vals := make([]T, r.length)
	keep := make([]bool, r.length)
	opts.run(r.length, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			vals[i] = r.acc.At(i)
			keep[i] = pred(vals[i]) == want
		}
	})
	return compact(vals, keep)
}

// compact moves the kept values to the front of vals, preserving order, and
// returns them in a right-sized slice.
func compact[T any](vals []T, keep []bool) []T {
	k := 0
	for i, ok := range keep {
		if ok {
			vals[k] = vals[i]
			k++
		}
	}
	out := make([]T, k)
	copy(out, vals[:k])
	return out
}
