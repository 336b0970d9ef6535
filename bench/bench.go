// Package bench measures the repeated-invocation latency of shortest-path
// engines and reduces the samples to best/average/worst statistics.
//
// The timing window wraps ONLY the algorithm call: graph construction
// happens before Run, and result consumption happens after it, so neither
// pollutes the measurement. The clock is Go's monotonic wall clock
// (time.Now / time.Since).
//
// Repetitions execute sequentially. The read-only graph.Graph would make
// parallel repetitions safe, but interleaved runs contend for cores and
// distort per-invocation latency, which is the quantity under test.
package bench

import (
	"fmt"
	"time"

	"github.com/routelab/pathbench/graph"
)

// Algorithm is a named shortest-path engine under measurement. Run must
// perform one complete single-source computation over g from source,
// allocating its own fresh state, and report any per-invocation failure
// as an error. Result vectors are deliberately discarded by the harness.
type Algorithm struct {
	// Name is the display name carried into Result.Algorithm.
	Name string

	// Run executes one shortest-path computation.
	Run func(g *graph.Graph, source int) error
}

// Run times repetitions invocations of algo on g from source and reduces
// the successful samples to best (minimum), average (arithmetic mean),
// and worst (maximum) elapsed milliseconds.
//
// Failure isolation: a repetition whose Run returns an error is excluded
// from the statistics and counted in Result.Failures instead of aborting
// the batch. Only when every repetition fails does Run return
// ErrAllRunsFailed (alongside the failure-only Result).
//
// Returns ErrBadRepetitions if repetitions < 1, ErrNilGraph if g is nil,
// and ErrNilAlgorithm if algo.Run is nil.
func Run(algo Algorithm, g *graph.Graph, source, repetitions int, opts ...Option) (Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate harness inputs. Source validity is the engine's concern:
	//    an out-of-range source surfaces as per-repetition failures.
	if algo.Run == nil {
		return Result{}, ErrNilAlgorithm
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if repetitions < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadRepetitions, repetitions)
	}

	res := Result{
		Algorithm: algo.Name,
		Dataset:   cfg.Dataset,
		TimesMs:   make([]float64, 0, repetitions),
	}

	// 3) Measure. The window opens immediately before the call and closes
	//    immediately after it; nothing else is inside.
	var (
		rep     int
		started time.Time
		elapsed time.Duration
		err     error
	)
	for rep = 0; rep < repetitions; rep++ {
		started = time.Now()
		err = algo.Run(g, source)
		elapsed = time.Since(started)

		if err != nil {
			res.Failures++

			continue
		}
		res.TimesMs = append(res.TimesMs, float64(elapsed.Nanoseconds())/1e6)
	}

	// 4) Reduce. With zero successful samples there is nothing to reduce.
	res.Runs = len(res.TimesMs)
	if res.Runs == 0 {
		return res, fmt.Errorf("%w: %d of %d repetitions", ErrAllRunsFailed, res.Failures, repetitions)
	}

	var (
		sum float64
		ms  float64
	)
	res.BestMs = res.TimesMs[0]
	res.WorstMs = res.TimesMs[0]
	for _, ms = range res.TimesMs {
		if ms < res.BestMs {
			res.BestMs = ms
		}
		if ms > res.WorstMs {
			res.WorstMs = ms
		}
		sum += ms
	}
	res.AvgMs = sum / float64(res.Runs)

	return res, nil
}
