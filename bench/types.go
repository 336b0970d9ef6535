// Package bench defines the types, options, and sentinel errors of the
// repeated-invocation latency harness.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNilAlgorithm    if the Algorithm has no Run function.
//	– ErrBadRepetitions  if repetitions < 1.
//	– ErrAllRunsFailed   if every repetition returned an error, leaving no
//	  timings to reduce.
package bench

import "errors"

// Sentinel errors returned by the benchmark harness.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("bench: graph is nil")

	// ErrNilAlgorithm indicates an Algorithm with a nil Run function.
	ErrNilAlgorithm = errors.New("bench: algorithm has no run function")

	// ErrBadRepetitions indicates a repetition count below 1.
	ErrBadRepetitions = errors.New("bench: repetitions must be at least 1")

	// ErrAllRunsFailed indicates that every repetition failed, so no
	// best/avg/worst statistics could be computed.
	ErrAllRunsFailed = errors.New("bench: all repetitions failed")
)

// Result aggregates one benchmark batch: repeated invocations of a single
// algorithm on a single graph, reduced to best/average/worst latency.
// All times are milliseconds with fractional precision.
type Result struct {
	// Algorithm is the display name of the measured engine.
	Algorithm string

	// Dataset identifies the graph the batch ran against (see WithDataset).
	Dataset string

	// BestMs is the minimum elapsed time over the successful repetitions.
	BestMs float64

	// AvgMs is the arithmetic-mean elapsed time over the successful repetitions.
	AvgMs float64

	// WorstMs is the maximum elapsed time over the successful repetitions.
	WorstMs float64

	// Runs is the number of successful repetitions reduced into the stats.
	Runs int

	// Failures is the number of repetitions excluded because the
	// algorithm returned an error. Failures never abort the batch.
	Failures int

	// TimesMs holds the individual per-repetition timings, in completion
	// order, for callers that want more than the three-point reduction.
	// Not persisted by WriteCSV.
	TimesMs []float64
}

// Options configures a benchmark batch.
//
// Dataset – free-form identifier for the graph under test, carried into
// Result.Dataset and the persisted CSV rows. Defaults to "" (unlabeled).
type Options struct {
	Dataset string // Identifier of the dataset the graph was built from
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithDataset labels the batch with a dataset identifier, e.g. the name
// of the edge-list file the graph was loaded from.
func WithDataset(name string) Option {
	return func(o *Options) {
		o.Dataset = name
	}
}

// DefaultOptions returns the Options used when no functional options are
// passed: an unlabeled dataset.
func DefaultOptions() Options {
	return Options{Dataset: ""}
}
