// CSV persistence of benchmark results for external analysis and
// visualization layers.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the column layout of persisted benchmark rows.
var csvHeader = []string{
	"Algorithm", "Dataset", "Best Time (ms)",
	"Average Time (ms)", "Worst Time (ms)", "Num Runs", "Failed Runs",
}

// WriteCSV persists results as delimited rows, one per Result, with a
// leading header. Timings are formatted with four fractional digits.
// Per-repetition samples (TimesMs) are not persisted.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("bench: writing csv header: %w", err)
	}

	var r Result
	for _, r = range results {
		record := []string{
			r.Algorithm,
			r.Dataset,
			strconv.FormatFloat(r.BestMs, 'f', 4, 64),
			strconv.FormatFloat(r.AvgMs, 'f', 4, 64),
			strconv.FormatFloat(r.WorstMs, 'f', 4, 64),
			strconv.Itoa(r.Runs),
			strconv.Itoa(r.Failures),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("bench: writing csv row for %q: %w", r.Algorithm, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
