// Package dataset loads validated edge lists from delimited files
// produced by an external data-preparation layer.
//
// The expected format is a header-mapped CSV with the required columns
// "source", "target", and "weight" in any order. Every other column is
// carried verbatim into Edge.Meta as pass-through annotation (street
// name, road classification, one-way flag, posted speed, …) — the loader
// never interprets or validates those values, it only transports them.
//
// The vertex count is inferred as max(vertex id) + 1, matching the dense
// contiguous id space the graph model requires.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/routelab/pathbench/graph"
)

// Sentinel errors for dataset loading.
var (
	// ErrMissingColumn indicates that the header lacks one of the required
	// columns "source", "target", or "weight".
	ErrMissingColumn = errors.New("dataset: required column missing")

	// ErrBadRecord indicates a row whose required field cannot be parsed,
	// or a negative vertex id.
	ErrBadRecord = errors.New("dataset: malformed record")
)

// requiredColumns are the fields every edge row must carry.
var requiredColumns = []string{"source", "target", "weight"}

// LoadCSV reads an ordered edge list from r and returns the edges in file
// order together with the inferred vertex count (max id + 1, or 0 for an
// empty edge list). Row order is preserved: it becomes the graph's edge
// insertion order, which downstream engines rely on.
//
// Returns ErrMissingColumn on a bad header and ErrBadRecord (wrapping the
// parse failure and naming the offending line) on a bad row. Raw CSV
// errors from the underlying reader are passed through wrapped.
func LoadCSV(r io.Reader) ([]graph.Edge, int, error) {
	cr := csv.NewReader(r)

	// 1) Header: map column names to positions.
	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: reading header: %w", err)
	}
	column := make(map[string]int, len(header))
	var (
		name string
		idx  int
	)
	for idx, name = range header {
		column[name] = idx
	}
	for _, name = range requiredColumns {
		if _, ok := column[name]; !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	// 2) Rows: parse required fields, carry the rest as metadata.
	var (
		edges    []graph.Edge
		record   []string
		line     int
		maxID    int
		from     int
		to       int
		weight   float64
		hasEdges bool
	)
	for line = 2; ; line++ {
		record, err = cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		if from, err = strconv.Atoi(record[column["source"]]); err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: source: %v", ErrBadRecord, line, err)
		}
		if to, err = strconv.Atoi(record[column["target"]]); err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: target: %v", ErrBadRecord, line, err)
		}
		if weight, err = strconv.ParseFloat(record[column["weight"]], 64); err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: weight: %v", ErrBadRecord, line, err)
		}
		if from < 0 || to < 0 {
			return nil, 0, fmt.Errorf("%w: line %d: negative vertex id", ErrBadRecord, line)
		}

		edge := graph.Edge{From: from, To: to, Weight: weight}
		if len(header) > len(requiredColumns) {
			edge.Meta = make(map[string]string, len(header)-len(requiredColumns))
			for idx, name = range header {
				if name == "source" || name == "target" || name == "weight" {
					continue
				}
				if idx < len(record) {
					edge.Meta[name] = record[idx]
				}
			}
		}
		edges = append(edges, edge)

		hasEdges = true
		if from > maxID {
			maxID = from
		}
		if to > maxID {
			maxID = to
		}
	}

	if !hasEdges {
		return nil, 0, nil
	}

	return edges, maxID + 1, nil
}
