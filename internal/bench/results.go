package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// ResultWriter appends Results to a CSV stream, one row per Run.Execute
// call, tagged with a run ID shared by every row from the same process
// invocation — the Go analogue of the CLI's --append-results flag, which
// lets repeated invocations build up one long-lived comparison file.
type ResultWriter struct {
	w     *csv.Writer
	runID string
}

var resultColumns = []string{
	"run_id", "index", "dataset_size", "num_queries", "reporting",
	"assign_seconds", "query_seconds", "points_seen",
}

// NewResultWriter wraps dst. If header is true, the column header row is
// written immediately (callers appending to an existing file should pass
// header=false).
func NewResultWriter(dst io.Writer, runID string, header bool) (*ResultWriter, error) {
	if runID == "" {
		runID = uuid.NewString()
	}
	w := csv.NewWriter(dst)
	rw := &ResultWriter{w: w, runID: runID}
	if header {
		if err := w.Write(resultColumns); err != nil {
			return nil, fmt.Errorf("writing result header: %w", err)
		}
	}
	return rw, nil
}

// RunID returns the tag stamped on every row this writer produces.
func (rw *ResultWriter) RunID() string { return rw.runID }

// Write appends one Result as a CSV row and flushes immediately, so a
// crashed or killed benchmark process never loses completed rows.
func (rw *ResultWriter) Write(r Result) error {
	row := []string{
		rw.runID,
		r.Name,
		strconv.Itoa(r.DatasetSize),
		strconv.Itoa(r.NumQueries),
		strconv.FormatBool(r.Reporting),
		strconv.FormatFloat(r.AssignElapsed.Seconds(), 'f', -1, 64),
		strconv.FormatFloat(r.QueryElapsed.Seconds(), 'f', -1, 64),
		strconv.Itoa(r.PointsSeen),
	}
	if err := rw.w.Write(row); err != nil {
		return fmt.Errorf("writing result row: %w", err)
	}
	rw.w.Flush()
	return rw.w.Error()
}
