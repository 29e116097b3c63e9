package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/pagesim/sim"
	"github.com/inference-sim/pagesim/sim/trace"
)

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeMetricsFile creates path and fills it using write.
func writeMetricsFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing metrics file: %w", err)
	}
	logrus.Infof("Metrics written to %s", path)
	return nil
}

// newTraceHeader returns run metadata for a fresh export. Each export gets
// its own run ID.
func newTraceHeader(compression trace.Compression, now time.Time) trace.TraceHeader {
	return trace.TraceHeader{
		Version:     trace.TraceFormatVersion,
		RunID:       uuid.NewString(),
		CreatedAt:   now.UTC().Format(time.RFC3339),
		Compression: compression,
	}
}

// exportResultTrace writes r as a trace header and data file pair.
func exportResultTrace(r *sim.SimulationResult, level trace.TraceLevel, compression trace.Compression, headerPath, dataPath string) (*trace.SimulationTrace, error) {
	st := r.Trace(level, newTraceHeader(compression, time.Now()))
	if err := trace.ExportTrace(st, headerPath, dataPath); err != nil {
		return nil, err
	}
	logrus.Infof("Trace %s written: %d steps to %s (header %s)", st.Header.RunID, len(st.Steps), dataPath, headerPath)
	return st, nil
}
