package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"gopkg.in/yaml.v3"
)

// TraceFormatVersion is written to every exported header.
const TraceFormatVersion = 1

// Compression selects the stream codec applied to the CSV data file.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionSnappy Compression = "snappy"
	CompressionLZ4    Compression = "lz4"
)

var validCompressions = map[Compression]bool{
	CompressionNone:   true,
	CompressionSnappy: true,
	CompressionLZ4:    true,
	"":                true, // empty defaults to none
}

// IsValidCompression returns true if name is a recognized compression codec.
func IsValidCompression(name string) bool {
	return validCompressions[Compression(name)]
}

// TraceHeader captures run metadata for a trace data file.
type TraceHeader struct {
	Version     int         `yaml:"trace_version"`
	RunID       string      `yaml:"run_id,omitempty"`
	CreatedAt   string      `yaml:"created_at,omitempty"`
	Policy      string      `yaml:"policy"`
	Capacity    int         `yaml:"capacity"`
	References  int         `yaml:"references"`
	Faults      int         `yaml:"faults"`
	Level       TraceLevel  `yaml:"level"`
	Compression Compression `yaml:"compression"`
}

// CSV column headers for step traces.
var stepColumns = []string{"step", "page", "fault", "evicted", "frames"}

// ExportTrace writes the trace header (YAML) and step rows (CSV, optionally
// compressed with the codec named in the header) to separate files.
// Frames are space-separated within their column; an empty evicted column
// means nothing was displaced.
func ExportTrace(st *SimulationTrace, headerPath, dataPath string) error {
	header := st.Header
	if header.Version == 0 {
		header.Version = TraceFormatVersion
	}
	if header.Compression == "" {
		header.Compression = CompressionNone
	}
	if !IsValidCompression(string(header.Compression)) {
		return fmt.Errorf("unknown trace compression %q; valid: none, snappy, lz4", header.Compression)
	}

	headerData, err := yaml.Marshal(&header)
	if err != nil {
		return fmt.Errorf("marshaling trace header: %w", err)
	}
	if err := os.WriteFile(headerPath, headerData, 0644); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}

	file, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("creating trace data file: %w", err)
	}
	defer func() { _ = file.Close() }()

	stream, err := compressWriter(file, header.Compression)
	if err != nil {
		return err
	}
	if err := WriteSteps(stream, st.Steps); err != nil {
		_ = stream.Close()
		return err
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("flushing %s stream: %w", header.Compression, err)
	}
	return file.Close()
}

// WriteSteps writes the CSV header row followed by one row per record.
func WriteSteps(w io.Writer, records []StepRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(stepColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		evicted := ""
		if r.Evicted != nil {
			evicted = strconv.FormatInt(*r.Evicted, 10)
		}
		frames := make([]string, len(r.Frames))
		for i, f := range r.Frames {
			frames[i] = strconv.FormatInt(f, 10)
		}
		row := []string{
			strconv.Itoa(r.Step),
			strconv.FormatInt(r.Page, 10),
			strconv.FormatBool(r.Fault),
			evicted,
			strings.Join(frames, " "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", r.Step, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// LoadTrace reads a trace header (YAML) and its step rows (CSV), decoding the
// data file with the compression recorded in the header.
func LoadTrace(headerPath, dataPath string) (*SimulationTrace, error) {
	headerData, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, fmt.Errorf("reading trace header: %w", err)
	}
	var header TraceHeader
	if err := yaml.Unmarshal(headerData, &header); err != nil {
		return nil, fmt.Errorf("parsing trace header: %w", err)
	}

	file, err := os.Open(dataPath)
	if err != nil {
		return nil, fmt.Errorf("opening trace data: %w", err)
	}
	defer func() { _ = file.Close() }()

	stream, err := decompressReader(file, header.Compression)
	if err != nil {
		return nil, err
	}
	steps, err := ReadSteps(stream)
	if err != nil {
		return nil, err
	}
	return &SimulationTrace{
		Config: TraceConfig{Level: header.Level},
		Header: header,
		Steps:  steps,
	}, nil
}

// ReadSteps parses CSV produced by WriteSteps.
func ReadSteps(r io.Reader) ([]StepRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(stepColumns)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var records []StepRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		rec, err := parseStepRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func parseStepRecord(row []string) (*StepRecord, error) {
	step, err := strconv.Atoi(row[0])
	if err != nil {
		return nil, fmt.Errorf("parsing step %q: %w", row[0], err)
	}
	page, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("step %d: parsing page %q: %w", step, row[1], err)
	}
	fault, err := strconv.ParseBool(row[2])
	if err != nil {
		return nil, fmt.Errorf("step %d: parsing fault %q: %w", step, row[2], err)
	}
	rec := &StepRecord{Step: step, Page: page, Fault: fault, Frames: []int64{}}
	if row[3] != "" {
		v, err := strconv.ParseInt(row[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("step %d: parsing evicted %q: %w", step, row[3], err)
		}
		rec.Evicted = &v
	}
	for _, f := range strings.Fields(row[4]) {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("step %d: parsing frame %q: %w", step, f, err)
		}
		rec.Frames = append(rec.Frames, v)
	}
	return rec, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case "", CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported trace compression %q", c)
	}
}

func decompressReader(r io.Reader, c Compression) (io.Reader, error) {
	switch c {
	case "", CompressionNone:
		return r, nil
	case CompressionSnappy:
		return snappy.NewReader(r), nil
	case CompressionLZ4:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("unsupported trace compression %q", c)
	}
}
