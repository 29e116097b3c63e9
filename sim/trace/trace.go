package trace

// TraceLevel controls which steps are recorded.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelFaults records only steps that faulted.
	TraceLevelFaults TraceLevel = "faults"
	// TraceLevelSteps records every step.
	TraceLevelSteps TraceLevel = "steps"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelFaults: true,
	TraceLevelSteps:  true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects step records for one simulation run.
type SimulationTrace struct {
	Config TraceConfig
	Header TraceHeader
	Steps  []StepRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig, header TraceHeader) *SimulationTrace {
	header.Level = config.Level
	return &SimulationTrace{
		Config: config,
		Header: header,
		Steps:  make([]StepRecord, 0),
	}
}

// RecordStep appends a step record if the configured level accepts it.
func (st *SimulationTrace) RecordStep(record StepRecord) {
	switch st.Config.Level {
	case TraceLevelSteps:
	case TraceLevelFaults:
		if !record.Fault {
			return
		}
	default:
		return
	}
	st.Steps = append(st.Steps, record)
}
