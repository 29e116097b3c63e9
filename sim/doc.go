// Package sim provides the page-replacement simulation engine for pagesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - frameset.go: The bounded resident set (admission order, recency bookkeeping)
//   - policy.go: Policy names and victim selection for FIFO, LRU and Optimal
//   - simulator.go: The stepping loop shared by every policy
//
// # Architecture
//
// The engine is pure and silent: Simulate, Compare and Sweep take a reference
// sequence and a capacity and return result values, with no logging or I/O.
// Supporting code lives in sub-packages:
//   - sim/workload/: Reference parsing, seeded synthetic generation, YAML scenario files
//   - sim/trace/: Step trace recording, export (YAML header + CSV data) and summaries
//
// Optimal looks ahead through a next-use index (nextuse.go) built once per run.
// Compare and Sweep fan out independent runs with errgroup; each run owns its
// FrameSet and only reads the shared reference slice.
//
// # Output
//
//   - metrics.go: StepOutcome and SimulationResult
//   - metrics_export.go: Prometheus text exposition of results
//   - trace_bridge.go: Conversion of a result into a sim/trace.SimulationTrace
package sim
