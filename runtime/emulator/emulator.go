// Package emulator implements the pvcmd command emulator: it parses the
// positional argument grammar, dispatches on mode, app and command, and
// prints the resolved value as the last line of output.
//
// Soft failures (unknown app, unknown pvScan command, unknown path level)
// print a diagnostic line followed by an empty value line and exit 0, so
// callers must read the last line of output rather than the first. Hard
// failures (missing arguments, unknown parameter) write nothing and are
// returned as errors.
package emulator

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aledsdavies/pvcmd/core/dataset"
	"github.com/aledsdavies/pvcmd/core/invariant"
	"github.com/aledsdavies/pvcmd/core/params"
)

const (
	// unknownCommandOutput is printed for an unrecognized top-level mode.
	unknownCommandOutput = "unknowncmd"
)

// runningApps is what -l reports.
var runningApps = []string{"pvCmd", "pvScan"}

// Config configures the emulator
type Config struct {
	Debug DebugLevel // Debug level (development only)
}

// DebugLevel controls debug tracing (development only)
type DebugLevel int

const (
	DebugOff      DebugLevel = iota // No debug info (default)
	DebugPaths                      // Mode and dispatch tracing
	DebugDetailed                   // Every lookup and output line
)

// DebugEvent holds debug tracing information (development only)
type DebugEvent struct {
	Timestamp time.Time
	Event     string // "enter_run", "dispatch_app", "lookup_param", etc.
	Context   string // Additional context
}

// Result is the outcome of one invocation.
type Result struct {
	Invocation  Invocation
	ExitCode    int
	Lines       []string     // Everything written, one entry per line
	Diagnostics []string     // Soft-failure lines, a subset of Lines
	Value       string       // Resolved value (ModeApp only)
	DebugEvents []DebugEvent // Debug events (nil if DebugOff)
}

// Emulator answers pvcmd invocations from fixed tables. It holds no mutable
// state, so a single Emulator may serve any number of invocations.
type Emulator struct {
	config Config
	params *params.Table
	paths  dataset.Paths
}

// New returns an emulator backed by the given tables.
func New(config Config, table *params.Table, paths dataset.Paths) *Emulator {
	invariant.Precondition(table != nil, "parameter table must not be nil")
	return &Emulator{
		config: config,
		params: table,
		paths:  paths,
	}
}

// Run executes one invocation and writes its output to w. On a hard failure
// nothing is written and the error is returned; use ExitCode to map it.
func (e *Emulator) Run(argv []string, w io.Writer) (*Result, error) {
	r := &run{emulator: e}
	if e.config.Debug >= DebugPaths {
		r.debugEvents = make([]DebugEvent, 0, 8)
	}
	r.recordDebugEvent(DebugPaths, "enter_run", "argv="+strings.Join(argv, " "))

	inv, err := Parse(argv)
	if err != nil {
		r.recordDebugEvent(DebugPaths, "parse_failed", err.Error())
		return nil, err
	}
	r.result.Invocation = inv
	r.recordDebugEvent(DebugPaths, "mode", inv.Mode.String())

	switch inv.Mode {
	case ModeList:
		r.emit(strings.Join(runningApps, " "))
	case ModeSync:
		// Nothing to wait for; the emulator has no pending work.
	case ModeApp:
		if err := r.runApp(inv); err != nil {
			r.recordDebugEvent(DebugPaths, "hard_failure", err.Error())
			return nil, err
		}
		r.emit(r.result.Value)
	case ModeUnknown:
		r.result.ExitCode = ExitUnknownCommand
		r.emit(unknownCommandOutput)
	default:
		invariant.Invariant(false, "unhandled mode %s", inv.Mode)
	}

	for _, line := range r.result.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}

	r.result.DebugEvents = r.debugEvents
	return &r.result, nil
}

// run holds the state of a single invocation
type run struct {
	emulator    *Emulator
	result      Result
	debugEvents []DebugEvent
}

// emit queues a line of output
func (r *run) emit(line string) {
	r.result.Lines = append(r.result.Lines, line)
	r.recordDebugEvent(DebugDetailed, "emit", line)
}

// diagnose queues a soft-failure line
func (r *run) diagnose(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	r.result.Diagnostics = append(r.result.Diagnostics, line)
	r.emit(line)
}

// recordDebugEvent records debug events when tracing at level is enabled
func (r *run) recordDebugEvent(level DebugLevel, event, context string) {
	if r.emulator.config.Debug < level || r.debugEvents == nil {
		return
	}
	r.debugEvents = append(r.debugEvents, DebugEvent{
		Timestamp: time.Now(),
		Event:     event,
		Context:   context,
	})
}
