package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aledsdavies/pvcmd/core/params"
	"github.com/aledsdavies/pvcmd/runtime/emulator"
)

// CLIError represents a formatted CLI error with context
type CLIError struct {
	Message string
	Details string // Additional context
	Hint    string // How to fix it
}

// Error implements the error interface
func (e *CLIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Details != "" {
		b.WriteString("\n")
		b.WriteString(e.Details)
	}
	if e.Hint != "" {
		b.WriteString("\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// FormatError writes err to w. Errors with known types get details and a hint.
func FormatError(w io.Writer, err error) {
	if err == nil {
		return
	}
	formatCLIError(w, toCLIError(err))
}

// toCLIError attaches context to the hard failures the emulator can return.
func toCLIError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var lookupErr *params.LookupError
	if errors.As(err, &lookupErr) {
		e := &CLIError{
			Message: err.Error(),
			Details: "GetParam only serves the canned parameter table",
		}
		if lookupErr.Suggestion != "" {
			e.Hint = fmt.Sprintf("Did you mean '%s'?", lookupErr.Suggestion)
		}
		return e
	}

	var argErr *emulator.ArgumentError
	if errors.As(err, &argErr) {
		return &CLIError{
			Message: err.Error(),
			Hint:    usageHint(argErr),
		}
	}

	return &CLIError{Message: err.Error()}
}

func usageHint(err *emulator.ArgumentError) string {
	switch err.Command {
	case "GetParam":
		return "Usage: pvcmd -get <app> <param>"
	case "pvDsetPath":
		return "Usage: pvcmd -a pvScan pvDsetPath -path STUDY|EXPNO|PROCNO"
	}
	switch err.Selector {
	case "-get":
		return "Usage: pvcmd -get <app> <param>"
	case "-set":
		return "Usage: pvcmd -set <app> <param> [value]"
	default:
		return "Usage: pvcmd -a <app> [-r] <command> [args...]"
	}
}

// formatCLIError formats CLI errors
func formatCLIError(w io.Writer, err *CLIError) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err.Message)

	if err.Details != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", err.Details)
	}

	if err.Hint != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", err.Hint)
	}
}
