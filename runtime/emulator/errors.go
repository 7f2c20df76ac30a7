package emulator

import (
	"errors"
	"fmt"

	"github.com/aledsdavies/pvcmd/core/params"
)

// Exit codes
const (
	ExitSuccess         = 0
	ExitUnknownCommand  = 1
	ExitMissingArgument = 2
	ExitLookupFailure   = 3
)

// ArgumentError reports a required positional argument that was not given.
type ArgumentError struct {
	Selector string // mode selector, e.g. "-a"
	Command  string // pvScan command, "" when the argument belongs to the mode
	Missing  string // what was expected, e.g. "app" or "parameter name"
}

func (e *ArgumentError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: missing %s", e.Command, e.Missing)
	}
	return fmt.Sprintf("%s: missing %s", e.Selector, e.Missing)
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return ExitMissingArgument
	}
	var lookupErr *params.LookupError
	if errors.As(err, &lookupErr) {
		return ExitLookupFailure
	}
	return ExitUnknownCommand
}
