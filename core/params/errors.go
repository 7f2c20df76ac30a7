package params

import "fmt"

// LookupError reports a parameter name that is not in the table.
type LookupError struct {
	Name       string
	Suggestion string // closest known name, "" if nothing is close
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Name)
}
