// Package invariant provides contract assertions for the pvcmd emulator.
//
// The canned tables are built once at startup and never change afterwards.
// Anything that breaks their shape is a programming error, not a user error,
// so every function here panics on violation.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
// Panics with PRECONDITION VIOLATION if condition is false.
//
// Example:
//
//	func New(home string) Paths {
//	    invariant.Precondition(!strings.HasSuffix(home, "/"), "home must not end in a slash")
//	    // ...
//	}
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before function return.
// Panics with POSTCONDITION VIOLATION if condition is false.
//
// Example:
//
//	invariant.Postcondition(descendsFrom(p.Expno, p.Study),
//	    "EXPNO path %q must descend from %q", p.Expno, p.Study)
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks internal consistency during function execution.
// Panics with INVARIANT VIOLATION if condition is false.
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// NotEmpty panics if value is the empty string.
func NotEmpty(value, name string) {
	if value == "" {
		fail("PRECONDITION", "%s must not be empty", name)
	}
}

// fail panics with a formatted message including the caller's location.
func fail(kind, format string, args ...interface{}) {
	// Skip runtime.Callers, fail() and the exported wrapper
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)

	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}

	panic(msg)
}
