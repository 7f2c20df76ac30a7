package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/aledsdavies/pvcmd/core/params"
	"github.com/aledsdavies/pvcmd/runtime/emulator"
	"github.com/stretchr/testify/assert"
)

var testEnv = map[string]string{"HOME": "/home/amt"}

func runCLI(args []string, environ map[string]string) (stdout, stderr string, code int) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut, environ)
	return out.String(), errOut.String(), code
}

func TestRun(t *testing.T) {
	base := "/home/amt/data/amt_20160627_mrf5"

	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{"list", []string{"-l"}, "pvCmd pvScan\n", 0},
		{"sync", []string{"-s"}, "", 0},
		{"study", []string{"-a", "pvScan", "pvDsetPath", "x", "STUDY"}, base + "\n", 0},
		{"expno", []string{"-a", "pvScan", "pvDsetPath", "x", "EXPNO"}, base + "/1\n", 0},
		{"procno", []string{"-a", "pvScan", "pvDsetPath", "x", "PROCNO"}, base + "/1/pdata/1\n", 0},
		{"get int", []string{"-get", "pvScan", "RG"}, "10\n", 0},
		{"get float", []string{"-get", "pvScan", "BF1"}, "600.522\n", 0},
		{"unknown path", []string{"-a", "pvScan", "pvDsetPath", "x", "BOGUS"}, "unknown path: pvDsetPath x BOGUS\n\n", 0},
		{"unknown app", []string{"-get", "otherApp", "RG"}, "unknown app: otherApp\n\n", 0},
		{"unknown command", []string{"-bogus"}, "unknowncmd\n", 1},
		{"no arguments", nil, "unknowncmd\n", 1},
		{"help is not a mode", []string{"--help"}, "unknowncmd\n", 1},
		{"completion request is not a mode", []string{"__complete", "x"}, "unknowncmd\n", 1},
		{"completion request without descriptions", []string{"__completeNoDesc"}, "unknowncmd\n", 1},
		{"completion request as app argument", []string{"-get", "__complete", "RG"}, "unknown app: __complete\n\n", 0},
		{"completion request as command", []string{"-a", "pvScan", "__completeNoDesc"}, "unknown pvScan command: __completeNoDesc\n\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := runCLI(tt.args, testEnv)
			assert.Equal(t, tt.wantOut, stdout)
			assert.Empty(t, stderr, "stderr must stay empty on non-fatal paths")
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRunUnknownParameter(t *testing.T) {
	stdout, stderr, code := runCLI([]string{"-get", "pvScan", "Metho"}, testEnv)

	assert.Empty(t, stdout)
	assert.Equal(t, emulator.ExitLookupFailure, code)
	assert.Contains(t, stderr, `Error: unknown parameter "Metho"`)
	assert.Contains(t, stderr, "Hint: Did you mean 'Method'?")
}

func TestRunMissingArgument(t *testing.T) {
	stdout, stderr, code := runCLI([]string{"-get", "pvScan"}, testEnv)

	assert.Empty(t, stdout)
	assert.Equal(t, emulator.ExitMissingArgument, code)
	assert.Contains(t, stderr, "GetParam: missing parameter name")
	assert.Contains(t, stderr, "Usage: pvcmd -get <app> <param>")
}

func TestRunWithoutHome(t *testing.T) {
	stdout, stderr, code := runCLI([]string{"-l"}, map[string]string{})

	assert.Empty(t, stdout)
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, stderr, "HOME")
}

func TestRunIsRepeatable(t *testing.T) {
	args := []string{"-a", "pvScan", "-r", "pvDsetPath", "-path", "PROCNO"}
	first, _, _ := runCLI(args, testEnv)
	second, _, _ := runCLI(args, testEnv)
	assert.Equal(t, first, second)
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "generic",
			err:  errors.New("write output: broken pipe"),
			want: "Error: write output: broken pipe\n",
		},
		{
			name: "lookup without suggestion",
			err:  &params.LookupError{Name: "zzz"},
			want: "Error: unknown parameter \"zzz\"\n  GetParam only serves the canned parameter table\n",
		},
		{
			name: "missing app",
			err:  &emulator.ArgumentError{Selector: "-set", Missing: "app"},
			want: "Error: -set: missing app\nHint: Usage: pvcmd -set <app> <param> [value]\n",
		},
		{
			name: "cli error passthrough",
			err:  &CLIError{Message: "boom", Hint: "try again"},
			want: "Error: boom\nHint: try again\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCLIErrorString(t *testing.T) {
	err := &CLIError{Message: "m", Details: "d", Hint: "h"}
	assert.Equal(t, "m\nd\nh", err.Error())
}

func TestIsCompletionRequest(t *testing.T) {
	assert.True(t, isCompletionRequest([]string{"__complete", "x"}))
	assert.True(t, isCompletionRequest([]string{"__completeNoDesc"}))
	assert.True(t, isCompletionRequest([]string{"-get", "__complete", "RG"}))
	assert.False(t, isCompletionRequest([]string{"-l"}))
	assert.False(t, isCompletionRequest(nil))
}

func TestExitErrorString(t *testing.T) {
	assert.Equal(t, "exit status 1", (&exitError{code: 1}).Error())

	wrapped := errors.New("parse env: HOME")
	err := &exitError{code: ExitConfigError, err: wrapped}
	assert.Equal(t, "parse env: HOME", err.Error())
	assert.ErrorIs(t, err, wrapped)
}
