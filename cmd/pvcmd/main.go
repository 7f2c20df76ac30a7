// Command pvcmd emulates the ParaVision pvcmd tool for tests that drive it
// without a running ParaVision suite.
//
//	pvcmd -l
//	pvcmd -s [target]
//	pvcmd -a <app> [-r] <command> [args...]
//	pvcmd -get <app> <param>
//	pvcmd -set <app> <param> [value]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aledsdavies/pvcmd/core/dataset"
	"github.com/aledsdavies/pvcmd/core/params"
	"github.com/aledsdavies/pvcmd/internal/config"
	"github.com/aledsdavies/pvcmd/runtime/emulator"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// ExitConfigError is returned when the environment cannot be loaded.
const ExitConfigError = 4

// exitError carries a process exit status out of cobra.
type exitError struct {
	code int
	err  error // nil when the status needs no message
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, env.ToMap(os.Environ())))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer, environ map[string]string) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}

	var err error
	if isCompletionRequest(args) {
		// cobra answers its hidden completion commands before RunE, so
		// these never reach the emulator through Execute.
		err = runEmulator(args, stdout, environ)
	} else {
		rootCmd := newRootCmd(stdout, environ)
		rootCmd.SetArgs(args)
		rootCmd.SetOut(stdout)
		rootCmd.SetErr(stderr)
		err = rootCmd.Execute()
	}
	if err == nil {
		return emulator.ExitSuccess
	}

	var exitErr *exitError
	if !errors.As(err, &exitErr) {
		FormatError(stderr, err)
		return emulator.ExitUnknownCommand
	}
	if exitErr.err != nil {
		FormatError(stderr, exitErr.err)
	}
	return exitErr.code
}

// isCompletionRequest reports whether cobra could route args to its shell
// completion command. cobra matches the first word that does not look like
// a flag, which need not be args[0] (e.g. "-get __complete RG").
func isCompletionRequest(args []string) bool {
	for _, arg := range args {
		if arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd {
			return true
		}
	}
	return false
}

func newRootCmd(stdout io.Writer, environ map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:   "pvcmd -l | -s | -a <app> [-r] <command> [args...] | -get <app> <param> | -set <app> <param> [value]",
		Short: "Emulate the ParaVision pvcmd tool from canned tables",
		// The grammar is positional and uses single-dash words like -get,
		// which pflag would read as bundled shorthands.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args:               cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmulator(args, stdout, environ)
		},
	}
}

func runEmulator(args []string, stdout io.Writer, environ map[string]string) error {
	cfg, err := config.Load(environ)
	if err != nil {
		return &exitError{code: ExitConfigError, err: err}
	}

	emu := emulator.New(emulator.Config{}, params.Default(), dataset.New(cfg.Home))
	result, err := emu.Run(args, stdout)
	if err != nil {
		return &exitError{code: emulator.ExitCode(err), err: err}
	}
	if result.ExitCode != emulator.ExitSuccess {
		return &exitError{code: result.ExitCode}
	}
	return nil
}
