package emulator

import (
	"strings"

	"github.com/aledsdavies/pvcmd/core/dataset"
	"github.com/aledsdavies/pvcmd/core/suggest"
)

// runApp dispatches an app-mode invocation. Soft failures leave
// r.result.Value empty and queue a diagnostic.
func (r *run) runApp(inv Invocation) error {
	app := parseApp(inv.App)
	r.recordDebugEvent(DebugPaths, "dispatch_app", inv.App)

	switch app {
	case AppPvScan:
		return r.runPvScan(inv)
	default:
		r.diagnose("unknown app: %s", inv.App)
		return nil
	}
}

func (r *run) runPvScan(inv Invocation) error {
	cmd := parseCommand(inv.Command)
	r.recordDebugEvent(DebugPaths, "dispatch_command", inv.Command)

	switch cmd {
	case CommandDsetPath:
		return r.dsetPath(inv)
	case CommandGetParam:
		return r.getParam(inv)
	default:
		msg := "unknown pvScan command: " + joinArgs(inv.Command, inv.Args)
		if closest := suggest.Closest(inv.Command, knownCommands); closest != "" {
			msg += " (did you mean " + closest + "?)"
		}
		r.diagnose("%s", msg)
		return nil
	}
}

// dsetPath resolves the path level named by the second argument. The first
// argument is a selector such as "-path" and is not interpreted.
func (r *run) dsetPath(inv Invocation) error {
	if len(inv.Args) < 2 {
		return &ArgumentError{Selector: inv.Selector, Command: inv.Command, Missing: "path level"}
	}

	level, ok := dataset.ParseLevel(inv.Args[1])
	if !ok {
		r.diagnose("unknown path: %s", joinArgs(inv.Command, inv.Args))
		return nil
	}

	r.result.Value = r.emulator.paths.Resolve(level)
	r.recordDebugEvent(DebugDetailed, "resolve_path", level.String()+"="+r.result.Value)
	return nil
}

// getParam looks up the first argument in the parameter table. An unknown
// name is a hard failure.
func (r *run) getParam(inv Invocation) error {
	if len(inv.Args) == 0 {
		return &ArgumentError{Selector: inv.Selector, Command: inv.Command, Missing: "parameter name"}
	}

	name := inv.Args[0]
	v, err := r.emulator.params.Lookup(name)
	if err != nil {
		return err
	}

	r.result.Value = v.String()
	r.recordDebugEvent(DebugDetailed, "lookup_param", name+"="+r.result.Value+" ("+v.Kind.String()+")")
	return nil
}

func joinArgs(command string, args []string) string {
	return strings.Join(append([]string{command}, args...), " ")
}
