package emulator

import "fmt"

// Mode is the top-level mode selected by the first argument.
type Mode int

const (
	ModeUnknown Mode = iota // Unrecognized or missing selector
	ModeList                // -l
	ModeSync                // -s
	ModeApp                 // -a, -get, -set
)

func (m Mode) String() string {
	switch m {
	case ModeUnknown:
		return "unknown"
	case ModeList:
		return "list"
	case ModeSync:
		return "sync"
	case ModeApp:
		return "app"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// App is an application that pvcmd can address.
type App int

const (
	AppUnknown App = iota
	AppPvScan
)

// String returns the wire name of a known app.
func (a App) String() string {
	switch a {
	case AppPvScan:
		return "pvScan"
	default:
		return "unknown"
	}
}

func parseApp(name string) App {
	switch name {
	case "pvScan":
		return AppPvScan
	default:
		return AppUnknown
	}
}

// Command is a pvScan command.
type Command int

const (
	CommandUnknown Command = iota
	CommandDsetPath
	CommandGetParam
)

var commandNames = map[string]Command{
	"pvDsetPath": CommandDsetPath,
	"GetParam":   CommandGetParam,
}

// knownCommands is the suggestion pool for unknown pvScan commands.
var knownCommands = []string{"GetParam", "pvDsetPath"}

func parseCommand(name string) Command {
	return commandNames[name]
}

// Mode selectors as they appear on the command line.
const (
	selectorList = "-l"
	selectorSync = "-s"
	selectorApp  = "-a"
	selectorGet  = "-get"
	selectorSet  = "-set"
	flagRaw      = "-r"
)

// Invocation is a parsed argument vector.
type Invocation struct {
	Mode     Mode
	Selector string   // first argument as given, "" if absent
	App      string   // ModeApp only
	Raw      bool     // -r was given after the app
	Command  string   // ModeApp only
	Args     []string // arguments after the command (ModeApp) or selector (ModeSync)
}

// Parse splits argv (without the program name) into an Invocation.
//
// The grammar is positional:
//
//	-l
//	-s [target]
//	-a <app> [-r] <command> [args...]
//	-get <app> <param>
//	-set <app> <param> [value]
//
// -get and -set are shorthands for -a <app> GetParam and -a <app> SetParam.
// Anything else parses as ModeUnknown. A missing app or command returns an
// *ArgumentError.
func Parse(argv []string) (Invocation, error) {
	if len(argv) == 0 {
		return Invocation{Mode: ModeUnknown}, nil
	}

	inv := Invocation{Selector: argv[0]}
	rest := argv[1:]

	switch inv.Selector {
	case selectorList:
		inv.Mode = ModeList
		return inv, nil

	case selectorSync:
		inv.Mode = ModeSync
		inv.Args = rest
		return inv, nil

	case selectorApp:
		inv.Mode = ModeApp
		if len(rest) == 0 {
			return Invocation{}, &ArgumentError{Selector: inv.Selector, Missing: "app"}
		}
		inv.App, rest = rest[0], rest[1:]
		if len(rest) > 0 && rest[0] == flagRaw {
			inv.Raw = true
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return Invocation{}, &ArgumentError{Selector: inv.Selector, Missing: "command"}
		}
		inv.Command, inv.Args = rest[0], rest[1:]
		return inv, nil

	case selectorGet, selectorSet:
		inv.Mode = ModeApp
		if len(rest) == 0 {
			return Invocation{}, &ArgumentError{Selector: inv.Selector, Missing: "app"}
		}
		inv.App, inv.Args = rest[0], rest[1:]
		inv.Command = "GetParam"
		if inv.Selector == selectorSet {
			inv.Command = "SetParam"
		}
		return inv, nil

	default:
		inv.Mode = ModeUnknown
		return inv, nil
	}
}
