package options

import (
	"github.com/go-spindle/spindle/lib/config"
	"github.com/samber/oops"
)

// Group classifies how an option combines with its siblings. Exclusive
// groups (network, push/pull, security) resolve to one winner; union groups
// (reloc, misc) are independent toggles that may all be active at once.
type Group int

const (
	GroupNone Group = iota
	GroupReloc
	GroupPushPull
	GroupNetwork
	GroupSecurity
	GroupMisc
)

// Kind describes how an option's argument is interpreted.
type Kind int

const (
	// BoolToggle takes a yes|no argument and lands in the enabled or
	// disabled set accordingly.
	BoolToggle Kind = iota
	// PresenceFlag has no argument; naming it means "on".
	PresenceFlag
	// ScalarString stores its argument directly; last write wins.
	ScalarString
	// ScalarInt is a ScalarString that must parse as an integer.
	ScalarInt
	// ModeSelector overwrites a single group-wide choice; last write wins.
	ModeSelector
)

// Code is an option's bit value. The resolution engine accumulates codes
// into enabled/disabled sets and runs its group algebra over them.
type Code uint64

const (
	CodeRelocAout Code = 1 << iota
	CodeRelocLibs
	CodeRelocExec
	CodeRelocPython
	CodeFollowFork
	CodeCobo
	CodePush
	CodePull
	CodeStrip
	CodeDebug
	CodePreload
	CodeNoClean
)

// Per-group code sets and the bits a group turns on by default.
const (
	AllRelocCodes    = CodeRelocAout | CodeRelocLibs | CodeRelocExec | CodeRelocPython | CodeFollowFork
	AllNetworkCodes  = CodeCobo
	AllPushPullCodes = CodePush | CodePull
	AllMiscCodes     = CodeStrip | CodeDebug | CodePreload | CodeNoClean

	DefaultRelocCodes    = AllRelocCodes
	DefaultNetworkCodes  = CodeCobo
	DefaultPushPullCodes = CodePush
	DefaultMiscCodes     = CodeStrip
)

// Descriptor is one registered option. The table is populated once at
// process start and never modified.
type Descriptor struct {
	// long option name, without the leading dashes
	Name string
	// single-character alias, 0 when the option has none
	Short byte
	// bit value for bitmask-group options, 0 for scalars and selectors
	Code Code
	// combination group
	Group Group
	// argument interpretation
	Kind Kind
	// argument placeholder shown in usage, "" for presence flags
	Arg string
	// one-line usage description
	Help string
	// selected model, meaningful only for GroupSecurity selectors
	Security config.SecurityModel
}

const yesno = "yes|no"

// registry lists every option in the order usage output presents them.
var registry = []Descriptor{
	{Name: "reloc-aout", Short: 'a', Code: CodeRelocAout, Group: GroupReloc, Kind: BoolToggle, Arg: yesno,
		Help: "Relocate the main executable through spindle. Default: yes"},
	{Name: "reloc-libs", Short: 'l', Code: CodeRelocLibs, Group: GroupReloc, Kind: BoolToggle, Arg: yesno,
		Help: "Relocate shared libraries through spindle. Default: yes"},
	{Name: "reloc-python", Short: 'y', Code: CodeRelocPython, Group: GroupReloc, Kind: BoolToggle, Arg: yesno,
		Help: "Relocate python modules (.py/.pyc) files when loaded via python. Default: yes"},
	{Name: "reloc-exec", Short: 'x', Code: CodeRelocExec, Group: GroupReloc, Kind: BoolToggle, Arg: yesno,
		Help: "Relocate the targets of exec/execv/execve/... calls. Default: yes"},
	{Name: "follow-fork", Short: 'f', Code: CodeFollowFork, Group: GroupReloc, Kind: BoolToggle, Arg: yesno,
		Help: "Relocate objects in fork'd child processes. Default: yes"},
	{Name: "push", Short: 'p', Code: CodePush, Group: GroupPushPull, Kind: PresenceFlag,
		Help: "Use a push model where objects loaded by any process are made available to all processes"},
	{Name: "pull", Short: 'q', Code: CodePull, Group: GroupPushPull, Kind: PresenceFlag,
		Help: "Use a pull model where objects are only made available to processes that require them"},
	{Name: "cobo", Short: 'c', Code: CodeCobo, Group: GroupNetwork, Kind: PresenceFlag,
		Help: "Use a tree-based cobo network for distributing objects"},
	{Name: "port", Short: 't', Group: GroupNetwork, Kind: ScalarInt, Arg: "number",
		Help: "TCP port for spindle servers"},
	{Name: "location", Short: 'o', Group: GroupNetwork, Kind: ScalarString, Arg: "directory",
		Help: "Back-end directory for storing relocated files. Should be a non-shared location such as a ramdisk"},
	{Name: "security-munge", Group: GroupSecurity, Kind: ModeSelector, Security: config.SecurityMunge,
		Help: "Use munge for security authentication"},
	{Name: "security-lmon", Group: GroupSecurity, Kind: ModeSelector, Security: config.SecurityKeyLMon,
		Help: "Use LaunchMON to exchange keys for security authentication"},
	{Name: "security-keyfile", Group: GroupSecurity, Kind: ModeSelector, Security: config.SecurityKeyFile,
		Help: "Use a keyfile stored in a global file system for security authentication"},
	{Name: "security-none", Group: GroupSecurity, Kind: ModeSelector, Security: config.SecurityNone,
		Help: "Do not do any security authentication"},
	{Name: "python-prefix", Short: 'r', Group: GroupMisc, Kind: ScalarString, Arg: "path",
		Help: "Colon-separated list of directories that contain the python install location"},
	{Name: "debug", Short: 'd', Code: CodeDebug, Group: GroupMisc, Kind: BoolToggle, Arg: yesno,
		Help: "Hide spindle from debuggers so they think libraries come from the original locations. Default: no"},
	{Name: "preload", Short: 'e', Code: CodePreload, Group: GroupMisc, Kind: ScalarString, Arg: "FILE",
		Help: "Provides a text file containing a white-space separated list of files that should be relocated to each node before execution begins"},
	{Name: "strip", Short: 's', Code: CodeStrip, Group: GroupMisc, Kind: BoolToggle, Arg: yesno,
		Help: "Strip debug and symbol information from binaries before distributing them. Default: yes"},
	{Name: "noclean", Short: 'n', Code: CodeNoClean, Group: GroupMisc, Kind: BoolToggle, Arg: yesno,
		Help: "Don't remove local file cache after execution. Default: no (removes the cache)"},
	{Name: "disable-logging", Short: 'z', Group: GroupMisc, Kind: PresenceFlag,
		Help: "Disable usage logging for this invocation of spindle"},
	{Name: "no-mpi", Short: 'm', Group: GroupNone, Kind: PresenceFlag,
		Help: "Run serial jobs instead of MPI job"},
	{Name: "no-hide", Short: 'h', Group: GroupMisc, Kind: PresenceFlag,
		Help: "Don't hide spindle file descriptors from application"},
}

var (
	byName  = make(map[string]*Descriptor, len(registry))
	byShort = make(map[byte]*Descriptor, len(registry))
)

func init() {
	for i := range registry {
		d := &registry[i]
		byName[d.Name] = d
		if d.Short != 0 {
			byShort[d.Short] = d
		}
	}
}

// All returns the option table in presentation order.
func All() []Descriptor {
	table := make([]Descriptor, len(registry))
	copy(table, registry)
	return table
}

// Lookup finds an option by its long name.
func Lookup(name string) (*Descriptor, error) {
	if d, ok := byName[name]; ok {
		return d, nil
	}
	return nil, oops.Code("unknown_option").Errorf("unrecognized option '--%s'", name)
}

// LookupShort finds an option by its single-character alias.
func LookupShort(short byte) (*Descriptor, error) {
	if d, ok := byShort[short]; ok {
		return d, nil
	}
	return nil, oops.Code("unknown_option").Errorf("unrecognized option '-%c'", short)
}
