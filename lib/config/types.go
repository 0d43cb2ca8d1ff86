package config

import (
	"strconv"
)

// NetworkMode selects the inter-node transport topology used to distribute
// relocated files. Exactly one mode is active per session.
type NetworkMode int

const (
	// NetworkCobo is a tree-based overlay network rooted at the launcher.
	NetworkCobo NetworkMode = iota
)

func (m NetworkMode) String() string {
	switch m {
	case NetworkCobo:
		return "cobo"
	default:
		return "unknown"
	}
}

// TransferMode selects the distribution strategy for loaded files.
type TransferMode int

const (
	// TransferPush broadcasts files loaded by any process to all servers.
	TransferPush TransferMode = iota
	// TransferPull fetches files on demand, only to servers that need them.
	TransferPull
)

func (m TransferMode) String() string {
	switch m {
	case TransferPush:
		return "push"
	case TransferPull:
		return "pull"
	default:
		return "unknown"
	}
}

// SecurityModel selects the authentication mechanism establishing trust
// between the launcher and its servers. The launcher only records the
// choice; the handshake itself lives in the daemon.
type SecurityModel int

const (
	// SecurityMunge authenticates connections with munge credentials.
	SecurityMunge SecurityModel = iota
	// SecurityKeyLMon exchanges session keys over the LaunchMON channel.
	SecurityKeyLMon
	// SecurityKeyFile reads a shared key from a global filesystem.
	SecurityKeyFile
	// SecurityNone disables authentication entirely.
	SecurityNone
)

func (m SecurityModel) String() string {
	switch m {
	case SecurityMunge:
		return "munge"
	case SecurityKeyLMon:
		return "lmon"
	case SecurityKeyFile:
		return "keyfile"
	case SecurityNone:
		return "none"
	default:
		return "unknown"
	}
}

// RelocOptions are independent toggles controlling which categories of
// program files are routed through the relocation cache. Any combination
// may be active at once.
type RelocOptions struct {
	// relocate the main executable
	Executable bool
	// relocate shared libraries
	Libraries bool
	// relocate the targets of exec-family calls
	ExecTargets bool
	// relocate python modules loaded by an interpreter
	Python bool
	// keep relocating inside fork'd children
	FollowFork bool
}

// MiscOptions are independent behavior toggles outside the relocation set.
type MiscOptions struct {
	// strip debug and symbol information before distribution
	Strip bool
	// hide the relocation layer from attached debuggers
	DebugHide bool
	// stage a preload list of files before execution begins
	Preload bool
	// keep the local file cache after the job exits
	NoClean bool
}

// Params carries every resolved value into New. It exists so the resolution
// engine can build a Config in one shot; nothing mutates a Config afterward.
type Params struct {
	Reloc          RelocOptions
	Misc           MiscOptions
	Network        NetworkMode
	Transfer       TransferMode
	Security       SecurityModel
	RemapExec      bool
	Port           int
	LocationRoot   string
	PreloadFile    string
	PythonPrefixes string
	UseMPI         bool
	HideFDs        bool
	LoggingEnabled bool
	JobCommand     []string
}

// Config is the finalized, immutable launch configuration. It is created
// exactly once, after all command-line events have been resolved, and every
// downstream reader goes through the accessor methods.
type Config struct {
	reloc          RelocOptions
	misc           MiscOptions
	network        NetworkMode
	transfer       TransferMode
	security       SecurityModel
	remapExec      bool
	port           int
	locationRoot   string
	preloadFile    string
	pythonPrefixes string
	useMPI         bool
	hideFDs        bool
	loggingEnabled bool
	jobCommand     []string
}

// New freezes a resolved parameter set into a Config. The job command is
// copied so later mutation of the caller's slice cannot leak in.
func New(p Params) *Config {
	cmd := make([]string, len(p.JobCommand))
	copy(cmd, p.JobCommand)
	return &Config{
		reloc:          p.Reloc,
		misc:           p.Misc,
		network:        p.Network,
		transfer:       p.Transfer,
		security:       p.Security,
		remapExec:      p.RemapExec,
		port:           p.Port,
		locationRoot:   p.LocationRoot,
		preloadFile:    p.PreloadFile,
		pythonPrefixes: p.PythonPrefixes,
		useMPI:         p.UseMPI,
		hideFDs:        p.HideFDs,
		loggingEnabled: p.LoggingEnabled,
		jobCommand:     cmd,
	}
}

// Reloc returns the resolved relocation toggles.
func (c *Config) Reloc() RelocOptions { return c.reloc }

// Misc returns the resolved miscellaneous toggles.
func (c *Config) Misc() MiscOptions { return c.misc }

// Network returns the resolved transport topology.
func (c *Config) Network() NetworkMode { return c.network }

// Transfer returns the resolved push/pull distribution strategy.
func (c *Config) Transfer() TransferMode { return c.transfer }

// Security returns the resolved authentication model.
func (c *Config) Security() SecurityModel { return c.security }

// RemapExec reports whether executables are remapped in place instead of
// relocated, the behavior debugger hiding derives.
func (c *Config) RemapExec() bool { return c.remapExec }

// Port returns the TCP port the servers listen on.
func (c *Config) Port() int { return c.port }

// LocationRoot returns the raw per-node storage path template.
func (c *Config) LocationRoot() string { return c.locationRoot }

// Location returns the storage directory for one server instance,
// computed on demand so several instances can share one root.
func (c *Config) Location(instance int) string {
	return c.locationRoot + "/spindle." + strconv.Itoa(instance)
}

// PreloadFile returns the path of the preload list, or "" when unset.
func (c *Config) PreloadFile() string { return c.preloadFile }

// PythonPrefixes returns the merged colon-separated python install prefixes.
func (c *Config) PythonPrefixes() string { return c.pythonPrefixes }

// UseMPI reports whether the wrapped job is an MPI program.
func (c *Config) UseMPI() bool { return c.useMPI }

// HideFDs reports whether launcher file descriptors are hidden from the
// application.
func (c *Config) HideFDs() bool { return c.hideFDs }

// LoggingEnabled reports whether usage logging is active for this run.
func (c *Config) LoggingEnabled() bool { return c.loggingEnabled }

// JobCommand returns a copy of the wrapped command line.
func (c *Config) JobCommand() []string {
	cmd := make([]string, len(c.jobCommand))
	copy(cmd, c.jobCommand)
	return cmd
}
