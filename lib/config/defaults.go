package config

// Compiled-in fallbacks. A site can override any of these through the
// config file or environment; the command line overrides both.
const (
	// DefaultPort is the TCP port spindle servers listen on.
	DefaultPort = 21940
	// DefaultLocationRoot should be node-local storage such as a ramdisk.
	DefaultLocationRoot = "/tmp/spindle"
	// DefaultPythonPrefixes is where the python install usually lives.
	DefaultPythonPrefixes = "/usr"
)

// Defaults seeds the resolution engine with the values that apply when the
// command line says nothing.
type Defaults struct {
	// TCP port for spindle servers
	Port int
	// per-node storage path template
	LocationRoot string
	// colon-separated python install prefixes
	PythonPrefixes string
	// authentication model applied when none is selected
	Security SecurityModel
	// whether usage logging starts enabled
	LoggingEnabled bool
}

// default resolution seed
var defaultDefaults = Defaults{
	Port:           DefaultPort,
	LocationRoot:   DefaultLocationRoot,
	PythonPrefixes: DefaultPythonPrefixes,
	Security:       DefaultSecurityModel,
	LoggingEnabled: false,
}

// CompiledDefaults returns the build-time default set, before any config
// file or environment override is applied.
func CompiledDefaults() Defaults {
	return defaultDefaults
}
