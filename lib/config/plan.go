package config

import (
	"gopkg.in/yaml.v3"
)

// sessionPlan is the YAML shape handed to the back-end daemon. It mirrors
// the accessor surface; keep the two in sync when adding fields.
type sessionPlan struct {
	Network        string    `yaml:"network"`
	Transfer       string    `yaml:"transfer"`
	Security       string    `yaml:"security"`
	Port           int       `yaml:"port"`
	Location       string    `yaml:"location"`
	Reloc          relocPlan `yaml:"reloc"`
	Misc           miscPlan  `yaml:"misc"`
	RemapExec      bool      `yaml:"remap_exec"`
	PreloadFile    string    `yaml:"preload_file,omitempty"`
	PythonPrefixes string    `yaml:"python_prefixes"`
	UseMPI         bool      `yaml:"use_mpi"`
	HideFDs        bool      `yaml:"hide_fds"`
	UsageLogging   bool      `yaml:"usage_logging"`
	JobCommand     []string  `yaml:"job_command"`
}

type relocPlan struct {
	Executable  bool `yaml:"executable"`
	Libraries   bool `yaml:"libraries"`
	ExecTargets bool `yaml:"exec_targets"`
	Python      bool `yaml:"python"`
	FollowFork  bool `yaml:"follow_fork"`
}

type miscPlan struct {
	Strip     bool `yaml:"strip"`
	DebugHide bool `yaml:"debug_hide"`
	Preload   bool `yaml:"preload"`
	NoClean   bool `yaml:"no_clean"`
}

// MarshalYAML renders the finalized configuration as the session plan.
func (c *Config) MarshalYAML() (interface{}, error) {
	return sessionPlan{
		Network:  c.network.String(),
		Transfer: c.transfer.String(),
		Security: c.security.String(),
		Port:     c.port,
		Location: c.locationRoot,
		Reloc: relocPlan{
			Executable:  c.reloc.Executable,
			Libraries:   c.reloc.Libraries,
			ExecTargets: c.reloc.ExecTargets,
			Python:      c.reloc.Python,
			FollowFork:  c.reloc.FollowFork,
		},
		Misc: miscPlan{
			Strip:     c.misc.Strip,
			DebugHide: c.misc.DebugHide,
			Preload:   c.misc.Preload,
			NoClean:   c.misc.NoClean,
		},
		RemapExec:      c.remapExec,
		PreloadFile:    c.preloadFile,
		PythonPrefixes: c.pythonPrefixes,
		UseMPI:         c.useMPI,
		HideFDs:        c.hideFDs,
		UsageLogging:   c.loggingEnabled,
		JobCommand:     c.JobCommand(),
	}, nil
}

// RenderPlan serializes the session plan for handoff to the daemon.
func (c *Config) RenderPlan() ([]byte, error) {
	return yaml.Marshal(c)
}
