package resolve

import (
	"strings"

	"github.com/go-spindle/spindle/lib/config"
	"github.com/go-spindle/spindle/lib/options"
	"github.com/samber/oops"
)

// Finalize runs the resolution algorithm over the accumulated state and
// freezes the result. It is pure computation over already-collected sets:
// no I/O, no clock, and it runs exactly once. Any failure aborts
// construction entirely; there is no partial configuration.
func (r *Resolver) Finalize() (*config.Config, error) {
	if r.finalized {
		panic("resolve: Finalize called twice")
	}
	r.finalized = true

	// An option both enabled and disabled is a contradiction no matter
	// which group it belongs to.
	if conflict := r.enabled & r.disabled; conflict != 0 {
		return nil, oops.Code(CodeConfigConflict).
			Errorf("cannot have the same option both enabled and disabled: %s", codeNames(conflict))
	}

	// Exclusive groups keep exactly one winner, chosen or defaulted.
	network := r.enabled & options.AllNetworkCodes
	if multiBitsSet(network) {
		return nil, oops.Code(CodeExclusiveGroup).Errorf("cannot enable multiple network options")
	}
	if network == 0 {
		network = options.DefaultNetworkCodes
	}

	pushpull := r.enabled & options.AllPushPullCodes
	if multiBitsSet(pushpull) {
		return nil, oops.Code(CodeExclusiveGroup).Errorf("cannot enable both push and pull options")
	}
	if pushpull == 0 {
		pushpull = options.DefaultPushPullCodes
	}

	// Union groups: a disabled bit is gone even if it was also enabled-by-
	// default or enabled explicitly, so disabling strictly dominates.
	reloc := options.AllRelocCodes &^ r.disabled & (r.enabled | options.DefaultRelocCodes)
	misc := options.AllMiscCodes &^ r.disabled & (r.enabled | options.DefaultMiscCodes)

	security := r.security
	if !r.securitySet {
		security = r.defaults.Security
	}

	// Hiding from debuggers requires executables to appear to load from
	// their original locations, which relocation would break. Remap them
	// in place instead.
	remapExec := false
	if misc&options.CodeDebug != 0 {
		reloc &^= options.CodeRelocAout
		reloc &^= options.CodeRelocExec
		remapExec = true
	}

	if len(r.trailing) == 0 {
		return nil, oops.Code(CodeMissingCommand).Errorf("no job command line found")
	}

	port := r.port
	if port == 0 {
		port = r.defaults.Port
	}
	location := r.location
	if location == "" {
		location = r.defaults.LocationRoot
	}

	return config.New(config.Params{
		Reloc: config.RelocOptions{
			Executable:  reloc&options.CodeRelocAout != 0,
			Libraries:   reloc&options.CodeRelocLibs != 0,
			ExecTargets: reloc&options.CodeRelocExec != 0,
			Python:      reloc&options.CodeRelocPython != 0,
			FollowFork:  reloc&options.CodeFollowFork != 0,
		},
		Misc: config.MiscOptions{
			Strip:     misc&options.CodeStrip != 0,
			DebugHide: misc&options.CodeDebug != 0,
			Preload:   misc&options.CodePreload != 0,
			NoClean:   misc&options.CodeNoClean != 0,
		},
		Network:        config.NetworkCobo,
		Transfer:       transferMode(pushpull),
		Security:       security,
		RemapExec:      remapExec,
		Port:           port,
		LocationRoot:   location,
		PreloadFile:    r.preloadFile,
		PythonPrefixes: config.MergePrefixPaths(r.defaults.PythonPrefixes, r.pythonPrefixes),
		UseMPI:         r.useMPI,
		HideFDs:        r.hideFDs,
		LoggingEnabled: r.loggingEnabled,
		JobCommand:     r.trailing,
	}), nil
}

func multiBitsSet(v options.Code) bool {
	return v&(v-1) != 0
}

func transferMode(code options.Code) config.TransferMode {
	if code == options.CodePull {
		return config.TransferPull
	}
	return config.TransferPush
}

// codeNames renders a code set as the option names it covers, for error
// messages that must point at the offending flags.
func codeNames(codes options.Code) string {
	var names []string
	for _, d := range options.All() {
		if d.Code != 0 && codes&d.Code != 0 {
			names = append(names, "--"+d.Name)
		}
	}
	return strings.Join(names, ", ")
}
