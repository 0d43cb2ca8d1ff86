package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-spindle/spindle/lib/config"
	"github.com/go-spindle/spindle/lib/resolve"
	"github.com/go-spindle/spindle/lib/util/logger"
	"github.com/spf13/cobra"
)

var log = logger.GetLogger()

// Version of the spindle launcher front-end.
const Version = "0.1.0"

// RootCmd is the launcher entrypoint. Flag parsing is disabled because
// launcher options interleave with the wrapped job command; the option
// scanner in lib/options owns argv instead.
var RootCmd = &cobra.Command{
	Use:                "spindle [OPTIONS..] command [args..]",
	Short:              "resolve and stage a distributed file-relocation session",
	Version:            Version,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func init() {
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), usageText())
	})
}

// Execute runs the root command. Fatal configuration errors go to stderr
// with a non-zero exit status; no partial session plan is ever emitted.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spindle: %s\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	rest, done, err := interceptBuiltins(cmd, args)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	config.InitConfig()
	defaults, err := config.DefaultsFromViper()
	if err != nil {
		return err
	}

	cfg, err := resolve.Resolve(defaults, rest)
	if err != nil {
		return err
	}

	plan, err := cfg.RenderPlan()
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(plan); err != nil {
		return err
	}
	log.WithField("command", strings.Join(cfg.JobCommand(), " ")).Debug("session plan emitted")
	return nil
}

// interceptBuiltins strips --help, --version and --config from the option
// region before the scanner sees argv. Interception stops at the first
// non-option token or "--" so the wrapped command keeps such flags intact.
func interceptBuiltins(cmd *cobra.Command, args []string) (rest []string, done bool, err error) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		tok := args[i]
		if tok == "--" || !strings.HasPrefix(tok, "-") || tok == "-" {
			rest = append(rest, args[i:]...)
			return rest, false, nil
		}
		switch {
		case tok == "--help" || tok == "-?":
			return nil, true, cmd.Help()
		case tok == "--version":
			fmt.Fprintf(cmd.OutOrStdout(), "spindle %s\n", Version)
			return nil, true, nil
		case tok == "--config":
			if i+1 >= len(args) {
				return nil, false, fmt.Errorf("option '--config' requires an argument")
			}
			i++
			config.CfgFile = args[i]
		case strings.HasPrefix(tok, "--config="):
			config.CfgFile = strings.TrimPrefix(tok, "--config=")
		default:
			rest = append(rest, tok)
		}
	}
	return rest, false, nil
}
