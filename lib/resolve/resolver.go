package resolve

import (
	"strconv"

	"github.com/go-spindle/spindle/lib/config"
	"github.com/go-spindle/spindle/lib/options"
	"github.com/go-spindle/spindle/lib/util/logger"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

var log = logger.GetLogger()

// Resolver accumulates classified option events and, once the input is
// exhausted, finalizes them into one immutable config.Config. Codes are
// only ever added to the enabled/disabled sets; all cross-option checks
// wait for Finalize so declaration order cannot change the outcome.
type Resolver struct {
	defaults config.Defaults

	enabled  options.Code
	disabled options.Code

	port           int
	location       string
	preloadFile    string
	pythonPrefixes string

	security    config.SecurityModel
	securitySet bool

	useMPI         bool
	hideFDs        bool
	loggingEnabled bool

	trailing    []string
	trailingSet bool
	finalized   bool
}

// NewResolver returns a Resolver seeded with the layered defaults from the
// config file and environment.
func NewResolver(defaults config.Defaults) *Resolver {
	return &Resolver{
		defaults:       defaults,
		useMPI:         true,
		hideFDs:        true,
		loggingEnabled: defaults.LoggingEnabled,
	}
}

// Apply accumulates one event. Option events after the trailing-command
// capture are ignored; the scanner treats that text as job arguments, so
// anything arriving here afterward is stale. Calling Apply on a finalized
// Resolver is a programming error and panics.
func (r *Resolver) Apply(ev options.Event) error {
	if r.finalized {
		panic("resolve: event applied after finalization")
	}

	if ev.Kind == options.EventTrailingArgs {
		r.trailing = ev.Args
		r.trailingSet = true
		return nil
	}
	if r.trailingSet {
		return nil
	}

	desc := ev.Option
	switch desc.Kind {
	case options.BoolToggle:
		switch ev.Arg {
		case "yes", "y":
			r.enabled |= desc.Code
		case "no", "n":
			r.disabled |= desc.Code
		default:
			return oops.Code(CodeInvalidValue).Errorf("%s must be 'yes' or 'no'", desc.Name)
		}

	case options.PresenceFlag:
		if desc.Code != 0 {
			r.enabled |= desc.Code
			return nil
		}
		switch desc.Name {
		case "no-mpi":
			r.useMPI = false
		case "no-hide":
			r.hideFDs = false
		case "disable-logging":
			r.loggingEnabled = false
		}

	case options.ScalarInt:
		// port is the only integer option; validate eagerly so the error
		// points at the offending token
		port, err := parsePort(ev.Arg)
		if err != nil {
			return err
		}
		r.port = port

	case options.ScalarString:
		switch desc.Name {
		case "location":
			r.location = ev.Arg
		case "python-prefix":
			r.pythonPrefixes = ev.Arg
		case "preload":
			r.enabled |= desc.Code
			r.preloadFile = ev.Arg
		}

	case options.ModeSelector:
		r.security = desc.Security
		r.securitySet = true
	}

	return nil
}

// ApplyAll feeds a scanned event stream through Apply, stopping at the
// first failure.
func (r *Resolver) ApplyAll(events []options.Event) error {
	for _, ev := range events {
		if err := r.Apply(ev); err != nil {
			return err
		}
	}
	return nil
}

// Resolve is the whole pipeline: scan argv, accumulate, finalize. Callers
// that already hold an event stream use NewResolver/ApplyAll/Finalize.
func Resolve(defaults config.Defaults, argv []string) (*config.Config, error) {
	events, err := options.Scan(argv)
	if err != nil {
		return nil, err
	}
	r := NewResolver(defaults)
	if err := r.ApplyAll(events); err != nil {
		return nil, err
	}
	cfg, err := r.Finalize()
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"network":  cfg.Network().String(),
		"transfer": cfg.Transfer().String(),
		"security": cfg.Security().String(),
		"port":     cfg.Port(),
	}).Debug("launch configuration resolved")
	return cfg, nil
}

func parsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, oops.Code(CodeInvalidValue).Wrapf(err, "port must be a number, got %q", arg)
	}
	if port <= 0 {
		return 0, oops.Code(CodeInvalidValue).Errorf("port was given a non-positive value %d", port)
	}
	return port, nil
}
