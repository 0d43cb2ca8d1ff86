package options

import (
	"strings"

	"github.com/samber/oops"
)

// EventKind distinguishes option events from the trailing-command capture.
type EventKind int

const (
	// EventOption is one classified (option, argument) pair.
	EventOption EventKind = iota
	// EventTrailingArgs marks the start of the wrapped command; everything
	// from this point was captured verbatim.
	EventTrailingArgs
)

// Event is one classified token from the command line. Option events carry
// the matched descriptor and its raw argument; the trailing event carries
// the wrapped command and appears at most once, always last.
type Event struct {
	Kind   EventKind
	Option *Descriptor
	Arg    string
	Args   []string
}

// Scan tokenizes a launcher command line into classified events. Options
// are scanned in order until the first non-option token or a bare "--";
// the remainder is the wrapped command, captured verbatim even when it
// looks like more options. Unknown options and malformed arguments fail
// here, before any resolution happens.
func Scan(argv []string) ([]Event, error) {
	var events []Event

	for i := 0; i < len(argv); i++ {
		tok := argv[i]

		switch {
		case tok == "--":
			return append(events, trailing(argv[i+1:])), nil

		case strings.HasPrefix(tok, "--"):
			name := tok[2:]
			var arg string
			var inline bool
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, arg, inline = name[:eq], name[eq+1:], true
			}
			desc, err := Lookup(name)
			if err != nil {
				return nil, err
			}
			if takesArg(desc) {
				if !inline {
					if i+1 >= len(argv) {
						return nil, oops.Code("invalid_value").Errorf("option '--%s' requires an argument", desc.Name)
					}
					i++
					arg = argv[i]
				}
			} else if inline {
				return nil, oops.Code("invalid_value").Errorf("option '--%s' doesn't allow an argument", desc.Name)
			}
			events = append(events, Event{Kind: EventOption, Option: desc, Arg: arg})

		case len(tok) > 1 && tok[0] == '-':
			desc, err := LookupShort(tok[1])
			if err != nil {
				return nil, err
			}
			var arg string
			if takesArg(desc) {
				if len(tok) > 2 {
					arg = tok[2:]
				} else {
					if i+1 >= len(argv) {
						return nil, oops.Code("invalid_value").Errorf("option '-%c' requires an argument", desc.Short)
					}
					i++
					arg = argv[i]
				}
			} else if len(tok) > 2 {
				return nil, oops.Code("invalid_value").Errorf("option '-%c' doesn't allow an argument", desc.Short)
			}
			events = append(events, Event{Kind: EventOption, Option: desc, Arg: arg})

		default:
			// First positional token: the wrapped command starts here.
			return append(events, trailing(argv[i:])), nil
		}
	}

	return events, nil
}

func trailing(args []string) Event {
	captured := make([]string, len(args))
	copy(captured, args)
	return Event{Kind: EventTrailingArgs, Args: captured}
}

func takesArg(d *Descriptor) bool {
	switch d.Kind {
	case BoolToggle, ScalarString, ScalarInt:
		return true
	default:
		return false
	}
}
