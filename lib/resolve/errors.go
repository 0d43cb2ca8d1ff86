package resolve

import (
	"github.com/samber/oops"
)

// Stable machine codes carried by every fatal configuration error. The CLI
// prints the human-readable message; tests and callers branch on the code.
const (
	// token did not match any registered option (raised by the scanner)
	CodeUnknownOption = "unknown_option"
	// malformed yes/no argument, non-numeric or non-positive port
	CodeInvalidValue = "invalid_value"
	// same option both enabled and disabled
	CodeConfigConflict = "config_conflict"
	// more than one selection inside an exclusive group
	CodeExclusiveGroup = "exclusive_group"
	// no wrapped command captured
	CodeMissingCommand = "missing_command"
)

// ErrCode extracts the machine code from a resolution error, or "" when the
// error carries none.
func ErrCode(err error) string {
	if o, ok := oops.AsOops(err); ok {
		if code, ok := o.Code().(string); ok {
			return code
		}
	}
	return ""
}
