package cli

import (
	"fmt"
	"strings"

	"github.com/go-spindle/spindle/lib/options"
)

// usageText builds the help screen from the option registry so the two can
// never drift apart.
func usageText() string {
	var b strings.Builder
	b.WriteString("Usage: spindle [OPTIONS..] command [args..]\n\n")
	b.WriteString("Runs command under the spindle file-relocation launcher.\n")
	b.WriteString("Everything after the first non-option token belongs to the wrapped command.\n\n")
	b.WriteString("Options:\n")
	for _, d := range options.All() {
		b.WriteString(formatOption(d))
	}
	b.WriteString(formatLine("--config=FILE", "Read site defaults from FILE instead of ~/.spindle/config.yaml"))
	b.WriteString(formatLine("--help", "Show this help"))
	b.WriteString(formatLine("--version", "Show version"))
	return b.String()
}

func formatOption(d options.Descriptor) string {
	name := "--" + d.Name
	if d.Arg != "" {
		name += "=" + d.Arg
	}
	if d.Short != 0 {
		name = fmt.Sprintf("-%c, %s", d.Short, name)
	}
	return formatLine(name, d.Help)
}

func formatLine(name, help string) string {
	return fmt.Sprintf("  %-32s %s\n", name, help)
}
