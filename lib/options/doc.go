// Package options defines the launcher's option table and the command-line
// scanner that turns argv into classified events.
//
// The table maps each option name to a code (a bit value for bitmask-group
// options), a combination group, and an argument kind. It is built once at
// process start and is read-only afterward; Lookup has no side effects.
//
// Scan owns argv because launcher options interleave with the wrapped
// command: the first non-option token (or "--") ends option scanning
// permanently, and everything after it is captured verbatim, even tokens
// that look like options. The resolution engine in lib/resolve consumes the
// resulting event stream.
package options
