// Package resolve reconciles command-line option events into one finalized
// launch configuration.
//
// Resolution is a strict two-phase protocol. The accumulation phase only
// collects: yes/no toggles land in enabled/disabled code sets, scalars
// overwrite their field (last write wins), and the security selector keeps
// the most recent choice. The finalization phase runs once, over the
// complete sets, and performs every cross-option check: global
// enable/disable conflicts, exclusivity inside the network and push/pull
// groups, the union algebra for the relocation and misc toggle groups, the
// debugger-hiding override, and the required-command check. Because no
// check runs during accumulation, the outcome never depends on the order
// options appeared in.
package resolve
