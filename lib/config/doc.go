// Package config holds the finalized launch configuration and its defaults.
//
// # Layering
//
// Values resolve through three layers, weakest first:
//
//  1. Compiled defaults (defaults.go) — the values a bare build ships with.
//  2. Site configuration — $HOME/.spindle/config.yaml plus SPINDLE_*
//     environment variables, loaded through viper by InitConfig. A missing
//     file is created on first run so sites have something to edit.
//  3. Command line — resolved by the lib/resolve engine, which receives the
//     lower layers as a Defaults seed and produces the one Config value.
//
// Config is init-then-freeze: it is built exactly once, at the end of
// option resolution, and is never mutated afterward. Downstream consumers
// only hold accessors, so no synchronization is needed past construction.
package config
