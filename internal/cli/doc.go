// Package cli is the terminal front end of bigcalc: progress spinner,
// result and comparison display, JSON output, result files, the
// interactive REPL and shell completion scripts.
package cli
