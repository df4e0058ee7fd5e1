// Package format renders durations, digit strings, byte sizes and progress
// bars for the terminal and the TUI.
package format
