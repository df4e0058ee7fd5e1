// Package ui holds the colour themes shared by the CLI, the error handler
// and the TUI dashboard. Plain-terminal output uses ANSI escape codes from a
// Theme; the dashboard uses the lipgloss palette of a TUITheme.
package ui
