package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/format"
)

// HeaderModel renders the top bar: title, active settings and session
// time.
type HeaderModel struct {
	startTime time.Time
	version   string
	settings  string
	width     int
}

// NewHeaderModel returns a header showing cfg.
func NewHeaderModel(version string, cfg config.AppConfig) HeaderModel {
	h := HeaderModel{startTime: time.Now(), version: version}
	h.SetConfig(cfg)
	return h
}

// SetConfig refreshes the settings summary.
func (h *HeaderModel) SetConfig(cfg config.AppConfig) {
	h.settings = fmt.Sprintf("radix %d · prec %d · %s · algo %s",
		cfg.Radix, cfg.Precision, cfg.FloatContext().Rounding, cfg.Algo)
}

func (h *HeaderModel) SetWidth(w int) { h.width = w }

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "bigcalc"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText) + dimStyle.Render(" | ") + accentStyle.Render(h.settings)
	right := dimStyle.Render("Session: " + format.FormatExecutionDuration(time.Since(h.startTime).Truncate(time.Second)))

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	row := left
	if gap > 0 {
		row += strings.Repeat(" ", gap) + right
	}
	return headerStyle.Render(row)
}
