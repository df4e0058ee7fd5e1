package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/orchestration"
)

// maxHistory bounds the number of retained entries.
const maxHistory = 200

// historyEntry is one line of the session: an evaluation or a notice.
type historyEntry struct {
	expr       string
	note       string
	value      *eval.Value
	duration   time.Duration
	comparison []orchestration.Result
	err        error

	// Output settings at submission time.
	radix int
	upper bool
}

// HistoryModel is the scrollable session log.
type HistoryModel struct {
	entries []historyEntry
	vp      viewport.Model
	width   int
	height  int
}

// NewHistoryModel returns an empty history.
func NewHistoryModel() HistoryModel {
	return HistoryModel{vp: viewport.New(0, 0)}
}

// SetSize updates the panel dimensions, borders included.
func (h *HistoryModel) SetSize(w, height int) {
	h.width, h.height = w, height
	h.vp.Width = max(w-2, 0)
	h.vp.Height = max(height-3, 0)
	h.refresh()
}

// Add appends e and scrolls to it.
func (h *HistoryModel) Add(e historyEntry) {
	h.entries = append(h.entries, e)
	if len(h.entries) > maxHistory {
		h.entries = h.entries[len(h.entries)-maxHistory:]
	}
	h.refresh()
}

// Note appends a notice.
func (h *HistoryModel) Note(text string) { h.Add(historyEntry{note: text}) }

func (h *HistoryModel) Clear() {
	h.entries = nil
	h.refresh()
}

func (h HistoryModel) Len() int { return len(h.entries) }

// Scroll moves the view by half a page; negative is up.
func (h *HistoryModel) Scroll(pages int) {
	h.vp.SetYOffset(h.vp.YOffset + pages*max(h.vp.Height/2, 1))
}

func (h *HistoryModel) refresh() {
	var lines []string
	for _, e := range h.entries {
		lines = append(lines, renderEntry(e, h.vp.Width)...)
	}
	h.vp.SetContent(strings.Join(lines, "\n"))
	h.vp.GotoBottom()
}

// renderEntry returns the display lines of e.
func renderEntry(e historyEntry, width int) []string {
	if e.note != "" {
		return []string{dimStyle.Render("  " + e.note)}
	}
	lines := []string{accentStyle.Render("› ") + exprStyle.Render(e.expr)}
	if len(e.comparison) > 1 {
		parts := make([]string, 0, len(e.comparison))
		for _, r := range e.comparison {
			status := format.FormatExecutionDuration(r.Duration)
			if r.Err != nil {
				status = "failed"
			}
			parts = append(parts, r.Name+" "+status)
		}
		lines = append(lines, dimStyle.Render("  "+strings.Join(parts, " · ")))
	}
	if e.err != nil {
		return append(lines, errorStyle.Render("  ✗ "+e.err.Error()))
	}
	if e.value == nil {
		return lines
	}

	text := e.value.Text(e.radix, e.upper)
	limit := max(width-6, cli.TruncationLimit/2)
	if len(text) > limit {
		text = format.Truncate(text, min(cli.DisplayEdges, limit/3))
	}
	details := []string{format.FormatExecutionDuration(e.duration)}
	if x, ok := e.value.Int(); ok && x.BitLen() > 64 {
		details = append(details, format.FormatBits(x.BitLen()))
	}
	if e.value.Kind() == eval.KindFloat && e.value.Accuracy() != bigfloat.Exact {
		details = append(details, e.value.Accuracy().String())
	}
	return append(lines, fmt.Sprintf("  = %s  %s",
		resultStyle.Render(text), dimStyle.Render("("+strings.Join(details, ", ")+")")))
}

// View renders the panel.
func (h HistoryModel) View() string {
	title := panelTitleStyle.Render("History")
	body := h.vp.View()
	if len(h.entries) == 0 {
		body = dimStyle.Render("  Type an expression and press enter. Commands: radix, prec, base, round, algo, upper, clear, exit.")
	}
	return panelStyle.
		Width(max(h.width-2, 0)).
		Height(max(h.height-2, 0)).
		Render(title + "\n" + body)
}
