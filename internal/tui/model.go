// Package tui is the interactive dashboard: an expression prompt, the
// session history and live resource sparklines.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/sysmon"
)

// Layout constants.
const (
	headerHeight         = 1
	inputHeight          = 3
	footerHeight         = 1
	minBodyHeight        = 6
	HistoryPanelWidthPct = 65
	sampleInterval       = 500 * time.Millisecond
	progressBarWidth     = 16
	inputCharLimit       = 4096
)

// ExecutionState tracks the evaluation in flight, if any.
type ExecutionState struct {
	cancel     context.CancelFunc
	generation uint64
	running    bool
	progress   float64
	eta        time.Duration
	pending    historyEntry
}

// LayoutManager holds the terminal dimensions.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-inputHeight-footerHeight, minBodyHeight)
}

func (l LayoutManager) historyWidth() int { return l.width * HistoryPanelWidthPct / 100 }

func (l LayoutManager) resourcesWidth() int { return l.width - l.historyWidth() }

// Model is the root bubbletea model.
type Model struct {
	header    HeaderModel
	input     textinput.Model
	history   HistoryModel
	resources ResourceModel
	help      help.Model
	keymap    KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	logger    logging.Logger
	vars      map[string]eval.Value
	ref       *programRef

	recall    []string
	recallIdx int
}

// NewModel returns a dashboard evaluating with cfg.
func NewModel(parentCtx context.Context, cfg config.AppConfig, logger logging.Logger, version string) Model {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	ti := textinput.New()
	ti.Prompt = "calc> "
	ti.Placeholder = "2^127 - 1"
	ti.CharLimit = inputCharLimit
	ti.Focus()

	return Model{
		header:    NewHeaderModel(version, cfg),
		input:     ti,
		history:   NewHistoryModel(),
		resources: NewResourceModel(),
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		parentCtx: parentCtx,
		config:    cfg,
		logger:    logger,
		vars:      make(map[string]eval.Value),
		ref:       &programRef{},
	}
}

// Init starts resource sampling and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layoutPanels()
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.resources.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.resources.UpdateSysStats(msg)
		return m, nil

	case ProgressMsg:
		if msg.Generation == m.generation {
			m.progress, m.eta = msg.AverageProgress, msg.ETA
		}
		return m, nil

	case ComparisonResultsMsg:
		if msg.Generation == m.generation {
			m.pending.comparison = msg.Results
		}
		return m, nil

	case FinalResultMsg:
		if msg.Generation == m.generation {
			v := msg.Result.Value
			m.pending.value, m.pending.duration = &v, msg.Result.Duration
		}
		return m, nil

	case ErrorMsg:
		if msg.Generation == m.generation {
			m.pending.err = msg.Err
		}
		return m, nil

	case EvaluationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // superseded or canceled evaluation
		}
		return m.finish(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.stop()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Cancel):
		if m.running {
			m.abandon("canceled")
		} else {
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Prev):
		m.recallStep(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Next):
		m.recallStep(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.history.Scroll(-1)
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.history.Scroll(1)
		return m, nil

	case key.Matches(msg, m.keymap.ClearInput):
		m.input.Reset()
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.history.Clear()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the input line as a command or an expression.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.Reset()
	if len(m.recall) == 0 || m.recall[len(m.recall)-1] != line {
		m.recall = append(m.recall, line)
	}
	m.recallIdx = len(m.recall)

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	switch {
	case cmd == "exit" || cmd == "quit":
		m.stop()
		return m, tea.Quit
	case cmd == "clear" && len(fields) == 1:
		m.history.Clear()
		return m, nil
	case isSetting(cmd):
		next, notice, err := applySetting(m.config, cmd, fields[1:])
		if err != nil {
			m.history.Add(historyEntry{expr: line, err: err})
			return m, nil
		}
		m.config = next
		m.header.SetConfig(next)
		m.history.Note(notice)
		return m, nil
	}

	if m.running {
		m.abandon("superseded")
	}
	m.generation++
	ctx, cancel := context.WithTimeout(m.parentCtx, m.config.Timeout)
	m.cancel = cancel
	m.running = true
	m.progress, m.eta = 0, 0
	m.pending = historyEntry{expr: line, radix: m.config.Radix, upper: m.config.Upper}

	return m, evaluateCmd(ctx, cancel, m.ref, m.config, maps.Clone(m.vars), m.logger, line, m.generation)
}

// finish records a completed evaluation.
func (m Model) finish(msg EvaluationCompleteMsg) Model {
	m.running = false
	e := m.pending
	if e.value == nil && msg.Value != nil {
		e.value = msg.Value
	}
	if e.err == nil && msg.Err != nil {
		e.err = msg.Err
	}
	if e.err == nil && e.value != nil {
		m.vars[cli.AnsVar] = *e.value
	}
	m.history.Add(e)
	m.pending = historyEntry{}
	return m
}

// abandon cancels the evaluation in flight and records why. Its late
// messages are dropped by the generation check.
func (m *Model) abandon(reason string) {
	m.stop()
	m.history.Add(historyEntry{expr: m.pending.expr, err: errors.New(reason)})
	m.generation++
	m.running = false
	m.pending = historyEntry{}
}

func (m *Model) stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

// recallStep moves through previously submitted lines; moving past the
// newest clears the input.
func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	m.recallIdx = min(max(m.recallIdx+delta, 0), len(m.recall))
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.history.SetSize(m.historyWidth(), m.bodyHeight())
	m.resources.SetSize(m.resourcesWidth(), m.bodyHeight())
	m.input.Width = max(m.width-progressBarWidth-20, 10)
	m.help.Width = m.width
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.history.View(), m.resources.View())

	status := statusReadyStyle.Render("ready")
	if m.running {
		status = statusBusyStyle.Render(fmt.Sprintf("%s %3.0f%% ETA %s",
			format.ProgressBar(m.progress, progressBarWidth), m.progress*100, format.FormatETA(m.eta)))
	}
	gap := max(m.width-4-lipgloss.Width(m.input.View())-lipgloss.Width(status), 1)
	input := panelStyle.Width(max(m.width-2, 0)).Render(m.input.View() + strings.Repeat(" ", gap) + status)

	footer := " " + m.help.ShortHelpView(m.keymap.ShortHelp())
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, input, footer)
}

// Run starts the dashboard and blocks until the user quits. It returns the
// process exit code.
func Run(ctx context.Context, cfg config.AppConfig, logger logging.Logger, version string) int {
	// Styles follow the theme chosen by InitTheme.
	initTUIStyles()

	model := NewModel(ctx, cfg, logger, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.stop()
	}
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return apperrors.ExitErrorCanceled
	default:
		model.logger.Error("dashboard failed", err)
		return apperrors.ExitErrorGeneric
	}
}

// evaluateCmd runs expr under the strategies selected by cfg. Results
// stream to the program through ref; the returned message closes the
// evaluation.
func evaluateCmd(ctx context.Context, cancel context.CancelFunc, ref *programRef, cfg config.AppConfig,
	vars map[string]eval.Value, logger logging.Logger, expr string, gen uint64) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		reporter := &TUIProgressReporter{ref: ref, gen: gen}
		presenter := &TUIResultPresenter{ref: ref, gen: gen}

		strategies := orchestration.StrategiesFor(cfg, vars, logger)
		results, err := orchestration.ExecuteEvaluations(ctx, strategies, expr, reporter, io.Discard)
		if err != nil {
			return EvaluationCompleteMsg{Generation: gen, ExitCode: presenter.HandleError(err, 0, io.Discard), Err: err}
		}
		opts := orchestration.PresentationOptions{Expr: expr, Radix: cfg.Radix, Upper: cfg.Upper}
		code := orchestration.AnalyzeComparisonResults(results, opts, presenter, io.Discard)
		done := EvaluationCompleteMsg{Generation: gen, ExitCode: code}
		if best, err := orchestration.CheckConsistency(expr, results); err == nil {
			done.Value = &best.Value
		} else {
			done.Err = err
		}
		return done
	}
}

// tickCmd schedules the next resource sample.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return MemStatsMsg{metrics.TakeSnapshot()}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{sysmon.Sample()}
	}
}
