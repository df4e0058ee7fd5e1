package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/sysmon"
)

// sparklineCapacity is the sample window before the first resize.
const sparklineCapacity = 32

// ResourceModel shows runtime memory, GC activity and host load.
type ResourceModel struct {
	mem        metrics.MemorySnapshot
	stats      sysmon.Stats
	cpuHistory *RingBuffer
	memHistory *RingBuffer
	width      int
	height     int
}

// NewResourceModel returns an empty resource panel.
func NewResourceModel() ResourceModel {
	return ResourceModel{
		cpuHistory: NewRingBuffer(sparklineCapacity),
		memHistory: NewRingBuffer(sparklineCapacity),
	}
}

// SetSize updates the dimensions and fits the sparklines to the width.
func (m *ResourceModel) SetSize(w, h int) {
	m.width, m.height = w, h
	spark := max(w-16, 8)
	m.cpuHistory.Resize(spark)
	m.memHistory.Resize(spark)
}

func (m *ResourceModel) UpdateMemStats(msg MemStatsMsg) { m.mem = msg.MemorySnapshot }

// UpdateSysStats records one host sample.
func (m *ResourceModel) UpdateSysStats(msg SysStatsMsg) {
	m.stats = msg.Stats
	m.cpuHistory.Push(msg.CPUPercent)
	m.memHistory.Push(msg.MemPercent)
}

// View renders the panel.
func (m ResourceModel) View() string {
	row := func(label, value string) string {
		return " " + metricLabelStyle.Render(fmt.Sprintf("%-11s", label)) + metricValueStyle.Render(value)
	}
	lines := []string{
		panelTitleStyle.Render("Resources"),
		row("Heap:", format.FormatBytes(m.mem.HeapAlloc)+" / "+format.FormatBytes(m.mem.Sys)),
		row("GC:", fmt.Sprintf("%d (%.1fms)", m.mem.NumGC, float64(m.mem.PauseTotalNs)/1e6)),
		row("RSS:", format.FormatBytes(m.stats.RSS)),
		row("Goroutines:", fmt.Sprint(m.stats.Goroutines)),
		"",
		row("CPU:", fmt.Sprintf("%5.1f%%", m.cpuHistory.Last())),
		" " + cpuSparklineStyle.Render(RenderSparkline(m.cpuHistory.Slice())),
		row("Memory:", fmt.Sprintf("%5.1f%%", m.memHistory.Last())),
		" " + memSparklineStyle.Render(RenderSparkline(m.memHistory.Slice())),
	}
	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(strings.Join(lines, "\n"))
}
