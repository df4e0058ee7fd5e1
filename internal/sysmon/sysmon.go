// Package sysmon samples host and process resource usage for the
// dashboard sparklines and the calibration profile.
package sysmon

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 // system-wide, 0.0 .. 100.0
	MemPercent float64 // system-wide, 0.0 .. 100.0
	RSS        uint64  // resident set of this process, in bytes
	Goroutines int
}

var (
	selfOnce sync.Once
	self     *process.Process
)

func selfProcess() *process.Process {
	selfOnce.Do(func() {
		p, err := process.NewProcess(int32(os.Getpid()))
		if err == nil {
			self = p
		}
	})
	return self
}

// Sample collects a snapshot. CPU uses interval=0 (delta since last call).
// Fields that cannot be read are left at zero.
func Sample() Stats {
	s := Stats{Goroutines: runtime.NumGoroutine()}
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if p := selfProcess(); p != nil {
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			s.RSS = mi.RSS
		}
	}
	return s
}

// Host describes the machine.
type Host struct {
	CPUModel      string
	PhysicalCores int
	LogicalCores  int
	TotalMemory   uint64
}

var (
	hostOnce sync.Once
	host     Host
)

// HostInfo returns the machine description, read once per process.
func HostInfo() Host {
	hostOnce.Do(func() {
		host = Host{LogicalCores: runtime.NumCPU()}
		if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
			host.CPUModel = strings.TrimSpace(infos[0].ModelName)
		}
		if host.CPUModel == "" {
			host.CPUModel = fmt.Sprintf("%s-%d-cores", runtime.GOARCH, runtime.NumCPU())
		}
		if n, err := cpu.Counts(false); err == nil {
			host.PhysicalCores = n
		}
		if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
			host.TotalMemory = vmem.Total
		}
	})
	return host
}
