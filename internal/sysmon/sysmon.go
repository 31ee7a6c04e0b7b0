// Package sysmon samples host CPU and memory usage for run reports.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/wordcalc/internal/format"
)

// Stats is one snapshot of host resource usage. Fields the platform cannot
// report stay zero.
type Stats struct {
	CPUPercent  float64 // 0.0 .. 100.0, since the previous sample
	MemPercent  float64 // 0.0 .. 100.0
	LogicalCPUs int
	TotalMemory uint64 // bytes
}

// Sample collects a snapshot. CPU usage is measured since the previous call
// (interval 0), so the first call of a process may report 0.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		s.LogicalCPUs = n
	}
	if vmem, err := mem.VirtualMemoryWithContext(ctx); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%% of %d logical cores, memory %.1f%% of %s",
		s.CPUPercent, s.LogicalCPUs, s.MemPercent, format.FormatBytes(s.TotalMemory))
}
