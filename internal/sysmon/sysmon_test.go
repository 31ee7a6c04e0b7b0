package sysmon

import (
	"context"
	"testing"
)

func TestSampleReturnsValidRanges(t *testing.T) {
	t.Parallel()
	s := Sample(context.Background())
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.LogicalCPUs < 0 {
		t.Errorf("LogicalCPUs = %d", s.LogicalCPUs)
	}
}

func TestSampleCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = Sample(ctx)
}

func TestStatsString(t *testing.T) {
	t.Parallel()
	s := Stats{CPUPercent: 12.5, MemPercent: 40, LogicalCPUs: 8, TotalMemory: 16 << 30}
	want := "cpu 12.5% of 8 logical cores, memory 40.0% of 16.0 GiB"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
