package words

import (
	"slices"
	"testing"

	"github.com/agbru/wordcalc/internal/core"
)

func TestRebindNarrows(t *testing.T) {
	t.Parallel()
	s := New([]uint64{0x0807060504030201, 0x100F0E0D0C0B0A09}, core.One)
	got := Rebind[uint8](s)
	want := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if !slices.Equal(got.Digits(), want) {
		t.Errorf("Rebind[uint8]() = %v, want %v", got.Digits(), want)
	}
	if got.Extension() != core.One {
		t.Error("Rebind() dropped the extension bit")
	}
	if Compare(Gather[uint64](got), s, core.Signed) != core.Same {
		t.Error("Gather() does not undo Rebind()")
	}
}

func TestRebindSameWidth(t *testing.T) {
	t.Parallel()
	s := Of[core.U32](1, 2, 3)
	got := Rebind[uint32](s)
	if !slices.Equal(got.Digits(), []uint32{1, 2, 3}) {
		t.Errorf("Rebind[uint32]() = %v", got.Digits())
	}
}

func TestRebindWideningPanics(t *testing.T) {
	t.Parallel()
	if CanRebind[uint64, uint8]() {
		t.Fatal("CanRebind[uint64, uint8]() = true")
	}
	defer func() {
		if _, ok := recover().(*core.PreconditionError); !ok {
			t.Fatal("expected *PreconditionError")
		}
	}()
	Rebind[uint64](Of[uint8](1, 2, 3, 4, 5, 6, 7, 8))
}

func TestGatherPadsWithExtension(t *testing.T) {
	t.Parallel()
	got := Gather[uint32](New([]uint8{0x01, 0x02, 0x03, 0x04, 0x05}, core.One))
	want := []uint32{0x04030201, 0xFFFFFF05}
	if !slices.Equal(got.Digits(), want) {
		t.Errorf("Gather[uint32]() = %#x, want %#x", got.Digits(), want)
	}
}

func TestScratchClass(t *testing.T) {
	t.Parallel()
	tests := []struct{ size, want int }{
		{0, 0}, {1, 0}, {64, 0}, {65, 1}, {256, 1}, {257, 2}, {1048576, 7}, {1048577, -1},
	}
	for _, tt := range tests {
		if got := scratchClass(tt.size); got != tt.want {
			t.Errorf("scratchClass(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestScratchIsClearedAndRecycled(t *testing.T) {
	t.Parallel()
	s := acquireScratch[uint16](100)
	for i := range s {
		s[i] = 0xFFFF
	}
	releaseScratch(s)
	again := acquireScratch[uint16](100)
	defer releaseScratch(again)
	if len(again) != 100 || cap(again) != 256 {
		t.Fatalf("acquireScratch(100) len %d cap %d", len(again), cap(again))
	}
	for _, d := range again {
		if d != 0 {
			t.Fatal("acquireScratch() returned a dirty slice")
		}
	}
}
