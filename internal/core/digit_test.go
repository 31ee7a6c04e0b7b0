package core

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWidthAndRepeat(t *testing.T) {
	t.Parallel()
	if got := Width[uint8](); got != 8 {
		t.Errorf("Width[uint8]() = %d, want 8", got)
	}
	if got := Width[U32](); got != 32 {
		t.Errorf("Width[U32]() = %d, want 32", got)
	}
	if got := Width[uint64](); got != 64 {
		t.Errorf("Width[uint64]() = %d, want 64", got)
	}
	if got := Repeat[uint16](One); got != 0xFFFF {
		t.Errorf("Repeat[uint16](One) = %#x, want 0xffff", got)
	}
	if got := Repeat[uint16](Zero); got != 0 {
		t.Errorf("Repeat[uint16](Zero) = %#x, want 0", got)
	}
}

func TestAddCarryBoundary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		x, y      uint8
		carry     bool
		want      uint8
		wantCarry bool
	}{
		{"255 + 1 wraps", 255, 1, false, 0, true},
		{"254 + 0 + carry", 254, 0, true, 255, false},
		{"255 + 0 + carry wraps", 255, 0, true, 0, true},
		{"255 + 255 + carry", 255, 255, true, 255, true},
		{"no carry", 100, 27, false, 127, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, c := AddCarry(tt.x, tt.y, tt.carry)
			if got != tt.want || c != tt.wantCarry {
				t.Errorf("AddCarry(%d, %d, %v) = (%d, %v), want (%d, %v)", tt.x, tt.y, tt.carry, got, c, tt.want, tt.wantCarry)
			}
		})
	}
}

func TestSubBorrowBoundary(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		x, y       uint8
		borrow     bool
		want       uint8
		wantBorrow bool
	}{
		{"0 - 1 wraps", 0, 1, false, 255, true},
		{"1 - 0 - borrow", 1, 0, true, 0, false},
		{"0 - 0 - borrow wraps", 0, 0, true, 255, true},
		{"5 - 3", 5, 3, false, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, b := SubBorrow(tt.x, tt.y, tt.borrow)
			if got != tt.want || b != tt.wantBorrow {
				t.Errorf("SubBorrow(%d, %d, %v) = (%d, %v), want (%d, %v)", tt.x, tt.y, tt.borrow, got, b, tt.want, tt.wantBorrow)
			}
		})
	}
}

func TestMulMaxDigits(t *testing.T) {
	t.Parallel()
	p := Mul(uint64(0xFFFFFFFFFFFFFFFF), uint64(0xFFFFFFFFFFFFFFFF))
	if p.Low != 1 || p.High != 0xFFFFFFFFFFFFFFFE {
		t.Errorf("Mul(max, max) = %+v, want {Low:1 High:0xfffffffffffffffe}", p)
	}
	q := Mul(uint8(0xFF), uint8(0xFF))
	if q.Low != 0x01 || q.High != 0xFE {
		t.Errorf("Mul(0xff, 0xff) = %+v, want {Low:1 High:0xfe}", q)
	}
}

func TestDivideWide(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		n            Pair[uint8]
		d            uint8
		wantQ, wantR uint8
		wantOverflow bool
	}{
		{"divide by zero keeps the low digit", Pair[uint8]{Low: 7}, 0, 0, 7, true},
		{"seven by three", Pair[uint8]{Low: 7}, 3, 2, 1, false},
		{"two digit dividend", Pair[uint8]{Low: 0x10, High: 0x01}, 0x10, 0x11, 0, false},
		{"quotient too wide", Pair[uint8]{Low: 9, High: 5}, 5, 0x01, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DivideWide(tt.n, tt.d)
			if got.Value.Quotient != tt.wantQ || got.Value.Remainder != tt.wantR || got.Overflow != tt.wantOverflow {
				t.Errorf("DivideWide(%+v, %d) = %+v, want q=%d r=%d overflow=%v", tt.n, tt.d, got, tt.wantQ, tt.wantR, tt.wantOverflow)
			}
		})
	}
}

func TestMustDivisorPanicsOnZero(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if _, ok := r.(*PreconditionError); !ok {
			t.Fatalf("expected *PreconditionError panic, got %v", r)
		}
	}()
	MustDivisor[uint32](0)
}

func TestDigitProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("SubBorrow undoes AddCarry", prop.ForAll(
		func(x, y uint16, carry bool) bool {
			s, c := AddCarry(x, y, carry)
			back, b := SubBorrow(s, y, carry)
			return back == x && b == c
		},
		gen.UInt16(), gen.UInt16(), gen.Bool(),
	))

	properties.Property("Mul matches 64-bit product for 32-bit digits", prop.ForAll(
		func(x, y uint32) bool {
			p := Mul(x, y)
			return uint64(p.High)<<32|uint64(p.Low) == uint64(x)*uint64(y)
		},
		gen.UInt32(), gen.UInt32(),
	))

	properties.Property("MulAdd2 matches math/big for 64-bit digits", prop.ForAll(
		func(x, y, z, w uint64) bool {
			p := MulAdd2(x, y, z, w)
			want := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			want.Add(want, new(big.Int).SetUint64(z))
			want.Add(want, new(big.Int).SetUint64(w))
			got := new(big.Int).Lsh(new(big.Int).SetUint64(p.High), 64)
			got.Or(got, new(big.Int).SetUint64(p.Low))
			return got.Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("DivPair satisfies the division invariant", prop.ForAll(
		func(hi, lo, d uint16) bool {
			if d == 0 {
				d = 1
			}
			hi %= d
			q, r := DivPair(Pair[uint16]{Low: lo, High: hi}, MustDivisor(d))
			n := uint32(hi)<<16 | uint32(lo)
			return uint32(q)*uint32(d)+uint32(r) == n && r < d
		},
		gen.UInt16(), gen.UInt16(), gen.UInt16(),
	))

	properties.Property("DivideWide on 64-bit digits keeps the remainder exact", prop.ForAll(
		func(hi, lo, d uint64) bool {
			res := DivideWide(Pair[uint64]{Low: lo, High: hi}, d)
			if d == 0 {
				return res.Overflow && res.Value.Quotient == 0 && res.Value.Remainder == lo
			}
			n := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
			n.Or(n, new(big.Int).SetUint64(lo))
			_, r := new(big.Int).QuoRem(n, new(big.Int).SetUint64(d), new(big.Int))
			return res.Overflow == (hi >= d) && r.Uint64() == res.Value.Remainder
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64Range(0, 1<<20),
	))

	properties.TestingRun(t)
}

func TestLeadingAndTrailingZeros(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x              uint16
		leading, trail int
	}{
		{0, 16, 16},
		{1, 15, 0},
		{0x8000, 0, 15},
		{0x0F00, 4, 8},
	}
	for _, tt := range tests {
		if got := LeadingZeros(tt.x); got != tt.leading {
			t.Errorf("LeadingZeros(%#x) = %d, want %d", tt.x, got, tt.leading)
		}
		if got := TrailingZeros(tt.x); got != tt.trail {
			t.Errorf("TrailingZeros(%#x) = %d, want %d", tt.x, got, tt.trail)
		}
	}
}
