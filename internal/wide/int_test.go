package wide

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/wordcalc/internal/core"
)

func TestSignedOverflowBoundary(t *testing.T) {
	t.Parallel()
	got := IntFromInt64[core.U8](127).Add(IntFromInt64[core.U8](1))
	if got.Value.Int64() != -128 || !got.Overflow {
		t.Errorf("127 + 1 = %d overflow %v, want -128 flagged", got.Value.Int64(), got.Overflow)
	}
	got = IntFromInt64[core.U8](-128).Sub(IntFromInt64[core.U8](1))
	if got.Value.Int64() != 127 || !got.Overflow {
		t.Errorf("-128 - 1 = %d overflow %v, want 127 flagged", got.Value.Int64(), got.Overflow)
	}
	neg := MinInt[core.U16]().Negate()
	if neg.Value != MinInt[core.U16]() || !neg.Overflow {
		t.Errorf("-MIN = %+v, want MIN flagged", neg)
	}
	if z := IntFromInt64[U128](0).Negate(); z.Overflow || !z.Value.IsZero() {
		t.Errorf("-0 = %+v", z)
	}
}

func TestSignedDivisionTruncates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x, y, q, r   int64
		wantOverflow bool
	}{
		{7, 3, 2, 1, false},
		{7, -3, -2, 1, false},
		{-7, 3, -2, -1, false},
		{-7, -3, 2, -1, false},
		{-128, -1, -128, 0, true},
		{-128, 1, -128, 0, false},
		{7, 0, 0, 7, true},
		{0, 5, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.x, tt.y), func(t *testing.T) {
			t.Parallel()
			got := IntFromInt64[core.U8](tt.x).QuoRem(IntFromInt64[core.U8](tt.y))
			if got.Value.Quotient.Int64() != tt.q || got.Value.Remainder.Int64() != tt.r || got.Overflow != tt.wantOverflow {
				t.Errorf("got q %d r %d overflow %v, want q %d r %d overflow %v",
					got.Value.Quotient.Int64(), got.Value.Remainder.Int64(), got.Overflow, tt.q, tt.r, tt.wantOverflow)
			}
			wide := IntFromInt64[U256](tt.x).QuoRem(IntFromInt64[U256](tt.y))
			if tt.x != -128 && (wide.Value.Quotient.Int64() != tt.q || wide.Value.Remainder.Int64() != tt.r) {
				t.Errorf("I256: got q %d r %d", wide.Value.Quotient.Int64(), wide.Value.Remainder.Int64())
			}
		})
	}
}

func TestSignedProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	fits := func(v *big.Int) bool {
		return v.Cmp(MinInt[U128]().Big()) >= 0 && v.Cmp(MaxInt[U128]().Big()) <= 0
	}
	i128 := func(lo, hi uint64) I128 { return IntOf(U128{Low: core.U64(lo), High: core.U64(hi)}) }

	properties.Property("I128 Add and Mul flag exactly the results that do not fit", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := i128(a, b), i128(c, d>>(c%128))
			sum := x.Add(y)
			prod := x.Mul(y)
			wantSum := new(big.Int).Add(x.Big(), y.Big())
			wantProd := new(big.Int).Mul(x.Big(), y.Big())
			sumOK := sum.Overflow != fits(wantSum) && (sum.Overflow || sum.Value.Big().Cmp(wantSum) == 0)
			prodOK := prod.Overflow != fits(wantProd) && (prod.Overflow || prod.Value.Big().Cmp(wantProd) == 0)
			return sumOK && prodOK
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("I128 QuoRem matches math/big truncated division", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := i128(a, b), i128(c, d>>(a%128))
			got := x.QuoRem(y)
			if y.IsZero() {
				return got.Overflow && got.Value.Remainder == x
			}
			q, r := new(big.Int).QuoRem(x.Big(), y.Big(), new(big.Int))
			if !fits(q) {
				return got.Overflow
			}
			return !got.Overflow && got.Value.Quotient.Big().Cmp(q) == 0 && got.Value.Remainder.Big().Cmp(r) == 0
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("Compare matches math/big", prop.ForAll(
		func(a, b, c, d uint64) bool {
			x, y := i128(a, b), i128(c, d)
			return int(x.Compare(y)) == x.Big().Cmp(y.Big())
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t)
}

func ExampleInt_Add() {
	sum := IntFromInt64[core.U8](127).Add(IntFromInt64[core.U8](1))
	fmt.Println(sum.Value.Int64(), sum.Overflow)
	// Output:
	// -128 true
}

func ExampleInt_QuoRem() {
	d := IntFromInt64[U128](-7).QuoRem(IntFromInt64[U128](3))
	fmt.Println(d.Value.Quotient.Int64(), d.Value.Remainder.Int64())
	// Output:
	// -2 -1
}
