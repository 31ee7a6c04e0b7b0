package eval

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/wordcalc/internal/core"
	apperrors "github.com/agbru/wordcalc/internal/errors"
)

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := ParseOperand(s)
	if !ok {
		t.Fatalf("bad literal %q", s)
	}
	return v
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()
	tests := []struct {
		name     string
		typ, op  string
		operands []string
		want     []string
		overflow bool
		infinite bool
	}{
		{"u8 add wraps", "u8", OpAdd, []string{"200", "100"}, []string{"44"}, true, false},
		{"u8 add prefixed", "u8", OpAdd, []string{"0b1010", "0x0f"}, []string{"25"}, false, false},
		{"u8 sub borrows", "u8", OpSub, []string{"1", "2"}, []string{"255"}, true, false},
		{"u8 neg zero", "u8", OpNeg, []string{"0"}, []string{"0"}, false, false},
		{"u8 neg one", "u8", OpNeg, []string{"1"}, []string{"255"}, true, false},
		{"u16 cmp", "u16", OpCmp, []string{"65535", "1"}, []string{"1"}, false, false},
		{"u32 divide by zero", "u32", OpQuoRem, []string{"7", "0"}, []string{"0", "7"}, true, false},
		{"u64 quorem", "u64", OpQuoRem, []string{"18446744073709551615", "10"}, []string{"1844674407370955161", "5"}, false, false},
		{"u128 mul exact", "u128", OpMul, []string{"0xffffffffffffffff", "0xffffffffffffffff"}, []string{"340282366920938463426481119284349108225"}, false, false},
		{"u128 mul wraps", "u128", OpMul, []string{"0x10000000000000000", "0x10000000000000000"}, []string{"0"}, true, false},
		{"u256 sqr wraps", "u256", OpSqr, []string{"0x100000000000000000000000000000000"}, []string{"0"}, true, false},
		{"u512 sub", "u512", OpSub, []string{"0x10000000000000000000000000000000000000000", "1"}, []string{"1461501637330902918203684832716283019655932542975"}, false, false},
		{"i8 add max", "i8", OpAdd, []string{"100", "27"}, []string{"127"}, false, false},
		{"i8 add overflows", "i8", OpAdd, []string{"100", "28"}, []string{"-128"}, true, false},
		{"i8 neg min", "i8", OpNeg, []string{"-128"}, []string{"-128"}, true, false},
		{"i8 quorem truncates", "i8", OpQuoRem, []string{"-7", "2"}, []string{"-3", "-1"}, false, false},
		{"i8 min over minus one", "i8", OpQuoRem, []string{"-128", "-1"}, []string{"-128", "0"}, true, false},
		{"i16 cmp", "i16", OpCmp, []string{"-1", "1"}, []string{"-1"}, false, false},
		{"i512 mul", "i512", OpMul, []string{"-3", "5"}, []string{"-15"}, false, false},
		{"i128 sqr", "i128", OpSqr, []string{"-0xffffffffffffffff"}, []string{"-36893488147419103231"}, true, false},
		{"ixl mul", "ixl", OpMul, []string{"0x10000000000000000000000000", "-0x10000000000000000000000000"}, []string{"-1606938044258990275541962092341162602522202993782792835301376"}, false, false},
		{"ixl sub", "ixl", OpSub, []string{"1", "2"}, []string{"-1"}, false, false},
		{"ixl quorem", "ixl", OpQuoRem, []string{"-7", "2"}, []string{"-3", "-1"}, false, false},
		{"uxl add", "uxl", OpAdd, []string{"0x400000000000000000", "1"}, []string{"1180591620717411303425"}, false, false},
		{"uxl sub below zero", "uxl", OpSub, []string{"1", "2"}, []string{"-1"}, true, true},
		{"uxl neg", "uxl", OpNeg, []string{"5"}, []string{"-5"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := reg.Evaluate(Request{Type: tt.typ, Op: tt.op, Operands: tt.operands})
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if res.Overflow != tt.overflow {
				t.Errorf("Overflow = %v, want %v", res.Overflow, tt.overflow)
			}
			if len(res.Values) != len(tt.want) {
				t.Fatalf("got %d values, want %d", len(res.Values), len(tt.want))
			}
			for i, v := range res.Values {
				if v.Int.Cmp(bigString(t, tt.want[i])) != 0 {
					t.Errorf("%s = %v, want %s", v.Label, v.Int, tt.want[i])
				}
				if i == 0 && v.Infinite != tt.infinite {
					t.Errorf("Infinite = %v, want %v", v.Infinite, tt.infinite)
				}
			}
		})
	}
}

func TestEvaluateI128SquareFits(t *testing.T) {
	t.Parallel()
	res, err := NewDefaultRegistry().Evaluate(Request{Type: "i128", Op: OpSqr, Operands: []string{"0x7fffffffffffffff"}})
	if err != nil || res.Overflow {
		t.Fatalf("(2^63-1)^2 on i128: overflow=%v err=%v", res.Overflow, err)
	}
}

func TestEvaluateTrap(t *testing.T) {
	t.Parallel()
	res, err := NewDefaultRegistry().Evaluate(Request{Type: "u8", Op: OpMul, Operands: []string{"16", "16"}, Policy: PolicyTrap})
	var arith apperrors.ArithmeticError
	if !errors.As(err, &arith) || !errors.Is(err, core.ErrOverflow) {
		t.Fatalf("expected ArithmeticError wrapping ErrOverflow, got %v", err)
	}
	if arith.Op != OpMul || arith.Type != "u8" {
		t.Errorf("unexpected error fields %+v", arith)
	}
	if !res.Overflow || res.Values[0].Int.Sign() != 0 {
		t.Errorf("wrapped value not reported: %+v", res)
	}

	if _, err := NewDefaultRegistry().Evaluate(Request{Type: "u8", Op: OpMul, Operands: []string{"15", "17"}, Policy: PolicyTrap}); err != nil {
		t.Errorf("exact product trapped: %v", err)
	}
}

func TestEvaluateRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		req        Request
		validation bool
	}{
		{"too large", Request{Type: "u8", Op: OpAdd, Operands: []string{"256", "1"}}, true},
		{"negative unsigned", Request{Type: "u8", Op: OpAdd, Operands: []string{"-1", "1"}}, true},
		{"negative unbounded unsigned", Request{Type: "uxl", Op: OpAdd, Operands: []string{"-1", "1"}}, true},
		{"signed range", Request{Type: "i8", Op: OpNeg, Operands: []string{"128"}}, true},
		{"not a number", Request{Type: "u64", Op: OpAdd, Operands: []string{"abc", "1"}}, true},
		{"unknown type", Request{Type: "u7", Op: OpAdd, Operands: []string{"1", "1"}}, false},
		{"arity", Request{Type: "u8", Op: OpNeg, Operands: []string{"1", "1"}}, false},
		{"unknown op", Request{Type: "u8", Op: "pow", Operands: []string{"1", "1"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDefaultRegistry().Evaluate(tt.req)
			var v apperrors.ValidationError
			var c apperrors.ConfigError
			switch {
			case tt.validation && !errors.As(err, &v):
				t.Errorf("expected ValidationError, got %v", err)
			case !tt.validation && !errors.As(err, &c):
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestRegistryTypes(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()
	for _, name := range reg.List() {
		e, err := reg.Get(name)
		if err != nil {
			t.Fatal(err)
		}
		if name == "uxl" || name == "ixl" {
			if e.Bits() != 0 {
				t.Errorf("%s: Bits() = %d, want 0", name, e.Bits())
			}
			continue
		}
		bits, err := strconv.Atoi(name[1:])
		if err != nil || e.Bits() != bits || e.Signed() != (name[0] == 'i') {
			t.Errorf("%s: Bits() = %d, Signed() = %v", name, e.Bits(), e.Signed())
		}
	}
}

func TestEvaluateMatchesBigProperties(t *testing.T) {
	t.Parallel()
	reg := NewDefaultRegistry()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	mod64 := new(big.Int).Lsh(big.NewInt(1), 64)
	properties.Property("u64 mul wraps modulo 2^64", prop.ForAll(
		func(a, b uint64) bool {
			res, err := reg.Evaluate(Request{Type: "u64", Op: OpMul, Operands: []string{
				strconv.FormatUint(a, 10), strconv.FormatUint(b, 10)}})
			if err != nil {
				return false
			}
			p := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
			return res.Overflow == (p.Cmp(mod64) >= 0) && res.Values[0].Int.Cmp(p.Mod(p, mod64)) == 0
		},
		gen.UInt64(), gen.UInt64(),
	))

	properties.Property("i32 sub flags exactly when the difference leaves the range", prop.ForAll(
		func(a, b int32) bool {
			res, err := reg.Evaluate(Request{Type: "i32", Op: OpSub, Operands: []string{
				strconv.Itoa(int(a)), strconv.Itoa(int(b))}})
			if err != nil {
				return false
			}
			exact := int64(a) - int64(b)
			fits := exact >= -1<<31 && exact < 1<<31
			return res.Overflow == !fits && res.Values[0].Int.Int64() == int64(a-b)
		},
		gen.Int32(), gen.Int32(),
	))

	properties.Property("ixl quorem reconstructs the dividend", prop.ForAll(
		func(a, b int64) bool {
			if b == 0 {
				return true
			}
			res, err := reg.Evaluate(Request{Type: "ixl", Op: OpQuoRem, Operands: []string{
				strconv.FormatInt(a, 10), strconv.FormatInt(b, 10)}})
			if err != nil || res.Overflow {
				return false
			}
			q, r := res.Values[0].Int, res.Values[1].Int
			back := new(big.Int).Mul(q, big.NewInt(b))
			return back.Add(back, r).Cmp(big.NewInt(a)) == 0
		},
		gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}
