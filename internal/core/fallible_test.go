package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestFallibleUnwrapPolicies(t *testing.T) {
	t.Parallel()
	exact := Exact(42)
	flagged := Flagged(7, true)

	if exact.Unwrap() != 42 {
		t.Errorf("Unwrap() = %d, want 42", exact.Unwrap())
	}
	if flagged.Wrapped() != 7 {
		t.Errorf("Wrapped() = %d, want 7", flagged.Wrapped())
	}
	if flagged.Or(-1) != -1 || exact.Or(-1) != 42 {
		t.Error("Or() should substitute only flagged values")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOverflow) {
			t.Fatalf("Unwrap() on flagged value panicked with %v, want ErrOverflow", r)
		}
	}()
	flagged.Unwrap()
}

func TestFallibleChaining(t *testing.T) {
	t.Parallel()
	add := func(x uint8) Fallible[uint8] {
		s, c := AddCarry(x, 1, false)
		return Flagged(s, c)
	}
	got := Then(Then(Exact(uint8(254)), add), add)
	if got.Value != 0 || !got.Overflow {
		t.Errorf("254 + 1 + 1 = %+v, want 0 flagged", got)
	}
	doubled := Map(Flagged(3, true), func(x int) int { return 2 * x })
	if doubled.Value != 6 || !doubled.Overflow {
		t.Errorf("Map() = %+v, want 6 flagged", doubled)
	}
	if Exact(1).Combine(false).Overflow || !Exact(1).Combine(true).Overflow {
		t.Error("Combine() should OR flags")
	}
}

func ExampleMul() {
	p := Mul(uint64(0xFFFFFFFFFFFFFFFF), uint64(0xFFFFFFFFFFFFFFFF))
	fmt.Printf("low=%#x high=%#x\n", p.Low, p.High)
	// Output:
	// low=0x1 high=0xfffffffffffffffe
}

func ExampleDivideWide() {
	res := DivideWide(Pair[uint32]{Low: 7}, 0)
	fmt.Println(res.Value.Quotient, res.Value.Remainder, res.Overflow)
	// Output:
	// 0 7 true
}
