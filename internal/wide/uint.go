package wide

import "github.com/agbru/wordcalc/internal/core"

// Add returns x + y, flagged when the sum wraps.
func Add[W core.Word[W]](x, y W) core.Fallible[W] {
	sum, carry := x.AddCarry(y, false)
	return core.Flagged(sum, carry)
}

// Sub returns x - y, flagged when the difference wraps.
func Sub[W core.Word[W]](x, y W) core.Fallible[W] {
	diff, borrow := x.SubBorrow(y, false)
	return core.Flagged(diff, borrow)
}

// Mul returns the low word of x * y, flagged when the high word is not zero.
func Mul[W core.Word[W]](x, y W) core.Fallible[W] {
	p := x.MulWide(y)
	return core.Flagged(p.Low, !p.High.IsZero())
}

// QuoRem returns the quotient and remainder of x / y. Dividing by zero is
// flagged and yields a zero quotient with x as remainder.
func QuoRem[W core.Word[W]](x, y W) core.Fallible[core.Division[W]] {
	if y.IsZero() {
		return core.Flagged(core.Division[W]{Remainder: x}, true)
	}
	var zero W
	q, r := y.DivWide(core.Pair[W]{Low: x, High: zero})
	return core.Exact(core.Division[W]{Quotient: q, Remainder: r})
}

// DivideWide divides the double-width pair n by d with the flagging rules of
// core.DivideWide: a zero divisor yields a zero quotient and n.Low as
// remainder, and a quotient that does not fit is truncated.
func DivideWide[W core.Word[W]](n core.Pair[W], d W) core.Fallible[core.Division[W]] {
	if d.IsZero() {
		return core.Flagged(core.Division[W]{Remainder: n.Low}, true)
	}
	overflow := n.High.Cmp(d) >= 0
	if overflow {
		n.High = QuoRem(n.High, d).Value.Remainder
	}
	q, r := d.DivWide(n)
	return core.Flagged(core.Division[W]{Quotient: q, Remainder: r}, overflow)
}
