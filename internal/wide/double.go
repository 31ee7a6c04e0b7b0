package wide

import "github.com/agbru/wordcalc/internal/core"

// Double is an unsigned integer twice as wide as W.
type Double[W core.Word[W]] struct {
	Low  W
	High W
}

// Common widths.
type (
	U128 = Double[core.U64]
	U256 = Double[U128]
	U512 = Double[U256]
)

func (x Double[W]) half() uint { return uint(x.Low.Width()) }

// Width returns twice the width of W.
func (x Double[W]) Width() int { return 2 * x.Low.Width() }

func (x Double[W]) AddCarry(y Double[W], carry bool) (Double[W], bool) {
	var r Double[W]
	r.Low, carry = x.Low.AddCarry(y.Low, carry)
	r.High, carry = x.High.AddCarry(y.High, carry)
	return r, carry
}

func (x Double[W]) SubBorrow(y Double[W], borrow bool) (Double[W], bool) {
	var r Double[W]
	r.Low, borrow = x.Low.SubBorrow(y.Low, borrow)
	r.High, borrow = x.High.SubBorrow(y.High, borrow)
	return r, borrow
}

// MulWide composes the product from four half-width products; the two
// cross products are accumulated in a Triple.
func (x Double[W]) MulWide(y Double[W]) core.Pair[Double[W]] {
	ll := x.Low.MulWide(y.Low)
	lh := x.Low.MulWide(y.High)
	hl := x.High.MulWide(y.Low)
	hh := x.High.MulWide(y.High)

	t := core.Triple[W]{Low: ll.High, Mid: hh.Low, High: hh.High}
	t = t.PlusPair(lh, core.Unsigned).Value
	t = t.PlusPair(hl, core.Unsigned).Value
	return core.Pair[Double[W]]{
		Low:  Double[W]{Low: ll.Low, High: t.Low},
		High: Double[W]{Low: t.Mid, High: t.High},
	}
}

// DivWide divides the pair n by x with two 3-by-2 steps on the normalized
// operands. n.High must be less than x.
func (x Double[W]) DivWide(n core.Pair[Double[W]]) (Double[W], Double[W]) {
	core.Require(n.High.Cmp(x) < 0, "Double.DivWide", "quotient does not fit in one word")
	shift := uint(x.LeadingZeros())
	d := x.Lsh(shift)
	top := n.High.Lsh(shift).Or(n.Low.rshFill(x.Width(), shift))
	low := n.Low.Lsh(shift)

	q1, r := div3by2(core.Triple[W]{Low: low.High, Mid: top.Low, High: top.High}, d)
	q0, r := div3by2(core.Triple[W]{Low: low.Low, Mid: r.Low, High: r.High}, d)
	return Double[W]{Low: q0, High: q1}, r.Rsh(shift)
}

// rshFill returns the bits of x that a left shift by n would move out, i.e.
// x >> (width - n), and zero when n is zero.
func (x Double[W]) rshFill(width int, n uint) Double[W] {
	if n == 0 {
		return Double[W]{}
	}
	return x.Rsh(uint(width) - n)
}

// div3by2 divides t by the normalized two-word divisor d. The top two words
// of t must be less than d.
func div3by2[W core.Word[W]](t core.Triple[W], d Double[W]) (W, Double[W]) {
	var q W
	if t.High == d.High {
		q = core.MaxOf[W]()
	} else {
		q, _ = d.High.DivWide(core.Pair[W]{Low: t.Mid, High: t.High})
	}
	dp := core.Pair[W]{Low: d.Low, High: d.High}
	r := t.MinusTriple(core.MulPair(dp, q), core.Unsigned)
	// At most two corrections on a normalized divisor.
	for r.Overflow {
		q, _ = q.SubBorrow(core.OneOf[W](), false)
		back := r.Value.PlusPair(dp, core.Unsigned)
		r = core.Flagged(back.Value, !back.Overflow)
	}
	return q, Double[W]{Low: r.Value.Low, High: r.Value.Mid}
}

func (x Double[W]) Lsh(n uint) Double[W] {
	h := x.half()
	switch {
	case n == 0:
		return x
	case n >= 2*h:
		return Double[W]{}
	case n >= h:
		return Double[W]{High: x.Low.Lsh(n - h)}
	default:
		return Double[W]{Low: x.Low.Lsh(n), High: x.High.Lsh(n).Or(x.Low.Rsh(h - n))}
	}
}

func (x Double[W]) Rsh(n uint) Double[W] {
	h := x.half()
	switch {
	case n == 0:
		return x
	case n >= 2*h:
		return Double[W]{}
	case n >= h:
		return Double[W]{Low: x.High.Rsh(n - h)}
	default:
		return Double[W]{Low: x.Low.Rsh(n).Or(x.High.Lsh(h - n)), High: x.High.Rsh(n)}
	}
}

func (x Double[W]) Not() Double[W] { return Double[W]{Low: x.Low.Not(), High: x.High.Not()} }

func (x Double[W]) And(y Double[W]) Double[W] {
	return Double[W]{Low: x.Low.And(y.Low), High: x.High.And(y.High)}
}

func (x Double[W]) Or(y Double[W]) Double[W] {
	return Double[W]{Low: x.Low.Or(y.Low), High: x.High.Or(y.High)}
}

func (x Double[W]) Xor(y Double[W]) Double[W] {
	return Double[W]{Low: x.Low.Xor(y.Low), High: x.High.Xor(y.High)}
}

func (x Double[W]) LeadingZeros() int {
	if x.High.IsZero() {
		return x.Low.Width() + x.Low.LeadingZeros()
	}
	return x.High.LeadingZeros()
}

func (x Double[W]) TrailingZeros() int {
	if x.Low.IsZero() {
		return x.Low.Width() + x.High.TrailingZeros()
	}
	return x.Low.TrailingZeros()
}

func (x Double[W]) IsZero() bool { return x.Low.IsZero() && x.High.IsZero() }

func (x Double[W]) MSB() bool { return x.High.MSB() }

func (x Double[W]) Cmp(y Double[W]) int {
	if c := x.High.Cmp(y.High); c != 0 {
		return c
	}
	return x.Low.Cmp(y.Low)
}

func (x Double[W]) Uint64() uint64 {
	if h := x.half(); h < 64 {
		return x.Low.Uint64() | x.High.Uint64()<<h
	}
	return x.Low.Uint64()
}

func (x Double[W]) FromUint64(v uint64) Double[W] {
	if h := x.half(); h < 64 {
		return Double[W]{Low: x.Low.FromUint64(v), High: x.High.FromUint64(v >> h)}
	}
	return Double[W]{Low: x.Low.FromUint64(v)}
}
