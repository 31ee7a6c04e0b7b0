package words

import "github.com/agbru/wordcalc/internal/core"

// DivideByDigit replaces m with m / d and returns the remainder.
func (m Mut[D]) DivideByDigit(d core.Divisor[D]) D {
	var r D
	for i := len(m.digits) - 1; i >= 0; i-- {
		m.digits[i], r = core.DivPair(core.Pair[D]{Low: m.digits[i], High: r}, d)
	}
	return r
}

// RemainderByDigit returns the stored digits of s, read as a magnitude,
// modulo d.
func (s Span[D]) RemainderByDigit(d core.Divisor[D]) D {
	var r D
	for i := len(s.digits) - 1; i >= 0; i-- {
		_, r = core.DivPair(core.Pair[D]{Low: s.digits[i], High: r}, d)
	}
	return r
}

// DivideLong divides dividend in place by a normalized divisor.
//
// The divisor must have at least one digit and the top bit of its last digit
// set. The dividend must be longer than the divisor and its top
// divisor.Count() digits must be less than the divisor, so that the quotient
// fits in quotient, which must hold exactly dividend.Count()-divisor.Count()
// digits. On return the low divisor.Count() digits of dividend hold the
// remainder and the rest are zero.
func DivideLong[D core.Digit](quotient, dividend Mut[D], divisor Span[D]) {
	m := divisor.Count()
	n := dividend.Count()
	core.Require(m > 0 && core.MSB(divisor.digits[m-1]), "DivideLong", "divisor is not normalized")
	core.Require(quotient.Count() == n-m && n > m, "DivideLong", "quotient must hold dividend.Count()-divisor.Count() digits")
	core.Require(Compare(dividend.Span().Slice(n-m, n), magnitude(divisor), core.Unsigned) == core.Less, "DivideLong", "quotient does not fit")

	top := core.MustDivisor(divisor.digits[m-1])
	for k := n - m - 1; k >= 0; k-- {
		window := dividend.Slice(k, k+m+1)
		quotient.digits[k] = divideWindow(window, magnitude(divisor), top)
	}
}

// divideWindow divides the m+1 digit window by the m digit divisor, leaves
// the remainder in the window and returns the quotient digit. The window is
// less than divisor*B, so the quotient fits in one digit.
func divideWindow[D core.Digit](window Mut[D], divisor Span[D], top core.Divisor[D]) D {
	m := divisor.Count()
	hi := window.digits[m]
	var q D
	if hi == top.Value() {
		q = core.Repeat[D](core.One)
	} else {
		q, _ = core.DivPair(core.Pair[D]{Low: window.digits[m-1], High: hi}, top)
	}
	if q == 0 {
		return 0
	}

	borrow := window.Slice(0, m).SubProduct(divisor, q, 0)
	var negative bool
	window.digits[m], negative = core.SubBorrow(window.digits[m], borrow, false)

	// The estimate exceeds the true digit by at most two.
	for negative {
		q--
		carry := window.Slice(0, m).IncrementBy(divisor)
		window.digits[m], negative = core.AddCarry(window.digits[m], 0, carry)
		negative = !negative
	}
	return q
}

// Divide returns the quotient and remainder of two magnitudes; extension
// bits are ignored. Both results are normalized and own fresh storage.
//
// Dividing by zero is flagged and yields a zero quotient and the dividend as
// remainder.
func Divide[D core.Digit](dividend, divisor Span[D]) core.Fallible[core.Division[Span[D]]] {
	num := magnitude(dividend).Normalized()
	den := magnitude(divisor).Normalized()

	if den.Count() == 0 {
		return core.Flagged(core.Division[Span[D]]{Remainder: clone(num)}, true)
	}
	if Compare(num, den, core.Unsigned) == core.Less {
		return core.Exact(core.Division[Span[D]]{Remainder: clone(num)})
	}
	if den.Count() == 1 {
		q := clone(num)
		r := MutOf(q.digits).DivideByDigit(core.MustDivisor(den.digits[0]))
		return core.Exact(core.Division[Span[D]]{
			Quotient:  q.Normalized(),
			Remainder: Of(r).Normalized(),
		})
	}

	m, n := den.Count(), num.Count()
	shift := uint(core.LeadingZeros(den.digits[m-1]))

	d := acquireScratch[D](m)
	defer releaseScratch(d)
	dm := MutOf(d)
	dm.Load(den)
	dm.ShiftLeft(shift)

	x := acquireScratch[D](n + 1)
	defer releaseScratch(x)
	xm := MutOf(x)
	xm.Slice(0, n).Load(num)
	x[n] = xm.Slice(0, n).ShiftLeft(shift)

	q := make([]D, n+1-m)
	DivideLong(MutOf(q), xm, dm.Span())

	r := make([]D, m)
	rm := MutOf(r)
	rm.Load(xm.Slice(0, m).Span())
	rm.ShiftRight(shift, core.Zero)

	return core.Exact(core.Division[Span[D]]{
		Quotient:  Of(q...).Normalized(),
		Remainder: Of(r...).Normalized(),
	})
}

func clone[D core.Digit](s Span[D]) Span[D] {
	digits := make([]D, len(s.digits))
	copy(digits, s.digits)
	return Span[D]{digits: digits, ext: s.ext}
}
