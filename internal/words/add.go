package words

import "github.com/agbru/wordcalc/internal/core"

// IncrementBit adds one to m when bit is set and reports whether a carry
// escaped the last digit.
func (m Mut[D]) IncrementBit(bit bool) bool {
	if !bit {
		return false
	}
	for i := range m.digits {
		m.digits[i]++
		if m.digits[i] != 0 {
			return false
		}
	}
	return true
}

// Increment adds d to m and reports whether a carry escaped.
func (m Mut[D]) Increment(d D) bool {
	if len(m.digits) == 0 {
		return d != 0
	}
	var c bool
	m.digits[0], c = core.AddCarry(m.digits[0], d, false)
	return m.Suffix(1).IncrementBit(c)
}

// IncrementBy adds s to m and reports whether a carry escaped. The span must
// not have more stored digits than m; its extension fills the remaining
// digits of m, so adding a span with extension one wraps like adding a
// negative two's complement value.
func (m Mut[D]) IncrementBy(s Span[D]) bool {
	core.Require(s.Count() <= m.Count(), "Mut.IncrementBy", "span is longer than the accumulator")
	var c bool
	for i, d := range s.digits {
		m.digits[i], c = core.AddCarry(m.digits[i], d, c)
	}
	rest := m.Suffix(len(s.digits))
	if s.ext == core.Zero {
		return rest.IncrementBit(c)
	}
	ones := core.Repeat[D](core.One)
	for i := range rest.digits {
		rest.digits[i], c = core.AddCarry(rest.digits[i], ones, c)
	}
	return c
}

// AddProduct adds s*multiplier + addend to the first s.Count digits of m and
// returns the digit that carries out of them. The carry digit is not added to
// m.
func (m Mut[D]) AddProduct(s Span[D], multiplier, addend D) D {
	core.Require(s.Count() <= m.Count(), "Mut.AddProduct", "span is longer than the accumulator")
	carry := addend
	for i, d := range s.digits {
		p := core.MulAdd2(d, multiplier, m.digits[i], carry)
		m.digits[i], carry = p.Low, p.High
	}
	return carry
}

// IncrementByProduct performs m += s*multiplier + addend and reports whether
// a carry escaped.
func (m Mut[D]) IncrementByProduct(s Span[D], multiplier, addend D) bool {
	carry := m.AddProduct(s, multiplier, addend)
	return m.Suffix(s.Count()).Increment(carry)
}

// MultiplyBy performs m = m*multiplier + addend in place and returns the
// high digit that does not fit in m.
func (m Mut[D]) MultiplyBy(multiplier, addend D) D {
	carry := addend
	for i, d := range m.digits {
		p := core.MulAdd(d, multiplier, carry)
		m.digits[i], carry = p.Low, p.High
	}
	return carry
}

// DecrementBit subtracts one from m when bit is set and reports whether a
// borrow escaped the last digit.
func (m Mut[D]) DecrementBit(bit bool) bool {
	if !bit {
		return false
	}
	for i := range m.digits {
		m.digits[i]--
		if m.digits[i] != core.Repeat[D](core.One) {
			return false
		}
	}
	return true
}

// Decrement subtracts d from m and reports whether a borrow escaped.
func (m Mut[D]) Decrement(d D) bool {
	if len(m.digits) == 0 {
		return d != 0
	}
	var b bool
	m.digits[0], b = core.SubBorrow(m.digits[0], d, false)
	return m.Suffix(1).DecrementBit(b)
}

// DecrementBy subtracts s from m and reports whether a borrow escaped, with
// the same length rule and extension handling as IncrementBy.
func (m Mut[D]) DecrementBy(s Span[D]) bool {
	core.Require(s.Count() <= m.Count(), "Mut.DecrementBy", "span is longer than the accumulator")
	var b bool
	for i, d := range s.digits {
		m.digits[i], b = core.SubBorrow(m.digits[i], d, b)
	}
	rest := m.Suffix(len(s.digits))
	if s.ext == core.Zero {
		return rest.DecrementBit(b)
	}
	ones := core.Repeat[D](core.One)
	for i := range rest.digits {
		rest.digits[i], b = core.SubBorrow(rest.digits[i], ones, b)
	}
	return b
}

// SubProduct subtracts s*multiplier + subtrahend from the first s.Count
// digits of m and returns the digit that borrows out of them.
func (m Mut[D]) SubProduct(s Span[D], multiplier, subtrahend D) D {
	core.Require(s.Count() <= m.Count(), "Mut.SubProduct", "span is longer than the accumulator")
	carry := subtrahend
	for i, d := range s.digits {
		p := core.MulAdd(d, multiplier, carry)
		var b bool
		m.digits[i], b = core.SubBorrow(m.digits[i], p.Low, false)
		carry = p.High
		if b {
			carry++
		}
	}
	return carry
}

// DecrementByProduct performs m -= s*multiplier + subtrahend and reports
// whether a borrow escaped.
func (m Mut[D]) DecrementByProduct(s Span[D], multiplier, subtrahend D) bool {
	borrow := m.SubProduct(s, multiplier, subtrahend)
	return m.Suffix(s.Count()).Decrement(borrow)
}

// Negate replaces m with its two's complement and reports whether the
// result wrapped, which happens unless m was zero.
func (m Mut[D]) Negate() bool {
	for i := range m.digits {
		m.digits[i] = ^m.digits[i]
	}
	return !m.IncrementBit(true)
}
