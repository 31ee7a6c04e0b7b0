package words

import "github.com/agbru/wordcalc/internal/core"

// Mut is a writable view of digits, least significant first. It is the
// in-place accumulator of the algorithms in this package and has no
// extension bit: carries and borrows that leave its last digit are reported
// to the caller.
type Mut[D core.Digit] struct {
	digits []D
}

// MutOf returns a writable view over digits.
func MutOf[D core.Digit](digits []D) Mut[D] {
	return Mut[D]{digits: digits}
}

// Count returns the number of digits in the view.
func (m Mut[D]) Count() int { return len(m.digits) }

// Digits returns the underlying digits.
func (m Mut[D]) Digits() []D { return m.digits }

// Span returns a non-negative read-only view of m.
func (m Mut[D]) Span() Span[D] { return Span[D]{digits: m.digits} }

// At returns the digit at index i.
func (m Mut[D]) At(i int) D {
	core.Require(i >= 0 && i < len(m.digits), "Mut.At", "index out of range")
	return m.digits[i]
}

// Set stores d at index i.
func (m Mut[D]) Set(i int, d D) {
	core.Require(i >= 0 && i < len(m.digits), "Mut.Set", "index out of range")
	m.digits[i] = d
}

// Slice returns the writable digits in [from, to).
func (m Mut[D]) Slice(from, to int) Mut[D] {
	core.Require(0 <= from && from <= to && to <= len(m.digits), "Mut.Slice", "bounds out of range")
	return Mut[D]{digits: m.digits[from:to]}
}

// Suffix returns the writable digits from index from to the end.
func (m Mut[D]) Suffix(from int) Mut[D] { return m.Slice(from, len(m.digits)) }

// Clear sets every digit to zero.
func (m Mut[D]) Clear() { clear(m.digits) }

// Fill sets every digit to d.
func (m Mut[D]) Fill(d D) {
	for i := range m.digits {
		m.digits[i] = d
	}
}

// Load overwrites m with the digits of s, extending past s.Count with its
// extension digit. The digits of s beyond m's count are ignored.
func (m Mut[D]) Load(s Span[D]) {
	n := copy(m.digits, s.digits)
	m.Suffix(n).Fill(core.Repeat[D](s.ext))
}
