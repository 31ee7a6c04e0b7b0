package words

import "github.com/agbru/wordcalc/internal/core"

// ShiftLeft shifts m left by n bits in place, 0 <= n < digit width, and
// returns the bits shifted out of the last digit.
func (m Mut[D]) ShiftLeft(n uint) D {
	w := uint(core.Width[D]())
	core.Require(n < w, "Mut.ShiftLeft", "shift is not smaller than the digit width")
	if n == 0 {
		return 0
	}
	var out D
	for i, d := range m.digits {
		m.digits[i] = d<<n | out
		out = d >> (w - n)
	}
	return out
}

// ShiftRight shifts m right by n bits in place, 0 <= n < digit width, filling
// from the top with the extension bit fill. It returns the bits shifted out
// of the first digit, in the high bits of the result.
func (m Mut[D]) ShiftRight(n uint, fill core.Bit) D {
	w := uint(core.Width[D]())
	core.Require(n < w, "Mut.ShiftRight", "shift is not smaller than the digit width")
	if n == 0 {
		return 0
	}
	in := core.Repeat[D](fill) << (w - n)
	for i := len(m.digits) - 1; i >= 0; i-- {
		d := m.digits[i]
		m.digits[i] = d>>n | in
		in = d << (w - n)
	}
	return in
}
