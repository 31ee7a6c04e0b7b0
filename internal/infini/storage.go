package infini

import (
	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/words"
)

// normalize trims the most significant digits that equal the extension digit.
// A value made only of extension bits keeps no digit when the extension is
// zero and exactly one all-ones digit when it is one, so that zero and minus
// one stay distinguishable from the count and the extension alone.
func normalize[D core.Digit](digits []D, ext core.Bit) []D {
	e := core.Repeat[D](ext)
	n := len(digits)
	for n > 0 && digits[n-1] == e {
		n--
	}
	if n == 0 && ext == core.One {
		if len(digits) == 0 {
			return []D{e}
		}
		n = 1
	}
	return digits[:n:n]
}

// isNormal reports whether digits are in normal form for ext in O(1).
func isNormal[D core.Digit](digits []D, ext core.Bit) bool {
	n := len(digits)
	if n == 0 {
		return ext == core.Zero
	}
	e := core.Repeat[D](ext)
	if ext == core.One && n == 1 && digits[0] == e {
		return true
	}
	return digits[n-1] != e
}

// magnitudeOf returns |value| of the two's complement digits and ext as
// fresh, normalized digits.
func magnitudeOf[D core.Digit](digits []D, ext core.Bit) []D {
	if ext == core.Zero {
		out := make([]D, len(digits))
		copy(out, digits)
		return normalize(out, core.Zero)
	}
	out := make([]D, len(digits)+1)
	copy(out, digits)
	out[len(digits)] = core.Repeat[D](core.One)
	words.MutOf(out).Negate()
	return normalize(out, core.Zero)
}

// fromMagnitude turns a magnitude into two's complement digits and an
// extension bit, in place.
func fromMagnitude[D core.Digit](mag []D, negative bool) ([]D, core.Bit) {
	mag = normalize(mag, core.Zero)
	if !negative || len(mag) == 0 {
		return mag, core.Zero
	}
	words.MutOf(mag).Negate()
	return normalize(mag, core.One), core.One
}
