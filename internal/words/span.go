package words

import (
	"github.com/agbru/wordcalc/internal/core"
)

// Span is an immutable view of digits, least significant first, followed by
// an infinite repetition of its extension bit.
type Span[D core.Digit] struct {
	digits []D
	ext    core.Bit
}

// New returns a span over digits with the given extension bit.
func New[D core.Digit](digits []D, ext core.Bit) Span[D] {
	return Span[D]{digits: digits, ext: ext}
}

// Of returns a non-negative span over the given digits.
func Of[D core.Digit](digits ...D) Span[D] {
	return Span[D]{digits: digits}
}

// Count returns the number of stored digits.
func (s Span[D]) Count() int { return len(s.digits) }

// Extension returns the bit repeated past the last stored digit.
func (s Span[D]) Extension() core.Bit { return s.ext }

// Digits returns the stored digits. The slice aliases the span's storage and
// must not be modified.
func (s Span[D]) Digits() []D { return s.digits }

// At returns the stored digit at index i. Reading past Count panics.
func (s Span[D]) At(i int) D {
	core.Require(i >= 0 && i < len(s.digits), "Span.At", "index out of range")
	return s.digits[i]
}

// DigitAt returns the digit at index i, which is the repeated extension bit
// for every i at or beyond Count.
func (s Span[D]) DigitAt(i int) D {
	if i < len(s.digits) {
		return s.digits[i]
	}
	return core.Repeat[D](s.ext)
}

// Normalized drops the most significant digits that equal the extension digit.
func (s Span[D]) Normalized() Span[D] {
	ext := core.Repeat[D](s.ext)
	n := len(s.digits)
	for n > 0 && s.digits[n-1] == ext {
		n--
	}
	return Span[D]{digits: s.digits[:n], ext: s.ext}
}

// IsNormal reports whether the last stored digit differs from the extension
// digit.
func (s Span[D]) IsNormal() bool {
	n := len(s.digits)
	return n == 0 || s.digits[n-1] != core.Repeat[D](s.ext)
}

// IsZero reports whether the span denotes zero.
func (s Span[D]) IsZero() bool {
	if s.ext != core.Zero {
		return false
	}
	for _, d := range s.digits {
		if d != 0 {
			return false
		}
	}
	return true
}

// Split divides s at index i. The low part has a zero extension; the high
// part keeps the extension of s.
func (s Span[D]) Split(i int) (low, high Span[D]) {
	core.Require(i >= 0 && i <= len(s.digits), "Span.Split", "index out of range")
	return Span[D]{digits: s.digits[:i]}, Span[D]{digits: s.digits[i:], ext: s.ext}
}

// Slice returns the digits in [from, to) as a non-negative span.
func (s Span[D]) Slice(from, to int) Span[D] {
	core.Require(0 <= from && from <= to && to <= len(s.digits), "Span.Slice", "bounds out of range")
	return Span[D]{digits: s.digits[from:to]}
}

// WithExtension returns s with its extension bit replaced.
func (s Span[D]) WithExtension(ext core.Bit) Span[D] {
	return Span[D]{digits: s.digits, ext: ext}
}

// Compare orders a and b, honoring extension bits and differing lengths.
//
// Under Signed an extension of one is negative and orders first. Under
// Unsigned an extension of one stands for an infinite run of ones and orders
// last.
func Compare[D core.Digit](a, b Span[D], s core.Signedness) core.Signum {
	if a.ext != b.ext {
		if a.ext.Bool() == s.IsSigned() {
			return core.Less
		}
		return core.More
	}
	for i := max(len(a.digits), len(b.digits)) - 1; i >= 0; i-- {
		x, y := a.DigitAt(i), b.DigitAt(i)
		if x != y {
			if x < y {
				return core.Less
			}
			return core.More
		}
	}
	return core.Same
}

// Equal reports whether a and b denote the same value.
func Equal[D core.Digit](a, b Span[D]) bool {
	return Compare(a, b, core.Unsigned) == core.Same
}
