package infini

import (
	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/words"
)

// Int is an arbitrary-precision integer of digit type D. Its mode decides
// whether an extension of one reads as a negative number (Signed) or as a
// value with infinitely many leading ones (Unsigned).
type Int[D core.Digit] struct {
	digits []D
	ext    core.Bit
	mode   core.Signedness
}

// New returns the integer with the given two's complement digits, least
// significant first, and extension bit. The digits are copied.
func New[D core.Digit](mode core.Signedness, digits []D, ext core.Bit) Int[D] {
	buf := make([]D, len(digits))
	copy(buf, digits)
	return build(mode, buf, ext)
}

// build takes ownership of digits.
func build[D core.Digit](mode core.Signedness, digits []D, ext core.Bit) Int[D] {
	return Int[D]{digits: normalize(digits, ext), ext: ext, mode: mode}
}

// Zero returns zero in the given mode.
func Zero[D core.Digit](mode core.Signedness) Int[D] {
	return Int[D]{mode: mode}
}

// FromUint64 returns v.
func FromUint64[D core.Digit](mode core.Signedness, v uint64) Int[D] {
	return New(mode, words.Rebind[D](words.Of(v)).Digits(), core.Zero)
}

// FromInt64 returns v. A negative v in Unsigned mode is the infinite value
// with the same bit pattern.
func FromInt64[D core.Digit](mode core.Signedness, v int64) Int[D] {
	return New(mode, words.Rebind[D](words.Of(uint64(v))).Digits(), core.BitOf(v < 0))
}

// Load gathers little-endian bytes into digits of type D, filling the last
// digit with ext.
func Load[D core.Digit](mode core.Signedness, data []byte, ext core.Bit) Int[D] {
	s := words.Gather[D](words.New(data, ext))
	return build(mode, s.Digits(), ext)
}

// Mode returns the signedness of x.
func (x Int[D]) Mode() core.Signedness { return x.mode }

// Count returns the number of stored digits.
func (x Int[D]) Count() int { return len(x.digits) }

// Digits returns a copy of the normalized digits.
func (x Int[D]) Digits() []D {
	out := make([]D, len(x.digits))
	copy(out, x.digits)
	return out
}

// Extension returns the extension bit.
func (x Int[D]) Extension() core.Bit { return x.ext }

// Span returns a read-only view of x.
func (x Int[D]) Span() words.Span[D] { return words.New(x.digits, x.ext) }

// Bytes returns the normalized value as little-endian bytes and the
// extension bit.
func (x Int[D]) Bytes() ([]byte, core.Bit) {
	s := words.Rebind[uint8](words.New(x.digits, x.ext)).Normalized()
	out := make([]byte, s.Count())
	copy(out, s.Digits())
	return out, x.ext
}

// IsNormal reports whether the buffer is in normal form. It always is for
// values built by this package.
func (x Int[D]) IsNormal() bool { return isNormal(x.digits, x.ext) }

// IsZero reports whether x is zero.
func (x Int[D]) IsZero() bool { return len(x.digits) == 0 && x.ext == core.Zero }

// IsInfinite reports whether an Unsigned x has infinitely many leading ones.
func (x Int[D]) IsInfinite() bool { return !x.mode.IsSigned() && x.ext == core.One }

// Signum returns the sign of x as a comparison with zero.
func (x Int[D]) Signum() core.Signum {
	return words.Compare(x.Span(), words.Span[D]{}, x.mode)
}

// Compare orders x and y under the mode of x.
func (x Int[D]) Compare(y Int[D]) core.Signum {
	return words.Compare(x.Span(), y.Span(), x.mode)
}

// Equal reports whether x and y denote the same value.
func (x Int[D]) Equal(y Int[D]) bool {
	return x.ext == y.ext && words.Equal(x.Span(), y.Span())
}

func requireSameMode[D core.Digit](x, y Int[D], op string) {
	core.Require(x.mode == y.mode, op, "operands have different signedness")
}

// Add returns x + y. Unsigned sums that carry out of the extension are
// flagged.
func (x Int[D]) Add(y Int[D]) core.Fallible[Int[D]] {
	requireSameMode(x, y, "Int.Add")
	out := make([]D, max(len(x.digits), len(y.digits))+1)
	m := words.MutOf(out)
	m.Load(x.Span())
	carry := m.IncrementBy(y.Span())
	ext := core.BitOf(core.MSB(out[len(out)-1]))
	return core.Flagged(build(x.mode, out, ext), carry && !x.mode.IsSigned())
}

// Sub returns x - y, which is x + (-y). Unsigned differences that borrow
// from the extension are flagged; their value is the infinite two's
// complement result.
func (x Int[D]) Sub(y Int[D]) core.Fallible[Int[D]] {
	requireSameMode(x, y, "Int.Sub")
	out := make([]D, max(len(x.digits), len(y.digits))+1)
	m := words.MutOf(out)
	m.Load(x.Span())
	borrow := m.DecrementBy(y.Span())
	ext := core.BitOf(core.MSB(out[len(out)-1]))
	return core.Flagged(build(x.mode, out, ext), borrow && !x.mode.IsSigned())
}

// Negate returns -x, flagged in Unsigned mode unless x is zero.
func (x Int[D]) Negate() core.Fallible[Int[D]] {
	return Zero[D](x.mode).Sub(x)
}

// signMagnitude splits x into a sign and fresh magnitude digits.
func (x Int[D]) signMagnitude() (bool, []D) {
	return x.ext == core.One, magnitudeOf(x.digits, x.ext)
}

// infiniteOperand reports whether an Unsigned operation involves an infinite
// operand, whose result is computed on the two's complement bit patterns and
// flagged.
func infiniteOperand[D core.Digit](xs ...Int[D]) bool {
	for _, x := range xs {
		if x.IsInfinite() {
			return true
		}
	}
	return false
}

// Mul returns x * y using the default multiplication options.
func (x Int[D]) Mul(y Int[D]) core.Fallible[Int[D]] {
	return x.MulWith(y, words.DefaultOptions())
}

// MulWith returns x * y.
func (x Int[D]) MulWith(y Int[D], opts words.Options) core.Fallible[Int[D]] {
	requireSameMode(x, y, "Int.Mul")
	xn, xm := x.signMagnitude()
	yn, ym := y.signMagnitude()
	out := make([]D, len(xm)+len(ym))
	words.InitProductWith(words.MutOf(out), words.Of(xm...), words.Of(ym...), opts)
	digits, ext := fromMagnitude(out, xn != yn)
	r := build(x.mode, digits, ext)
	return core.Flagged(r, infiniteOperand(x, y) && !r.IsZero())
}

// Square returns x * x.
func (x Int[D]) Square(opts words.Options) core.Fallible[Int[D]] {
	_, xm := x.signMagnitude()
	out := make([]D, 2*len(xm))
	words.InitSquareWith(words.MutOf(out), words.Of(xm...), opts)
	digits, ext := fromMagnitude(out, false)
	r := build(x.mode, digits, ext)
	return core.Flagged(r, infiniteOperand(x) && !r.IsZero())
}

// QuoRem divides truncating toward zero; the remainder takes the sign of x.
// Dividing by zero is flagged with a zero quotient and x as remainder.
func (x Int[D]) QuoRem(y Int[D]) core.Fallible[core.Division[Int[D]]] {
	requireSameMode(x, y, "Int.QuoRem")
	if y.IsZero() {
		return core.Flagged(core.Division[Int[D]]{Quotient: Zero[D](x.mode), Remainder: x}, true)
	}
	xn, xm := x.signMagnitude()
	yn, ym := y.signMagnitude()
	d := words.Divide(words.Of(xm...), words.Of(ym...)).Value

	qd, qe := fromMagnitude(d.Quotient.Digits(), xn != yn)
	rd, re := fromMagnitude(d.Remainder.Digits(), xn)
	return core.Flagged(core.Division[Int[D]]{
		Quotient:  build(x.mode, qd, qe),
		Remainder: build(x.mode, rd, re),
	}, infiniteOperand(x, y))
}
