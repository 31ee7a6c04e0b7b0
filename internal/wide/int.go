package wide

import "github.com/agbru/wordcalc/internal/core"

// Int reads the bits of a word as a two's complement signed integer.
type Int[W core.Word[W]] struct {
	bits W
}

// Signed widths.
type (
	I8   = Int[core.U8]
	I16  = Int[core.U16]
	I32  = Int[core.U32]
	I64  = Int[core.U64]
	I128 = Int[U128]
	I256 = Int[U256]
	I512 = Int[U512]
)

// IntOf returns the signed integer with the given bit pattern.
func IntOf[W core.Word[W]](bits W) Int[W] { return Int[W]{bits: bits} }

// MinInt returns the most negative value.
func MinInt[W core.Word[W]]() Int[W] {
	var zero W
	return Int[W]{bits: core.OneOf[W]().Lsh(uint(zero.Width() - 1))}
}

// MaxInt returns the most positive value.
func MaxInt[W core.Word[W]]() Int[W] {
	return Int[W]{bits: MinInt[W]().bits.Not()}
}

// Bits returns the two's complement bit pattern.
func (x Int[W]) Bits() W { return x.bits }

// IsNegative reports whether the sign bit is set.
func (x Int[W]) IsNegative() bool { return x.bits.MSB() }

// IsZero reports whether x is zero.
func (x Int[W]) IsZero() bool { return x.bits.IsZero() }

// Magnitude returns |x| as an unsigned word. The magnitude of the minimum
// value is exact.
func (x Int[W]) Magnitude() W {
	if x.IsNegative() {
		return core.Negate(x.bits)
	}
	return x.bits
}

// Negate returns -x, flagged for the minimum value.
func (x Int[W]) Negate() core.Fallible[Int[W]] {
	n := core.Negate(x.bits)
	return core.Flagged(Int[W]{bits: n}, !x.IsZero() && n == x.bits)
}

// Add returns x + y, flagged on signed overflow.
func (x Int[W]) Add(y Int[W]) core.Fallible[Int[W]] {
	r, _ := x.bits.AddCarry(y.bits, false)
	overflow := x.IsNegative() == y.IsNegative() && r.MSB() != x.IsNegative()
	return core.Flagged(Int[W]{bits: r}, overflow)
}

// Sub returns x - y, flagged on signed overflow.
func (x Int[W]) Sub(y Int[W]) core.Fallible[Int[W]] {
	r, _ := x.bits.SubBorrow(y.bits, false)
	overflow := x.IsNegative() != y.IsNegative() && r.MSB() != x.IsNegative()
	return core.Flagged(Int[W]{bits: r}, overflow)
}

// Mul returns x * y, flagged when the product does not fit.
func (x Int[W]) Mul(y Int[W]) core.Fallible[Int[W]] {
	negative := x.IsNegative() != y.IsNegative()
	p := x.Magnitude().MulWide(y.Magnitude())
	overflow := !p.High.IsZero()
	if negative {
		overflow = overflow || p.Low.Cmp(MinInt[W]().bits) > 0
		return core.Flagged(Int[W]{bits: core.Negate(p.Low)}, overflow)
	}
	return core.Flagged(Int[W]{bits: p.Low}, overflow || p.Low.MSB())
}

// QuoRem divides truncating toward zero: the remainder takes the sign of the
// dividend. Dividing by zero is flagged with a zero quotient and x as
// remainder; the minimum value divided by -1 is flagged with the minimum
// value as quotient.
func (x Int[W]) QuoRem(y Int[W]) core.Fallible[core.Division[Int[W]]] {
	if y.IsZero() {
		return core.Flagged(core.Division[Int[W]]{Remainder: x}, true)
	}
	d := QuoRem(x.Magnitude(), y.Magnitude()).Value
	q, r := d.Quotient, d.Remainder
	overflow := false
	if x.IsNegative() != y.IsNegative() {
		q = core.Negate(q)
	} else {
		overflow = q.MSB()
	}
	if x.IsNegative() {
		r = core.Negate(r)
	}
	return core.Flagged(core.Division[Int[W]]{Quotient: Int[W]{bits: q}, Remainder: Int[W]{bits: r}}, overflow)
}

// Compare orders x and y.
func (x Int[W]) Compare(y Int[W]) core.Signum {
	return core.CompareSigned(x.bits, y.bits, core.Signed)
}

// Int64 returns the low 64 bits of x, sign extended when x is narrower.
func (x Int[W]) Int64() int64 {
	v := x.bits.Uint64()
	if w := x.bits.Width(); w < 64 && x.IsNegative() {
		v |= ^uint64(0) << w
	}
	return int64(v)
}

// IntFromInt64 returns v truncated to the width of W.
func IntFromInt64[W core.Word[W]](v int64) Int[W] {
	var zero W
	bits := zero.FromUint64(uint64(v))
	if v < 0 {
		bits = bits.Or(core.MaxOf[W]().Lsh(64))
	}
	return Int[W]{bits: bits}
}
