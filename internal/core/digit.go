package core

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Digit is an unsigned machine word of 8, 16, 32 or 64 bits. All arithmetic on
// a Digit wraps; the helpers below expose the lost carry, borrow or high half.
type Digit interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of D.
func Width[D constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^D(0)))
}

// Repeat returns the digit whose every bit is bit.
func Repeat[D Digit](bit Bit) D {
	return D(0) - D(bit)
}

// MSB reports whether the most significant bit of x is set.
func MSB[D Digit](x D) bool {
	return x>>(Width[D]()-1) != 0
}

// LeadingZeros returns the number of leading zero bits in x.
func LeadingZeros[D Digit](x D) int {
	return bits.LeadingZeros64(uint64(x)) - (64 - Width[D]())
}

// TrailingZeros returns the number of trailing zero bits in x; Width for zero.
func TrailingZeros[D Digit](x D) int {
	if x == 0 {
		return Width[D]()
	}
	return bits.TrailingZeros64(uint64(x))
}

// AddCarry returns x + y + carry and the carry out.
func AddCarry[D Digit](x, y D, carry bool) (D, bool) {
	sum := x + y
	out := sum < x
	if carry {
		sum++
		out = out || sum == 0
	}
	return sum, out
}

// SubBorrow returns x - y - borrow and the borrow out.
func SubBorrow[D Digit](x, y D, borrow bool) (D, bool) {
	diff := x - y
	out := x < y
	if borrow {
		out = out || diff == 0
		diff--
	}
	return diff, out
}

// Mul returns the full double-width product of x and y.
func Mul[D Digit](x, y D) Pair[D] {
	if Width[D]() == 64 {
		hi, lo := bits.Mul64(uint64(x), uint64(y))
		return Pair[D]{Low: D(lo), High: D(hi)}
	}
	p := uint64(x) * uint64(y)
	return Pair[D]{Low: D(p), High: D(p >> Width[D]())}
}

// MulAdd returns x*y + z. The result always fits in a Pair.
func MulAdd[D Digit](x, y, z D) Pair[D] {
	p := Mul(x, y)
	var c bool
	p.Low, c = AddCarry(p.Low, z, false)
	if c {
		p.High++
	}
	return p
}

// MulAdd2 returns x*y + z + w. The result always fits in a Pair.
func MulAdd2[D Digit](x, y, z, w D) Pair[D] {
	p := MulAdd(x, y, z)
	var c bool
	p.Low, c = AddCarry(p.Low, w, false)
	if c {
		p.High++
	}
	return p
}

// Divisor is a digit known to be non-zero.
type Divisor[D Digit] struct {
	value D
}

// NewDivisor returns a Divisor for d and whether d was non-zero.
func NewDivisor[D Digit](d D) (Divisor[D], bool) {
	return Divisor[D]{value: d}, d != 0
}

// MustDivisor is NewDivisor for callers that have already ruled out zero.
func MustDivisor[D Digit](d D) Divisor[D] {
	Require(d != 0, "MustDivisor", "divisor is zero")
	return Divisor[D]{value: d}
}

// Value returns the divisor digit.
func (d Divisor[D]) Value() D { return d.value }

// DivPair divides the pair n by d. The high digit of n must be less than d so
// that the quotient fits in one digit.
func DivPair[D Digit](n Pair[D], d Divisor[D]) (quotient, remainder D) {
	Require(n.High < d.value, "DivPair", "quotient does not fit in one digit")
	if Width[D]() == 64 {
		q, r := bits.Div64(uint64(n.High), uint64(n.Low), uint64(d.value))
		return D(q), D(r)
	}
	w := uint64(n.High)<<Width[D]() | uint64(n.Low)
	return D(w / uint64(d.value)), D(w % uint64(d.value))
}

// DivideWide divides a pair by a single digit.
//
// Dividing by zero is flagged and yields a zero quotient with the low digit as
// remainder. A quotient wider than one digit is flagged and truncated; the
// remainder is exact in that case.
func DivideWide[D Digit](n Pair[D], d D) Fallible[Division[D]] {
	if d == 0 {
		return Flagged(Division[D]{Remainder: n.Low}, true)
	}
	overflow := n.High >= d
	if overflow {
		n.High %= d
	}
	q, r := DivPair(n, Divisor[D]{value: d})
	return Flagged(Division[D]{Quotient: q, Remainder: r}, overflow)
}
