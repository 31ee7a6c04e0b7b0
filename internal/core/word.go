package core

// Word is a fixed-width unsigned integer that can serve as the base of a
// composite integer. The leaf words U8, U16, U32 and U64 implement it directly;
// wide.Double[W] implements it for every W that does, which is how 128, 256
// and 512 bit words are built from U64.
//
// All methods are value methods; none mutates its receiver.
type Word[W any] interface {
	comparable
	// Width is the number of bits in the word.
	Width() int
	AddCarry(y W, carry bool) (W, bool)
	SubBorrow(y W, borrow bool) (W, bool)
	// MulWide returns the full double-width product.
	MulWide(y W) Pair[W]
	// DivWide divides the pair n by the receiver. n.High must be less than the
	// receiver.
	DivWide(n Pair[W]) (quotient, remainder W)
	Lsh(n uint) W
	Rsh(n uint) W
	Not() W
	And(y W) W
	Or(y W) W
	Xor(y W) W
	LeadingZeros() int
	TrailingZeros() int
	IsZero() bool
	MSB() bool
	// Cmp compares the receiver and y as unsigned values.
	Cmp(y W) int
	// Uint64 returns the low 64 bits.
	Uint64() uint64
	// FromUint64 returns v truncated to the word; the receiver is ignored.
	FromUint64(v uint64) W
}

// OneOf returns the word with value 1.
func OneOf[W Word[W]]() W {
	var zero W
	return zero.FromUint64(1)
}

// MaxOf returns the word with all bits set.
func MaxOf[W Word[W]]() W {
	var zero W
	return zero.Not()
}

// Extension returns the word formed by repeating the sign of x under s: all
// ones for a negative signed word, zero otherwise.
func Extension[W Word[W]](x W, s Signedness) W {
	var zero W
	if s.IsSigned() && x.MSB() {
		return zero.Not()
	}
	return zero
}

// Negate returns the two's complement negation of x.
func Negate[W Word[W]](x W) W {
	var zero W
	n, _ := zero.SubBorrow(x, false)
	return n
}

// Increment returns x + 1 and whether it wrapped.
func Increment[W Word[W]](x W) (W, bool) {
	return x.AddCarry(OneOf[W](), false)
}

// MulWideAdd returns x*y + z. The result always fits in a Pair.
func MulWideAdd[W Word[W]](x, y, z W) Pair[W] {
	p := x.MulWide(y)
	var c bool
	p.Low, c = p.Low.AddCarry(z, false)
	if c {
		p.High, _ = Increment(p.High)
	}
	return p
}

// CompareSigned compares x and y under the given signedness.
func CompareSigned[W Word[W]](x, y W, s Signedness) Signum {
	if s.IsSigned() && x.MSB() != y.MSB() {
		if x.MSB() {
			return Less
		}
		return More
	}
	return SignumOf(x.Cmp(y))
}
