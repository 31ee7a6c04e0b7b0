package core

import "cmp"

// The leaf words are plain digits with methods, so the same value can be used
// as a Digit in spans and as the base Word of a composite integer.
type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
)

func (x U8) Width() int { return Width[U8]() }
func (x U8) AddCarry(y U8, carry bool) (U8, bool) { return AddCarry(x, y, carry) }
func (x U8) SubBorrow(y U8, borrow bool) (U8, bool) { return SubBorrow(x, y, borrow) }
func (x U8) MulWide(y U8) Pair[U8] { return Mul(x, y) }
func (x U8) DivWide(n Pair[U8]) (U8, U8) { return DivPair(n, MustDivisor(x)) }
func (x U8) Lsh(n uint) U8 { return x << n }
func (x U8) Rsh(n uint) U8 { return x >> n }
func (x U8) Not() U8 { return ^x }
func (x U8) And(y U8) U8 { return x & y }
func (x U8) Or(y U8) U8 { return x | y }
func (x U8) Xor(y U8) U8 { return x ^ y }
func (x U8) LeadingZeros() int { return LeadingZeros(x) }
func (x U8) TrailingZeros() int { return TrailingZeros(x) }
func (x U8) IsZero() bool { return x == 0 }
func (x U8) MSB() bool { return MSB(x) }
func (x U8) Cmp(y U8) int { return cmp.Compare(x, y) }
func (x U8) Uint64() uint64 { return uint64(x) }
func (U8) FromUint64(v uint64) U8 { return U8(v) }

func (x U16) Width() int { return Width[U16]() }
func (x U16) AddCarry(y U16, carry bool) (U16, bool) { return AddCarry(x, y, carry) }
func (x U16) SubBorrow(y U16, borrow bool) (U16, bool) { return SubBorrow(x, y, borrow) }
func (x U16) MulWide(y U16) Pair[U16] { return Mul(x, y) }
func (x U16) DivWide(n Pair[U16]) (U16, U16) { return DivPair(n, MustDivisor(x)) }
func (x U16) Lsh(n uint) U16 { return x << n }
func (x U16) Rsh(n uint) U16 { return x >> n }
func (x U16) Not() U16 { return ^x }
func (x U16) And(y U16) U16 { return x & y }
func (x U16) Or(y U16) U16 { return x | y }
func (x U16) Xor(y U16) U16 { return x ^ y }
func (x U16) LeadingZeros() int { return LeadingZeros(x) }
func (x U16) TrailingZeros() int { return TrailingZeros(x) }
func (x U16) IsZero() bool { return x == 0 }
func (x U16) MSB() bool { return MSB(x) }
func (x U16) Cmp(y U16) int { return cmp.Compare(x, y) }
func (x U16) Uint64() uint64 { return uint64(x) }
func (U16) FromUint64(v uint64) U16 { return U16(v) }

func (x U32) Width() int { return Width[U32]() }
func (x U32) AddCarry(y U32, carry bool) (U32, bool) { return AddCarry(x, y, carry) }
func (x U32) SubBorrow(y U32, borrow bool) (U32, bool) { return SubBorrow(x, y, borrow) }
func (x U32) MulWide(y U32) Pair[U32] { return Mul(x, y) }
func (x U32) DivWide(n Pair[U32]) (U32, U32) { return DivPair(n, MustDivisor(x)) }
func (x U32) Lsh(n uint) U32 { return x << n }
func (x U32) Rsh(n uint) U32 { return x >> n }
func (x U32) Not() U32 { return ^x }
func (x U32) And(y U32) U32 { return x & y }
func (x U32) Or(y U32) U32 { return x | y }
func (x U32) Xor(y U32) U32 { return x ^ y }
func (x U32) LeadingZeros() int { return LeadingZeros(x) }
func (x U32) TrailingZeros() int { return TrailingZeros(x) }
func (x U32) IsZero() bool { return x == 0 }
func (x U32) MSB() bool { return MSB(x) }
func (x U32) Cmp(y U32) int { return cmp.Compare(x, y) }
func (x U32) Uint64() uint64 { return uint64(x) }
func (U32) FromUint64(v uint64) U32 { return U32(v) }

func (x U64) Width() int { return Width[U64]() }
func (x U64) AddCarry(y U64, carry bool) (U64, bool) { return AddCarry(x, y, carry) }
func (x U64) SubBorrow(y U64, borrow bool) (U64, bool) { return SubBorrow(x, y, borrow) }
func (x U64) MulWide(y U64) Pair[U64] { return Mul(x, y) }
func (x U64) DivWide(n Pair[U64]) (U64, U64) { return DivPair(n, MustDivisor(x)) }
func (x U64) Lsh(n uint) U64 { return x << n }
func (x U64) Rsh(n uint) U64 { return x >> n }
func (x U64) Not() U64 { return ^x }
func (x U64) And(y U64) U64 { return x & y }
func (x U64) Or(y U64) U64 { return x | y }
func (x U64) Xor(y U64) U64 { return x ^ y }
func (x U64) LeadingZeros() int { return LeadingZeros(x) }
func (x U64) TrailingZeros() int { return TrailingZeros(x) }
func (x U64) IsZero() bool { return x == 0 }
func (x U64) MSB() bool { return MSB(x) }
func (x U64) Cmp(y U64) int { return cmp.Compare(x, y) }
func (x U64) Uint64() uint64 { return uint64(x) }
func (U64) FromUint64(v uint64) U64 { return U64(v) }
