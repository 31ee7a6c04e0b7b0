package infini

import (
	"math/big"
	"slices"

	"github.com/agbru/wordcalc/internal/core"
)

// FromBig returns v. A negative v in Unsigned mode is returned as the
// infinite value with the same two's complement bits and flagged.
func FromBig[D core.Digit](mode core.Signedness, v *big.Int) core.Fallible[Int[D]] {
	mag := new(big.Int).Abs(v).Bytes()
	slices.Reverse(mag)
	x := Load[D](mode, mag, core.Zero)
	if v.Sign() >= 0 {
		return core.Exact(x)
	}
	digits, ext := fromMagnitude(x.Digits(), true)
	return core.Flagged(build(mode, digits, ext), !mode.IsSigned())
}

// Big returns x as a big.Int. An infinite Unsigned value is returned as its
// negative two's complement reading.
func (x Int[D]) Big() *big.Int {
	negative, mag := x.signMagnitude()
	bytes, _ := Int[D]{digits: mag}.Bytes()
	slices.Reverse(bytes)
	out := new(big.Int).SetBytes(bytes)
	if negative {
		out.Neg(out)
	}
	return out
}

// String formats x in base 10.
func (x Int[D]) String() string {
	return x.Big().String()
}
