package wide

import (
	"math/big"

	"github.com/agbru/wordcalc/internal/core"
)

// ToBig returns x as a non-negative big.Int.
func ToBig[W core.Word[W]](x W) *big.Int {
	out := new(big.Int)
	w := x.Width()
	for shift := 0; shift < w; shift += 64 {
		chunk := new(big.Int).SetUint64(x.Rsh(uint(shift)).Uint64())
		out.Or(out, chunk.Lsh(chunk, uint(shift)))
	}
	return out
}

// FromBig returns v modulo 2^width as a word, flagged when v is negative or
// does not fit.
func FromBig[W core.Word[W]](v *big.Int) core.Fallible[W] {
	var zero W
	w := zero.Width()
	mod := new(big.Int).Lsh(big.NewInt(1), uint(w))
	t := new(big.Int).Mod(v, mod)
	overflow := v.Sign() < 0 || v.Cmp(mod) >= 0

	var x W
	mask := new(big.Int).SetUint64(^uint64(0))
	for shift := ((w - 1) / 64) * 64; shift >= 0; shift -= 64 {
		chunk := new(big.Int).Rsh(t, uint(shift))
		chunk.And(chunk, mask)
		x = x.Lsh(64).Or(zero.FromUint64(chunk.Uint64()))
	}
	return core.Flagged(x, overflow)
}

// Big returns x as a big.Int.
func (x Int[W]) Big() *big.Int {
	m := ToBig(x.Magnitude())
	if x.IsNegative() {
		m.Neg(m)
	}
	return m
}

// IntFromBig returns v as a signed integer, wrapped and flagged when it does
// not fit.
func IntFromBig[W core.Word[W]](v *big.Int) core.Fallible[Int[W]] {
	var zero W
	w := zero.Width()
	lo := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(w-1)))
	hi := new(big.Int).Lsh(big.NewInt(1), uint(w-1))
	overflow := v.Cmp(lo) < 0 || v.Cmp(hi) >= 0
	return core.Flagged(Int[W]{bits: FromBig[W](v).Value}, overflow)
}
