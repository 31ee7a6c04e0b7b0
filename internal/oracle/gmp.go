//go:build gmp

package oracle

import (
	"math/big"

	"github.com/ncw/gmp"
)

// GMPReference computes through the GMP library.
type GMPReference struct{}

func (GMPReference) Name() string { return "gmp" }

func (GMPReference) Mul(x, y *big.Int) *big.Int {
	z := new(gmp.Int).Mul(toGMP(x), toGMP(y))
	return fromGMP(z)
}

func (GMPReference) QuoRem(x, y *big.Int) (*big.Int, *big.Int) {
	q, r := new(gmp.Int).QuoRem(toGMP(x), toGMP(y), new(gmp.Int))
	return fromGMP(q), fromGMP(r)
}

func toGMP(x *big.Int) *gmp.Int {
	z := new(gmp.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func fromGMP(x *gmp.Int) *big.Int {
	z := new(big.Int).SetBytes(x.Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func init() {
	references = append(references, GMPReference{})
}
