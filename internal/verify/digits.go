package verify

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/agbru/wordcalc/internal/core"
)

// randomDigits draws n digits, one in four of them all zeros or all ones so
// carry and borrow chains are common.
func randomDigits[D core.Digit](r *rand.Rand, n int) []D {
	out := make([]D, n)
	for i := range out {
		switch r.IntN(8) {
		case 0:
			out[i] = 0
		case 1:
			out[i] = ^D(0)
		default:
			out[i] = D(r.Uint64())
		}
	}
	return out
}

// toBig reads little-endian digits as a non-negative integer. It does not
// use the kernel so it can serve as an independent reading.
func toBig[D core.Digit](digits []D) *big.Int {
	w := uint(core.Width[D]())
	x := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		x.Lsh(x, w)
		x.Or(x, new(big.Int).SetUint64(uint64(digits[i])))
	}
	return x
}

// fromBig returns the low n digits of v, which must be non-negative.
func fromBig[D core.Digit](v *big.Int, n int) []D {
	w := uint(core.Width[D]())
	t := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(uint64(^D(0)))
	out := make([]D, n)
	for i := range out {
		out[i] = D(new(big.Int).And(t, mask).Uint64())
		t.Rsh(t, w)
	}
	return out
}

// pow2 returns 2^bits.
func pow2(bits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits))
}

// truncate returns v modulo 2^bits.
func truncate(v *big.Int, bits int) *big.Int {
	return new(big.Int).Mod(v, pow2(bits))
}

func hexDigits[D core.Digit](digits []D) string {
	return fmt.Sprintf("%x", digits)
}

// randomBig draws a non-negative integer below 2^bits, biased towards the
// bounds.
func randomBig(r *rand.Rand, bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	switch r.IntN(8) {
	case 0:
		return new(big.Int)
	case 1:
		return new(big.Int).Sub(pow2(bits), big.NewInt(1))
	}
	digits := randomDigits[uint64](r, (bits+63)/64)
	v := toBig(digits)
	return truncate(v.Rsh(v, uint(r.IntN(bits))), bits)
}
