package words

import (
	"math/big"
	"math/rand/v2"

	"github.com/agbru/wordcalc/internal/core"
)

func toBig[D core.Digit](s Span[D]) *big.Int {
	w := uint(core.Width[D]())
	x := new(big.Int)
	for i := s.Count() - 1; i >= 0; i-- {
		x.Lsh(x, w)
		x.Or(x, new(big.Int).SetUint64(uint64(s.At(i))))
	}
	return x
}

func randomDigits[D core.Digit](r *rand.Rand, n int) []D {
	out := make([]D, n)
	for i := range out {
		out[i] = D(r.Uint64())
	}
	return out
}

func bytesToDigits(b []byte) []uint16 {
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return out
}
