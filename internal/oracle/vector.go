package oracle

import "math/big"

// AddVV computes z = x + y element-wise and returns the carry. All slices
// must have the same length.
func AddVV(z, x, y []big.Word) big.Word {
	if len(z) == 0 {
		return 0
	}
	return addVV(z, x, y)
}

// SubVV computes z = x - y element-wise and returns the borrow.
func SubVV(z, x, y []big.Word) big.Word {
	if len(z) == 0 {
		return 0
	}
	return subVV(z, x, y)
}

// AddMulVVW computes z += x*y where y is a single word and returns the carry.
func AddMulVVW(z, x []big.Word, y big.Word) big.Word {
	if len(z) == 0 {
		return 0
	}
	return addMulVVW(z, x, y)
}

// Words converts 64-bit digits to big.Word. It is only meaningful where
// big.Word is 64 bits wide.
func Words(digits []uint64) []big.Word {
	out := make([]big.Word, len(digits))
	for i, d := range digits {
		out[i] = big.Word(d)
	}
	return out
}

// Digits converts big.Word values back to 64-bit digits.
func Digits(ws []big.Word) []uint64 {
	out := make([]uint64, len(ws))
	for i, w := range ws {
		out[i] = uint64(w)
	}
	return out
}
