package verify

import (
	"math/big"
	"math/bits"
	"math/rand/v2"
	"slices"

	"github.com/agbru/wordcalc/internal/oracle"
	"github.com/agbru/wordcalc/internal/words"
)

func newVectorSuite() Suite {
	return suite{
		name:        "vector-u64",
		description: "carry chains and multiply-accumulate against the math/big vector kernels",
		run:         vectorCase,
		applies:     func() bool { return bits.UintSize == 64 },
	}
}

func vectorCase(r *rand.Rand, _ Options) (int, error) {
	n := 1 + r.IntN(32)
	x, y := randomDigits[uint64](r, n), randomDigits[uint64](r, n)
	z := make([]big.Word, n)

	sum := slices.Clone(x)
	carry := words.MutOf(sum).IncrementBy(words.Of(y...))
	c := oracle.AddVV(z, oracle.Words(x), oracle.Words(y))
	if !slices.Equal(sum, oracle.Digits(z)) || carry != (c != 0) {
		return 1, mismatch("addVV of %d digits", oracle.Digits(z), sum, n)
	}

	diff := slices.Clone(x)
	borrow := words.MutOf(diff).DecrementBy(words.Of(y...))
	c = oracle.SubVV(z, oracle.Words(x), oracle.Words(y))
	if !slices.Equal(diff, oracle.Digits(z)) || borrow != (c != 0) {
		return 2, mismatch("subVV of %d digits", oracle.Digits(z), diff, n)
	}

	m := randomDigits[uint64](r, 1)[0]
	acc := slices.Clone(x)
	high := words.MutOf(acc).AddProduct(words.Of(y...), m, 0)
	zw := oracle.Words(x)
	c = oracle.AddMulVVW(zw, oracle.Words(y), big.Word(m))
	if !slices.Equal(acc, oracle.Digits(zw)) || high != uint64(c) {
		return 3, mismatch("addMulVVW of %d digits by %x", oracle.Digits(zw), acc, n, m)
	}
	return 3, nil
}
