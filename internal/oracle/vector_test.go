package oracle

import (
	"math/big"
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/agbru/wordcalc/internal/words"
)

func TestKernelMatchesMathBigVectors(t *testing.T) {
	if bits.UintSize != 64 {
		t.Skip("big.Word is not 64 bits wide")
	}
	t.Parallel()
	r := rand.New(rand.NewPCG(21, 22))
	for _, n := range []int{0, 1, 2, 7, 64} {
		x := make([]uint64, n)
		y := make([]uint64, n)
		for i := range x {
			x[i], y[i] = r.Uint64(), r.Uint64()
		}

		sum := slices.Clone(x)
		carry := words.MutOf(sum).IncrementBy(words.Of(y...))
		z := make([]big.Word, n)
		c := AddVV(z, Words(x), Words(y))
		if !slices.Equal(sum, Digits(z)) || carry != (c != 0) {
			t.Errorf("n=%d: IncrementBy disagrees with addVV", n)
		}

		diff := slices.Clone(x)
		borrow := words.MutOf(diff).DecrementBy(words.Of(y...))
		c = SubVV(z, Words(x), Words(y))
		if !slices.Equal(diff, Digits(z)) || borrow != (c != 0) {
			t.Errorf("n=%d: DecrementBy disagrees with subVV", n)
		}

		if n == 0 {
			continue
		}
		m := y[0]
		acc := slices.Clone(x)
		high := words.MutOf(acc).AddProduct(words.Of(y...), m, 0)
		zw := Words(x)
		c = AddMulVVW(zw, Words(y), big.Word(m))
		if !slices.Equal(acc, Digits(zw)) || high != uint64(c) {
			t.Errorf("n=%d: AddProduct disagrees with addMulVVW", n)
		}
	}
}

func TestReferences(t *testing.T) {
	t.Parallel()
	refs := References()
	if len(refs) == 0 {
		t.Fatal("no references")
	}
	x, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	y := big.NewInt(97)
	for _, ref := range refs {
		got := ref.Mul(x, y)
		if got.Cmp(new(big.Int).Mul(x, y)) != 0 {
			t.Errorf("%s: Mul mismatch", ref.Name())
		}
		q, rem := ref.QuoRem(x, y)
		wq, wr := new(big.Int).QuoRem(x, y, new(big.Int))
		if q.Cmp(wq) != 0 || rem.Cmp(wr) != 0 {
			t.Errorf("%s: QuoRem mismatch", ref.Name())
		}
	}
	if _, ok := Lookup("math/big"); !ok {
		t.Error("Lookup(math/big) failed")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) succeeded")
	}
}
