package verify

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"slices"

	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/words"
)

func digitName[D core.Digit](prefix string) string {
	return fmt.Sprintf("%s-u%d", prefix, core.Width[D]())
}

func newAddSubSuite[D core.Digit]() Suite {
	return suite{
		name:        digitName[D]("add-sub"),
		description: "IncrementBy/DecrementBy with extension fill against big sums",
		run:         addSubCase[D],
	}
}

// addSubCase adds a span of k <= n digits with a random extension to an
// n-digit accumulator, checks the sum and carry, then subtracts it back.
func addSubCase[D core.Digit](r *rand.Rand, _ Options) (int, error) {
	n := r.IntN(12)
	k := r.IntN(n + 1)
	x := randomDigits[D](r, n)
	y := randomDigits[D](r, k)
	ext := core.BitOf(r.IntN(2) == 0)
	bits := n * core.Width[D]()

	yValue := toBig(y)
	if ext == core.One {
		fill := new(big.Int).Sub(pow2(bits), pow2(k*core.Width[D]()))
		yValue.Add(yValue, fill)
	}
	want := new(big.Int).Add(toBig(x), yValue)
	wantCarry := want.Cmp(pow2(bits)) >= 0

	sum := slices.Clone(x)
	carry := words.MutOf(sum).IncrementBy(words.New(y, ext))
	if got := toBig(sum); got.Cmp(truncate(want, bits)) != 0 || carry != wantCarry {
		return 1, mismatch("%s + %s ext %v", fmt.Sprint(truncate(want, bits), " carry ", wantCarry), fmt.Sprint(got, " carry ", carry), hexDigits(x), hexDigits(y), ext)
	}

	borrow := words.MutOf(sum).DecrementBy(words.New(y, ext))
	if !slices.Equal(sum, x) || borrow != carry {
		return 2, mismatch("(x + y) - y for x=%s y=%s ext %v", hexDigits(x), hexDigits(sum), hexDigits(x), hexDigits(y), ext)
	}
	return 2, nil
}

func newMulSuite[D core.Digit]() Suite {
	return suite{
		name:        digitName[D]("mul"),
		description: "long, Karatsuba and dispatched products and squares around the threshold",
		run:         mulCase[D],
	}
}

func mulCase[D core.Digit](r *rand.Rand, opts Options) (int, error) {
	t := opts.threshold()
	nx := 1 + r.IntN(3*t)
	ny := nx
	if r.IntN(2) == 0 {
		ny = 1 + r.IntN(3*t)
	}
	x, y := randomDigits[D](r, nx), randomDigits[D](r, ny)
	lhs, rhs := words.Of(x...), words.Of(y...)
	xb, yb := toBig(x), toBig(y)
	want := opts.reference().Mul(xb, yb)

	products := []struct {
		name string
		fill func(out words.Mut[D])
	}{
		{"long", func(out words.Mut[D]) { words.InitProductLong(out, lhs, rhs) }},
		{"karatsuba", func(out words.Mut[D]) { words.InitProductKaratsuba(out, lhs, rhs, opts.Words) }},
		{"dispatch", func(out words.Mut[D]) { words.InitProductWith(out, lhs, rhs, opts.Words) }},
	}
	checks := 0
	for _, p := range products {
		out := make([]D, nx+ny)
		p.fill(words.MutOf(out))
		checks++
		if got := toBig(out); got.Cmp(want) != 0 {
			return checks, mismatch("%s product of %d x %d digits", want, got, p.name, nx, ny)
		}
	}

	wantSquare := opts.reference().Mul(xb, xb)
	squares := []struct {
		name string
		fill func(out words.Mut[D])
	}{
		{"long", func(out words.Mut[D]) { words.InitSquareLong(out, lhs) }},
		{"karatsuba", func(out words.Mut[D]) { words.InitSquareKaratsuba(out, lhs, opts.Words) }},
		{"dispatch", func(out words.Mut[D]) { words.InitSquareWith(out, lhs, opts.Words) }},
	}
	for _, s := range squares {
		out := make([]D, 2*nx)
		s.fill(words.MutOf(out))
		checks++
		if got := toBig(out); got.Cmp(wantSquare) != 0 {
			return checks, mismatch("%s square of %d digits", wantSquare, got, s.name, nx)
		}
	}
	return checks, nil
}

func newDivideSuite[D core.Digit]() Suite {
	return suite{
		name:        digitName[D]("divide"),
		description: "Divide and DivideByDigit against truncating big division",
		run:         divideCase[D],
	}
}

func divideCase[D core.Digit](r *rand.Rand, opts Options) (int, error) {
	n := r.IntN(10)
	m := 1 + r.IntN(6)
	num := randomDigits[D](r, n)
	den := randomDigits[D](r, m)
	if r.IntN(4) == 0 {
		// Top divisor digits just below a power of two exercise the
		// quotient digit correction.
		den[m-1] = ^D(0) >> 1
	}
	nb, db := toBig(num), toBig(den)

	res := words.Divide(words.Of(num...), words.Of(den...))
	if db.Sign() == 0 {
		if !res.Overflow || toBig(res.Value.Remainder.Digits()).Cmp(nb) != 0 || res.Value.Quotient.Count() != 0 {
			return 1, mismatch("%s / 0", "flagged q=0 r=n", fmt.Sprint(res.Overflow), hexDigits(num))
		}
		return 1, nil
	}

	wantQ, wantR := opts.reference().QuoRem(nb, db)
	gotQ := toBig(res.Value.Quotient.Digits())
	gotR := toBig(res.Value.Remainder.Digits())
	if res.Overflow || gotQ.Cmp(wantQ) != 0 || gotR.Cmp(wantR) != 0 {
		return 1, mismatch("%s / %s", fmt.Sprint(wantQ, " r ", wantR), fmt.Sprint(gotQ, " r ", gotR), hexDigits(num), hexDigits(den))
	}
	if !res.Value.Quotient.IsNormal() || !res.Value.Remainder.IsNormal() {
		return 2, mismatch("normal form of %s / %s", "normal", "denormal", hexDigits(num), hexDigits(den))
	}

	d, ok := core.NewDivisor(den[0])
	if !ok {
		return 2, nil
	}
	q := slices.Clone(num)
	rem := words.MutOf(q).DivideByDigit(d)
	wantQ, wantR = opts.reference().QuoRem(nb, new(big.Int).SetUint64(uint64(den[0])))
	if toBig(q).Cmp(wantQ) != 0 || uint64(rem) != wantR.Uint64() {
		return 3, mismatch("%s / digit %x", fmt.Sprint(wantQ, " r ", wantR), fmt.Sprint(toBig(q), " r ", rem), hexDigits(num), den[0])
	}
	return 3, nil
}
