package verify

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/infini"
)

func newInfiniteSuite[D core.Digit]() Suite {
	return suite{
		name:        digitName[D]("infinite"),
		description: "growable integers in both modes: arithmetic, normal form and byte round trips",
		run:         infiniteCase[D],
	}
}

func infiniteCase[D core.Digit](r *rand.Rand, opts Options) (int, error) {
	maxBits := 6 * core.Width[D]()
	ref := opts.reference()
	checks := 0

	// Signed mode never flags, except division by zero.
	xb, yb := randomSigned(r, 1+r.IntN(maxBits)), randomSigned(r, 1+r.IntN(maxBits))
	x := infini.FromBig[D](core.Signed, xb).Unwrap()
	y := infini.FromBig[D](core.Signed, yb).Unwrap()
	label := func(op string) string { return fmt.Sprintf("ixl %v %s %v", xb, op, yb) }

	results := []struct {
		op    string
		want  *big.Int
		value infini.Int[D]
		flag  bool
	}{
		{"+", new(big.Int).Add(xb, yb), x.Add(y).Value, x.Add(y).Overflow},
		{"-", new(big.Int).Sub(xb, yb), x.Sub(y).Value, x.Sub(y).Overflow},
		{"*", ref.Mul(xb, yb), x.MulWith(y, opts.Words).Value, x.MulWith(y, opts.Words).Overflow},
		{"sqr", ref.Mul(xb, xb), x.Square(opts.Words).Value, x.Square(opts.Words).Overflow},
		{"neg", new(big.Int).Neg(xb), x.Negate().Value, x.Negate().Overflow},
	}
	for _, res := range results {
		checks++
		if res.flag || res.value.Big().Cmp(res.want) != 0 || !res.value.IsNormal() {
			return checks, mismatch("%s", res.want, fmt.Sprint(res.value, " flagged ", res.flag, " normal ", res.value.IsNormal()), label(res.op))
		}
	}

	checks++
	if got, want := x.Compare(y), core.SignumOf(xb.Cmp(yb)); got != want {
		return checks, mismatch("%s", want, got, label("cmp"))
	}

	checks++
	qr := x.QuoRem(y)
	if yb.Sign() == 0 {
		if !qr.Overflow || !qr.Value.Quotient.IsZero() || !qr.Value.Remainder.Equal(x) {
			return checks, mismatch("%s", "flagged q=0 r=x", qr, label("/"))
		}
	} else {
		wantQ, wantR := ref.QuoRem(xb, yb)
		q, rem := qr.Value.Quotient, qr.Value.Remainder
		if qr.Overflow || q.Big().Cmp(wantQ) != 0 || rem.Big().Cmp(wantR) != 0 || !q.IsNormal() || !rem.IsNormal() {
			return checks, mismatch("%s", fmt.Sprint(wantQ, " r ", wantR), fmt.Sprint(q, " r ", rem), label("/"))
		}
	}

	checks++
	data, ext := x.Bytes()
	if back := infini.Load[D](core.Signed, data, ext); !back.Equal(x) {
		return checks, mismatch("byte round trip of %v", x, back, xb)
	}

	// Unsigned mode: differences below zero borrow from the extension and
	// are flagged; their two's complement reading is still exact.
	ub, vb := randomBig(r, 1+r.IntN(maxBits)), randomBig(r, 1+r.IntN(maxBits))
	u := infini.FromBig[D](core.Unsigned, ub).Unwrap()
	v := infini.FromBig[D](core.Unsigned, vb).Unwrap()
	diff := u.Sub(v)
	checks++
	want := new(big.Int).Sub(ub, vb)
	if diff.Value.Big().Cmp(want) != 0 || diff.Overflow != (want.Sign() < 0) || diff.Value.IsInfinite() != (want.Sign() < 0) {
		return checks, mismatch("uxl %v - %v", fmt.Sprint(want, " flagged ", want.Sign() < 0), fmt.Sprint(diff.Value, " flagged ", diff.Overflow), ub, vb)
	}
	sum := u.Add(v)
	checks++
	if sum.Overflow || sum.Value.Big().Cmp(new(big.Int).Add(ub, vb)) != 0 {
		return checks, mismatch("uxl %v + %v", new(big.Int).Add(ub, vb), sum, ub, vb)
	}
	return checks, nil
}
