package verify

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/wide"
)

// checkFlagged compares a flagged result with its exact reference value.
// want is reduced to the result width by reduce; the flag must be set
// exactly when the reduction changed the value.
func checkFlagged(what string, exact, got *big.Int, overflow bool, reduce func(*big.Int) *big.Int) error {
	want := reduce(exact)
	wantFlag := want.Cmp(exact) != 0
	if got.Cmp(want) != 0 || overflow != wantFlag {
		return mismatch("%s", fmt.Sprint(want, " flagged ", wantFlag), fmt.Sprint(got, " flagged ", overflow), what)
	}
	return nil
}

func newTripleSuite() Suite {
	return suite{
		name:        "triple-u16",
		description: "Triple add, subtract and compare under both signedness readings",
		run:         tripleCase,
	}
}

func tripleCase(r *rand.Rand, _ Options) (int, error) {
	const bits = 48
	toTriple := func(v *big.Int) core.Triple[core.U16] {
		d := fromBig[uint16](v, 3)
		return core.TripleAscending([3]core.U16{core.U16(d[0]), core.U16(d[1]), core.U16(d[2])})
	}
	fromTriple := func(t core.Triple[core.U16], s core.Signedness) *big.Int {
		v := toBig([]uint16{uint16(t.Low), uint16(t.Mid), uint16(t.High)})
		if s.IsSigned() && t.High.MSB() {
			v.Sub(v, pow2(bits))
		}
		return v
	}
	reduce := func(s core.Signedness) func(*big.Int) *big.Int {
		return func(v *big.Int) *big.Int {
			t := truncate(v, bits)
			if s.IsSigned() && t.Bit(bits-1) == 1 {
				t.Sub(t, pow2(bits))
			}
			return t
		}
	}

	checks := 0
	for _, s := range []core.Signedness{core.Unsigned, core.Signed} {
		a := toTriple(randomBig(r, bits))
		b := toTriple(randomBig(r, bits))
		av, bv := fromTriple(a, s), fromTriple(b, s)

		sum := a.PlusTriple(b, s)
		diff := a.MinusTriple(b, s)
		checks += 3
		if err := checkFlagged(fmt.Sprintf("%v %v + %v", s, av, bv), new(big.Int).Add(av, bv), fromTriple(sum.Value, s), sum.Overflow, reduce(s)); err != nil {
			return checks, err
		}
		if err := checkFlagged(fmt.Sprintf("%v %v - %v", s, av, bv), new(big.Int).Sub(av, bv), fromTriple(diff.Value, s), diff.Overflow, reduce(s)); err != nil {
			return checks, err
		}
		if got, want := a.Compare(b, s), core.SignumOf(av.Cmp(bv)); got != want {
			return checks, mismatch("%v compare %v %v", want, got, s, av, bv)
		}
	}

	p := core.Pair[core.U16]{Low: core.U16(r.Uint32()), High: core.U16(r.Uint32())}
	w := core.U16(r.Uint32())
	pv := toBig([]uint16{uint16(p.Low), uint16(p.High)})
	got := fromTriple(core.MulPair(p, w), core.Unsigned)
	want := new(big.Int).Mul(pv, big.NewInt(int64(w)))
	checks++
	if got.Cmp(want) != 0 {
		return checks, mismatch("MulPair %v * %v", want, got, pv, w)
	}
	return checks, nil
}

func newWideSuite[W core.Word[W]](name string) Suite {
	return suite{
		name:        name,
		description: "flagged unsigned Add, Sub, Mul, QuoRem and DivideWide on double words",
		run:         wideCase[W],
	}
}

func wideCase[W core.Word[W]](r *rand.Rand, opts Options) (int, error) {
	var zero W
	bits := zero.Width()
	ref := opts.reference()
	xb, yb := randomBig(r, bits), randomBig(r, bits)
	x, y := wide.FromBig[W](xb).Unwrap(), wide.FromBig[W](yb).Unwrap()
	reduce := func(v *big.Int) *big.Int { return truncate(v, bits) }
	label := func(op string) string { return fmt.Sprintf("u%d %v %s %v", bits, xb, op, yb) }

	sum := wide.Add(x, y)
	if err := checkFlagged(label("+"), new(big.Int).Add(xb, yb), wide.ToBig(sum.Value), sum.Overflow, reduce); err != nil {
		return 1, err
	}
	diff := wide.Sub(x, y)
	if err := checkFlagged(label("-"), new(big.Int).Sub(xb, yb), wide.ToBig(diff.Value), diff.Overflow, reduce); err != nil {
		return 2, err
	}

	exact := ref.Mul(xb, yb)
	prod := wide.Mul(x, y)
	if err := checkFlagged(label("*"), exact, wide.ToBig(prod.Value), prod.Overflow, reduce); err != nil {
		return 3, err
	}
	p := x.MulWide(y)
	full := new(big.Int).Lsh(wide.ToBig(p.High), uint(bits))
	full.Or(full, wide.ToBig(p.Low))
	if full.Cmp(exact) != 0 {
		return 4, mismatch("%s", exact, full, label("*wide"))
	}

	qr := wide.QuoRem(x, y)
	if yb.Sign() == 0 {
		if !qr.Overflow || !qr.Value.Quotient.IsZero() || qr.Value.Remainder != x {
			return 5, mismatch("%s", "flagged q=0 r=x", qr, label("/"))
		}
		return 5, nil
	}
	wantQ, wantR := ref.QuoRem(xb, yb)
	if qr.Overflow || wide.ToBig(qr.Value.Quotient).Cmp(wantQ) != 0 || wide.ToBig(qr.Value.Remainder).Cmp(wantR) != 0 {
		return 5, mismatch("%s", fmt.Sprint(wantQ, " r ", wantR), fmt.Sprint(wide.ToBig(qr.Value.Quotient), " r ", wide.ToBig(qr.Value.Remainder)), label("/"))
	}

	// Two-word dividend: the quotient is flagged and truncated when it does
	// not fit one word; the remainder is always exact.
	hb := randomBig(r, bits)
	h := wide.FromBig[W](hb).Unwrap()
	num := new(big.Int).Lsh(hb, uint(bits))
	num.Or(num, xb)
	dw := wide.DivideWide(core.Pair[W]{Low: x, High: h}, y)
	wantQ, wantR = ref.QuoRem(num, yb)
	gotQ := wide.ToBig(dw.Value.Quotient)
	if err := checkFlagged(fmt.Sprintf("u%d (%v:%v) / %v", bits, hb, xb, yb), wantQ, gotQ, dw.Overflow, reduce); err != nil {
		return 6, err
	}
	if got := wide.ToBig(dw.Value.Remainder); got.Cmp(wantR) != 0 {
		return 6, mismatch("remainder of u%d (%v:%v) / %v", wantR, got, bits, hb, xb, yb)
	}
	return 6, nil
}

func newSignedSuite[W core.Word[W]](name string) Suite {
	return suite{
		name:        name,
		description: "signed two's complement arithmetic with truncating division",
		run:         signedCase[W],
	}
}

func randomSigned(r *rand.Rand, bits int) *big.Int {
	v := randomBig(r, bits-1)
	if r.IntN(2) == 0 {
		v.Neg(v).Sub(v, big.NewInt(1))
	}
	return v
}

func signedCase[W core.Word[W]](r *rand.Rand, opts Options) (int, error) {
	var zero W
	bits := zero.Width()
	ref := opts.reference()
	xb, yb := randomSigned(r, bits), randomSigned(r, bits)
	if r.IntN(16) == 0 {
		yb.SetInt64(-1)
	}
	x, y := wide.IntFromBig[W](xb).Unwrap(), wide.IntFromBig[W](yb).Unwrap()
	reduce := func(v *big.Int) *big.Int {
		t := truncate(v, bits)
		if t.Bit(bits-1) == 1 {
			t.Sub(t, pow2(bits))
		}
		return t
	}
	label := func(op string) string { return fmt.Sprintf("i%d %v %s %v", bits, xb, op, yb) }

	sum, diff, prod, neg := x.Add(y), x.Sub(y), x.Mul(y), x.Negate()
	cases := []struct {
		op    string
		exact *big.Int
		got   wide.Int[W]
		flag  bool
	}{
		{"+", new(big.Int).Add(xb, yb), sum.Value, sum.Overflow},
		{"-", new(big.Int).Sub(xb, yb), diff.Value, diff.Overflow},
		{"*", ref.Mul(xb, yb), prod.Value, prod.Overflow},
		{"neg", new(big.Int).Neg(xb), neg.Value, neg.Overflow},
	}
	checks := 0
	for _, c := range cases {
		checks++
		if err := checkFlagged(label(c.op), c.exact, c.got.Big(), c.flag, reduce); err != nil {
			return checks, err
		}
	}

	checks++
	if got, want := x.Compare(y), core.SignumOf(xb.Cmp(yb)); got != want {
		return checks, mismatch("%s", want, got, label("cmp"))
	}

	checks++
	qr := x.QuoRem(y)
	if yb.Sign() == 0 {
		if !qr.Overflow || !qr.Value.Quotient.IsZero() || qr.Value.Remainder.Big().Cmp(xb) != 0 {
			return checks, mismatch("%s", "flagged q=0 r=x", qr, label("/"))
		}
		return checks, nil
	}
	wantQ, wantR := ref.QuoRem(xb, yb)
	if err := checkFlagged(label("/"), wantQ, qr.Value.Quotient.Big(), qr.Overflow, reduce); err != nil {
		return checks, err
	}
	if got := qr.Value.Remainder.Big(); got.Cmp(wantR) != 0 {
		return checks, mismatch("%s", wantR, got, label("%"))
	}
	return checks, nil
}
