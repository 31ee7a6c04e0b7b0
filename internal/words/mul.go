package words

import "github.com/agbru/wordcalc/internal/core"

// Multiplication treats both operands as magnitudes: extension bits are
// ignored. The output must hold exactly lhs.Count()+rhs.Count() digits, or
// 2*x.Count() for squares; every output digit is written and none is read
// before it is written.

// InitProduct writes lhs*rhs to out using the default options.
func InitProduct[D core.Digit](out Mut[D], lhs, rhs Span[D]) {
	InitProductWith(out, lhs, rhs, DefaultOptions())
}

// InitProductWith writes lhs*rhs to out, choosing the long or Karatsuba
// algorithm by the length of the shorter operand.
func InitProductWith[D core.Digit](out Mut[D], lhs, rhs Span[D], opts Options) {
	requireProductSize(out, lhs, rhs)
	multiply(out, magnitude(lhs), magnitude(rhs), opts.normalize(), 0)
}

// InitProductLong writes lhs*rhs to out with the long algorithm.
func InitProductLong[D core.Digit](out Mut[D], lhs, rhs Span[D]) {
	requireProductSize(out, lhs, rhs)
	productLong(out, magnitude(lhs), magnitude(rhs))
}

// InitProductKaratsuba writes lhs*rhs to out, splitting the top level with
// Karatsuba regardless of operand length. Sub-products are dispatched by opts.
func InitProductKaratsuba[D core.Digit](out Mut[D], lhs, rhs Span[D], opts Options) {
	requireProductSize(out, lhs, rhs)
	if out.Count()>>2 == 0 {
		productLong(out, magnitude(lhs), magnitude(rhs))
		return
	}
	productKaratsuba(out, magnitude(lhs), magnitude(rhs), opts.normalize(), 0)
}

// InitSquare writes x*x to out using the default options.
func InitSquare[D core.Digit](out Mut[D], x Span[D]) {
	InitSquareWith(out, x, DefaultOptions())
}

// InitSquareWith writes x*x to out.
func InitSquareWith[D core.Digit](out Mut[D], x Span[D], opts Options) {
	requireSquareSize(out, x)
	square(out, magnitude(x), opts.normalize(), 0)
}

// InitSquareLong writes x*x to out with the long algorithm, computing each
// off-diagonal product once.
func InitSquareLong[D core.Digit](out Mut[D], x Span[D]) {
	requireSquareSize(out, x)
	squareLong(out, magnitude(x))
}

// InitSquareKaratsuba writes x*x to out, splitting the top level with
// Karatsuba regardless of operand length.
func InitSquareKaratsuba[D core.Digit](out Mut[D], x Span[D], opts Options) {
	requireSquareSize(out, x)
	if x.Count()>>1 == 0 {
		squareLong(out, magnitude(x))
		return
	}
	squareKaratsuba(out, magnitude(x), opts.normalize(), 0)
}

func requireProductSize[D core.Digit](out Mut[D], lhs, rhs Span[D]) {
	core.Require(out.Count() == lhs.Count()+rhs.Count(), "InitProduct", "output must hold lhs.Count()+rhs.Count() digits")
}

func requireSquareSize[D core.Digit](out Mut[D], x Span[D]) {
	core.Require(out.Count() == 2*x.Count(), "InitSquare", "output must hold 2*x.Count() digits")
}

func magnitude[D core.Digit](s Span[D]) Span[D] {
	return Span[D]{digits: s.digits}
}

func multiply[D core.Digit](out Mut[D], lhs, rhs Span[D], opts Options, depth int) {
	if min(lhs.Count(), rhs.Count()) < opts.KaratsubaThreshold || depth >= opts.MaxDepth || out.Count()>>2 == 0 {
		productLong(out, lhs, rhs)
		return
	}
	productKaratsuba(out, lhs, rhs, opts, depth)
}

func square[D core.Digit](out Mut[D], x Span[D], opts Options, depth int) {
	if x.Count() < opts.KaratsubaThreshold || depth >= opts.MaxDepth || x.Count()>>1 == 0 {
		squareLong(out, x)
		return
	}
	squareKaratsuba(out, x, opts, depth)
}

func productLong[D core.Digit](out Mut[D], lhs, rhs Span[D]) {
	if lhs.Count() == 0 || rhs.Count() == 0 {
		out.Clear()
		return
	}
	n := lhs.Count()
	first := out.Slice(0, n)
	first.Load(lhs)
	out.digits[n] = first.MultiplyBy(rhs.digits[0], 0)
	for k := 1; k < rhs.Count(); k++ {
		out.digits[n+k] = out.Slice(k, n+k).AddProduct(lhs, rhs.digits[k], 0)
	}
}

func squareLong[D core.Digit](out Mut[D], x Span[D]) {
	n := x.Count()
	out.Clear()
	if n == 0 {
		return
	}
	for k := 0; k < n-1; k++ {
		out.digits[n+k] = out.Slice(2*k+1, n+k).AddProduct(x.Slice(k+1, n), x.digits[k], 0)
	}
	out.ShiftLeft(1)
	var c bool
	for k, d := range x.digits {
		p := core.Mul(d, d)
		out.digits[2*k], c = core.AddCarry(out.digits[2*k], p.Low, c)
		out.digits[2*k+1], c = core.AddCarry(out.digits[2*k+1], p.High, c)
	}
}

// productKaratsuba splits lhs = a + b*B^i and rhs = x + y*B^i with
// i = out.Count()/4 and combines
//
//	ax + (ax + by - (b-a)(y-x))*B^i + by*B^2i
//
// The cross term is computed as a product of magnitudes; its sign follows
// from which of the operand halves were swapped to keep the differences
// non-negative. Every intermediate fits in out modulo B^out.Count(), so
// carries and borrows out of the accumulator are dropped.
func productKaratsuba[D core.Digit](out Mut[D], lhs, rhs Span[D], opts Options, depth int) {
	n := out.Count()
	i := n >> 2
	j := i << 1

	a, b := lhs.Split(min(i, lhs.Count()))
	x, y := rhs.Split(min(i, rhs.Count()))
	a, b, x, y = a.Normalized(), b.Normalized(), x.Normalized(), y.Normalized()

	axCount := a.Count() + x.Count()
	byCount := b.Count() + y.Count()
	maxSize := max(a.Count(), b.Count()) + max(x.Count(), y.Count())

	scratch := acquireScratch[D](2 * maxSize)
	defer releaseScratch(scratch)
	u := MutOf(scratch[:maxSize])
	v := MutOf(scratch[maxSize:])

	ax := u.Slice(0, axCount)
	by := v.Slice(0, byCount)
	multiply(ax, a, x, opts, depth+1)
	multiply(by, b, y, opts, depth+1)

	out.Slice(0, j).Load(ax.Span())
	out.Suffix(j).Load(by.Span())

	suffix := out.Suffix(i)
	suffix.IncrementBy(ax.Span().Normalized())
	suffix.IncrementBy(by.Span().Normalized())

	abSwap := Compare(b, a, core.Unsigned) == core.Less
	if abSwap {
		a, b = b, a
	}
	xySwap := Compare(y, x, core.Unsigned) == core.Less
	if xySwap {
		x, y = y, x
	}

	m := u.Slice(0, b.Count())
	m.Load(b)
	m.DecrementBy(a)
	k := u.Slice(b.Count(), b.Count()+y.Count())
	k.Load(y)
	k.DecrementBy(x)

	cross := v.Slice(0, m.Count()+k.Count())
	multiply(cross, m.Span(), k.Span(), opts, depth+1)
	if abSwap == xySwap {
		suffix.DecrementBy(cross.Span().Normalized())
	} else {
		suffix.IncrementBy(cross.Span().Normalized())
	}
}

// squareKaratsuba is productKaratsuba with x = a and y = b, so the cross
// term (b-a)^2 is always subtracted.
func squareKaratsuba[D core.Digit](out Mut[D], x Span[D], opts Options, depth int) {
	i := x.Count() >> 1
	j := i << 1

	a, b := x.Split(i)
	a, b = a.Normalized(), b.Normalized()

	aaCount := 2 * a.Count()
	bbCount := 2 * b.Count()
	maxSize := max(aaCount, bbCount)

	scratch := acquireScratch[D](2 * maxSize)
	defer releaseScratch(scratch)
	u := MutOf(scratch[:maxSize])
	v := MutOf(scratch[maxSize:])

	aa := u.Slice(0, aaCount)
	bb := v.Slice(0, bbCount)
	square(aa, a, opts, depth+1)
	square(bb, b, opts, depth+1)

	out.Slice(0, j).Load(aa.Span())
	out.Suffix(j).Load(bb.Span())

	suffix := out.Suffix(i)
	suffix.IncrementBy(aa.Span().Normalized())
	suffix.IncrementBy(bb.Span().Normalized())

	if Compare(b, a, core.Unsigned) == core.Less {
		a, b = b, a
	}
	m := u.Slice(0, b.Count())
	m.Load(b)
	m.DecrementBy(a)

	cross := v.Slice(0, 2*m.Count())
	square(cross, m.Span(), opts, depth+1)
	suffix.DecrementBy(cross.Span().Normalized())
}
