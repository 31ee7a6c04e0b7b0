package core

// Triple is a three-digit value used as the intermediate of one level of
// double-width arithmetic, such as the partial remainders of a 3-by-2
// division. Low and Mid are magnitudes; High is read with the signedness the
// caller passes to each operation.
type Triple[W Word[W]] struct {
	Low  W
	Mid  W
	High W
}

// TripleAscending builds a triple from digits ordered least significant first.
func TripleAscending[W Word[W]](digits [3]W) Triple[W] {
	return Triple[W]{Low: digits[0], Mid: digits[1], High: digits[2]}
}

// Ascending returns the digits least significant first.
func (t Triple[W]) Ascending() [3]W { return [3]W{t.Low, t.Mid, t.High} }

// Widen extends a pair to a triple, repeating its sign under s.
func Widen[W Word[W]](p Pair[W], s Signedness) Triple[W] {
	return Triple[W]{Low: p.Low, Mid: p.High, High: Extension(p.High, s)}
}

// PlusPair adds a pair, sign-extended under s, to t.
func (t Triple[W]) PlusPair(p Pair[W], s Signedness) Fallible[Triple[W]] {
	return t.PlusTriple(Widen(p, s), s)
}

// MinusPair subtracts a pair, sign-extended under s, from t.
func (t Triple[W]) MinusPair(p Pair[W], s Signedness) Fallible[Triple[W]] {
	return t.MinusTriple(Widen(p, s), s)
}

// PlusTriple adds u to t. Overflow is the carry out of High for unsigned
// triples and a change of sign that the operands cannot produce for signed
// ones.
func (t Triple[W]) PlusTriple(u Triple[W], s Signedness) Fallible[Triple[W]] {
	var r Triple[W]
	var c bool
	r.Low, c = t.Low.AddCarry(u.Low, false)
	r.Mid, c = t.Mid.AddCarry(u.Mid, c)
	r.High, c = t.High.AddCarry(u.High, c)
	if s.IsSigned() {
		c = t.High.MSB() == u.High.MSB() && r.High.MSB() != t.High.MSB()
	}
	return Flagged(r, c)
}

// MinusTriple subtracts u from t with the overflow rules of PlusTriple.
func (t Triple[W]) MinusTriple(u Triple[W], s Signedness) Fallible[Triple[W]] {
	var r Triple[W]
	var b bool
	r.Low, b = t.Low.SubBorrow(u.Low, false)
	r.Mid, b = t.Mid.SubBorrow(u.Mid, b)
	r.High, b = t.High.SubBorrow(u.High, b)
	if s.IsSigned() {
		b = t.High.MSB() != u.High.MSB() && r.High.MSB() != t.High.MSB()
	}
	return Flagged(r, b)
}

// Compare orders t and u, reading High under s.
func (t Triple[W]) Compare(u Triple[W], s Signedness) Signum {
	if c := CompareSigned(t.High, u.High, s); c != Same {
		return c
	}
	if c := t.Mid.Cmp(u.Mid); c != 0 {
		return SignumOf(c)
	}
	return SignumOf(t.Low.Cmp(u.Low))
}

// MulPair returns the triple product of a pair magnitude and a word.
func MulPair[W Word[W]](p Pair[W], w W) Triple[W] {
	lo := p.Low.MulWide(w)
	hi := MulWideAdd(p.High, w, lo.High)
	return Triple[W]{Low: lo.Low, Mid: hi.Low, High: hi.High}
}
