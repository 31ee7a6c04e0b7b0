package core

// Pair is a two-digit value. Low is always read as a magnitude; High carries
// whatever signedness the caller applies to the pair.
type Pair[T any] struct {
	Low  T
	High T
}

// PairAscending builds a pair from digits ordered least significant first.
func PairAscending[T any](digits [2]T) Pair[T] {
	return Pair[T]{Low: digits[0], High: digits[1]}
}

// PairDescending builds a pair from digits ordered most significant first.
func PairDescending[T any](digits [2]T) Pair[T] {
	return Pair[T]{Low: digits[1], High: digits[0]}
}

// Ascending returns the digits least significant first.
func (p Pair[T]) Ascending() [2]T { return [2]T{p.Low, p.High} }

// Descending returns the digits most significant first.
func (p Pair[T]) Descending() [2]T { return [2]T{p.High, p.Low} }

// Division is the quotient and remainder of a division.
type Division[T any] struct {
	Quotient  T
	Remainder T
}
