package oracle

import "math/big"

// Reference computes exact results of whole-number operations.
type Reference interface {
	Name() string
	Mul(x, y *big.Int) *big.Int
	// QuoRem divides truncating toward zero. y must not be zero.
	QuoRem(x, y *big.Int) (q, r *big.Int)
}

// BigReference is the math/big reference.
type BigReference struct{}

func (BigReference) Name() string { return "math/big" }

func (BigReference) Mul(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }

func (BigReference) QuoRem(x, y *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).QuoRem(x, y, new(big.Int))
}

// references holds the available references; gmp.go adds GMP when built
// with the gmp tag.
var references = []Reference{BigReference{}}

// References returns every available reference implementation.
func References() []Reference {
	out := make([]Reference, len(references))
	copy(out, references)
	return out
}

// Lookup returns the reference with the given name.
func Lookup(name string) (Reference, bool) {
	for _, r := range references {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}
