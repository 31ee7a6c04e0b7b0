package eval

import (
	"fmt"
	"math/big"

	"github.com/agbru/wordcalc/internal/core"
	"github.com/agbru/wordcalc/internal/infini"
	"github.com/agbru/wordcalc/internal/wide"
	"github.com/agbru/wordcalc/internal/words"
)

// Evaluator applies operations to one integer type.
type Evaluator interface {
	// Name is the type name used on the command line, e.g. "u128".
	Name() string
	// Bits is the width of the type, or 0 when it is unbounded.
	Bits() int
	Signed() bool
	// Apply performs op on operands, which must already be in range for the
	// type.
	Apply(op string, operands []*big.Int, opts words.Options) (Outcome, error)
	// Fits reports whether v is a value of the type.
	Fits(v *big.Int) bool
}

// Outcome is the unprocessed result of Apply.
type Outcome struct {
	Values   []Value
	Overflow bool
}

// Value is one labelled result.
type Value struct {
	Label string
	Int   *big.Int
	// Infinite marks an unbounded unsigned value whose extension bit is set.
	// Int then holds its two's complement reading.
	Infinite bool
}

// arith binds the operations of one representation T.
type arith[T any] struct {
	name   string
	bits   int
	signed bool

	from     func(*big.Int) core.Fallible[T]
	toBig    func(T) *big.Int
	infinite func(T) bool

	add    func(x, y T) core.Fallible[T]
	sub    func(x, y T) core.Fallible[T]
	mul    func(x, y T, opts words.Options) core.Fallible[T]
	sqr    func(x T, opts words.Options) core.Fallible[T]
	quoRem func(x, y T) core.Fallible[core.Division[T]]
	neg    func(x T) core.Fallible[T]
	cmp    func(x, y T) core.Signum
}

func (a arith[T]) Name() string { return a.name }
func (a arith[T]) Bits() int    { return a.bits }
func (a arith[T]) Signed() bool { return a.signed }

func (a arith[T]) Fits(v *big.Int) bool {
	return !a.from(v).Overflow
}

func (a arith[T]) value(label string, x T) Value {
	v := Value{Label: label, Int: a.toBig(x)}
	if a.infinite != nil {
		v.Infinite = a.infinite(x)
	}
	return v
}

func (a arith[T]) Apply(op string, operands []*big.Int, opts words.Options) (Outcome, error) {
	if want := Arity(op); want != len(operands) {
		return Outcome{}, fmt.Errorf("%s takes %d operands, got %d", op, want, len(operands))
	}
	xs := make([]T, len(operands))
	for i, v := range operands {
		xs[i] = a.from(v).Value
	}

	var r core.Fallible[T]
	switch op {
	case OpAdd:
		r = a.add(xs[0], xs[1])
	case OpSub:
		r = a.sub(xs[0], xs[1])
	case OpMul:
		r = a.mul(xs[0], xs[1], opts)
	case OpSqr:
		r = a.sqr(xs[0], opts)
	case OpNeg:
		r = a.neg(xs[0])
	case OpQuoRem:
		d := a.quoRem(xs[0], xs[1])
		return Outcome{
			Values:   []Value{a.value("quotient", d.Value.Quotient), a.value("remainder", d.Value.Remainder)},
			Overflow: d.Overflow,
		}, nil
	case OpCmp:
		c := a.cmp(xs[0], xs[1])
		return Outcome{Values: []Value{{Label: "cmp", Int: big.NewInt(int64(c))}}}, nil
	default:
		return Outcome{}, fmt.Errorf("unknown operation %q", op)
	}
	return Outcome{Values: []Value{a.value(op, r.Value)}, Overflow: r.Overflow}, nil
}

func unsigned[W core.Word[W]](name string) Evaluator {
	var zero W
	return arith[W]{
		name:   name,
		bits:   zero.Width(),
		from:   wide.FromBig[W],
		toBig:  wide.ToBig[W],
		add:    wide.Add[W],
		sub:    wide.Sub[W],
		mul:    func(x, y W, _ words.Options) core.Fallible[W] { return wide.Mul(x, y) },
		sqr:    func(x W, _ words.Options) core.Fallible[W] { return wide.Mul(x, x) },
		quoRem: wide.QuoRem[W],
		neg:    negateUnsigned[W],
		cmp:    func(x, y W) core.Signum { return core.SignumOf(x.Cmp(y)) },
	}
}

// negateUnsigned wraps every non-zero value.
func negateUnsigned[W core.Word[W]](x W) core.Fallible[W] {
	return core.Flagged(core.Negate(x), !x.IsZero())
}

func signed[W core.Word[W]](name string) Evaluator {
	var zero W
	return arith[wide.Int[W]]{
		name:   name,
		bits:   zero.Width(),
		signed: true,
		from:   wide.IntFromBig[W],
		toBig:  wide.Int[W].Big,
		add:    wide.Int[W].Add,
		sub:    wide.Int[W].Sub,
		mul: func(x, y wide.Int[W], _ words.Options) core.Fallible[wide.Int[W]] {
			return x.Mul(y)
		},
		sqr: func(x wide.Int[W], _ words.Options) core.Fallible[wide.Int[W]] {
			return x.Mul(x)
		},
		quoRem: wide.Int[W].QuoRem,
		neg:    wide.Int[W].Negate,
		cmp:    wide.Int[W].Compare,
	}
}

func unbounded[D core.Digit](name string, mode core.Signedness) Evaluator {
	return arith[infini.Int[D]]{
		name:   name,
		signed: mode.IsSigned(),
		from: func(v *big.Int) core.Fallible[infini.Int[D]] {
			return infini.FromBig[D](mode, v)
		},
		toBig:    infini.Int[D].Big,
		infinite: infini.Int[D].IsInfinite,
		add:      infini.Int[D].Add,
		sub:      infini.Int[D].Sub,
		mul:      infini.Int[D].MulWith,
		sqr:      infini.Int[D].Square,
		quoRem:   infini.Int[D].QuoRem,
		neg:      infini.Int[D].Negate,
		cmp:      infini.Int[D].Compare,
	}
}
