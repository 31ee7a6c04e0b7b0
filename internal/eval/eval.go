package eval

import (
	"fmt"
	"math/big"
	"time"

	"github.com/agbru/wordcalc/internal/core"
	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/wide"
	"github.com/agbru/wordcalc/internal/words"
)

// Operations understood by Evaluate.
const (
	OpAdd    = "add"
	OpSub    = "sub"
	OpMul    = "mul"
	OpSqr    = "sqr"
	OpNeg    = "neg"
	OpQuoRem = "quorem"
	OpCmp    = "cmp"
)

// Ops lists the operations in display order.
var Ops = []string{OpAdd, OpSub, OpMul, OpSqr, OpNeg, OpQuoRem, OpCmp}

// Overflow policies.
const (
	PolicyWrap = "wrap"
	PolicyTrap = "trap"
)

// Arity returns the operand count of op.
func Arity(op string) int {
	if op == OpNeg || op == OpSqr {
		return 1
	}
	return 2
}

// Registry maps type names to evaluators.
type Registry struct {
	evaluators []Evaluator
}

// NewRegistry returns a registry holding evaluators.
func NewRegistry(evaluators ...Evaluator) *Registry {
	return &Registry{evaluators: evaluators}
}

// NewDefaultRegistry returns the fixed-width types u8 to u512 and i8 to i512,
// and the unbounded types uxl and ixl.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		unsigned[core.U8]("u8"), unsigned[core.U16]("u16"), unsigned[core.U32]("u32"), unsigned[core.U64]("u64"),
		unsigned[wide.U128]("u128"), unsigned[wide.U256]("u256"), unsigned[wide.U512]("u512"),
		signed[core.U8]("i8"), signed[core.U16]("i16"), signed[core.U32]("i32"), signed[core.U64]("i64"),
		signed[wide.U128]("i128"), signed[wide.U256]("i256"), signed[wide.U512]("i512"),
		unbounded[uint64]("uxl", core.Unsigned), unbounded[uint64]("ixl", core.Signed),
	)
}

// List returns the type names in registration order.
func (r *Registry) List() []string {
	names := make([]string, len(r.evaluators))
	for i, e := range r.evaluators {
		names[i] = e.Name()
	}
	return names
}

// Get returns the evaluator of the named type.
func (r *Registry) Get(name string) (Evaluator, error) {
	for _, e := range r.evaluators {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, apperrors.NewConfigError("unknown type %q", name)
}

// Request describes one evaluation.
type Request struct {
	Type     string
	Op       string
	Operands []string
	// Policy is PolicyWrap or PolicyTrap; empty means wrap.
	Policy string
	Words  words.Options
}

// Result is the outcome of Evaluate.
type Result struct {
	Type     string
	Op       string
	Operands []*big.Int
	Values   []Value
	// Overflow reports that the operation was flagged: the values are the
	// wrapped results.
	Overflow bool
	Duration time.Duration
}

// ParseOperand reads an integer literal. A 0x, 0o or 0b prefix selects the
// base; underscores may separate digits.
func ParseOperand(s string) (*big.Int, bool) {
	return new(big.Int).SetString(s, 0)
}

// Evaluate runs req against the registry. Operands outside the type's range
// are rejected with an apperrors.ValidationError. Under PolicyTrap a flagged
// result is returned together with an apperrors.ArithmeticError wrapping
// core.ErrOverflow.
func (r *Registry) Evaluate(req Request) (Result, error) {
	e, err := r.Get(req.Type)
	if err != nil {
		return Result{}, err
	}
	if want := Arity(req.Op); len(req.Operands) != want {
		return Result{}, apperrors.NewConfigError("operation %q takes %d operands, got %d", req.Op, want, len(req.Operands))
	}

	res := Result{Type: req.Type, Op: req.Op, Operands: make([]*big.Int, len(req.Operands))}
	for i, s := range req.Operands {
		v, ok := ParseOperand(s)
		if !ok {
			return res, apperrors.ValidationError{Field: fmt.Sprintf("operand %d", i+1), Message: fmt.Sprintf("%q is not an integer", s)}
		}
		if !e.Fits(v) {
			return res, apperrors.ValidationError{Field: fmt.Sprintf("operand %d", i+1), Message: fmt.Sprintf("%s is out of range for %s", v, req.Type)}
		}
		res.Operands[i] = v
	}

	start := time.Now()
	out, err := e.Apply(req.Op, res.Operands, req.Words)
	res.Duration = time.Since(start)
	if err != nil {
		return res, apperrors.NewConfigError("%v", err)
	}
	res.Values, res.Overflow = out.Values, out.Overflow

	if res.Overflow && req.Policy == PolicyTrap {
		return res, apperrors.ArithmeticError{Op: req.Op, Type: req.Type, Cause: core.ErrOverflow}
	}
	return res, nil
}
