package verify

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/agbru/wordcalc/internal/core"
	apperrors "github.com/agbru/wordcalc/internal/errors"
	"github.com/agbru/wordcalc/internal/oracle"
	"github.com/agbru/wordcalc/internal/wide"
	"github.com/agbru/wordcalc/internal/words"
)

// Options configures a suite run.
type Options struct {
	Seed       uint64
	Iterations int
	Words      words.Options
	// Reference is the arithmetic results are compared with. Nil selects
	// math/big.
	Reference oracle.Reference
}

func (o Options) reference() oracle.Reference {
	if o.Reference == nil {
		return oracle.BigReference{}
	}
	return o.Reference
}

func (o Options) threshold() int {
	if t := o.Words.KaratsubaThreshold; t >= 2 {
		return t
	}
	return words.DefaultKaratsubaThreshold
}

// Report summarizes a suite run.
type Report struct {
	// Checks counts the individual comparisons performed.
	Checks int
	// Skipped is set when the suite does not apply to this platform.
	Skipped bool
}

// ProgressFunc receives the completed fraction of a run, from 0 to 1.
type ProgressFunc func(float64)

func (p ProgressFunc) report(v float64) {
	if p != nil {
		p(v)
	}
}

// Suite is a named group of randomized checks.
type Suite interface {
	Name() string
	Description() string
	// Run performs opts.Iterations cases. A disagreement with the reference
	// is returned as an apperrors.VerificationError; cancellation returns
	// the context error.
	Run(ctx context.Context, progress ProgressFunc, opts Options) (Report, error)
}

// caseFunc runs one random case and returns the number of checks made.
type caseFunc func(r *rand.Rand, opts Options) (int, error)

type suite struct {
	name        string
	description string
	run         caseFunc
	// applies reports whether the suite can run on this platform.
	applies func() bool
}

func (s suite) Name() string        { return s.name }
func (s suite) Description() string { return s.description }

func (s suite) Run(ctx context.Context, progress ProgressFunc, opts Options) (Report, error) {
	var rep Report
	if s.applies != nil && !s.applies() {
		rep.Skipped = true
		progress.report(1)
		return rep, nil
	}
	r := rand.New(rand.NewPCG(opts.Seed, salt(s.name)))
	step := max(opts.Iterations/100, 1)
	for i := range opts.Iterations {
		if i%step == 0 {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			progress.report(float64(i) / float64(opts.Iterations))
		}
		n, err := s.run(r, opts)
		rep.Checks += n
		if err != nil {
			var v apperrors.VerificationError
			if errors.As(err, &v) {
				v.Suite = s.name
				return rep, v
			}
			return rep, err
		}
	}
	progress.report(1)
	return rep, nil
}

// salt derives a per-suite stream so suites sharing a seed draw different
// operands.
func salt(name string) uint64 {
	var h uint64 = 1469598103934665603
	for i := 0; i < len(name); i++ {
		h ^= uint64(name[i])
		h *= 1099511628211
	}
	return h
}

func mismatch(format string, want, got any, args ...any) error {
	return apperrors.VerificationError{
		Case: fmt.Sprintf(format, args...),
		Want: fmt.Sprint(want),
		Got:  fmt.Sprint(got),
	}
}

// Registry holds the available suites in registration order.
type Registry struct {
	suites []Suite
}

// NewRegistry returns a registry holding suites.
func NewRegistry(suites ...Suite) *Registry {
	return &Registry{suites: suites}
}

// NewDefaultRegistry returns every built-in suite.
func NewDefaultRegistry() *Registry {
	return NewRegistry(
		newAddSubSuite[uint8](), newAddSubSuite[uint16](), newAddSubSuite[uint32](), newAddSubSuite[uint64](),
		newMulSuite[uint8](), newMulSuite[uint16](), newMulSuite[uint32](), newMulSuite[uint64](),
		newDivideSuite[uint8](), newDivideSuite[uint16](), newDivideSuite[uint32](), newDivideSuite[uint64](),
		newTripleSuite(),
		newWideSuite[wide.U128]("wide-u128"), newWideSuite[wide.U256]("wide-u256"), newWideSuite[wide.U512]("wide-u512"),
		newSignedSuite[core.U8]("signed-i8"), newSignedSuite[core.U64]("signed-i64"), newSignedSuite[wide.U128]("signed-i128"),
		newInfiniteSuite[uint8](), newInfiniteSuite[uint32](),
		newVectorSuite(),
	)
}

// List returns the suite names.
func (r *Registry) List() []string {
	names := make([]string, len(r.suites))
	for i, s := range r.suites {
		names[i] = s.Name()
	}
	return names
}

// Get returns the named suite.
func (r *Registry) Get(name string) (Suite, error) {
	for _, s := range r.suites {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown suite %q", name)
}

// GetAll returns every suite.
func (r *Registry) GetAll() []Suite {
	return slices.Clone(r.suites)
}

// Select returns the named suites in registry order; no names selects all.
func (r *Registry) Select(names []string) ([]Suite, error) {
	if len(names) == 0 {
		return r.GetAll(), nil
	}
	for _, n := range names {
		if _, err := r.Get(n); err != nil {
			return nil, err
		}
	}
	var out []Suite
	for _, s := range r.suites {
		if slices.Contains(names, s.Name()) {
			out = append(out, s)
		}
	}
	return out, nil
}
