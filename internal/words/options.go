package words

const (
	// DefaultKaratsubaThreshold is the operand length, in digits, from which
	// multiplication switches from the long algorithm to Karatsuba.
	DefaultKaratsubaThreshold = 16

	// DefaultMaxDepth bounds Karatsuba recursion. Deeper calls fall back to
	// the long algorithm.
	DefaultMaxDepth = 64
)

// Options tunes multiplication.
type Options struct {
	// KaratsubaThreshold is the shorter operand length at which Karatsuba is
	// used. Values below 2 are raised to 2.
	KaratsubaThreshold int
	// MaxDepth bounds Karatsuba recursion. Zero means DefaultMaxDepth.
	MaxDepth int
}

// DefaultOptions returns the default multiplication options.
func DefaultOptions() Options {
	return Options{KaratsubaThreshold: DefaultKaratsubaThreshold, MaxDepth: DefaultMaxDepth}
}

func (o Options) normalize() Options {
	if o.KaratsubaThreshold == 0 {
		o.KaratsubaThreshold = DefaultKaratsubaThreshold
	}
	if o.KaratsubaThreshold < 2 {
		o.KaratsubaThreshold = 2
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}
