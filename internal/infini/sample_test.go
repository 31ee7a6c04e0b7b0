package infini

import (
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/agbru/wordcalc/internal/core"
)

// sample is a generated signed integer; digits of 0 and 0xFFFF are favored
// so that normalization is exercised.
type sample struct {
	Digits   []uint16
	Negative bool
}

func (s sample) int() Int[uint16] {
	return New(core.Signed, s.Digits, core.BitOf(s.Negative))
}

func genInt() gopter.Gen {
	return gen.Struct(reflect.TypeOf(sample{}), map[string]gopter.Gen{
		"Digits":   gen.SliceOf(gen.OneGenOf(gen.UInt16(), gen.OneConstOf(uint16(0), uint16(0xFFFF)))),
		"Negative": gen.Bool(),
	})
}
