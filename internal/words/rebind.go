package words

import (
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/agbru/wordcalc/internal/core"
)

// CanRebind reports whether a span of From digits can be viewed as a span of
// To digits: the size and alignment of To must both divide those of From.
func CanRebind[To, From core.Digit]() bool {
	var to To
	var from From
	return unsafe.Sizeof(from)%unsafe.Sizeof(to) == 0 &&
		unsafe.Alignof(from)%unsafe.Alignof(to) == 0
}

// Rebind views s at the narrower digit width To. The result has
// Count()*size(From)/size(To) digits and the same extension bit.
//
// Widening is not a rebind and panics; use Gather. On little-endian hosts the
// result aliases s. On big-endian hosts the digits are copied so that the
// least significant narrow digit still comes first.
func Rebind[To, From core.Digit](s Span[From]) Span[To] {
	core.Require(CanRebind[To, From](), "Rebind", "target digit must divide the source digit in size and alignment")
	ratio := core.Width[From]() / core.Width[To]()
	n := len(s.digits) * ratio
	if n == 0 {
		return Span[To]{ext: s.ext}
	}
	if !cpu.IsBigEndian {
		ptr := (*To)(unsafe.Pointer(unsafe.SliceData(s.digits)))
		return Span[To]{digits: unsafe.Slice(ptr, n), ext: s.ext}
	}
	out := make([]To, n)
	w := uint(core.Width[To]())
	for i, d := range s.digits {
		for k := 0; k < ratio; k++ {
			out[i*ratio+k] = To(d >> (uint(k) * w))
		}
	}
	return Span[To]{digits: out, ext: s.ext}
}

// Gather packs the digits of s into wider digits, least significant first,
// padding the last digit with the extension bit. It always copies.
func Gather[To, From core.Digit](s Span[From]) Span[To] {
	core.Require(CanRebind[From, To](), "Gather", "source digit must divide the target digit in size and alignment")
	ratio := core.Width[To]() / core.Width[From]()
	w := uint(core.Width[From]())
	out := make([]To, (len(s.digits)+ratio-1)/ratio)
	for i := range out {
		var d To
		for k := ratio - 1; k >= 0; k-- {
			d <<= w
			d |= To(s.DigitAt(i*ratio + k))
		}
		out[i] = d
	}
	return Span[To]{digits: out, ext: s.ext}
}
