package words

import (
	"math/bits"
	"reflect"
	"sync"

	"github.com/agbru/wordcalc/internal/core"
)

// scratchSizes are the pooled size classes, in digits: powers of 4 from 64.
// Larger requests are allocated directly.
var scratchSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// scratchPool pools digit slices of one digit type by size class.
type scratchPool[D core.Digit] struct {
	classes [len(scratchSizes)]sync.Pool
}

func newScratchPool[D core.Digit]() *scratchPool[D] {
	p := &scratchPool[D]{}
	for i := range p.classes {
		size := scratchSizes[i]
		p.classes[i].New = func() any { return make([]D, size) }
	}
	return p
}

// scratchPools maps a digit type to its *scratchPool.
var scratchPools sync.Map

func poolFor[D core.Digit]() *scratchPool[D] {
	key := reflect.TypeFor[D]()
	if p, ok := scratchPools.Load(key); ok {
		return p.(*scratchPool[D])
	}
	p, _ := scratchPools.LoadOrStore(key, newScratchPool[D]())
	return p.(*scratchPool[D])
}

// scratchClass returns the pool index for size, or -1 if it is too large.
func scratchClass(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireScratch returns a zeroed slice of exactly size digits. It should be
// released with defer immediately:
//
//	tmp := acquireScratch[D](size)
//	defer releaseScratch(tmp)
func acquireScratch[D core.Digit](size int) []D {
	idx := scratchClass(size)
	if idx < 0 {
		return make([]D, size)
	}
	s := poolFor[D]().classes[idx].Get().([]D)
	clear(s)
	return s[:size]
}

// releaseScratch returns a slice obtained from acquireScratch to its pool.
// Slices whose capacity is not a size class were allocated directly and are
// left to the garbage collector.
func releaseScratch[D core.Digit](s []D) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := scratchClass(c)
	if idx >= 0 && scratchSizes[idx] == c {
		poolFor[D]().classes[idx].Put(s[:c])
	}
}
