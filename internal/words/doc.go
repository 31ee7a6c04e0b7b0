// Package words implements the word-sequence algorithms of the kernel on
// spans of digits: increment and decrement with carry propagation, fused
// multiply-add, long and Karatsuba multiplication, division by a digit, and
// normalized long division.
//
// A Span is a read-only view of little-endian digits plus an extension bit;
// a Mut is a writable view used as the accumulator of a single call. Neither
// owns its storage. Temporaries are drawn from a size-classed pool and
// returned before the call that acquired them returns.
package words
