// Package infini implements arbitrary-precision integers over a growable,
// normalized digit buffer with an extension bit.
//
// An Int is immutable once built: every operation allocates a fresh buffer,
// so values can be shared freely. Signed integers never overflow. Unsigned
// integers flag every result whose exact value would need a borrow from, or a
// carry into, the infinitely repeated extension bit.
package infini
