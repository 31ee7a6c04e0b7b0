// Package wide builds fixed-width integers wider than a machine word by
// doubling: Double[W] is a (Low, High) pair of W and is itself a core.Word, so
// U128 = Double[U64], U256 = Double[U128] and U512 = Double[U256].
//
// Unsigned arithmetic is exposed through flagged helpers (Add, Sub, Mul,
// QuoRem); Int[W] reads the same bits as two's complement.
package wide
