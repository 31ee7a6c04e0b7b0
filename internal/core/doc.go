// Package core holds the digit-level vocabulary shared by every arithmetic
// layer: fixed-width digits with explicit wraparound, flagged results, and
// the Pair/Triple composites used to build one width level from the one below.
//
// Nothing in this package allocates or logs. Data-dependent failures are
// reported through Fallible values; misuse (a zero Divisor, an index past a
// span's count) panics with a *PreconditionError.
package core
