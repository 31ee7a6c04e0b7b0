// Package oracle provides reference arithmetic used to cross-check the
// kernel: math/big for whole numbers, math/big's own vector kernels for
// digit-vector operations, and GMP when built with the gmp tag.
package oracle
