// WARNING: This file uses //go:linkname to reach unexported vector kernels
// of math/big. They are not part of Go's public API; if this package stops
// compiling after a Go upgrade, review these declarations against the
// current math/big sources.

package oracle

import (
	"math/big"
	_ "unsafe" // Required for go:linkname
)

// addVV computes z = x + y element-wise and returns the carry.
//
//go:linkname addVV math/big.addVV
func addVV(z, x, y []big.Word) (c big.Word)

// subVV computes z = x - y element-wise and returns the borrow.
//
//go:linkname subVV math/big.subVV
func subVV(z, x, y []big.Word) (c big.Word)

// addMulVVW computes z += x*y and returns the carry.
//
//go:linkname addMulVVW math/big.addMulVVW
func addMulVVW(z, x []big.Word, y big.Word) (c big.Word)
