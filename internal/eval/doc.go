// Package eval evaluates single operations on the fixed-width and unbounded
// integer types of the kernel. Operands and results cross the package
// boundary as big.Int values; the arithmetic itself is done by the core,
// wide and infini packages.
package eval
