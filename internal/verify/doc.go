// Package verify holds the self-check suites run by "wordcalc verify". Each
// suite draws random operands, runs them through the kernel and compares
// the results with a reference arithmetic from package oracle.
package verify
