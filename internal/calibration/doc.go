// Package calibration measures the Karatsuba crossover of the host and caches
// it in a JSON profile. The cached threshold feeds words.Options through the
// configuration resolution chain.
package calibration
