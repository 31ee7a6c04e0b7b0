// Package metrics exposes Prometheus counters for evaluated operations and
// verification suites, and samples runtime memory statistics.
package metrics
