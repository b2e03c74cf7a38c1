// Package core holds the single execution primitive shared by the pipeline
// builders: threading a value through an ordered sequence of single-input
// steps, replacing the value with each result.
//
// Key operations:
// - Run: apply stages first to last (forward pipelines)
// - RunBack: apply stages most-recently-added first (reverse pipelines)
//
// Neither function validates nor recovers: a panicking stage propagates to
// the caller and no later stage runs.
package core
