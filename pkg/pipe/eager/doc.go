// Package eager provides the value pipe: compose and run once. Each step is
// computed immediately against the wrapped value instead of being deferred
// to a finalize call.
//
// - From: wrap an initial value
// - Then/Map: apply a function now, wrap the result
// - Tap: run a side effect, keep the value
// - Value: unwrap
//
// Pipes are persistent like the builders: Then never invalidates its input,
// so one pipe can feed several divergent continuations.
package eager
