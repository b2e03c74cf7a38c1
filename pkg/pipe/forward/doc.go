// Package forward builds composed functions whose stages run in the order
// they were added: the seed first, then each appended single-input stage.
//
// Key operations:
// - Start/Start0/Start2/Start3: begin a pipeline from a seed of the given arity
// - Then (and Then0/2/3): append a stage, possibly changing the output type
// - Map: append a stage that keeps the output type
// - Finalize: flatten into a plain reusable function
//
// Pipelines are persistent values. Deriving two different continuations from
// the same pipeline yields independent chains, and Finalize may be called
// any number of times.
package forward
