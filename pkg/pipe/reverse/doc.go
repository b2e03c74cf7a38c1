// Package reverse builds composed functions back to front: Start supplies
// the last-executed stage and every Before call adds a stage that runs
// earlier than everything accumulated so far.
//
// Key operations:
// - Start: begin from the terminal single-input stage
// - Before: prepend a single-input stage in execution order
// - Map: prepend a stage that keeps the input type
// - Before0/Before2/Before3: close the chain with a zero- or multi-argument
//   first stage, yielding a finalize-only Terminal builder
// - Finalize: flatten into a plain reusable function
//
// For single-input stages a then b, reverse.Start(a) followed by Before(b)
// finalizes to a(b(x)): the most recently added stage executes first.
package reverse
