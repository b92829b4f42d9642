// Package frozen provides the immutable container primitives backing the
// HieraFrame index layer.
// This package implements:
// - Sequence: an immutable ordered sequence for level names
// - Array: an immutable fixed-dtype numeric array for level codes
// - Coerce: narrowing of code arrays to the minimal indexer dtype
//
// Both containers are pure values: every derivation returns a new instance
// and no operation can change observable state after construction, so any
// number of goroutines may read the same instance without synchronization.
package frozen
