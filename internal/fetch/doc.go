// Package fetch downloads and decodes the selected frames with a bounded
// worker pool.
//
// Each task carries the index it was assigned at selection time; workers
// complete in arbitrary order, but every worker writes only its own slot in
// the preallocated result slice, so the returned sequence always has the
// same length and index mapping as the input. A failed download or decode
// leaves a nil image and an error in that slot; it never aborts sibling
// tasks. Concurrency is capped with an errgroup limit rather than one
// goroutine per frame.
package fetch
