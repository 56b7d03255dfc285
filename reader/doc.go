// Package reader attaches a non-owning, read-only view to a serialized
// MapBuffer and answers point lookups, containment tests, and ordered
// iteration directly against the underlying bytes.
//
// A Reader never reconstructs a dictionary up front: Open parses only the
// fixed 16-byte header, and every subsequent operation performs a
// cache-aware Eytzinger binary search against the index bytes in place.
// Multiple Readers may safely share the same backing bytes (e.g. the same
// memory-mapped, read-only file) across goroutines or processes, since the
// bytes are never mutated.
package reader
