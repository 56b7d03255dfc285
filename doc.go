// Package mapbuffer is a compact, immutable container that maps uint64
// keys to variable-length byte values with near-zero parsing cost on read:
// a single value is recovered in O(log N) time via a cache-aware Eytzinger
// binary search directly against the serialized bytes, with no upfront
// deserialization of the container.
//
// This package is a thin convenience façade over four lower-level
// packages that can also be used directly:
//
//   - builder: assembles a mapping into a serialized buffer
//   - reader: performs point lookups and ordered iteration over a buffer
//   - validate: checks a buffer's structural and checksum invariants
//   - compress: the per-value compression codecs a buffer can be built with
//
// # Quick start
//
//	data, err := mapbuffer.Build(map[uint64][]byte{
//		1: []byte("one"),
//		2: []byte("two"),
//	}, mapbuffer.WithCompression(mapbuffer.CompressionZstd))
//	if err != nil {
//		// handle err
//	}
//
//	r, err := mapbuffer.Open(data)
//	if err != nil {
//		// handle err
//	}
//	value, err := r.Get(1) // []byte("one")
package mapbuffer
