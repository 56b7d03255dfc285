// Package section defines the low-level binary structures and constants of
// the MapBuffer wire format: the fixed 16-byte header, the 16-byte
// (label, offset) index entries, and the optional CRC32C trailer.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed)                     │
//	│  - Magic (7), Version (1), Codec tag (4)     │
//	│  - IndexSize / N (4)                         │
//	├───────────────────────────────────────────────┤
//	│ Index (N × 16 bytes)                         │
//	│  - (label, offset) pairs in Eytzinger order  │
//	├───────────────────────────────────────────────┤
//	│ Data region (variable)                       │
//	│  - per-entry compressed value payloads,      │
//	│    concatenated in sorted-key order          │
//	├───────────────────────────────────────────────┤
//	│ Trailer (4 bytes, version 1 only)            │
//	│  - CRC32C of everything preceding it         │
//	└───────────────────────────────────────────────┘
//
// Most callers should use the builder and reader packages instead of this
// one directly; use this package when you need fine-grained control over
// the binary layout.
package section
