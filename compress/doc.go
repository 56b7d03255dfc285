// Package compress provides the per-value compression codecs a MapBuffer
// can be built with.
//
// A MapBuffer applies at most one codec to every value it stores; the
// choice is recorded as a 4-byte tag in the header and applies uniformly
// across the whole buffer.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): no compression, zero overhead.
//   - Gzip (format.CompressionGzip): stdlib DEFLATE, ubiquitous baseline.
//   - Brotli (format.CompressionBrotli): better ratio than gzip on
//     text-like payloads at comparable speed.
//   - Zstd (format.CompressionZstd): best ratio/speed tradeoff for most
//     workloads; cgo binding when available, pure-Go fallback otherwise.
//   - LZMA (format.CompressionLZMA): slowest to compress, competitive
//     ratio on highly redundant payloads.
//
// # Selection guide
//
// | Workload               | Recommended | Reason                         |
// |-------------------------|-------------|--------------------------------|
// | CPU-constrained build   | None        | No compression overhead        |
// | General purpose         | Zstd        | Best ratio/speed tradeoff      |
// | No extra dependency     | Gzip        | Stdlib only                    |
// | Maximum ratio, slow ok  | LZMA        | Best ratio on redundant data   |
// | Text-heavy values       | Brotli      | Strong ratio on text           |
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use by multiple
// goroutines.
package compress
