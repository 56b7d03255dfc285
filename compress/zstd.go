package compress

// ZstdCompressor provides Zstandard compression, favoring compression ratio
// over raw speed.
//
// Two implementations exist behind a build tag: a cgo binding over
// valyala/gozstd (libzstd) used when cgo is enabled, and a pure-Go fallback
// over klauspost/compress/zstd otherwise.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
