package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/mapbuffer/mapbuffer/errs"
)

// BrotliCompressor provides Brotli compression, generally beating gzip on
// ratio at a similar or better speed for text-like payloads.
type BrotliCompressor struct{}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a new Brotli compressor using the default
// quality level.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{}
}

// Compress compresses data using Brotli at the default quality level.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: brotli write: %v", errs.ErrCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: brotli close: %v", errs.ErrCompressionFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses Brotli data.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r := brotli.NewReader(bytes.NewReader(data))

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: brotli read: %v", errs.ErrDecompressionFailure, err)
	}

	return out, nil
}
