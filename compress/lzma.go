package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/mapbuffer/mapbuffer/errs"
)

// LZMACompressor provides LZMA2 compression via the xz container format.
//
// Typically the slowest codec to compress with but competitive with Zstd on
// ratio for highly redundant payloads.
type LZMACompressor struct{}

var _ Codec = (*LZMACompressor)(nil)

// NewLZMACompressor creates a new LZMA compressor.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{}
}

// Compress compresses data using the xz container format.
func (c LZMACompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: xz writer: %v", errs.ErrCompressionFailure, err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: xz write: %v", errs.ErrCompressionFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: xz close: %v", errs.ErrCompressionFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses xz-container data.
func (c LZMACompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: xz header: %v", errs.ErrDecompressionFailure, err)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: xz read: %v", errs.ErrDecompressionFailure, err)
	}

	return out, nil
}
