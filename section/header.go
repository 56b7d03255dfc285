package section

import (
	"github.com/mapbuffer/mapbuffer/endian"
	"github.com/mapbuffer/mapbuffer/errs"
	"github.com/mapbuffer/mapbuffer/format"
)

// Header represents the fixed 16-byte section at the start of a MapBuffer.
//
//	0-6    MAGIC             "mapbufr"
//	7      FORMAT_VERSION    u8
//	8-11   COMPRESSION_TYPE  4-byte ASCII tag
//	12-15  INDEX_SIZE        u32 (N)
type Header struct {
	Version     format.Version
	Compression format.CompressionType
	IndexSize   uint32
}

// NewHeader creates a Header for a buffer holding n entries.
func NewHeader(version format.Version, compression format.CompressionType, n uint32) Header {
	return Header{
		Version:     version,
		Compression: compression,
		IndexSize:   n,
	}
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, HeaderSize)
	copy(b[0:MagicSize], Magic)
	b[7] = byte(h.Version)

	tag := h.Compression.Tag()
	copy(b[8:12], tag[:])

	engine.PutUint32(b[12:16], h.IndexSize)

	return b
}

// ParseHeader parses and validates the header at the start of data.
//
// Returns ErrInvalidHeaderSize if data is shorter than HeaderSize,
// ErrBadMagic if the magic prefix doesn't match, ErrUnsupportedVersion if
// the version byte isn't recognized, or ErrUnsupportedCodec if the
// compression tag isn't recognized.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	if string(data[0:MagicSize]) != Magic {
		return Header{}, errs.ErrBadMagic
	}

	version := format.Version(data[7])
	if !version.Valid() {
		return Header{}, errs.ErrUnsupportedVersion
	}

	var tag [4]byte
	copy(tag[:], data[8:12])

	compression, ok := format.ParseTag(tag)
	if !ok {
		return Header{}, errs.ErrUnsupportedCodec
	}

	engine := endian.GetLittleEndianEngine()
	n := engine.Uint32(data[12:16])

	return Header{
		Version:     version,
		Compression: compression,
		IndexSize:   n,
	}, nil
}

// DataStart returns the byte offset where the data region begins, i.e. the
// first byte past the index section.
func (h Header) DataStart() int64 {
	return int64(HeaderSize) + int64(h.IndexSize)*int64(IndexEntrySize)
}
