package format

import "fmt"

// CompressionType identifies the per-value compression scheme recorded in a
// MapBuffer header.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip   CompressionType = 0x2 // CompressionGzip represents an RFC 1952 gzip frame.
	CompressionBrotli CompressionType = 0x3 // CompressionBrotli represents Brotli compression.
	CompressionZstd   CompressionType = 0x4 // CompressionZstd represents Zstandard compression.
	CompressionLZMA   CompressionType = 0x5 // CompressionLZMA represents LZMA2 compression in an xz container.
)

// tagOf maps each recognized CompressionType to its on-disk 4-byte ASCII tag.
var tagOf = map[CompressionType][4]byte{
	CompressionNone:   {'n', 'o', 'n', 'e'},
	CompressionGzip:   {'g', 'z', 'i', 'p'},
	CompressionBrotli: {'0', '0', 'b', 'r'},
	CompressionZstd:   {'z', 's', 't', 'd'},
	CompressionLZMA:   {'l', 'z', 'm', 'a'},
}

var compressionOf = func() map[[4]byte]CompressionType {
	m := make(map[[4]byte]CompressionType, len(tagOf))
	for c, tag := range tagOf {
		m[tag] = c
	}

	return m
}()

// Tag returns the 4-byte ASCII on-disk tag for c. Tags shorter than 4
// characters are NUL-padded on the right; none of the five recognized tags
// currently need padding, but the encoding handles it generically.
func (c CompressionType) Tag() [4]byte {
	tag, ok := tagOf[c]
	if !ok {
		return [4]byte{}
	}

	return tag
}

// ParseTag resolves a 4-byte on-disk tag to its CompressionType, returning
// false if the tag is not one of the recognized codecs.
func ParseTag(tag [4]byte) (CompressionType, bool) {
	c, ok := compressionOf[tag]
	return c, ok
}

// Valid reports whether c is one of the recognized compression types.
func (c CompressionType) Valid() bool {
	_, ok := tagOf[c]
	return ok
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionBrotli:
		return "Brotli"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZMA:
		return "LZMA"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", uint8(c))
	}
}

// Version identifies the on-disk frame layout. Version 0 has no trailer;
// version 1 appends a 4-byte CRC32C trailer over the preceding bytes.
type Version uint8

const (
	Version0 Version = 0
	Version1 Version = 1
)

// Valid reports whether v is one of the recognized format versions.
func (v Version) Valid() bool {
	return v == Version0 || v == Version1
}

// HasTrailer reports whether buffers of this version carry a CRC32C trailer.
func (v Version) HasTrailer() bool {
	return v == Version1
}
