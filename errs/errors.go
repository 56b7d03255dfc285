// Package errs defines the sentinel errors returned across the mapbuffer
// module. Callers should compare against these with errors.Is rather than
// matching on error text.
package errs

import "errors"

var (
	// ErrBadMagic is returned when a buffer's MAGIC prefix does not equal "mapbufr".
	ErrBadMagic = errors.New("mapbuffer: bad magic prefix")

	// ErrUnsupportedVersion is returned when the FORMAT_VERSION byte is not recognized.
	ErrUnsupportedVersion = errors.New("mapbuffer: unsupported format version")

	// ErrUnsupportedCodec is returned when the COMPRESSION_TYPE tag is not recognized,
	// or is recognized but its implementation was not linked in.
	ErrUnsupportedCodec = errors.New("mapbuffer: unsupported compression codec")

	// ErrInvalidHeaderSize is returned when fewer than section.HeaderSize bytes are available.
	ErrInvalidHeaderSize = errors.New("mapbuffer: invalid header size")

	// ErrTruncatedBuffer is returned when declared sizes exceed the actual buffer length.
	ErrTruncatedBuffer = errors.New("mapbuffer: truncated buffer")

	// ErrCorruptIndex is returned when index labels are not strictly sorted once
	// un-permuted, or offsets are not strictly increasing, or an offset falls
	// outside the data region.
	ErrCorruptIndex = errors.New("mapbuffer: corrupt index")

	// ErrChecksumMismatch is returned when a version-1 buffer's CRC32C trailer
	// does not match the computed checksum of the preceding bytes.
	ErrChecksumMismatch = errors.New("mapbuffer: checksum mismatch")

	// ErrMissingKey is returned by a strict lookup against a key that is not present.
	ErrMissingKey = errors.New("mapbuffer: key not found")

	// ErrEmptyBufferAccess is returned by a strict lookup against a buffer with N == 0.
	ErrEmptyBufferAccess = errors.New("mapbuffer: lookup against empty buffer")

	// ErrDuplicateKey is returned by the Builder when the input contains a repeated key.
	ErrDuplicateKey = errors.New("mapbuffer: duplicate key")

	// ErrTooManyEntries is returned by the Builder when N would exceed 2^32-1.
	ErrTooManyEntries = errors.New("mapbuffer: entry count exceeds uint32 range")

	// ErrCompressionFailure is returned when a codec rejects a value during encode.
	ErrCompressionFailure = errors.New("mapbuffer: compression failed")

	// ErrDecompressionFailure is returned when a codec rejects a value during decode.
	ErrDecompressionFailure = errors.New("mapbuffer: decompression failed")

	// ErrInvalidIndexOffsets is returned by a Reader when the offsets bounding
	// a value are decreasing or run past the end of the buffer.
	ErrInvalidIndexOffsets = errors.New("mapbuffer: invalid index offsets")
)
