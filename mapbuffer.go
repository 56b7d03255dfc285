package mapbuffer

import (
	"iter"
	"maps"

	"github.com/mapbuffer/mapbuffer/builder"
	"github.com/mapbuffer/mapbuffer/format"
	"github.com/mapbuffer/mapbuffer/reader"
	"github.com/mapbuffer/mapbuffer/validate"
)

// Re-exported wire-format enums, so callers rarely need to import
// mapbuffer/format directly.
const (
	Version0 = format.Version0
	Version1 = format.Version1

	CompressionNone   = format.CompressionNone
	CompressionGzip   = format.CompressionGzip
	CompressionBrotli = format.CompressionBrotli
	CompressionZstd   = format.CompressionZstd
	CompressionLZMA   = format.CompressionLZMA
)

type (
	// Reader is a non-owning, read-only view over a serialized buffer.
	Reader = reader.Reader

	// BuildOption configures Build/builder.New.
	BuildOption = builder.Option

	// ReadOption configures Open/reader.Open.
	ReadOption = reader.Option

	// EncodeFunc transforms a value into bytes before compression.
	EncodeFunc = builder.EncodeFunc

	// DecodeFunc transforms decompressed bytes back into a value.
	DecodeFunc = reader.DecodeFunc
)

// Builder option constructors, re-exported for convenience.
var (
	WithVersion     = builder.WithVersion
	WithCompression = builder.WithCompression
	WithEncodeFunc  = builder.WithEncodeFunc
)

// Reader option constructors, re-exported for convenience.
var (
	WithDecodeFunc = reader.WithDecodeFunc
	WithStrictMode = reader.WithStrictMode
)

// Entry is a single (key, value) pair, used by FromEntries.
type Entry struct {
	Key   uint64
	Value []byte
}

// FromMap adapts a plain Go map into the iter.Seq2 shape Build/Builder.Build
// consume. Iteration order is unspecified, matching map iteration; Build
// sorts by key internally regardless.
func FromMap(m map[uint64][]byte) iter.Seq2[uint64, []byte] {
	return maps.All(m)
}

// FromEntries adapts a slice of Entry into the iter.Seq2 shape
// Build/Builder.Build consume, preserving the caller's order (though Build
// sorts by key internally regardless).
func FromEntries(entries []Entry) iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		for _, e := range entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Build assembles m into a serialized MapBuffer using the default Builder
// configuration (format.Version0, format.CompressionNone) unless overridden
// by opts.
func Build(m map[uint64][]byte, opts ...BuildOption) ([]byte, error) {
	b, err := builder.New(opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(FromMap(m))
}

// BuildEntries assembles entries into a serialized MapBuffer, preserving
// duplicate-key detection semantics identical to Build.
func BuildEntries(entries []Entry, opts ...BuildOption) ([]byte, error) {
	b, err := builder.New(opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(FromEntries(entries))
}

// Open parses data and returns a Reader over it. See reader.Open for
// details.
func Open(data []byte, opts ...ReadOption) (*Reader, error) {
	return reader.Open(data, opts...)
}

// Validate checks data against every structural and checksum invariant of
// the wire format. See validate.Validate for details.
func Validate(data []byte) error {
	return validate.Validate(data)
}
