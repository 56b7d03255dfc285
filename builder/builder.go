package builder

import (
	"fmt"
	"iter"
	"sort"

	"github.com/mapbuffer/mapbuffer/compress"
	"github.com/mapbuffer/mapbuffer/errs"
	"github.com/mapbuffer/mapbuffer/eytzinger"
	"github.com/mapbuffer/mapbuffer/format"
	"github.com/mapbuffer/mapbuffer/internal/options"
	"github.com/mapbuffer/mapbuffer/internal/pool"
	"github.com/mapbuffer/mapbuffer/section"
)

// maxEntries is one more than the largest N the on-disk INDEX_SIZE field (a
// u32) can represent.
const maxEntries = int64(1) << 32

// EncodeFunc transforms a value from its domain representation into bytes
// before compression. The default is the identity function.
type EncodeFunc func([]byte) ([]byte, error)

// Config holds the Builder's configuration, set via functional Options.
type Config struct {
	version     format.Version
	compression format.CompressionType
	encode      EncodeFunc
}

// Option configures a Builder Config.
type Option = options.Option[*Config]

// WithVersion selects the on-disk format version. Version 1 appends a
// CRC32C trailer; version 0 omits it. Default is format.Version0.
func WithVersion(v format.Version) Option {
	return options.New(func(c *Config) error {
		if !v.Valid() {
			return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, v)
		}
		c.version = v

		return nil
	})
}

// WithCompression selects the per-value compression codec applied to every
// entry in the buffer. Default is format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if !c.Valid() {
			return fmt.Errorf("%w: compression %v", errs.ErrUnsupportedCodec, c)
		}
		cfg.compression = c

		return nil
	})
}

// WithEncodeFunc sets a user-supplied transform applied to every value
// before compression. Default is the identity function.
func WithEncodeFunc(fn EncodeFunc) Option {
	return options.NoError(func(c *Config) {
		c.encode = fn
	})
}

// Builder assembles a serialized MapBuffer from an input key/value mapping.
// A Builder is single-shot and single-threaded; it holds no mutable state
// between calls to Build other than its immutable configuration.
type Builder struct {
	cfg   *Config
	codec compress.Codec
}

// New creates a Builder configured with opts. It fails if an unsupported
// version or compression codec is requested.
func New(opts ...Option) (*Builder, error) {
	cfg := &Config{
		version:     format.Version0,
		compression: format.CompressionNone,
		encode:      func(b []byte) ([]byte, error) { return b, nil },
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Builder{cfg: cfg, codec: codec}, nil
}

type entry struct {
	key   uint64
	value []byte
}

// Build consumes entries and returns a serialized MapBuffer.
//
// It materializes entries (spec.md §4.4 step 1), fails with
// errs.ErrDuplicateKey on a repeated key, sorts the keys ascending, computes
// the Eytzinger permutation, encodes and compresses every value in
// sorted-key order, and emits header + index + data (+ CRC32C trailer for
// version 1).
func (b *Builder) Build(entries iter.Seq2[uint64, []byte]) ([]byte, error) {
	items, err := collect(entries)
	if err != nil {
		return nil, err
	}

	n := len(items)
	if int64(n) >= maxEntries {
		return nil, errs.ErrTooManyEntries
	}

	sort.Slice(items, func(i, j int) bool { return items[i].key < items[j].key })

	perm := eytzinger.Permutation(n)

	payloads := make([][]byte, n)
	for i, it := range items {
		val, err := b.cfg.encode(it.value)
		if err != nil {
			return nil, fmt.Errorf("mapbuffer: encode value for key %d: %w", it.key, err)
		}

		compressed, err := b.codec.Compress(val)
		if err != nil {
			return nil, fmt.Errorf("%w: key %d: %v", errs.ErrCompressionFailure, it.key, err)
		}

		payloads[i] = compressed
	}

	dataStart := section.HeaderSize + n*section.IndexEntrySize

	offsets, freeOffsets := pool.GetUint64Slice(n)
	defer freeOffsets()

	off := uint64(dataStart)
	for i, p := range payloads {
		offsets[i] = off
		off += uint64(len(p))
	}

	total := int(off)
	if b.cfg.version.HasTrailer() {
		total += section.TrailerSize
	}

	// A Builder's output is a single exactly-sized buffer returned by value
	// to the caller; it is never checked back into a shared pool.
	out := pool.NewByteBuffer(total)

	header := section.NewHeader(b.cfg.version, b.cfg.compression, uint32(n))
	out.MustWrite(header.Bytes())

	indexPositions, freePositions := pool.GetIntSlice(n)
	defer freePositions()
	for i := range items {
		indexPositions[perm[i]] = i
	}

	for _, i := range indexPositions {
		e := section.IndexEntry{Label: items[i].key, Offset: offsets[i]}
		out.MustWrite(e.Bytes())
	}

	for _, p := range payloads {
		out.MustWrite(p)
	}

	buf := out.Bytes()
	if b.cfg.version.HasTrailer() {
		buf = section.AppendChecksum(buf)
	}

	return buf, nil
}

// collect materializes entries into a slice, rejecting duplicate keys.
func collect(entries iter.Seq2[uint64, []byte]) ([]entry, error) {
	var items []entry

	seen := make(map[uint64]struct{})
	for k, v := range entries {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %d", errs.ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		items = append(items, entry{key: k, value: v})
	}

	return items, nil
}
