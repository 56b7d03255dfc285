package reader

import (
	"fmt"
	"iter"
	"sync"

	"github.com/mapbuffer/mapbuffer/compress"
	"github.com/mapbuffer/mapbuffer/errs"
	"github.com/mapbuffer/mapbuffer/eytzinger"
	"github.com/mapbuffer/mapbuffer/internal/options"
	"github.com/mapbuffer/mapbuffer/section"
)

// DecodeFunc transforms a decompressed payload back into its value-domain
// representation. The default is the identity function.
type DecodeFunc func([]byte) ([]byte, error)

// Config holds a Reader's configuration, set via functional Options.
type Config struct {
	decode DecodeFunc
	strict bool
}

// Option configures a Reader Config.
type Option = options.Option[*Config]

// WithDecodeFunc sets a user-supplied transform applied to every
// decompressed value before it is returned to the caller. Default is the
// identity function.
func WithDecodeFunc(fn DecodeFunc) Option {
	return options.NoError(func(c *Config) {
		c.decode = fn
	})
}

// WithStrictMode enables eager CRC32C verification at Open time for
// version-1 buffers. Without it, integrity verification happens lazily on
// the first call to Validate, and Get/Contains/iteration never pay the
// checksum cost.
func WithStrictMode() Option {
	return options.NoError(func(c *Config) {
		c.strict = true
	})
}

// Reader is a cheap, non-owning view over a serialized MapBuffer. It holds
// a borrow over data; the caller is responsible for keeping data alive and
// unmodified for the Reader's lifetime.
type Reader struct {
	data       []byte
	header     section.Header
	indexBytes []byte
	trailerLen int
	decode     DecodeFunc
	codec      compress.Codec
	strict     bool

	permOnce sync.Once
	perm     []int // perm[sortedIndex] = eytzinger position
	invPerm  []int // invPerm[eytzingerPosition] = sortedIndex

	verifyOnce sync.Once
	verifyErr  error
}

// Open parses the header of data and returns a Reader over it. It performs
// O(1) work: the header is the only part of data inspected eagerly (unless
// WithStrictMode is given for a version-1 buffer, in which case the CRC32C
// trailer is verified now instead of lazily).
func Open(data []byte, opts ...Option) (*Reader, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	n := int(header.IndexSize)

	trailerLen := 0
	if header.Version.HasTrailer() {
		trailerLen = section.TrailerSize
	}

	indexEnd := section.IndexStart + n*section.IndexEntrySize
	if len(data) < indexEnd+trailerLen {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrTruncatedBuffer, indexEnd+trailerLen, len(data))
	}

	dataEnd := len(data) - trailerLen
	if dataEnd < indexEnd {
		return nil, errs.ErrTruncatedBuffer
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	cfg := &Config{decode: func(b []byte) ([]byte, error) { return b, nil }}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	r := &Reader{
		data:       data,
		header:     header,
		indexBytes: data[section.IndexStart:indexEnd],
		trailerLen: trailerLen,
		decode:     cfg.decode,
		codec:      codec,
		strict:     cfg.strict,
	}

	if r.strict && header.Version.HasTrailer() {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Len returns the number of entries (N) in the buffer.
func (r *Reader) Len() int {
	return int(r.header.IndexSize)
}

// Version returns the buffer's format version.
func (r *Reader) Version() int {
	return int(r.header.Version)
}

func (r *Reader) labelAt(pos int) uint64 {
	return section.LabelAt(r.indexBytes, pos)
}

func (r *Reader) ensurePerm() {
	r.permOnce.Do(func() {
		n := r.Len()
		r.perm = eytzinger.Permutation(n)
		r.invPerm = make([]int, n)
		for sortedIdx, eytPos := range r.perm {
			r.invPerm[eytPos] = sortedIdx
		}
	})
}

// Contains reports whether key is present in the buffer.
func (r *Reader) Contains(key uint64) bool {
	n := r.Len()
	if n == 0 {
		return false
	}

	return eytzinger.Search(n, r.labelAt, key) >= 0
}

// IndexLookup returns the Eytzinger-layout index position of key (0..N-1),
// or -1 if key is absent.
func (r *Reader) IndexLookup(key uint64) int64 {
	n := r.Len()
	if n == 0 {
		return -1
	}

	return int64(eytzinger.Search(n, r.labelAt, key))
}

// valueAtSorted returns the decompressed, decoded value at sorted position
// si, given its Eytzinger position eytPos.
func (r *Reader) valueAtSorted(si, eytPos int) ([]byte, error) {
	n := r.Len()

	offHit := section.OffsetAt(r.indexBytes, eytPos)

	var offNext uint64
	if si+1 < n {
		offNext = section.OffsetAt(r.indexBytes, r.perm[si+1])
	} else {
		offNext = uint64(len(r.data) - r.trailerLen)
	}

	if offNext < offHit || offNext > uint64(len(r.data)) {
		return nil, fmt.Errorf("%w: offsets [%d, %d) out of range", errs.ErrInvalidIndexOffsets, offHit, offNext)
	}

	payload := r.data[offHit:offNext]

	decompressed, err := r.codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompressionFailure, err)
	}

	value, err := r.decode(decompressed)
	if err != nil {
		return nil, fmt.Errorf("mapbuffer: decode value: %w", err)
	}

	return value, nil
}

func (r *Reader) find(key uint64) (value []byte, found bool, err error) {
	r.ensurePerm()

	n := r.Len()

	pos := eytzinger.Search(n, r.labelAt, key)
	if pos < 0 {
		return nil, false, nil
	}

	si := r.invPerm[pos]

	val, err := r.valueAtSorted(si, pos)
	if err != nil {
		return nil, false, err
	}

	return val, true, nil
}

// Get returns the value for key. If the buffer is empty it returns
// errs.ErrEmptyBufferAccess; if key is absent it returns errs.ErrMissingKey.
func (r *Reader) Get(key uint64) ([]byte, error) {
	if r.Len() == 0 {
		return nil, errs.ErrEmptyBufferAccess
	}

	val, found, err := r.find(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %d", errs.ErrMissingKey, key)
	}

	return val, nil
}

// GetOr returns the value for key, or def if key is absent (including when
// the buffer is empty). Structural errors (corrupt index, decompression
// failure) are still returned and are never masked by def.
func (r *Reader) GetOr(key uint64, def []byte) ([]byte, error) {
	if r.Len() == 0 {
		return def, nil
	}

	val, found, err := r.find(key)
	if err != nil {
		return nil, err
	}
	if !found {
		return def, nil
	}

	return val, nil
}

// Keys returns a lazy, non-restartable iterator over keys in ascending
// numeric order.
func (r *Reader) Keys() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		r.ensurePerm()

		for si := 0; si < n; si++ {
			key := r.labelAt(r.perm[si])
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns a lazy, non-restartable iterator over values in
// ascending-key order. Iteration stops early if a value fails to
// decompress or decode; Items stops the same way, so callers needing to
// observe that error should use ToMapping instead.
func (r *Reader) Values() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		r.ensurePerm()

		for si := 0; si < n; si++ {
			val, err := r.valueAtSorted(si, r.perm[si])
			if err != nil {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}

// Items returns a lazy, non-restartable iterator over (key, value) pairs in
// ascending-key order.
func (r *Reader) Items() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		r.ensurePerm()

		for si := 0; si < n; si++ {
			pos := r.perm[si]
			key := r.labelAt(pos)

			val, err := r.valueAtSorted(si, pos)
			if err != nil {
				return
			}
			if !yield(key, val) {
				return
			}
		}
	}
}

// ToMapping materializes the entire buffer into a map. It is an escape
// hatch for callers that want a plain Go map, not a hot-path operation.
func (r *Reader) ToMapping() (map[uint64][]byte, error) {
	n := r.Len()
	m := make(map[uint64][]byte, n)
	if n == 0 {
		return m, nil
	}

	r.ensurePerm()

	for si := 0; si < n; si++ {
		pos := r.perm[si]
		key := r.labelAt(pos)

		val, err := r.valueAtSorted(si, pos)
		if err != nil {
			return nil, err
		}

		m[key] = val
	}

	return m, nil
}

// Validate verifies the version-1 CRC32C trailer, caching the result so
// repeated calls do not recompute the checksum. It is a no-op success for
// version-0 buffers, which carry no trailer.
func (r *Reader) Validate() error {
	if !r.header.Version.HasTrailer() {
		return nil
	}

	r.verifyOnce.Do(func() {
		ok, err := section.VerifyChecksum(r.data)
		if err != nil {
			r.verifyErr = err

			return
		}
		if !ok {
			r.verifyErr = errs.ErrChecksumMismatch

			return
		}
	})

	return r.verifyErr
}
