package section

import (
	"github.com/mapbuffer/mapbuffer/endian"
	"github.com/mapbuffer/mapbuffer/errs"
)

// IndexEntry is a single (label, offset) pair occupying IndexEntrySize bytes
// in the index region. Label is the sorted key and Offset is the absolute
// byte offset (from the start of the buffer) of that key's value payload.
type IndexEntry struct {
	Label  uint64
	Offset uint64
}

// Bytes serializes the entry into a new IndexEntrySize-byte slice, little-endian.
func (e IndexEntry) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, IndexEntrySize)
	engine.PutUint64(b[0:8], e.Label)
	engine.PutUint64(b[8:16], e.Offset)

	return b
}

// AppendTo appends the entry's bytes to buf and returns the extended slice.
func (e IndexEntry) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	buf = engine.AppendUint64(buf, e.Label)
	buf = engine.AppendUint64(buf, e.Offset)

	return buf
}

// ParseIndexEntry parses a single IndexEntrySize-byte slice into an IndexEntry.
func ParseIndexEntry(data []byte) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrTruncatedBuffer
	}

	engine := endian.GetLittleEndianEngine()

	return IndexEntry{
		Label:  engine.Uint64(data[0:8]),
		Offset: engine.Uint64(data[8:16]),
	}, nil
}

// LabelAt reads the label of the index entry at Eytzinger position pos
// (0-based) directly out of the raw index bytes, without allocating an
// IndexEntry. This is the hot path used by the Eytzinger search.
func LabelAt(index []byte, pos int) uint64 {
	engine := endian.GetLittleEndianEngine()
	base := pos * IndexEntrySize

	return engine.Uint64(index[base : base+8])
}

// OffsetAt reads the offset of the index entry at Eytzinger position pos
// (0-based) directly out of the raw index bytes.
func OffsetAt(index []byte, pos int) uint64 {
	engine := endian.GetLittleEndianEngine()
	base := pos * IndexEntrySize

	return engine.Uint64(index[base+8 : base+16])
}
