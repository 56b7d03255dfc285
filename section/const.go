package section

// Magic is the fixed 7-byte ASCII prefix every MapBuffer begins with.
const Magic = "mapbufr"

// Byte sizes of the fixed-size sections of the wire format.
const (
	MagicSize      = 7  // len(Magic)
	HeaderSize     = 16 // fixed header size in bytes
	IndexEntrySize = 16 // fixed (label, offset) index entry size in bytes
	TrailerSize    = 4  // CRC32C trailer size, version 1 only

	// IndexStart is the byte offset where the index section begins; it is
	// always immediately after the header.
	IndexStart = HeaderSize
)
