package section

import (
	"hash/crc32"

	"github.com/mapbuffer/mapbuffer/endian"
	"github.com/mapbuffer/mapbuffer/errs"
)

// castagnoliTable is the CRC32C (Castagnoli, polynomial 0x1EDC6F41) table
// used for version-1 trailers. No third-party CRC32C implementation was
// found anywhere in the retrieved example repos; stdlib hash/crc32 already
// ships a hardware-accelerated Castagnoli path on amd64/arm64, so reaching
// for an external library here would add a dependency for no benefit.
var castagnoliTable = crc32.MakeTable(crc32.Castagnoli)

// Checksum computes the CRC32C of data.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoliTable)
}

// AppendChecksum computes the CRC32C of buf and appends it as a 4-byte
// little-endian trailer, returning the extended slice.
func AppendChecksum(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	sum := Checksum(buf)

	return engine.AppendUint32(buf, sum)
}

// VerifyChecksum reports whether the last TrailerSize bytes of data are a
// valid CRC32C of the preceding bytes.
func VerifyChecksum(data []byte) (bool, error) {
	if len(data) < TrailerSize {
		return false, errs.ErrTruncatedBuffer
	}

	body := data[:len(data)-TrailerSize]
	trailer := data[len(data)-TrailerSize:]

	engine := endian.GetLittleEndianEngine()
	want := engine.Uint32(trailer)

	return Checksum(body) == want, nil
}
