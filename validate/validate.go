package validate

import (
	"fmt"

	"github.com/mapbuffer/mapbuffer/compress"
	"github.com/mapbuffer/mapbuffer/errs"
	"github.com/mapbuffer/mapbuffer/eytzinger"
	"github.com/mapbuffer/mapbuffer/section"
)

// Validate checks data against every invariant a Reader will rely on:
//
//  1. length is at least the header size (plus trailer size for version 1)
//  2. magic, version, and compression tag are all recognized
//  3. INDEX_SIZE fits within the declared buffer length
//  4. index labels, reverse-permuted out of Eytzinger order, are strictly
//     ascending
//  5. offsets are strictly ascending in sorted order, the first equals
//     HSZ + 16*N, and the last plus its run-length equals the data region's
//     end
//  6. for version 1, the CRC32C trailer matches
//
// It returns the first errs sentinel that fails, wrapped with context.
func Validate(data []byte) error {
	header, err := section.ParseHeader(data)
	if err != nil {
		return err
	}

	n := int(header.IndexSize)

	trailerLen := 0
	if header.Version.HasTrailer() {
		trailerLen = section.TrailerSize
	}

	indexEnd := section.IndexStart + n*section.IndexEntrySize
	if len(data) < indexEnd+trailerLen {
		return fmt.Errorf("%w: need %d bytes for header+index+trailer, have %d", errs.ErrTruncatedBuffer, indexEnd+trailerLen, len(data))
	}

	dataEnd := len(data) - trailerLen
	if dataEnd < indexEnd {
		return fmt.Errorf("%w: data region end %d precedes index end %d", errs.ErrTruncatedBuffer, dataEnd, indexEnd)
	}

	if _, err := compress.GetCodec(header.Compression); err != nil {
		return err
	}

	indexBytes := data[section.IndexStart:indexEnd]

	if err := validateIndex(indexBytes, n, indexEnd, dataEnd); err != nil {
		return err
	}

	if header.Version.HasTrailer() {
		ok, err := section.VerifyChecksum(data)
		if err != nil {
			return err
		}
		if !ok {
			return errs.ErrChecksumMismatch
		}
	}

	return nil
}

// validateIndex checks items 4 and 5 of Validate's list: labels strictly
// ascending once un-permuted back to sorted order, offsets strictly
// ascending with the first equal to dataStart and none beyond dataEnd (the
// last value runs up to dataEnd).
func validateIndex(indexBytes []byte, n, dataStart, dataEnd int) error {
	if n == 0 {
		return nil
	}

	perm := eytzinger.Permutation(n)

	var prevLabel uint64
	var prevOffset uint64

	for si := 0; si < n; si++ {
		pos := perm[si]

		label := section.LabelAt(indexBytes, pos)
		offset := section.OffsetAt(indexBytes, pos)

		if si == 0 {
			if offset != uint64(dataStart) {
				return fmt.Errorf("%w: first offset %d != data start %d", errs.ErrCorruptIndex, offset, dataStart)
			}
		} else {
			if label <= prevLabel {
				return fmt.Errorf("%w: labels not strictly ascending at sorted position %d", errs.ErrCorruptIndex, si)
			}
			if offset <= prevOffset {
				return fmt.Errorf("%w: offsets not strictly ascending at sorted position %d", errs.ErrCorruptIndex, si)
			}
		}

		if offset > uint64(dataEnd) {
			return fmt.Errorf("%w: offset %d beyond data end %d", errs.ErrCorruptIndex, offset, dataEnd)
		}

		prevLabel = label
		prevOffset = offset
	}

	if prevOffset > uint64(dataEnd) {
		return fmt.Errorf("%w: last offset %d beyond data end %d", errs.ErrCorruptIndex, prevOffset, dataEnd)
	}

	return nil
}
