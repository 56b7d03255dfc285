package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mapbuffer/mapbuffer/errs"
)

func TestAppendChecksumVerifies(t *testing.T) {
	body := []byte("mapbufr\x00none\x00\x00\x00\x00some data")

	withTrailer := AppendChecksum(append([]byte(nil), body...))
	require.Len(t, withTrailer, len(body)+TrailerSize)

	ok, err := VerifyChecksum(withTrailer)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyChecksum_DetectsCorruption(t *testing.T) {
	body := []byte("some payload bytes")
	withTrailer := AppendChecksum(append([]byte(nil), body...))
	withTrailer[0] ^= 0xFF

	ok, err := VerifyChecksum(withTrailer)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyChecksum_TooShort(t *testing.T) {
	_, err := VerifyChecksum(make([]byte, TrailerSize-1))
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}
