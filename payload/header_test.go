package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeader(t *testing.T) {
	h := BuildHeader(0x01020304)
	assert.Equal(t, [HeaderSize]byte{'V', 'S', 'T', '2', 0x01, 0x02, 0x03, 0x04}, h)
}

func TestParseHeader(t *testing.T) {
	h := BuildHeader(36)
	n, err := ParseHeader(h[:])
	require.NoError(t, err)
	assert.Equal(t, uint32(36), n)
}

func TestParseHeader_IgnoresTrailingBytes(t *testing.T) {
	h := BuildHeader(7)
	n, err := ParseHeader(append(h[:], 0xff, 0xff))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), n)
}

func TestParseHeader_Errors(t *testing.T) {
	_, err := ParseHeader([]byte("VST2"))
	assert.ErrorIs(t, err, ErrShortHeader)

	_, err = ParseHeader([]byte{'V', 'S', 'T', '1', 0, 0, 0, 1})
	assert.ErrorIs(t, err, ErrMagicMismatch)

	_, err = ParseHeader(make([]byte, HeaderSize))
	assert.ErrorIs(t, err, ErrMagicMismatch)
}
