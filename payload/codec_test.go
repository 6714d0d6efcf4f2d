package payload

import (
	"testing"

	"github.com/opd-ai/vidstego/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_ConcreteScenario(t *testing.T) {
	armored, err := Encode(NewText("hi"), "k")
	require.NoError(t, err)

	// 27-byte record armors to 36 bytes; 8+36 bytes = 352 bits.
	assert.Len(t, armored, 36)
	assert.Equal(t, uint64(352), BitstreamBits(len(armored)))

	n, err := EncodedLen(NewText("hi"))
	require.NoError(t, err)
	assert.Equal(t, 36, n)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	secrets := []*Secret{
		NewText("hi"),
		NewText("a longer message with spaces and punctuation!"),
		NewFile("photo.jpg", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}),
	}

	for _, s := range secrets {
		armored, err := Encode(s, "correct horse")
		require.NoError(t, err)

		got, err := Decode(armored, "correct horse")
		require.NoError(t, err)
		assert.True(t, s.Equal(got))
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(NewText("same"), "pw")
	require.NoError(t, err)
	b, err := Encode(NewText("same"), "pw")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(NewText("x"), "")
	assert.ErrorIs(t, err, crypto.ErrPasswordRequired)

	_, err = Encode(NewText(""), "pw")
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Encode(nil, "pw")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestDecode_WrongPassword(t *testing.T) {
	armored, err := Encode(NewText("hi"), "k")
	require.NoError(t, err)

	// '{' ^ 'k' ^ 'x' is not '{', so the record cannot parse.
	got, err := Decode(armored, "x")
	assert.ErrorIs(t, err, ErrFormat)
	assert.Nil(t, got)
}

func TestDecode_BadArmor(t *testing.T) {
	_, err := Decode([]byte("%%%%"), "k")
	assert.ErrorIs(t, err, crypto.ErrArmor)
}

func TestBitstream(t *testing.T) {
	bs, err := Bitstream([]byte("abcd"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'V', 'S', 'T', '2', 0, 0, 0, 4, 'a', 'b', 'c', 'd'}, bs)

	_, err = Bitstream(nil)
	assert.Error(t, err)
}
