package payload

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/opd-ai/vidstego/limits"
)

// HeaderSize is the fixed header length in bytes.
const HeaderSize = limits.HeaderSize

// Magic identifies the video payload format, version 2.
var Magic = [4]byte{'V', 'S', 'T', '2'}

// BuildHeader returns Magic followed by the big-endian armored length.
func BuildHeader(encodedLen uint32) [HeaderSize]byte {
	var h [HeaderSize]byte
	copy(h[:4], Magic[:])
	binary.BigEndian.PutUint32(h[4:], encodedLen)
	return h
}

// ParseHeader validates the magic and returns the armored payload length.
// A mismatch means the carrier holds no payload in this format.
func ParseHeader(h []byte) (uint32, error) {
	if len(h) < HeaderSize {
		return 0, fmt.Errorf("%w: got %d bytes, need %d", ErrShortHeader, len(h), HeaderSize)
	}
	if !bytes.Equal(h[:4], Magic[:]) {
		return 0, ErrMagicMismatch
	}
	return binary.BigEndian.Uint32(h[4:HeaderSize]), nil
}
