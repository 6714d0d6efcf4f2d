package payload

import (
	"fmt"

	"github.com/opd-ai/vidstego/crypto"
	"github.com/opd-ai/vidstego/limits"
	"github.com/sirupsen/logrus"
)

// Encode runs serialize → XOR transform → base64 armor and returns the
// armored bytes whose length the header records.
func Encode(s *Secret, password string) ([]byte, error) {
	if password == "" {
		return nil, crypto.ErrPasswordRequired
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	raw, err := Serialize(s)
	if err != nil {
		return nil, err
	}
	defer crypto.ZeroBytes(raw)

	obfuscated, err := crypto.Transform(raw, password)
	if err != nil {
		return nil, err
	}
	armored := crypto.Armor(obfuscated)

	if err := limits.ValidateEncodedPayload(len(armored)); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Encode",
		"kind":        s.Kind.String(),
		"record_size": len(raw),
	}).WithFields(crypto.SecureFieldHash(armored, "armored")).Debug("Payload encoded")

	return armored, nil
}

// Decode reverses Encode. Unarmor failures are reported as crypto.ErrArmor;
// record problems as ErrFormat or ErrDecode.
func Decode(armored []byte, password string) (*Secret, error) {
	if password == "" {
		return nil, crypto.ErrPasswordRequired
	}

	obfuscated, err := crypto.Unarmor(armored)
	if err != nil {
		return nil, err
	}

	raw, err := crypto.Transform(obfuscated, password)
	if err != nil {
		return nil, err
	}
	defer crypto.ZeroBytes(raw)

	return Deserialize(raw)
}

// Bitstream prepends the header to armored bytes. The result is consumed
// MSB-first by the bit-packing engine.
func Bitstream(armored []byte) ([]byte, error) {
	if err := limits.ValidateEncodedPayload(len(armored)); err != nil {
		return nil, err
	}

	h := BuildHeader(uint32(len(armored)))
	out := make([]byte, 0, HeaderSize+len(armored))
	out = append(out, h[:]...)
	out = append(out, armored...)
	return out, nil
}

// BitstreamBits returns the number of carrier samples needed for an armored
// payload of encodedLen bytes.
func BitstreamBits(encodedLen int) uint64 {
	return uint64(HeaderSize+encodedLen) * 8
}

// EncodedLen predicts the armored length of a secret without keeping the result.
func EncodedLen(s *Secret) (int, error) {
	raw, err := Serialize(s)
	if err != nil {
		return 0, fmt.Errorf("failed to size payload: %w", err)
	}
	defer crypto.ZeroBytes(raw)
	return crypto.ArmoredLen(len(raw)), nil
}
