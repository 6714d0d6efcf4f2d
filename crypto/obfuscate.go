package crypto

import (
	"encoding/base64"
	"fmt"
)

// Transform XORs data with the repeating byte form of password.
//
// Byte i of the output is data[i] ^ password[i % len(password)], so applying
// Transform twice with the same password returns the original data. This is
// an obfuscation step, NOT encryption: it has no integrity protection and
// anyone who can guess the password length can recover the key stream from
// known plaintext or by frequency analysis.
//
// The input is never modified; a new slice is returned.
func Transform(data []byte, password string) ([]byte, error) {
	if password == "" {
		NewLogger("Transform").
			WithField("data_size", len(data)).
			WithError(ErrPasswordRequired, "config_error", "xor").
			Debug("Rejected empty password")
		return nil, ErrPasswordRequired
	}

	key := []byte(password)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out, nil
}

// Armor encodes obfuscated bytes as standard padded base64 text.
// The payload header counts the armored length, not the raw length.
func Armor(data []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(data)))
	base64.StdEncoding.Encode(out, data)
	return out
}

// ArmoredLen returns the number of bytes Armor produces for n input bytes.
func ArmoredLen(n int) int {
	return base64.StdEncoding.EncodedLen(n)
}

// Unarmor reverses Armor.
func Unarmor(armored []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(armored)))
	n, err := base64.StdEncoding.Decode(out, armored)
	if err != nil {
		NewLogger("Unarmor").
			WithFields(SecureFieldHash(armored, "armored")).
			WithError(err, "armor_error", "base64_decode").
			Debug("Armored payload is not valid base64")
		return nil, fmt.Errorf("%w: %v", ErrArmor, err)
	}
	return out[:n], nil
}
