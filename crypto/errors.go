package crypto

import "errors"

var (
	// ErrPasswordRequired indicates an empty password was supplied.
	ErrPasswordRequired = errors.New("password required")

	// ErrArmor indicates armored payload bytes are not valid base64.
	ErrArmor = errors.New("invalid payload armor")

	// ErrCiphertextTooShort indicates a CTR ciphertext shorter than its IV.
	ErrCiphertextTooShort = errors.New("ciphertext shorter than IV")
)
