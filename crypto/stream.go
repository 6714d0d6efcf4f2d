package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// StreamKeySize is the AES-256 key size produced by DeriveKey
	StreamKeySize = 32
	// StreamIVSize is the CTR initialization vector prepended to ciphertexts
	StreamIVSize = aes.BlockSize

	// Fixed salt shared by every audio carrier; the password is the only secret.
	streamSalt = "stego-fixed-salt"

	scryptN = 16384
	scryptR = 8
	scryptP = 1
)

// DeriveKey stretches a password into an AES-256 key with scrypt.
// The result must be wiped with ZeroBytes once it is no longer needed.
func DeriveKey(password string) ([]byte, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	logger := NewLogger("DeriveKey").WithFields(OperationFields("derive_key", "started"))
	logger.Entry("deriving stream key")
	defer logger.Exit()

	key, err := scrypt.Key([]byte(password), []byte(streamSalt), scryptN, scryptR, scryptP, StreamKeySize)
	if err != nil {
		logger.WithError(err, "kdf_error", "scrypt").Error("Key derivation failed")
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// EncryptCTR encrypts plaintext with AES-256-CTR under a fresh random IV.
// Format: [iv:16][ciphertext:N]
func EncryptCTR(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, StreamIVSize+len(plaintext))
	iv := out[:StreamIVSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}

	cipher.NewCTR(block, iv).XORKeyStream(out[StreamIVSize:], plaintext)
	return out, nil
}

// DecryptCTR reverses EncryptCTR. CTR mode is unauthenticated, so a wrong
// key yields garbage rather than an error.
func DecryptCTR(key, data []byte) ([]byte, error) {
	if len(data) < StreamIVSize {
		return nil, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, len(data)-StreamIVSize)
	cipher.NewCTR(block, data[:StreamIVSize]).XORKeyStream(out, data[StreamIVSize:])
	return out, nil
}
