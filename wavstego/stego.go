// Package wavstego hides encrypted payloads in the sample LSBs of 16-bit
// PCM WAV files.
//
// Layout, one bit per sample starting at the first sample, MSB-first:
//
//	"STG1" | flags:1 | length:4 (big-endian) | body
//
// The body is the AES-256-CTR ciphertext (IV followed by data) under a
// scrypt-derived key, Hamming(7,4)-encoded when flag bit 0 is set.
package wavstego

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/opd-ai/vidstego/crypto"
	"github.com/opd-ai/vidstego/ecc"
	"github.com/opd-ai/vidstego/limits"
	"github.com/sirupsen/logrus"
)

const (
	magic = "STG1"

	flagECC byte = 1

	// headerBits covers magic (4), flags (1) and length (4).
	headerBits = (4 + 1 + 4) * 8
)

// bodyBits returns the number of body bits for a ciphertext of encLen bytes.
func bodyBits(encLen uint64, useECC bool) uint64 {
	if useECC {
		return encLen * 8 * ecc.CodewordBits / 4
	}
	return encLen * 8
}

// Embed returns a copy of wav carrying payload encrypted under password.
func Embed(wav, payload []byte, password string, useECC bool) ([]byte, error) {
	fields := logrus.Fields{
		"function":     "wavstego.Embed",
		"operation_id": uuid.New().String(),
	}

	if password == "" {
		return nil, ErrPasswordRequired
	}
	if err := limits.ValidateCarrier(wav); err != nil {
		return nil, err
	}
	info, err := ParseWAV(wav)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password)
	if err != nil {
		return nil, err
	}
	defer crypto.ZeroBytes(key)

	enc, err := crypto.EncryptCTR(key, payload)
	if err != nil {
		return nil, err
	}
	if err := limits.ValidateEncodedPayload(len(enc)); err != nil {
		return nil, err
	}

	var flags byte
	body := ecc.BytesToBits(enc)
	if useECC {
		flags |= flagECC
		body = ecc.Encode(enc)
	}

	header := make([]byte, 0, headerBits/8)
	header = append(header, magic...)
	header = append(header, flags)
	header = binary.BigEndian.AppendUint32(header, uint32(len(enc)))
	bits := append(ecc.BytesToBits(header), body...)

	if len(bits) > info.Samples() {
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"needed_bits": len(bits),
			"samples":     info.Samples(),
		}).Info("Payload does not fit WAV carrier")
		return nil, fmt.Errorf("%w: need %d samples, have %d", ErrCapacity, len(bits), info.Samples())
	}

	out := make([]byte, len(wav))
	copy(out, wav)
	for i, bit := range bits {
		pos := info.DataOffset + i*bytesPerSample
		out[pos] = out[pos]&0xFE | bit
	}

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"ecc":         useECC,
		"encoded_len": len(enc),
		"bits":        len(bits),
		"samples":     info.Samples(),
	}).Info("Payload embedded in WAV")

	return out, nil
}

// Extract recovers and decrypts the payload hidden in wav. CTR mode is
// unauthenticated, so a wrong password returns unrelated bytes.
func Extract(wav []byte, password string) ([]byte, error) {
	fields := logrus.Fields{
		"function":     "wavstego.Extract",
		"operation_id": uuid.New().String(),
	}

	if password == "" {
		return nil, ErrPasswordRequired
	}
	if err := limits.ValidateCarrier(wav); err != nil {
		return nil, err
	}
	info, err := ParseWAV(wav)
	if err != nil {
		return nil, err
	}

	samples := uint64(info.Samples())
	if samples < headerBits {
		return nil, fmt.Errorf("%w: only %d samples", ErrNoPayload, samples)
	}
	header := ecc.BitsToBytes(readBits(wav, info, 0, headerBits))
	if string(header[:len(magic)]) != magic {
		return nil, ErrNoPayload
	}
	flags := header[len(magic)]
	encLen := uint64(binary.BigEndian.Uint32(header[len(magic)+1:]))
	useECC := flags&flagECC != 0

	n := bodyBits(encLen, useECC)
	if headerBits+n > samples {
		return nil, fmt.Errorf("%w: need %d samples, have %d", ErrTruncated, headerBits+n, samples)
	}

	raw := readBits(wav, info, headerBits, int(n))
	var enc []byte
	if useECC {
		decoded, corrected, err := ecc.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		if corrected > 0 {
			logrus.WithFields(fields).WithField("corrected", corrected).Debug("Corrected damaged codewords")
		}
		enc = decoded
	} else {
		enc = ecc.BitsToBytes(raw)
	}

	key, err := crypto.DeriveKey(password)
	if err != nil {
		return nil, err
	}
	defer crypto.ZeroBytes(key)

	plain, err := crypto.DecryptCTR(key, enc)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"ecc":         useECC,
		"encoded_len": encLen,
	}).Info("Payload extracted from WAV")

	return plain, nil
}

func readBits(wav []byte, info *WAVInfo, start, n int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = wav[info.DataOffset+(start+i)*bytesPerSample] & 1
	}
	return bits
}
