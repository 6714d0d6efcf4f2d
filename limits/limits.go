// Package limits provides centralized size limits for vidstego carriers.
// This ensures consistent admission control for both embed and extract.
package limits

import (
	"errors"
	"fmt"
	"math"
)

const (
	// HeaderSize is the size of the payload header: 4 bytes magic + 4 bytes length
	HeaderSize = 8

	// HeaderBits is the number of carrier samples consumed by the header
	HeaderBits = HeaderSize * 8

	// MaxCarrierBytes caps the encoded container size accepted for processing (64 MiB)
	MaxCarrierBytes = 64 * 1024 * 1024

	// MaxEncodedPayload is the largest armored payload the length field can hold
	MaxEncodedPayload = math.MaxUint32
)

var (
	// ErrCarrierEmpty indicates a carrier with no data was provided
	ErrCarrierEmpty = errors.New("empty carrier")

	// ErrCarrierTooLarge indicates the carrier exceeds the admission cap
	ErrCarrierTooLarge = errors.New("carrier too large")

	// ErrPayloadTooLarge indicates the encoded payload does not fit the header length field
	ErrPayloadTooLarge = errors.New("encoded payload too large")
)

// ValidateCarrierSize checks a carrier's encoded size against maxSize.
// Returns an error with context including the actual and maximum sizes.
func ValidateCarrierSize(size, maxSize int64) error {
	if size <= 0 {
		return ErrCarrierEmpty
	}
	if size > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d (use a shorter or lower-resolution video)",
			ErrCarrierTooLarge, size, maxSize)
	}
	return nil
}

// ValidateCarrier checks an in-memory carrier against MaxCarrierBytes.
func ValidateCarrier(data []byte) error {
	return ValidateCarrierSize(int64(len(data)), MaxCarrierBytes)
}

// ValidateEncodedPayload checks that an armored payload length can be
// stored in the header's uint32 length field.
func ValidateEncodedPayload(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: encoded payload is empty", ErrPayloadTooLarge)
	}
	if uint64(n) > MaxEncodedPayload {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrPayloadTooLarge, n, uint64(MaxEncodedPayload))
	}
	return nil
}
