package lsb

import "errors"

var (
	// ErrEmbedOverrun indicates the carrier ran out of samples before the
	// bitstream was fully embedded. Capacity planning should make this
	// impossible, so it signals a bug rather than bad input.
	ErrEmbedOverrun = errors.New("carrier exhausted before embedding completed")

	// ErrNoPayload indicates the carrier holds no payload in this format.
	ErrNoPayload = errors.New("no embedded payload found")

	// ErrInvalidLength indicates a header whose length field is zero.
	ErrInvalidLength = errors.New("invalid embedded payload length")

	// ErrTruncatedCarrier indicates the carrier ended before the payload the
	// header promises was fully read.
	ErrTruncatedCarrier = errors.New("carrier ended before payload was fully read")

	// ErrGeometryMismatch indicates a frame whose geometry differs from its source.
	ErrGeometryMismatch = errors.New("frame geometry differs from carrier geometry")
)
