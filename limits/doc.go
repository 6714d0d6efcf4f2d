// Package limits provides centralized size constants and admission checks
// for vidstego carriers and payloads. Every embed and extract call is gated
// by the same checks so oversized input is rejected before any frame is
// decoded or mutated.
//
// # Size Hierarchy
//
//   - HeaderSize (8 bytes): the fixed payload header, a 4-byte magic marker
//     followed by a big-endian uint32 length.
//
//   - HeaderBits (64 bits): the number of carrier samples needed to hold the
//     header alone. Extraction reads exactly this many bits before it knows
//     anything else about the payload.
//
//   - MaxCarrierBytes (64 MiB): the largest encoded container accepted for
//     embedding or extraction. Decoding a larger video would expand to far
//     more raw frame memory than a small deployment can afford.
//
//   - MaxEncodedPayload: the largest armored payload the header length field
//     can describe (math.MaxUint32).
//
// # Validation Functions
//
//	err := limits.ValidateCarrierSize(size, limits.MaxCarrierBytes)
//	if errors.Is(err, limits.ErrCarrierTooLarge) {
//	    // ask for a shorter or lower-resolution video
//	}
//
// # Error Types
//
//   - ErrCarrierEmpty: the carrier reports a zero or negative size
//   - ErrCarrierTooLarge: the carrier exceeds the configured cap
//   - ErrPayloadTooLarge: the armored payload cannot be described by the header
package limits
