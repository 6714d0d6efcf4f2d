// Package payload implements the hidden payload format: the secret itself,
// its serialized record, and the fixed header that precedes it in a carrier.
//
// # Secrets
//
// A [Secret] is either text or a named file:
//
//	s := payload.NewText("meet at noon")
//	f := payload.NewFile("plans.pdf", pdfBytes) // empty name becomes "secret.bin"
//
// # Record
//
// [Serialize] turns a secret into a small JSON record with a "type"
// discriminator:
//
//	{"type":"text","data":"meet at noon"}
//	{"type":"file","filename":"plans.pdf","data":"<base64 of the file>"}
//
// [Deserialize] validates every field explicitly and fails with [ErrFormat]
// for malformed records and [ErrDecode] for bad file content.
//
// # Wire format
//
//	byte 0..3     magic "VST2"
//	byte 4..7     big-endian uint32 L, the armored payload length
//	byte 8..8+L-1 base64(XOR(record, password))
//
// [Encode] produces the armored bytes, [Bitstream] prepends the header, and
// [ParseHeader] is the canonical "is there a payload here" check.
package payload
