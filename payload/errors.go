package payload

import "errors"

var (
	// ErrFormat indicates the recovered bytes are not a valid payload record.
	ErrFormat = errors.New("invalid payload record")

	// ErrDecode indicates file content in a record failed base64 decoding.
	ErrDecode = errors.New("invalid file content encoding")

	// ErrMagicMismatch indicates the header does not start with Magic.
	ErrMagicMismatch = errors.New("payload magic mismatch")

	// ErrShortHeader indicates fewer than HeaderSize bytes were supplied.
	ErrShortHeader = errors.New("payload header too short")

	// ErrEmptySecret indicates a secret with no content.
	ErrEmptySecret = errors.New("no secret content supplied")

	// ErrUnknownKind indicates a Secret with an unrecognized Kind.
	ErrUnknownKind = errors.New("unknown secret kind")
)
