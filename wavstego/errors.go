package wavstego

import (
	"errors"

	"github.com/opd-ai/vidstego/crypto"
)

var (
	// ErrNotWAV indicates the input is not a RIFF/WAVE file.
	ErrNotWAV = errors.New("not a RIFF/WAVE file")

	// ErrUnsupportedFormat indicates audio other than 16-bit PCM.
	ErrUnsupportedFormat = errors.New("require PCM 16-bit WAV")

	// ErrNoDataChunk indicates a WAV file without sample data.
	ErrNoDataChunk = errors.New("no data chunk")

	// ErrCapacity indicates the payload needs more samples than the file has.
	ErrCapacity = errors.New("not enough capacity")

	// ErrNoPayload indicates the samples do not start with the payload magic.
	ErrNoPayload = errors.New("no payload found")

	// ErrTruncated indicates the declared payload runs past the last sample.
	ErrTruncated = errors.New("truncated payload")

	// ErrPasswordRequired indicates an empty password.
	ErrPasswordRequired = crypto.ErrPasswordRequired
)
