package vidstego

import (
	"errors"
	"fmt"

	"github.com/opd-ai/vidstego/capacity"
	"github.com/opd-ai/vidstego/crypto"
	"github.com/opd-ai/vidstego/limits"
	"github.com/opd-ai/vidstego/lsb"
	"github.com/opd-ai/vidstego/payload"
)

// Configuration errors. Rejected before any processing.
var (
	// ErrConfig is matched by every configuration error.
	ErrConfig = errors.New("invalid configuration")

	// ErrPasswordRequired indicates an empty password.
	ErrPasswordRequired = fmt.Errorf("%w: %w", ErrConfig, crypto.ErrPasswordRequired)

	// ErrNoSecret indicates an embed request without secret content.
	ErrNoSecret = fmt.Errorf("%w: %w", ErrConfig, payload.ErrEmptySecret)
)

// Admission and capacity errors.
var (
	// ErrCarrierEmpty indicates a carrier reporting no data.
	ErrCarrierEmpty = limits.ErrCarrierEmpty

	// ErrCarrierTooLarge indicates a carrier above Options.MaxCarrierBytes.
	ErrCarrierTooLarge = limits.ErrCarrierTooLarge

	// ErrCapacity indicates the payload does not fit the carrier.
	ErrCapacity = capacity.ErrInsufficientCapacity
)

// Extraction errors.
var (
	// ErrNoPayload indicates the carrier holds no payload in this format.
	ErrNoPayload = lsb.ErrNoPayload

	// ErrInvalidLength indicates a header with a zero length field.
	ErrInvalidLength = lsb.ErrInvalidLength

	// ErrTruncatedCarrier indicates the carrier ends inside the payload.
	ErrTruncatedCarrier = lsb.ErrTruncatedCarrier

	// ErrIncorrectPassword covers every failure to reverse the payload.
	ErrIncorrectPassword = errors.New("incorrect password or corrupted payload")
)

// Internal and pipeline errors.
var (
	// ErrEmbedOverrun indicates capacity planning and embedding disagree.
	ErrEmbedOverrun = lsb.ErrEmbedOverrun

	// ErrRemuxFailed indicates the audio re-mux failed under RemuxRequired.
	ErrRemuxFailed = errors.New("audio re-mux failed")
)
