package vidstego

import (
	"fmt"

	"github.com/opd-ai/vidstego/limits"
)

// RemuxPolicy decides what happens when the original audio cannot be
// restored onto the payload-bearing video.
type RemuxPolicy uint8

const (
	// RemuxBestEffort logs a warning and returns the video without audio.
	RemuxBestEffort RemuxPolicy = iota
	// RemuxRequired fails the embed with ErrRemuxFailed.
	RemuxRequired
)

// String returns a readable policy name.
func (p RemuxPolicy) String() string {
	switch p {
	case RemuxBestEffort:
		return "best_effort"
	case RemuxRequired:
		return "required"
	default:
		return fmt.Sprintf("RemuxPolicy(%d)", uint8(p))
	}
}

// Options contains configuration options for creating a Codec.
type Options struct {
	// MaxCarrierBytes caps Carrier.Size() for both embed and extract.
	MaxCarrierBytes int64
	// RemuxPolicy applies when an EmbedRequest carries a Remuxer.
	RemuxPolicy RemuxPolicy
	// Prefetch decodes the next frame while the current one is processed.
	Prefetch bool
}

// NewOptions returns the default options.
func NewOptions() *Options {
	return &Options{
		MaxCarrierBytes: limits.MaxCarrierBytes,
		RemuxPolicy:     RemuxBestEffort,
		Prefetch:        true,
	}
}

// Validate checks the options for consistency.
func (o *Options) Validate() error {
	if o.MaxCarrierBytes <= 0 {
		return fmt.Errorf("%w: MaxCarrierBytes must be positive, got %d", ErrConfig, o.MaxCarrierBytes)
	}
	if o.RemuxPolicy > RemuxRequired {
		return fmt.Errorf("%w: unknown remux policy %s", ErrConfig, o.RemuxPolicy)
	}
	return nil
}
