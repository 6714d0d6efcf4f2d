package vidstego

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Remuxer restores the original audio track onto the payload-bearing video.
// The external pipeline implements it; it must copy the video stream
// without re-encoding, since any lossy pass destroys the payload.
type Remuxer interface {
	Remux(ctx context.Context) error
}

// RemuxFunc adapts a function to the Remuxer interface.
type RemuxFunc func(ctx context.Context) error

// Remux calls f(ctx).
func (f RemuxFunc) Remux(ctx context.Context) error {
	return f(ctx)
}

// remux runs r under the configured policy and reports whether audio was kept.
func (c *Codec) remux(ctx context.Context, r Remuxer, fields logrus.Fields) (bool, error) {
	if r == nil {
		return false, nil
	}

	err := r.Remux(ctx)
	if err == nil {
		return true, nil
	}

	if c.options.RemuxPolicy == RemuxRequired {
		logrus.WithFields(fields).WithError(err).Error("Audio re-mux failed")
		return false, fmt.Errorf("%w: %w", ErrRemuxFailed, err)
	}

	logrus.WithFields(fields).WithError(err).Warn("Audio re-mux failed; returning video without audio")
	return false, nil
}
