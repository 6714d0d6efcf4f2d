// Package capacity decides whether a payload fits a carrier before any
// frame is touched.
//
// A carrier offers one bit per sample, so its capacity is
// frames*width*height*channels bits. The bitstream needs (8+L)*8 bits for an
// armored payload of L bytes. Plan compares the two; CountFrames supplies the
// frame count for carriers that cannot report it up front.
package capacity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/opd-ai/vidstego/carrier"
	"github.com/opd-ai/vidstego/limits"
	"github.com/sirupsen/logrus"
)

// ErrInsufficientCapacity is matched by every *CapacityError.
var ErrInsufficientCapacity = errors.New("payload exceeds carrier capacity")

// CapacityError reports how many bits a payload needs and how many the carrier offers.
type CapacityError struct {
	Needed    uint64
	Available uint64
}

// Error formats both numbers in bits and approximate bytes.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload too large for this carrier: required %d bits (~%d bytes), capacity %d bits (~%d bytes); shorten the secret or use a longer or larger video",
		e.Needed, e.Needed/8, e.Available, e.Available/8)
}

// Is makes errors.Is(err, ErrInsufficientCapacity) true.
func (e *CapacityError) Is(target error) bool {
	return target == ErrInsufficientCapacity
}

// Bits returns frames*width*height*channels, saturating at math.MaxUint64.
func Bits(frames uint64, width, height, channels uint32) uint64 {
	n := frames
	for _, f := range []uint64{uint64(width), uint64(height), uint64(channels)} {
		hi, lo := bits.Mul64(n, f)
		if hi != 0 {
			return math.MaxUint64
		}
		n = lo
	}
	return n
}

// BitsFor returns the bitstream length for an armored payload of encodedLen bytes.
func BitsFor(encodedLen uint64) uint64 {
	return (limits.HeaderSize + encodedLen) * 8
}

// Plan fails with *CapacityError when needed exceeds the carrier capacity.
func Plan(needed, frames uint64, width, height, channels uint32) error {
	available := Bits(frames, width, height, channels)

	logrus.WithFields(logrus.Fields{
		"function":       "Plan",
		"needed_bits":    needed,
		"available_bits": available,
		"frames":         frames,
		"geometry":       fmt.Sprintf("%dx%dx%d", width, height, channels),
	}).Debug("Planning payload placement")

	if needed > available {
		return &CapacityError{Needed: needed, Available: available}
	}
	return nil
}

// PlanGeometry is Plan with the dimensions taken from a carrier geometry.
func PlanGeometry(needed, frames uint64, g carrier.Geometry) error {
	return Plan(needed, frames, g.Width, g.Height, g.Channels)
}

// CountFrames opens c, pulls every frame without modifying or keeping it,
// and closes it again. It is the fallback for sources that do not know
// their frame count.
func CountFrames(ctx context.Context, c carrier.Carrier) (uint64, error) {
	src, err := c.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to open carrier for counting: %w", err)
	}
	defer src.Close()

	var n uint64
	for {
		_, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("frame count pre-pass failed after %d frames: %w", n, err)
		}
		n++
	}

	logrus.WithFields(logrus.Fields{
		"function": "CountFrames",
		"frames":   n,
	}).Debug("Counted carrier frames")

	return n, nil
}
