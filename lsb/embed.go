package lsb

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/vidstego/carrier"
	"github.com/sirupsen/logrus"
)

// Stats summarizes one embed or extract pass.
type Stats struct {
	// Bits is the number of bitstream bits written or read.
	Bits uint64
	// FramesTouched counts frames whose samples carried payload bits.
	FramesTouched uint64
	// Frames counts frames pulled from the source.
	Frames uint64
}

// Embed writes bitstream into the sample LSBs of src's frames and passes
// every frame, modified or not, to sink in order. The caller must have
// checked capacity; running out of frames early returns ErrEmbedOverrun.
func Embed(ctx context.Context, src carrier.Source, sink carrier.Sink, bitstream []byte) (Stats, error) {
	cur := NewCursor(bitstream)
	geometry := src.Geometry()
	var st Stats

	logrus.WithFields(logrus.Fields{
		"function":   "Embed",
		"total_bits": cur.Total(),
		"geometry":   geometry.String(),
	}).Debug("Starting LSB embed")

	for {
		f, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return st, fmt.Errorf("failed to read frame %d: %w", st.Frames, err)
		}
		st.Frames++

		if f.Geometry != geometry {
			return st, fmt.Errorf("%w: frame %d is %s, carrier is %s", ErrGeometryMismatch, f.Seq, f.Geometry, geometry)
		}
		if err := f.Validate(); err != nil {
			return st, err
		}

		if cur.Remaining() > 0 {
			st.Bits += embedFrame(f.Data, cur)
			st.FramesTouched++
		}

		if err := sink.WriteFrame(f); err != nil {
			return st, fmt.Errorf("failed to write frame %d: %w", f.Seq, err)
		}
	}

	if cur.Remaining() > 0 {
		logrus.WithFields(logrus.Fields{
			"function":      "Embed",
			"embedded_bits": cur.Position(),
			"total_bits":    cur.Total(),
			"frames":        st.Frames,
		}).Error("Carrier exhausted before bitstream was embedded; capacity check and embed disagree")
		return st, fmt.Errorf("%w: embedded %d of %d bits across %d frames",
			ErrEmbedOverrun, cur.Position(), cur.Total(), st.Frames)
	}

	logrus.WithFields(logrus.Fields{
		"function":       "Embed",
		"bits":           st.Bits,
		"frames_touched": st.FramesTouched,
		"frames":         st.Frames,
	}).Debug("LSB embed completed")

	return st, nil
}

// embedFrame writes bits into samples until either runs out.
func embedFrame(samples []byte, cur *Cursor) uint64 {
	var n uint64
	for i := range samples {
		bit, ok := cur.NextBit()
		if !ok {
			break
		}
		samples[i] = (samples[i] & 0xFE) | bit
		n++
	}
	return n
}
