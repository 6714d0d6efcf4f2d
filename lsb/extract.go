package lsb

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/opd-ai/vidstego/capacity"
	"github.com/opd-ai/vidstego/carrier"
	"github.com/opd-ai/vidstego/limits"
	"github.com/opd-ai/vidstego/payload"
	"github.com/sirupsen/logrus"
)

// readChunk bounds each allocation while reading a payload whose length
// comes from an untrusted header.
const readChunk = 64 * 1024

// BitReader reassembles bytes from sample LSBs, pulling frames from its
// source only when the current one is used up.
type BitReader struct {
	src      carrier.Source
	geometry carrier.Geometry
	frame    []byte
	idx      int
	st       Stats
}

// NewBitReader creates a reader positioned at the first sample of src.
func NewBitReader(src carrier.Source) *BitReader {
	return &BitReader{src: src, geometry: src.Geometry()}
}

// Stats returns the bits and frames consumed so far.
func (r *BitReader) Stats() Stats {
	return r.st
}

// ReadBit returns the LSB of the next sample.
func (r *BitReader) ReadBit(ctx context.Context) (byte, error) {
	for r.idx >= len(r.frame) {
		f, err := r.src.Next(ctx)
		if err != nil {
			return 0, err
		}
		if f.Geometry != r.geometry {
			return 0, fmt.Errorf("%w: frame %d is %s, carrier is %s", ErrGeometryMismatch, f.Seq, f.Geometry, r.geometry)
		}
		if err := f.Validate(); err != nil {
			return 0, err
		}
		r.frame = f.Data
		r.idx = 0
		r.st.Frames++
		r.st.FramesTouched++
	}
	bit := r.frame[r.idx] & 1
	r.idx++
	r.st.Bits++
	return bit, nil
}

// ReadFull fills p MSB-first. It returns io.ErrUnexpectedEOF when the
// carrier ends part way through p, and io.EOF when it ends before any bit.
func (r *BitReader) ReadFull(ctx context.Context, p []byte) error {
	for i := range p {
		var b byte
		for k := 0; k < 8; k++ {
			bit, err := r.ReadBit(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) && (i > 0 || k > 0) {
					return io.ErrUnexpectedEOF
				}
				return err
			}
			b = b<<1 | bit
		}
		p[i] = b
	}
	return nil
}

// Extract reads the header and the armored payload it describes from src.
// It reads no further than the end of the payload.
func Extract(ctx context.Context, src carrier.Source) ([]byte, Stats, error) {
	r := NewBitReader(src)

	header := make([]byte, limits.HeaderSize)
	if err := r.ReadFull(ctx, header); err != nil {
		if carrierEnded(err) {
			return nil, r.Stats(), fmt.Errorf("%w: carrier holds fewer than %d bits: %w", ErrNoPayload, limits.HeaderBits, err)
		}
		return nil, r.Stats(), fmt.Errorf("failed to read header: %w", err)
	}

	length, err := payload.ParseHeader(header)
	if err != nil {
		return nil, r.Stats(), fmt.Errorf("%w: %w", ErrNoPayload, err)
	}
	if length == 0 {
		return nil, r.Stats(), fmt.Errorf("%w: header declares %d bytes", ErrInvalidLength, length)
	}

	needed := capacity.BitsFor(uint64(length))
	if frames, ok := src.FrameCount(); ok {
		g := src.Geometry()
		if available := capacity.Bits(frames, g.Width, g.Height, g.Channels); needed > available {
			return nil, r.Stats(), fmt.Errorf("%w: header needs %d bits, carrier has %d", ErrTruncatedCarrier, needed, available)
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":     "Extract",
		"payload_len":  length,
		"needed_bits":  needed,
		"header_frame": r.st.Frames,
	}).Debug("Payload header found")

	body, err := readPayload(ctx, r, int(length))
	if err != nil {
		return nil, r.Stats(), err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Extract",
		"bits":     r.st.Bits,
		"frames":   r.st.Frames,
	}).Debug("LSB extract completed")

	return body, r.Stats(), nil
}

func readPayload(ctx context.Context, r *BitReader, length int) ([]byte, error) {
	body := make([]byte, 0, min(length, readChunk))
	for len(body) < length {
		n := min(length-len(body), readChunk)
		start := len(body)
		body = append(body, make([]byte, n)...)
		if err := r.ReadFull(ctx, body[start:]); err != nil {
			if carrierEnded(err) {
				return nil, fmt.Errorf("%w: read %d of %d payload bytes: %w", ErrTruncatedCarrier, start, length, err)
			}
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}
	}
	return body, nil
}

// carrierEnded reports whether err means the carrier ran out of samples,
// including a stream cut off inside a frame.
func carrierEnded(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, carrier.ErrPartialFrame)
}
