package carrier

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// RawCarrier reads packed rawvideo: frames of Geometry.Samples() bytes back
// to back with no container framing. The open function is called once per
// pass, so a carrier can be re-opened after a frame-counting pre-pass.
type RawCarrier struct {
	size       int64
	geometry   Geometry
	frameCount uint64
	open       func() (io.ReadCloser, error)
}

// NewRawCarrier creates a raw stream carrier. size is the encoded container
// size used for admission; frameCount is 0 when the pipeline cannot tell.
func NewRawCarrier(size int64, g Geometry, frameCount uint64, open func() (io.ReadCloser, error)) (*RawCarrier, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if open == nil {
		return nil, errors.New("raw carrier requires an open function")
	}
	return &RawCarrier{size: size, geometry: g, frameCount: frameCount, open: open}, nil
}

// Size returns the encoded container size.
func (c *RawCarrier) Size() int64 {
	return c.size
}

// Open starts a new pass by calling the open function.
func (c *RawCarrier) Open(ctx context.Context) (Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open raw stream: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "RawCarrier.Open",
		"geometry":    c.geometry.String(),
		"frame_count": c.frameCount,
	}).Debug("Opened raw frame stream")

	return &rawSource{r: r, geometry: c.geometry, frameCount: c.frameCount}, nil
}

type rawSource struct {
	r          io.ReadCloser
	geometry   Geometry
	frameCount uint64
	seq        uint64
	closed     bool
}

func (s *rawSource) Geometry() Geometry {
	return s.geometry
}

func (s *rawSource) FrameCount() (uint64, bool) {
	return s.frameCount, s.frameCount > 0
}

func (s *rawSource) Next(ctx context.Context) (*Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buf := make([]byte, s.geometry.Samples())
	if _, err := io.ReadFull(s.r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame %d", ErrPartialFrame, s.seq)
		}
		return nil, fmt.Errorf("failed to read frame %d: %w", s.seq, err)
	}

	f := &Frame{Seq: s.seq, Geometry: s.geometry, Data: buf}
	s.seq++
	return f, nil
}

func (s *rawSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.r.Close()
}

// RawSink writes frames as packed rawvideo, ready to pipe into an encoder.
type RawSink struct {
	w        io.Writer
	geometry Geometry
	written  uint64
}

// NewRawSink creates a sink writing frames of geometry g to w.
func NewRawSink(w io.Writer, g Geometry) *RawSink {
	return &RawSink{w: w, geometry: g}
}

// WriteFrame writes the frame's samples.
func (s *RawSink) WriteFrame(f *Frame) error {
	if f.Geometry != s.geometry {
		return fmt.Errorf("%w: frame %d is %s, sink expects %s", ErrFrameSize, f.Seq, f.Geometry, s.geometry)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if _, err := s.w.Write(f.Data); err != nil {
		return fmt.Errorf("failed to write frame %d: %w", f.Seq, err)
	}
	s.written++
	return nil
}

// Written returns the number of frames written.
func (s *RawSink) Written() uint64 {
	return s.written
}
