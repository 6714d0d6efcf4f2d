package carrier

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// Memory is an in-memory carrier. Opening it yields copies of its frames,
// so the stored frames are never mutated by embedding.
type Memory struct {
	geometry  Geometry
	frames    [][]byte
	size      int64
	hideCount bool
}

// NewMemory creates a carrier from frame buffers that all match g.
func NewMemory(g Geometry, frames [][]byte) (*Memory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	want := g.Samples()
	var size int64
	for i, f := range frames {
		if len(f) != want {
			return nil, fmt.Errorf("%w: frame %d has %d samples, want %d", ErrFrameSize, i, len(f), want)
		}
		size += int64(len(f))
	}
	return &Memory{geometry: g, frames: frames, size: size}, nil
}

// NewBlankMemory creates count frames of geometry g filled with fill.
func NewBlankMemory(g Geometry, count int, fill byte) (*Memory, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	frames := make([][]byte, count)
	for i := range frames {
		frames[i] = bytes.Repeat([]byte{fill}, g.Samples())
	}
	return NewMemory(g, frames)
}

// HideFrameCount makes sources report an unknown frame count, the way a
// streamed container without an index does.
func (m *Memory) HideFrameCount() *Memory {
	m.hideCount = true
	return m
}

// SetSize overrides the reported container size.
func (m *Memory) SetSize(size int64) *Memory {
	m.size = size
	return m
}

// Size returns the total sample bytes unless overridden with SetSize.
func (m *Memory) Size() int64 {
	return m.size
}

// Geometry returns the carrier geometry.
func (m *Memory) Geometry() Geometry {
	return m.geometry
}

// Len returns the number of frames.
func (m *Memory) Len() int {
	return len(m.frames)
}

// Frame returns the stored buffer of frame i. Callers must not modify it.
func (m *Memory) Frame(i int) []byte {
	return m.frames[i]
}

// Truncate returns a carrier holding only the first n frames.
func (m *Memory) Truncate(n int) *Memory {
	if n > len(m.frames) {
		n = len(m.frames)
	}
	out := &Memory{geometry: m.geometry, frames: m.frames[:n], hideCount: m.hideCount}
	out.size = int64(n) * int64(m.geometry.Samples())
	return out
}

// Open starts a pass over copies of the stored frames.
func (m *Memory) Open(ctx context.Context) (Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memorySource{carrier: m}, nil
}

type memorySource struct {
	carrier *Memory
	next    int
	closed  bool
}

func (s *memorySource) Geometry() Geometry {
	return s.carrier.geometry
}

func (s *memorySource) FrameCount() (uint64, bool) {
	if s.carrier.hideCount {
		return 0, false
	}
	return uint64(len(s.carrier.frames)), true
}

func (s *memorySource) Next(ctx context.Context) (*Frame, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.carrier.frames) {
		return nil, io.EOF
	}
	f := &Frame{
		Seq:      uint64(s.next),
		Geometry: s.carrier.geometry,
		Data:     bytes.Clone(s.carrier.frames[s.next]),
	}
	s.next++
	return f, nil
}

func (s *memorySource) Close() error {
	s.closed = true
	return nil
}

// MemorySink collects written frames in order.
type MemorySink struct {
	geometry Geometry
	frames   [][]byte
}

// NewMemorySink creates a sink for frames of geometry g.
func NewMemorySink(g Geometry) *MemorySink {
	return &MemorySink{geometry: g}
}

// WriteFrame stores the frame buffer; ownership passes to the sink.
func (s *MemorySink) WriteFrame(f *Frame) error {
	if f.Geometry != s.geometry {
		return fmt.Errorf("%w: frame %d is %s, sink expects %s", ErrFrameSize, f.Seq, f.Geometry, s.geometry)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	s.frames = append(s.frames, f.Data)
	return nil
}

// Len returns the number of frames written so far.
func (s *MemorySink) Len() int {
	return len(s.frames)
}

// Carrier returns the written frames as a carrier ready for extraction.
func (s *MemorySink) Carrier() (*Memory, error) {
	return NewMemory(s.geometry, s.frames)
}
