package carrier

import "context"

// Carrier is a re-openable frame sequence supplied by the external video pipeline.
type Carrier interface {
	// Size reports the encoded container size in bytes, used for admission control.
	Size() int64
	// Open starts a new pass over the frames from the beginning.
	Open(ctx context.Context) (Source, error)
}

// Source yields the frames of one pass over a carrier.
type Source interface {
	// Geometry returns the geometry shared by every frame.
	Geometry() Geometry
	// FrameCount returns the number of frames when the pipeline knows it up front.
	FrameCount() (uint64, bool)
	// Next returns the next frame, or io.EOF once the sequence is exhausted.
	// Implementations should return promptly when ctx is done.
	Next(ctx context.Context) (*Frame, error)
	// Close releases the pass.
	Close() error
}

// Sink accepts frames in order once the codec is done with them.
type Sink interface {
	WriteFrame(f *Frame) error
}
