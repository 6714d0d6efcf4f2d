package carrier

import "errors"

var (
	// ErrInvalidGeometry indicates a zero or overflowing frame geometry.
	ErrInvalidGeometry = errors.New("invalid frame geometry")

	// ErrFrameSize indicates a frame buffer whose length does not match its geometry.
	ErrFrameSize = errors.New("frame size does not match geometry")

	// ErrPartialFrame indicates a raw stream ended in the middle of a frame.
	ErrPartialFrame = errors.New("stream ended mid-frame")

	// ErrClosed indicates use of a closed source or sink.
	ErrClosed = errors.New("carrier closed")
)
