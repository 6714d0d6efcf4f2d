package carrier

import (
	"fmt"
	"math"
	"math/bits"
)

// Geometry describes the shape shared by every frame of one carrier.
type Geometry struct {
	Width    uint32
	Height   uint32
	Channels uint32
}

// Samples returns width*height*channels, the number of bytes in one frame.
func (g Geometry) Samples() int {
	n, ok := g.samples()
	if !ok {
		return 0
	}
	return int(n)
}

func (g Geometry) samples() (uint64, bool) {
	hi, wh := bits.Mul64(uint64(g.Width), uint64(g.Height))
	if hi != 0 {
		return 0, false
	}
	hi, n := bits.Mul64(wh, uint64(g.Channels))
	if hi != 0 || n > math.MaxInt {
		return 0, false
	}
	return n, true
}

// Validate rejects empty dimensions and frames too large to address.
func (g Geometry) Validate() error {
	if g.Width == 0 || g.Height == 0 || g.Channels == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidGeometry, g)
	}
	if _, ok := g.samples(); !ok {
		return fmt.Errorf("%w: %s overflows", ErrInvalidGeometry, g)
	}
	return nil
}

// String returns the geometry as WxHxC.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%dx%d", g.Width, g.Height, g.Channels)
}

// Frame is one raw frame of a carrier.
type Frame struct {
	// Seq is the zero-based position of the frame within its carrier.
	Seq uint64
	// Geometry is shared by all frames of the carrier.
	Geometry Geometry
	// Data holds Geometry.Samples() samples in the pipeline's native order.
	Data []byte
}

// Validate checks that Data matches Geometry.
func (f *Frame) Validate() error {
	if want := f.Geometry.Samples(); len(f.Data) != want {
		return fmt.Errorf("%w: frame %d has %d samples, want %d", ErrFrameSize, f.Seq, len(f.Data), want)
	}
	return nil
}
