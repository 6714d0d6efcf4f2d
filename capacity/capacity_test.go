package capacity

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/vidstego/carrier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	assert.Equal(t, uint64(480), Bits(10, 4, 4, 3))
	assert.Equal(t, uint64(0), Bits(0, 4, 4, 3))
	assert.Equal(t, uint64(math.MaxUint64), Bits(math.MaxUint64, 2, 1, 1))
	assert.Equal(t, uint64(math.MaxUint64), Bits(1<<40, math.MaxUint32, math.MaxUint32, 1))
}

func TestBitsFor(t *testing.T) {
	assert.Equal(t, uint64(64), BitsFor(0))
	assert.Equal(t, uint64(352), BitsFor(36))
}

func TestPlan_ExactBoundary(t *testing.T) {
	// 11 frames of 4x8x1 samples hold exactly 352 bits.
	assert.NoError(t, Plan(352, 11, 4, 8, 1))

	err := Plan(353, 11, 4, 8, 1)
	require.Error(t, err)

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, uint64(353), capErr.Needed)
	assert.Equal(t, uint64(352), capErr.Available)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
}

func TestCapacityError_Message(t *testing.T) {
	err := &CapacityError{Needed: 800, Available: 480}
	assert.Contains(t, err.Error(), "required 800 bits")
	assert.Contains(t, err.Error(), "capacity 480 bits")
}

func TestPlanGeometry(t *testing.T) {
	g := carrier.Geometry{Width: 4, Height: 4, Channels: 3}
	assert.NoError(t, PlanGeometry(480, 10, g))
	assert.ErrorIs(t, PlanGeometry(481, 10, g), ErrInsufficientCapacity)
}

func TestCountFrames(t *testing.T) {
	m, err := carrier.NewBlankMemory(carrier.Geometry{Width: 2, Height: 2, Channels: 1}, 7, 0x55)
	require.NoError(t, err)
	m.HideFrameCount()

	n, err := CountFrames(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), n)

	// The pre-pass leaves the stored frames untouched.
	for i := 0; i < m.Len(); i++ {
		assert.Equal(t, []byte{0x55, 0x55, 0x55, 0x55}, m.Frame(i))
	}
}

func TestCountFrames_Cancelled(t *testing.T) {
	m, err := carrier.NewBlankMemory(carrier.Geometry{Width: 1, Height: 1, Channels: 1}, 3, 0)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = CountFrames(ctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}
