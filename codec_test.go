package vidstego

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/opd-ai/vidstego/carrier"
	"github.com/opd-ai/vidstego/limits"
	"github.com/opd-ai/vidstego/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioGeometry = carrier.Geometry{Width: 4, Height: 4, Channels: 3}

func noisyCarrier(t *testing.T, g carrier.Geometry, count int, seed int64) *carrier.Memory {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	frames := make([][]byte, count)
	for i := range frames {
		frames[i] = make([]byte, g.Samples())
		rng.Read(frames[i])
	}
	m, err := carrier.NewMemory(g, frames)
	require.NoError(t, err)
	return m
}

func newCodec(t *testing.T, configure func(*Options)) *Codec {
	t.Helper()
	opts := NewOptions()
	if configure != nil {
		configure(opts)
	}
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func embed(t *testing.T, c *Codec, m *carrier.Memory, s *payload.Secret, password string) (*carrier.Memory, *EmbedResult) {
	t.Helper()
	sink := carrier.NewMemorySink(m.Geometry())
	res, err := c.Embed(context.Background(), &EmbedRequest{
		Carrier:  m,
		Sink:     sink,
		Secret:   s,
		Password: password,
	})
	require.NoError(t, err)
	out, err := sink.Carrier()
	require.NoError(t, err)
	return out, res
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, *NewOptions(), c.Options())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(&Options{MaxCarrierBytes: 0})
	assert.ErrorIs(t, err, ErrConfig)

	_, err = New(&Options{MaxCarrierBytes: 1, RemuxPolicy: RemuxPolicy(9)})
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNew_CopiesOptions(t *testing.T) {
	opts := NewOptions()
	c, err := New(opts)
	require.NoError(t, err)

	opts.MaxCarrierBytes = 1
	assert.Equal(t, int64(limits.MaxCarrierBytes), c.Options().MaxCarrierBytes)
}

func TestRemuxPolicy_String(t *testing.T) {
	assert.Equal(t, "best_effort", RemuxBestEffort.String())
	assert.Equal(t, "required", RemuxRequired.String())
	assert.Equal(t, "RemuxPolicy(7)", RemuxPolicy(7).String())
}

func TestEmbed_ConcreteScenario(t *testing.T) {
	c := newCodec(t, nil)
	m := noisyCarrier(t, scenarioGeometry, 10, 1)

	out, res := embed(t, c, m, payload.NewText("hi"), "k")

	assert.NotEmpty(t, res.OperationID)
	assert.Equal(t, 36, res.EncodedLen)
	assert.Equal(t, uint64(352), res.BitsEmbedded)
	assert.Equal(t, uint64(480), res.CapacityBits)
	assert.Equal(t, uint64(10), res.Frames)
	assert.Equal(t, uint64(8), res.FramesTouched)
	assert.False(t, res.AudioRemuxed)
	assert.Equal(t, 10, out.Len())

	for i := 0; i < out.Len(); i++ {
		orig, got := m.Frame(i), out.Frame(i)
		for j := range orig {
			assert.Equal(t, orig[j]&0xFE, got[j]&0xFE, "frame %d sample %d", i, j)
		}
	}
	assert.Equal(t, m.Frame(9), out.Frame(9))

	s, err := c.Extract(context.Background(), out, "k")
	require.NoError(t, err)
	assert.Equal(t, payload.KindText, s.Kind)
	assert.Equal(t, "hi", s.Text)
}

func TestRoundTrip(t *testing.T) {
	for _, prefetch := range []bool{true, false} {
		c := newCodec(t, func(o *Options) { o.Prefetch = prefetch })
		tests := []struct {
			name   string
			secret *payload.Secret
		}{
			{"text", payload.NewText("meet at the usual place, 0600")},
			{"unicode text", payload.NewText("naïve café ✓")},
			{"file", payload.NewFile("notes.txt", []byte("line one\nline two\n"))},
			{"binary file", payload.NewFile("blob.bin", []byte{0, 1, 2, 0xFF, 0xFE, 0x80})},
			{"default filename", payload.NewFile("", []byte("x"))},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m := noisyCarrier(t, carrier.Geometry{Width: 16, Height: 8, Channels: 3}, 12, 7)
				out, _ := embed(t, c, m, tt.secret, "correct horse")

				got, err := c.Extract(context.Background(), out, "correct horse")
				require.NoError(t, err)
				assert.True(t, tt.secret.Equal(got), "got %s", got)
			})
		}
	}
}

func TestEmbed_Deterministic(t *testing.T) {
	c := newCodec(t, nil)
	m := noisyCarrier(t, scenarioGeometry, 10, 3)

	a, _ := embed(t, c, m, payload.NewText("hi"), "k")
	b, _ := embed(t, c, m, payload.NewText("hi"), "k")

	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.Frame(i), b.Frame(i))
	}
}

func TestEmbed_CapacityBoundary(t *testing.T) {
	c := newCodec(t, nil)

	// 11 frames of 4x8x1 hold exactly the 352 bits "hi" needs.
	exact := noisyCarrier(t, carrier.Geometry{Width: 4, Height: 8, Channels: 1}, 11, 5)
	out, res := embed(t, c, exact, payload.NewText("hi"), "k")
	assert.Equal(t, res.CapacityBits, res.BitsEmbedded)

	s, err := c.Extract(context.Background(), out, "k")
	require.NoError(t, err)
	assert.Equal(t, "hi", s.Text)

	// One frame of 27x13x1 holds 351.
	short := noisyCarrier(t, carrier.Geometry{Width: 27, Height: 13, Channels: 1}, 1, 5)
	sink := carrier.NewMemorySink(short.Geometry())
	_, err = c.Embed(context.Background(), &EmbedRequest{
		Carrier:  short,
		Sink:     sink,
		Secret:   payload.NewText("hi"),
		Password: "k",
	})
	require.ErrorIs(t, err, ErrCapacity)
	assert.Contains(t, err.Error(), "352")
	assert.Contains(t, err.Error(), "351")
	assert.Zero(t, sink.Len(), "no frames written on capacity failure")
}

func TestEmbed_UnknownFrameCount(t *testing.T) {
	c := newCodec(t, nil)
	m := noisyCarrier(t, scenarioGeometry, 10, 9).HideFrameCount()

	out, res := embed(t, c, m, payload.NewText("hi"), "k")
	assert.Equal(t, uint64(480), res.CapacityBits)
	assert.Equal(t, uint64(10), res.Frames)

	s, err := c.Extract(context.Background(), out.HideFrameCount(), "k")
	require.NoError(t, err)
	assert.Equal(t, "hi", s.Text)

	small := noisyCarrier(t, scenarioGeometry, 7, 9).HideFrameCount()
	sink := carrier.NewMemorySink(small.Geometry())
	_, err = c.Embed(context.Background(), &EmbedRequest{
		Carrier:  small,
		Sink:     sink,
		Secret:   payload.NewText("hi"),
		Password: "k",
	})
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Zero(t, sink.Len())
}

func TestEmbed_ConfigErrors(t *testing.T) {
	c := newCodec(t, nil)
	m := noisyCarrier(t, scenarioGeometry, 10, 1)
	sink := carrier.NewMemorySink(scenarioGeometry)

	tests := []struct {
		name string
		req  *EmbedRequest
		want error
	}{
		{"nil request", nil, ErrConfig},
		{"nil carrier", &EmbedRequest{Sink: sink, Secret: payload.NewText("hi"), Password: "k"}, ErrConfig},
		{"nil sink", &EmbedRequest{Carrier: m, Secret: payload.NewText("hi"), Password: "k"}, ErrConfig},
		{"empty password", &EmbedRequest{Carrier: m, Sink: sink, Secret: payload.NewText("hi")}, ErrPasswordRequired},
		{"nil secret", &EmbedRequest{Carrier: m, Sink: sink, Password: "k"}, ErrNoSecret},
		{"empty text", &EmbedRequest{Carrier: m, Sink: sink, Secret: payload.NewText(""), Password: "k"}, ErrNoSecret},
		{"empty file", &EmbedRequest{Carrier: m, Sink: sink, Secret: payload.NewFile("a", nil), Password: "k"}, ErrNoSecret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Embed(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
	assert.Zero(t, sink.Len())
}

func TestAdmission(t *testing.T) {
	c := newCodec(t, func(o *Options) { o.MaxCarrierBytes = 1000 })

	big := noisyCarrier(t, scenarioGeometry, 10, 1).SetSize(1001)
	sink := carrier.NewMemorySink(scenarioGeometry)
	_, err := c.Embed(context.Background(), &EmbedRequest{
		Carrier: big, Sink: sink, Secret: payload.NewText("hi"), Password: "k",
	})
	assert.ErrorIs(t, err, ErrCarrierTooLarge)
	assert.Zero(t, sink.Len())

	_, err = c.Extract(context.Background(), big, "k")
	assert.ErrorIs(t, err, ErrCarrierTooLarge)

	empty := noisyCarrier(t, scenarioGeometry, 10, 1).SetSize(0)
	_, err = c.Extract(context.Background(), empty, "k")
	assert.ErrorIs(t, err, ErrCarrierEmpty)
}

func TestExtract_WrongPassword(t *testing.T) {
	c := newCodec(t, nil)
	out, _ := embed(t, c, noisyCarrier(t, scenarioGeometry, 10, 1), payload.NewText("hi"), "k")

	_, err := c.Extract(context.Background(), out, "x")
	require.ErrorIs(t, err, ErrIncorrectPassword)
	assert.Equal(t, "incorrect password or corrupted payload", err.Error())
}

func TestExtract_CorruptedPayload(t *testing.T) {
	c := newCodec(t, nil)
	out, _ := embed(t, c, noisyCarrier(t, scenarioGeometry, 10, 1), payload.NewText("hi"), "k")

	// Flip LSBs inside the armored body, past the 64 header bits.
	frames := make([][]byte, out.Len())
	for i := range frames {
		frames[i] = append([]byte(nil), out.Frame(i)...)
	}
	for j := 16; j < 40; j++ {
		frames[2][j] ^= 1
	}
	corrupted, err := carrier.NewMemory(scenarioGeometry, frames)
	require.NoError(t, err)

	_, err = c.Extract(context.Background(), corrupted, "k")
	assert.ErrorIs(t, err, ErrIncorrectPassword)
}

func TestExtract_Errors(t *testing.T) {
	c := newCodec(t, nil)

	_, err := c.Extract(context.Background(), nil, "k")
	assert.ErrorIs(t, err, ErrConfig)

	m := noisyCarrier(t, scenarioGeometry, 10, 1)
	_, err = c.Extract(context.Background(), m, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	blank, err := carrier.NewBlankMemory(scenarioGeometry, 10, 0)
	require.NoError(t, err)
	_, err = c.Extract(context.Background(), blank, "k")
	assert.ErrorIs(t, err, ErrNoPayload)

	tiny, err := carrier.NewBlankMemory(carrier.Geometry{Width: 7, Height: 9, Channels: 1}, 1, 0)
	require.NoError(t, err)
	_, err = c.Extract(context.Background(), tiny, "k")
	assert.ErrorIs(t, err, ErrNoPayload)
}

func TestExtract_Truncated(t *testing.T) {
	c := newCodec(t, nil)
	out, _ := embed(t, c, noisyCarrier(t, scenarioGeometry, 10, 1), payload.NewText("hi"), "k")

	_, err := c.Extract(context.Background(), out.Truncate(5), "k")
	assert.ErrorIs(t, err, ErrTruncatedCarrier)

	_, err = c.Extract(context.Background(), out.Truncate(5).HideFrameCount(), "k")
	assert.ErrorIs(t, err, ErrTruncatedCarrier)

	// Eight frames still hold the whole payload.
	s, err := c.Extract(context.Background(), out.Truncate(8), "k")
	require.NoError(t, err)
	assert.Equal(t, "hi", s.Text)
}

func TestEmbed_Remux(t *testing.T) {
	remuxErr := errors.New("audio stream copy failed")

	tests := []struct {
		name      string
		policy    RemuxPolicy
		remuxer   Remuxer
		wantErr   error
		wantAudio bool
	}{
		{"no remuxer", RemuxRequired, nil, nil, false},
		{"success", RemuxRequired, RemuxFunc(func(context.Context) error { return nil }), nil, true},
		{"best effort failure", RemuxBestEffort, RemuxFunc(func(context.Context) error { return remuxErr }), nil, false},
		{"required failure", RemuxRequired, RemuxFunc(func(context.Context) error { return remuxErr }), ErrRemuxFailed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCodec(t, func(o *Options) { o.RemuxPolicy = tt.policy })
			sink := carrier.NewMemorySink(scenarioGeometry)
			res, err := c.Embed(context.Background(), &EmbedRequest{
				Carrier:  noisyCarrier(t, scenarioGeometry, 10, 1),
				Sink:     sink,
				Secret:   payload.NewText("hi"),
				Password: "k",
				Remuxer:  tt.remuxer,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, remuxErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAudio, res.AudioRemuxed)
			assert.Equal(t, 10, sink.Len())
		})
	}
}

func TestEmbed_Cancelled(t *testing.T) {
	c := newCodec(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Embed(ctx, &EmbedRequest{
		Carrier:  noisyCarrier(t, scenarioGeometry, 10, 1),
		Sink:     carrier.NewMemorySink(scenarioGeometry),
		Secret:   payload.NewText("hi"),
		Password: "k",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, ErrPasswordRequired, ErrConfig)
	assert.ErrorIs(t, ErrNoSecret, ErrConfig)
	assert.NotErrorIs(t, ErrIncorrectPassword, ErrConfig)
	assert.NotErrorIs(t, ErrCapacity, ErrConfig)
}

// rawStream packs m as rawvideo, keeps the first n bytes and serves them
// through a RawCarrier reporting frameCount frames.
func rawStream(t *testing.T, m *carrier.Memory, n int, frameCount uint64) *carrier.RawCarrier {
	t.Helper()
	var buf bytes.Buffer
	for i := 0; i < m.Len(); i++ {
		buf.Write(m.Frame(i))
	}
	stream := buf.Bytes()[:n]
	rc, err := carrier.NewRawCarrier(int64(n), m.Geometry(), frameCount, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(stream)), nil
	})
	require.NoError(t, err)
	return rc
}

func TestExtract_RawStreamCutMidFrame(t *testing.T) {
	c := newCodec(t, nil)
	out, _ := embed(t, c, noisyCarrier(t, scenarioGeometry, 10, 1), payload.NewText("hi"), "k")
	frame := scenarioGeometry.Samples()

	s, err := c.Extract(context.Background(), rawStream(t, out, 10*frame, 10), "k")
	require.NoError(t, err)
	assert.Equal(t, "hi", s.Text)

	for _, count := range []uint64{0, 10} {
		_, err = c.Extract(context.Background(), rawStream(t, out, 5*frame+frame/2, count), "k")
		assert.ErrorIs(t, err, ErrTruncatedCarrier, "frame count %d", count)
		assert.ErrorIs(t, err, carrier.ErrPartialFrame)

		_, err = c.Extract(context.Background(), rawStream(t, out, frame+8, count), "k")
		assert.ErrorIs(t, err, ErrNoPayload, "frame count %d", count)
	}
}
