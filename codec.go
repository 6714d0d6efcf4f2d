package vidstego

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/opd-ai/vidstego/capacity"
	"github.com/opd-ai/vidstego/carrier"
	"github.com/opd-ai/vidstego/limits"
	"github.com/opd-ai/vidstego/lsb"
	"github.com/opd-ai/vidstego/payload"
	"github.com/sirupsen/logrus"
)

// EmbedRequest holds the inputs of one embed call.
type EmbedRequest struct {
	// Carrier supplies the original frames. It may be opened twice when
	// its sources cannot report a frame count.
	Carrier carrier.Carrier
	// Sink receives every frame, modified or not, in order.
	Sink carrier.Sink
	// Secret is the payload to hide.
	Secret *payload.Secret
	// Password keys the obfuscation.
	Password string
	// Remuxer optionally restores the audio track after all frames are written.
	Remuxer Remuxer
}

// EmbedResult summarizes a successful embed.
type EmbedResult struct {
	OperationID   string
	EncodedLen    int
	BitsEmbedded  uint64
	CapacityBits  uint64
	Frames        uint64
	FramesTouched uint64
	AudioRemuxed  bool
}

// Codec embeds and extracts payloads.
type Codec struct {
	options *Options
}

// New creates a Codec. A nil options value selects NewOptions().
func New(options *Options) (*Codec, error) {
	if options == nil {
		options = NewOptions()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	opts := *options
	return &Codec{options: &opts}, nil
}

// Options returns a copy of the codec's options.
func (c *Codec) Options() Options {
	return *c.options
}

// Embed hides req.Secret in req.Carrier and writes every frame to req.Sink.
//
// Password, secret, admission and capacity checks all complete before the
// first frame is pulled for embedding, so those failures never produce
// output. Once embedding starts the sink must be discarded if an error is
// returned.
func (c *Codec) Embed(ctx context.Context, req *EmbedRequest) (*EmbedResult, error) {
	opID := uuid.New().String()
	fields := logrus.Fields{
		"function":     "Codec.Embed",
		"operation_id": opID,
	}

	if req == nil || req.Carrier == nil || req.Sink == nil {
		return nil, fmt.Errorf("%w: embed requires a carrier and a sink", ErrConfig)
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if err := req.Secret.Validate(); err != nil {
		if errors.Is(err, payload.ErrEmptySecret) {
			return nil, ErrNoSecret
		}
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := limits.ValidateCarrierSize(req.Carrier.Size(), c.options.MaxCarrierBytes); err != nil {
		logrus.WithFields(fields).WithError(err).Debug("Carrier rejected by admission check")
		return nil, err
	}

	armored, err := payload.Encode(req.Secret, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	bitstream, err := payload.Bitstream(armored)
	if err != nil {
		return nil, fmt.Errorf("failed to build bitstream: %w", err)
	}
	needed := payload.BitstreamBits(len(armored))

	src, frames, err := c.openCounted(ctx, req.Carrier)
	if err != nil {
		return nil, err
	}

	g := src.Geometry()
	if err := capacity.PlanGeometry(needed, frames, g); err != nil {
		src.Close()
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"needed_bits": needed,
			"frames":      frames,
			"geometry":    g.String(),
		}).Info("Payload does not fit carrier")
		return nil, err
	}

	if c.options.Prefetch {
		src = carrier.Prefetch(ctx, src)
	}
	defer src.Close()

	st, err := lsb.Embed(ctx, src, req.Sink, bitstream)
	if err != nil {
		return nil, err
	}

	audio, err := c.remux(ctx, req.Remuxer, fields)
	if err != nil {
		return nil, err
	}

	result := &EmbedResult{
		OperationID:   opID,
		EncodedLen:    len(armored),
		BitsEmbedded:  st.Bits,
		CapacityBits:  capacity.Bits(frames, g.Width, g.Height, g.Channels),
		Frames:        st.Frames,
		FramesTouched: st.FramesTouched,
		AudioRemuxed:  audio,
	}

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"kind":           req.Secret.Kind.String(),
		"encoded_len":    result.EncodedLen,
		"bits":           result.BitsEmbedded,
		"capacity_bits":  result.CapacityBits,
		"frames":         result.Frames,
		"frames_touched": result.FramesTouched,
		"audio_remuxed":  result.AudioRemuxed,
	}).Info("Payload embedded")

	return result, nil
}

// openCounted opens c and returns its frame count, running a counting
// pre-pass and re-opening when the source cannot report one.
func (c *Codec) openCounted(ctx context.Context, cr carrier.Carrier) (carrier.Source, uint64, error) {
	src, err := c.open(ctx, cr)
	if err != nil {
		return nil, 0, err
	}
	if n, ok := src.FrameCount(); ok {
		return src, n, nil
	}
	src.Close()

	n, err := capacity.CountFrames(ctx, cr)
	if err != nil {
		return nil, 0, err
	}

	src, err = c.open(ctx, cr)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to re-open carrier after counting: %w", err)
	}
	return src, n, nil
}

func (c *Codec) open(ctx context.Context, cr carrier.Carrier) (carrier.Source, error) {
	src, err := cr.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open carrier: %w", err)
	}
	if err := src.Geometry().Validate(); err != nil {
		src.Close()
		return nil, err
	}
	return src, nil
}

// Extract recovers the secret hidden in cr.
//
// Any failure to reverse the armored payload, whether a bad password or
// corrupted data, is reported as ErrIncorrectPassword without saying which
// step failed.
func (c *Codec) Extract(ctx context.Context, cr carrier.Carrier, password string) (*payload.Secret, error) {
	fields := logrus.Fields{
		"function":     "Codec.Extract",
		"operation_id": uuid.New().String(),
	}

	if cr == nil {
		return nil, fmt.Errorf("%w: extract requires a carrier", ErrConfig)
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if err := limits.ValidateCarrierSize(cr.Size(), c.options.MaxCarrierBytes); err != nil {
		logrus.WithFields(fields).WithError(err).Debug("Carrier rejected by admission check")
		return nil, err
	}

	src, err := c.open(ctx, cr)
	if err != nil {
		return nil, err
	}
	if c.options.Prefetch {
		src = carrier.Prefetch(ctx, src)
	}
	defer src.Close()

	armored, st, err := lsb.Extract(ctx, src)
	if err != nil {
		logrus.WithFields(fields).WithFields(logrus.Fields{
			"bits":   st.Bits,
			"frames": st.Frames,
		}).WithError(err).Debug("No payload recovered")
		return nil, err
	}

	secret, err := payload.Decode(armored, password)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Debug("Payload failed to decode")
		return nil, ErrIncorrectPassword
	}

	logrus.WithFields(fields).WithFields(logrus.Fields{
		"kind":        secret.Kind.String(),
		"encoded_len": len(armored),
		"frames":      st.Frames,
	}).Info("Payload extracted")

	return secret, nil
}
