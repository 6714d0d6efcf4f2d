package carrier

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

type fetchResult struct {
	frame *Frame
	err   error
}

// prefetchSource decodes one frame ahead of the consumer.
type prefetchSource struct {
	src     Source
	ctx     context.Context
	cancel  context.CancelFunc
	results chan fetchResult
	done    chan struct{}
}

// Prefetch wraps src so the next frame is pulled on a separate goroutine
// while the caller processes the current one. The hand-off channel holds a
// single frame, so at most one frame is buffered between the stages.
//
// Closing the returned Source stops the goroutine and closes src.
func Prefetch(ctx context.Context, src Source) Source {
	ctx, cancel := context.WithCancel(ctx)
	p := &prefetchSource{
		src:     src,
		ctx:     ctx,
		cancel:  cancel,
		results: make(chan fetchResult, 1),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *prefetchSource) run() {
	defer close(p.done)
	defer close(p.results)

	var pulled uint64
	for {
		f, err := p.src.Next(p.ctx)
		if err == nil {
			pulled++
		} else if !errors.Is(err, io.EOF) {
			logrus.WithFields(logrus.Fields{
				"function": "Prefetch",
				"pulled":   pulled,
				"error":    err.Error(),
			}).Debug("Prefetch source failed")
		}
		select {
		case p.results <- fetchResult{frame: f, err: err}:
		case <-p.ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (p *prefetchSource) Geometry() Geometry {
	return p.src.Geometry()
}

func (p *prefetchSource) FrameCount() (uint64, bool) {
	return p.src.FrameCount()
}

func (p *prefetchSource) Next(ctx context.Context) (*Frame, error) {
	select {
	case r, ok := <-p.results:
		if !ok {
			if err := p.ctx.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		return r.frame, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *prefetchSource) Close() error {
	p.cancel()
	<-p.done
	if err := p.src.Close(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Prefetch.Close",
			"error":    err.Error(),
		}).Debug("Failed to close prefetched source")
		return err
	}
	return nil
}
