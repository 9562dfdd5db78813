package files

import (
	"context"
	"time"
)

// Input describes one file picked for upload.
type Input struct {
	Name     string
	Size     int64
	MimeType string
}

// Transfer moves a batch of files somewhere. Send blocks until the batch is
// done or ctx is cancelled.
type Transfer interface {
	Send(ctx context.Context, inputs []Input) error
}

// SimulatedTransfer stands in for a network upload by waiting Delay.
type SimulatedTransfer struct {
	Delay time.Duration
}

func (s SimulatedTransfer) Send(ctx context.Context, _ []Input) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
