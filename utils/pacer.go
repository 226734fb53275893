package utils

import (
	"context"
	"time"
)

// Pacer holds the scraper back for a fixed delay between page interactions
type Pacer struct {
	delay time.Duration
}

// NewPacer creates a Pacer with the given delay; zero disables pausing
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Settle blocks for the configured delay or until ctx is done
func (p *Pacer) Settle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
