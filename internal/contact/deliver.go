package contact

import (
	"context"
	"errors"
	"time"

	"aicloudmania.dev/internal/models"
)

// Deliverer hands a validated submission to the form-submission backend.
type Deliverer interface {
	Deliver(ctx context.Context, sub models.Submission) error
	// Name labels the backend in logs and metrics.
	Name() string
}

// DefaultSimulatedDelay matches the wait the page has always shown before
// confirming a message.
const DefaultSimulatedDelay = time.Second

// ErrSimulatedFailure is returned by a SimulatedDeliverer configured to fail.
var ErrSimulatedFailure = errors.New("simulated delivery failure")

// SimulatedDeliverer stands in for a real backend: it waits and then
// accepts the submission without sending it anywhere.
type SimulatedDeliverer struct {
	Delay time.Duration
	Fail  bool
}

// NewSimulatedDeliverer creates a SimulatedDeliverer. A negative delay
// falls back to DefaultSimulatedDelay.
func NewSimulatedDeliverer(delay time.Duration) *SimulatedDeliverer {
	if delay < 0 {
		delay = DefaultSimulatedDelay
	}
	return &SimulatedDeliverer{Delay: delay}
}

// Deliver waits for the configured delay or until ctx is done.
func (d *SimulatedDeliverer) Deliver(ctx context.Context, _ models.Submission) error {
	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if d.Fail {
		return ErrSimulatedFailure
	}
	return nil
}

// Name implements Deliverer.
func (d *SimulatedDeliverer) Name() string { return "simulated" }
