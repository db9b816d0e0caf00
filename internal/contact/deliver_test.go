package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"aicloudmania.dev/internal/models"
)

func TestSimulatedDeliverer_WaitsForDelay(t *testing.T) {
	d := NewSimulatedDeliverer(30 * time.Millisecond)

	start := time.Now()
	err := d.Deliver(context.Background(), models.Submission{ID: "s1"})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, "simulated", d.Name())
}

func TestSimulatedDeliverer_HonorsCancellation(t *testing.T) {
	d := NewSimulatedDeliverer(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := d.Deliver(ctx, models.Submission{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedDeliverer_Fail(t *testing.T) {
	d := &SimulatedDeliverer{Fail: true}
	assert.ErrorIs(t, d.Deliver(context.Background(), models.Submission{}), ErrSimulatedFailure)
}

func TestNewSimulatedDeliverer_NegativeDelay(t *testing.T) {
	assert.Equal(t, DefaultSimulatedDelay, NewSimulatedDeliverer(-1).Delay)
	assert.Equal(t, time.Duration(0), NewSimulatedDeliverer(0).Delay)
}
