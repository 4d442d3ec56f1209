package refresher

import (
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/cenkalti/backoff/v4"
)

var _ backoff.Timer = &clockTimer{}

// clockTimer lets backoff wait on a clock.Clock so waits can be driven by a fake clock.
type clockTimer struct {
	clock clock.Clock
	timer clock.Timer
}

func newClockTimer(clk clock.Clock) *clockTimer {
	return &clockTimer{clock: clk}
}

func (t *clockTimer) Start(duration time.Duration) {
	if t.timer == nil {
		t.timer = t.clock.NewTimer(duration)
		return
	}
	t.timer.Reset(duration)
}

func (t *clockTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}

func (t *clockTimer) C() <-chan time.Time {
	return t.timer.C()
}
