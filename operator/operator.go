package operator

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type Operator interface {
	Operate(ctx context.Context)
}

// OperatorRunner calls its Operator once at every occurrence of a DailySchedule.
type OperatorRunner struct {
	operator Operator
	schedule DailySchedule
	clock    clock.Clock
	logger   lager.Logger
}

func NewOperatorRunner(operator Operator, schedule DailySchedule, clock clock.Clock, logger lager.Logger) *OperatorRunner {
	return &OperatorRunner{
		operator: operator,
		schedule: schedule,
		clock:    clock,
		logger:   logger,
	}
}

func (opr *OperatorRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	next := opr.schedule.Next(opr.clock.Now())
	timer := opr.clock.NewTimer(next.Sub(opr.clock.Now()))
	defer timer.Stop()

	opr.logger.Info("started", lager.Data{"next-run": next.Format(time.RFC3339)})
	close(ready)

	for {
		select {
		case <-signals:
			opr.logger.Info("stopped")
			return nil
		case fired := <-timer.C():
			go opr.operator.Operate(ctx)

			// computed from the scheduled time so a late wake-up cannot land in the same window twice
			next = opr.schedule.Next(maxTime(next, fired))
			timer.Reset(next.Sub(opr.clock.Now()))
			opr.logger.Debug("scheduled", lager.Data{"next-run": next.Format(time.RFC3339)})
		}
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
