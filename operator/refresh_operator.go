package operator

import (
	"context"

	"code.cloudfoundry.org/asg-refresher/models"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/lager/v3"
)

type RefreshOperator struct {
	refresher refresher.Refresher
	logger    lager.Logger
}

var _ Operator = &RefreshOperator{}

func NewRefreshOperator(refresher refresher.Refresher, logger lager.Logger) *RefreshOperator {
	return &RefreshOperator{
		refresher: refresher,
		logger:    logger.Session("refresh_operator"),
	}
}

func (o *RefreshOperator) Operate(ctx context.Context) {
	result := o.refresher.Refresh(ctx)

	data := lager.Data{"status_code": result.StatusCode, "outcome": result.Outcome}
	switch {
	case result.IsFailure():
		o.logger.Info("refresh-failed", lager.Data{"status_code": result.StatusCode, "body": result.Body})
	case result.Outcome == models.RefreshOutcomeSkipped:
		o.logger.Debug("refresh-skipped", data)
	default:
		o.logger.Info("refresh-completed", data)
	}
}
