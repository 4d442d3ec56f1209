package main

import (
	"context"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/models"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
)

type clientFactory func(ctx context.Context) (refresher.AutoScalingAPI, error)

type refreshHandler func(ctx context.Context) (*models.RefreshResult, error)

// newRefreshHandler ignores the invocation payload. Failures are reported in the
// result, never as a Lambda error, so the caller always gets {statusCode, body}.
func newRefreshHandler(conf *config.Config, newClient clientFactory, clk clock.Clock, logger lager.Logger, metrics *refresher.Metrics) refreshHandler {
	return func(ctx context.Context) (*models.RefreshResult, error) {
		client, err := newClient(ctx)
		if err != nil {
			logger.Error("failed-to-create-autoscaling-client", err, lager.Data{"region": conf.AWS.Region})
			return models.NewFailedResult(err), nil
		}
		return refresher.NewCapacityCycler(conf, client, clk, logger, metrics).Refresh(ctx), nil
	}
}
