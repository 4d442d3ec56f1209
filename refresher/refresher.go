package refresher

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/google/uuid"
)

type Refresher interface {
	Refresh(ctx context.Context) *models.RefreshResult
}

type capacityCycler struct {
	groupName       string
	restoreCapacity int32
	triggerHour     int
	triggerMinute   int
	waitInterval    time.Duration
	waitMaxAttempts int

	client  AutoScalingAPI
	clock   clock.Clock
	logger  lager.Logger
	metrics *Metrics
}

var _ Refresher = &capacityCycler{}

// NewCapacityCycler expects a validated config; restore_capacity must be set.
func NewCapacityCycler(conf *config.Config, client AutoScalingAPI, clk clock.Clock, logger lager.Logger, metrics *Metrics) Refresher {
	return &capacityCycler{
		groupName:       conf.ScalingGroup.Name,
		restoreCapacity: aws.ToInt32(conf.ScalingGroup.RestoreCapacity),
		triggerHour:     conf.Trigger.Hour,
		triggerMinute:   conf.Trigger.Minute,
		waitInterval:    conf.Waiter.Interval,
		waitMaxAttempts: conf.Waiter.MaxAttempts,
		client:          client,
		clock:           clk,
		logger:          logger.Session("capacity-cycler", lager.Data{"group": conf.ScalingGroup.Name}),
		metrics:         metrics,
	}
}

// InTriggerWindow reports whether now falls in the minute hour:minute UTC.
func InTriggerWindow(now time.Time, hour, minute int) bool {
	now = now.UTC()
	return now.Hour() == hour && now.Minute() == minute
}

func (c *capacityCycler) Refresh(ctx context.Context) *models.RefreshResult {
	now := c.clock.Now()
	if !InTriggerWindow(now, c.triggerHour, c.triggerMinute) {
		c.logger.Debug("not-triggering", lager.Data{"now": now.UTC().Format(time.RFC3339)})
		c.metrics.ObserveSkipped()
		return models.NewSkippedResult()
	}

	logger := c.logger.Session("refresh", lager.Data{"refresh-id": uuid.NewString()})
	logger.Info("starting", lager.Data{"restore-capacity": c.restoreCapacity})

	err := c.cycle(ctx, logger)
	duration := c.clock.Since(now)
	if err != nil {
		logger.Error("failed-to-refresh", err, providerErrorData(err))
		c.metrics.ObserveFailed(duration)
		return models.NewFailedResult(err)
	}

	logger.Info("completed", lager.Data{"duration": duration})
	c.metrics.ObserveSucceeded(duration, c.clock.Now())
	return models.NewSucceededResult()
}

func (c *capacityCycler) cycle(ctx context.Context, logger lager.Logger) error {
	if err := c.setDesiredCapacity(ctx, logger, 0); err != nil {
		return err
	}

	if err := WaitForGroup(ctx, c.client, c.groupName, c.waitInterval, c.waitMaxAttempts, c.clock, logger); err != nil {
		return err
	}

	return c.setDesiredCapacity(ctx, logger, c.restoreCapacity)
}

func (c *capacityCycler) setDesiredCapacity(ctx context.Context, logger lager.Logger, capacity int32) error {
	out, err := c.client.UpdateAutoScalingGroup(ctx, &autoscaling.UpdateAutoScalingGroupInput{
		AutoScalingGroupName: aws.String(c.groupName),
		DesiredCapacity:      aws.Int32(capacity),
	})
	if err != nil {
		return fmt.Errorf("failed to set desired capacity of %q to %d: %w", c.groupName, capacity, err)
	}

	data := lager.Data{"desired-capacity": capacity}
	if out != nil {
		if requestID, ok := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata); ok {
			data["request-id"] = requestID
		}
	}
	logger.Info("set-desired-capacity", data)
	return nil
}
