package refresher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/cenkalti/backoff/v4"
	"github.com/samber/lo"
)

var ErrGroupNotFound = errors.New("auto scaling group not found")

// WaitForGroup polls until the named group is listed by the provider. The first
// attempt is immediate, later ones are spaced by interval, and at most maxAttempts
// attempts are made. A provider error ends the wait at once.
func WaitForGroup(ctx context.Context, client AutoScalingAPI, name string, interval time.Duration, maxAttempts int, clk clock.Clock, logger lager.Logger) error {
	if maxAttempts <= 0 {
		return fmt.Errorf("invalid max attempts %d", maxAttempts)
	}

	logger = logger.Session("wait-for-group", lager.Data{"interval": interval, "max-attempts": maxAttempts})

	attempt := 0
	check := func() error {
		attempt++
		out, err := client.DescribeAutoScalingGroups(ctx, &autoscaling.DescribeAutoScalingGroupsInput{
			AutoScalingGroupNames: []string{name},
		})
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to describe auto scaling group %q: %w", name, err))
		}
		if out == nil || len(out.AutoScalingGroups) == 0 {
			return fmt.Errorf("%w: %q", ErrGroupNotFound, name)
		}

		group := out.AutoScalingGroups[0]
		logger.Info("group-exists", lager.Data{
			"attempt":          attempt,
			"desired-capacity": aws.ToInt32(group.DesiredCapacity),
			"instances": lo.Map(group.Instances, func(instance types.Instance, _ int) string {
				return aws.ToString(instance.InstanceId)
			}),
		})
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(maxAttempts-1)),
		ctx,
	)
	notify := func(err error, next time.Duration) {
		logger.Debug("group-not-listed", lager.Data{"attempt": attempt, "next-attempt-in": next})
	}

	err := backoff.RetryNotifyWithTimer(check, policy, notify, newClockTimer(clk))
	if errors.Is(err, ErrGroupNotFound) {
		return fmt.Errorf("group %q does not exist after %d attempts: %w", name, attempt, ErrGroupNotFound)
	}
	return err
}
