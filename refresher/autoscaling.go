package refresher

import (
	"context"
	"errors"
	"fmt"

	"code.cloudfoundry.org/asg-refresher/config"

	"code.cloudfoundry.org/lager/v3"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/smithy-go"
)

// AutoScalingAPI is the subset of the autoscaling client the refresher calls.
type AutoScalingAPI interface {
	UpdateAutoScalingGroup(ctx context.Context, params *autoscaling.UpdateAutoScalingGroupInput, optFns ...func(*autoscaling.Options)) (*autoscaling.UpdateAutoScalingGroupOutput, error)
	DescribeAutoScalingGroups(ctx context.Context, params *autoscaling.DescribeAutoScalingGroupsInput, optFns ...func(*autoscaling.Options)) (*autoscaling.DescribeAutoScalingGroupsOutput, error)
}

var _ AutoScalingAPI = &autoscaling.Client{}

// NewAutoScalingClient builds a client scoped to the configured region. Credentials
// are resolved by the SDK's default chain.
func NewAutoScalingClient(ctx context.Context, conf config.AWSConfig) (*autoscaling.Client, error) {
	awsConf, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return autoscaling.NewFromConfig(awsConf, func(o *autoscaling.Options) {
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	}), nil
}

func providerErrorData(err error) lager.Data {
	data := lager.Data{}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		data["error-code"] = apiErr.ErrorCode()
		data["error-fault"] = apiErr.ErrorFault().String()
	}
	return data
}
