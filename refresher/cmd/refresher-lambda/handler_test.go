package main

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/fakes"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("RefreshHandler", func() {
	var (
		conf         *config.Config
		fakeClient   *fakes.FakeAutoScalingAPI
		fclock       *fakeclock.FakeClock
		logger       *lagertest.TestLogger
		clientErr    error
		clientCalls  int
		responseJSON []byte
	)

	BeforeEach(func() {
		conf = &config.Config{
			AWS: config.AWSConfig{Region: "us-east-2"},
			ScalingGroup: config.ScalingGroupConfig{
				Name:            "test-group",
				RestoreCapacity: aws.Int32(2),
			},
			Waiter: config.WaiterConfig{Interval: 30 * time.Second, MaxAttempts: 3},
		}
		fakeClient = &fakes.FakeAutoScalingAPI{}
		fakeClient.UpdateAutoScalingGroupReturns(&autoscaling.UpdateAutoScalingGroupOutput{}, nil)
		fakeClient.DescribeAutoScalingGroupsReturns(&autoscaling.DescribeAutoScalingGroupsOutput{
			AutoScalingGroups: []types.AutoScalingGroup{{AutoScalingGroupName: aws.String("test-group")}},
		}, nil)
		fclock = fakeclock.NewFakeClock(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC))
		logger = lagertest.NewTestLogger("refresher-lambda-test")
		clientErr = nil
		clientCalls = 0
	})

	JustBeforeEach(func() {
		newClient := func(ctx context.Context) (refresher.AutoScalingAPI, error) {
			clientCalls++
			if clientErr != nil {
				return nil, clientErr
			}
			return fakeClient, nil
		}
		handler := newRefreshHandler(conf, newClient, fclock, logger, refresher.NewMetrics())

		result, err := handler(context.Background())
		Expect(err).NotTo(HaveOccurred())

		responseJSON, err = json.Marshal(result)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("at the trigger time", func() {
		It("returns the success response", func() {
			Expect(responseJSON).To(MatchJSON(`{"statusCode":200,"body":"Auto Scaling Group refreshed successfully!"}`))
			Expect(fakeClient.UpdateAutoScalingGroupCallCount()).To(Equal(2))
			Expect(clientCalls).To(Equal(1))
		})
	})

	Context("outside the trigger time", func() {
		BeforeEach(func() {
			fclock = fakeclock.NewFakeClock(time.Date(2024, time.March, 5, 14, 32, 0, 0, time.UTC))
		})

		It("returns the skip response", func() {
			Expect(responseJSON).To(MatchJSON(`{"statusCode":200,"body":"Not triggering the refresh at this time."}`))
			Expect(fakeClient.Invocations()).To(BeEmpty())
		})
	})

	Context("when the first update fails", func() {
		BeforeEach(func() {
			fakeClient.UpdateAutoScalingGroupReturnsOnCall(0, nil, errors.New("access denied"))
		})

		It("returns a 500 response with the error", func() {
			Expect(responseJSON).To(MatchJSON(`{"statusCode":500,"body":"Error refreshing Auto Scaling Group: failed to set desired capacity of \"test-group\" to 0: access denied"}`))
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(0))
		})
	})

	Context("when the client cannot be created", func() {
		BeforeEach(func() {
			clientErr = errors.New("failed to load aws config: no region")
		})

		It("returns a 500 response without calling the provider", func() {
			Expect(responseJSON).To(MatchJSON(`{"statusCode":500,"body":"Error refreshing Auto Scaling Group: failed to load aws config: no region"}`))
			Expect(fakeClient.Invocations()).To(BeEmpty())
			Expect(logger.Buffer()).To(gbytes.Say("failed-to-create-autoscaling-client"))
		})
	})
})
