package refresher_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/asg-refresher/fakes"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("WaitForGroup", func() {
	var (
		fakeClient  *fakes.FakeAutoScalingAPI
		fclock      *fakeclock.FakeClock
		logger      *lagertest.TestLogger
		maxAttempts int
		errs        chan error
	)

	BeforeEach(func() {
		fakeClient = &fakes.FakeAutoScalingAPI{}
		fclock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("waiter-test")
		maxAttempts = 4
		errs = make(chan error, 1)
	})

	wait := func() {
		go func() {
			defer GinkgoRecover()
			errs <- refresher.WaitForGroup(context.Background(), fakeClient, testGroupName, testWaitInterval, maxAttempts, fclock, logger)
		}()
	}

	Context("when the group is listed right away", func() {
		BeforeEach(func() {
			fakeClient.DescribeAutoScalingGroupsReturns(existingGroup(), nil)
		})

		It("returns after a single attempt without waiting", func() {
			wait()
			Eventually(errs).Should(Receive(BeNil()))
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(1))
			Expect(fclock.WatcherCount()).To(Equal(0))
		})
	})

	Context("when the group shows up later", func() {
		BeforeEach(func() {
			fakeClient.DescribeAutoScalingGroupsReturns(noGroup(), nil)
			fakeClient.DescribeAutoScalingGroupsReturnsOnCall(2, existingGroup(), nil)
		})

		It("does not poll again before the interval has passed", func() {
			wait()
			Eventually(fakeClient.DescribeAutoScalingGroupsCallCount).Should(Equal(1))

			fclock.WaitForWatcherAndIncrement(testWaitInterval - time.Second)
			Consistently(fakeClient.DescribeAutoScalingGroupsCallCount).Should(Equal(1))

			fclock.Increment(time.Second)
			Eventually(fakeClient.DescribeAutoScalingGroupsCallCount).Should(Equal(2))

			fclock.WaitForWatcherAndIncrement(testWaitInterval)
			Eventually(errs).Should(Receive(BeNil()))
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(3))
			Expect(logger.Buffer()).To(gbytes.Say(`wait-for-group.group-exists.*"attempt":3`))
		})
	})

	Context("when the group never shows up", func() {
		BeforeEach(func() {
			fakeClient.DescribeAutoScalingGroupsReturns(noGroup(), nil)
		})

		It("gives up after max attempts", func() {
			wait()
			for i := 1; i < maxAttempts; i++ {
				fclock.WaitForWatcherAndIncrement(testWaitInterval)
			}

			var err error
			Eventually(errs).Should(Receive(&err))
			Expect(errors.Is(err, refresher.ErrGroupNotFound)).To(BeTrue())
			Expect(err).To(MatchError(`group "test-group" does not exist after 4 attempts: auto scaling group not found`))
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(maxAttempts))
		})

		Context("and only one attempt is allowed", func() {
			BeforeEach(func() {
				maxAttempts = 1
			})

			It("fails without waiting", func() {
				wait()
				Eventually(errs).Should(Receive(MatchError(refresher.ErrGroupNotFound)))
				Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(1))
			})
		})
	})

	Context("when the provider returns no output", func() {
		BeforeEach(func() {
			maxAttempts = 2
			fakeClient.DescribeAutoScalingGroupsReturns(nil, nil)
		})

		It("treats the group as not listed", func() {
			wait()
			fclock.WaitForWatcherAndIncrement(testWaitInterval)

			var err error
			Eventually(errs).Should(Receive(&err))
			Expect(errors.Is(err, refresher.ErrGroupNotFound)).To(BeTrue())
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(2))
		})
	})

	Context("when describing the group fails", func() {
		BeforeEach(func() {
			fakeClient.DescribeAutoScalingGroupsReturnsOnCall(0, noGroup(), nil)
			fakeClient.DescribeAutoScalingGroupsReturnsOnCall(1, nil, errors.New("access denied"))
		})

		It("stops polling and returns the error", func() {
			wait()
			fclock.WaitForWatcherAndIncrement(testWaitInterval)

			var err error
			Eventually(errs).Should(Receive(&err))
			Expect(err).To(MatchError(`failed to describe auto scaling group "test-group": access denied`))
			Consistently(fakeClient.DescribeAutoScalingGroupsCallCount).Should(Equal(2))
		})
	})

	Context("when max attempts is not positive", func() {
		BeforeEach(func() {
			maxAttempts = 0
		})

		It("returns an error without calling the provider", func() {
			wait()
			Eventually(errs).Should(Receive(MatchError("invalid max attempts 0")))
			Expect(fakeClient.DescribeAutoScalingGroupsCallCount()).To(Equal(0))
		})
	})
})
