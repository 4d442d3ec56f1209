package server_test

import (
	"errors"
	"net/http"

	"code.cloudfoundry.org/asg-refresher/fakes"
	"code.cloudfoundry.org/asg-refresher/models"
	"code.cloudfoundry.org/asg-refresher/routes"
	"code.cloudfoundry.org/asg-refresher/server"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/steinfletcher/apitest"
)

var _ = Describe("Server", func() {
	var (
		t                       GinkgoTInterface
		router                  *mux.Router
		fakeRefresher           *fakes.FakeRefresher
		fakeHTTPStatusCollector *fakes.FakeHTTPStatusCollector
	)

	BeforeEach(func() {
		t = GinkgoT()
		fakeRefresher = &fakes.FakeRefresher{}
		fakeHTTPStatusCollector = &fakes.FakeHTTPStatusCollector{}
	})

	JustBeforeEach(func() {
		router = server.NewRouter(lagertest.NewTestLogger("server-test"), fakeRefresher, fakeHTTPStatusCollector)
	})

	Context("when the refresh is skipped", func() {
		BeforeEach(func() {
			fakeRefresher.RefreshReturns(models.NewSkippedResult())
		})

		It("returns 200 with the skip body", func() {
			apitest.New().
				Handler(router).
				Put(routes.RefreshPath).
				Expect(t).
				Status(http.StatusOK).
				Header("Content-Type", "application/json").
				Body(`{"statusCode": 200, "body": "Not triggering the refresh at this time."}`).
				End()

			Expect(fakeRefresher.RefreshCallCount()).To(Equal(1))
		})
	})

	Context("when the refresh succeeds", func() {
		BeforeEach(func() {
			fakeRefresher.RefreshReturns(models.NewSucceededResult())
		})

		It("returns 200 with the success body", func() {
			apitest.New().
				Handler(router).
				Put(routes.RefreshPath).
				Expect(t).
				Status(http.StatusOK).
				Body(`{"statusCode": 200, "body": "Auto Scaling Group refreshed successfully!"}`).
				End()
		})

		It("counts the request in the concurrent request gauge", func() {
			apitest.New().
				Handler(router).
				Put(routes.RefreshPath).
				Expect(t).
				Status(http.StatusOK).
				End()

			Expect(fakeHTTPStatusCollector.IncConcurrentHTTPRequestCallCount()).To(Equal(1))
			Expect(fakeHTTPStatusCollector.DecConcurrentHTTPRequestCallCount()).To(Equal(1))
		})
	})

	Context("when the refresh fails", func() {
		BeforeEach(func() {
			fakeRefresher.RefreshReturns(models.NewFailedResult(errors.New("ValidationError: group not found")))
		})

		It("returns 500 with the error text", func() {
			apitest.New().
				Handler(router).
				Put(routes.RefreshPath).
				Expect(t).
				Status(http.StatusInternalServerError).
				Body(`{"statusCode": 500, "body": "Error refreshing Auto Scaling Group: ValidationError: group not found"}`).
				End()
		})
	})

	Context("when the method is not PUT", func() {
		It("does not trigger a refresh", func() {
			apitest.New().
				Handler(router).
				Get(routes.RefreshPath).
				Expect(t).
				Status(http.StatusMethodNotAllowed).
				End()

			Expect(fakeRefresher.RefreshCallCount()).To(Equal(0))
		})
	})
})
