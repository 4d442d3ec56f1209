package healthendpoint_test

import (
	"code.cloudfoundry.org/asg-refresher/healthendpoint"
	"code.cloudfoundry.org/asg-refresher/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
)

var _ = Describe("NewServerWithBasicAuth", func() {
	It("builds a runner for the configured port", func() {
		runner, err := healthendpoint.NewServerWithBasicAuth(models.HealthConfig{Port: 8081}, nil, lagertest.NewTestLogger("health"), prometheus.NewRegistry())
		Expect(err).NotTo(HaveOccurred())
		Expect(runner).NotTo(BeNil())
	})

	It("fails when the password cannot be hashed", func() {
		conf := models.HealthConfig{
			Port: 8081,
			BasicAuth: models.BasicAuth{
				Username: "user",
				// bcrypt rejects passwords longer than 72 bytes
				Password: string(make([]byte, 73)),
			},
		}
		_, err := healthendpoint.NewServerWithBasicAuth(conf, nil, lagertest.NewTestLogger("health"), prometheus.NewRegistry())
		Expect(err).To(HaveOccurred())
	})
})
