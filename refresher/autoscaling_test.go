package refresher_test

import (
	"context"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"github.com/aws/aws-sdk-go-v2/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewAutoScalingClient", func() {
	It("scopes the client to the configured region", func() {
		client, err := refresher.NewAutoScalingClient(context.Background(), config.AWSConfig{Region: "eu-central-1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Options().Region).To(Equal("eu-central-1"))
		Expect(client.Options().BaseEndpoint).To(BeNil())
	})

	It("overrides the endpoint when one is configured", func() {
		client, err := refresher.NewAutoScalingClient(context.Background(), config.AWSConfig{
			Region:   "us-east-2",
			Endpoint: "http://localhost:4566",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(aws.ToString(client.Options().BaseEndpoint)).To(Equal("http://localhost:4566"))
	})
})
