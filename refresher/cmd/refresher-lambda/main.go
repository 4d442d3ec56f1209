package main

import (
	"context"
	"fmt"
	"os"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/helpers"
	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/clock"
	"github.com/aws/aws-lambda-go/lambda"
)

const (
	configPathEnv     = "ASG_REFRESHER_CONFIG"
	defaultConfigPath = "config.yml"
)

func main() {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigPath
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	if err := conf.Validate(); err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "refresher-lambda")

	// a client per invocation; nothing is shared across invocations
	newClient := func(ctx context.Context) (refresher.AutoScalingAPI, error) {
		client, err := refresher.NewAutoScalingClient(ctx, conf.AWS)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	lambda.Start(newRefreshHandler(conf, newClient, clock.NewClock(), logger, refresher.NewMetrics()))
}
