package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/asg-refresher/config"
	"code.cloudfoundry.org/asg-refresher/healthendpoint"
	"code.cloudfoundry.org/asg-refresher/helpers"
	"code.cloudfoundry.org/asg-refresher/operator"
	"code.cloudfoundry.org/asg-refresher/refresher"
	"code.cloudfoundry.org/asg-refresher/server"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	var conf *config.Config
	conf, err = config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "refresher")
	rfClock := clock.NewClock()

	autoScalingClient, err := refresher.NewAutoScalingClient(context.Background(), conf.AWS)
	if err != nil {
		logger.Error("failed-to-create-autoscaling-client", err, lager.Data{"region": conf.AWS.Region})
		os.Exit(1)
	}

	metrics := refresher.NewMetrics()
	httpStatusCollector := healthendpoint.NewHTTPStatusCollector("asg_refresher", "refresher")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{
		metrics,
		httpStatusCollector,
	}, true, logger.Session("refresher-prometheus"))

	capacityCycler := refresher.NewCapacityCycler(conf, autoScalingClient, rfClock, logger, metrics)

	members := grouper.Members{
		{Name: "refresh_server", Runner: server.NewServer(logger.Session("http-server"), conf, capacityCycler, httpStatusCollector)},
	}

	if conf.Trigger.Enabled {
		loggerSessionName := "refresh-trigger"
		refreshOperator := operator.NewRefreshOperator(capacityCycler, logger.Session(loggerSessionName))
		members = append(members, grouper.Member{
			Name:   loggerSessionName,
			Runner: operator.NewOperatorRunner(refreshOperator, operator.DailySchedule{Hour: conf.Trigger.Hour, Minute: conf.Trigger.Minute}, rfClock, logger.Session(loggerSessionName)),
		})
	}

	healthServer, err := healthendpoint.NewServerWithBasicAuth(conf.Health, []healthendpoint.Checker{
		healthendpoint.RefreshChecker("capacity-cycler", metrics),
	}, logger, promRegistry)
	if err != nil {
		logger.Error("failed-to-create-health-server", err)
		os.Exit(1)
	}
	members = append(grouper.Members{{Name: "health_server", Runner: healthServer}}, members...)

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))

	logger.Info("started", lager.Data{
		"group":           conf.ScalingGroup.Name,
		"region":          conf.AWS.Region,
		"endpoint":        conf.AWS.Endpoint,
		"trigger_hour":    conf.Trigger.Hour,
		"trigger_minute":  conf.Trigger.Minute,
		"trigger_enabled": conf.Trigger.Enabled,
	})

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}
