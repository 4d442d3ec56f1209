package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"code.cloudfoundry.org/asg-refresher/helpers"
	"code.cloudfoundry.org/asg-refresher/models"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLoggingLevel      = "info"
	DefaultRegion            = "us-east-2"
	DefaultWaiterInterval    = 30 * time.Second
	DefaultWaiterMaxAttempts = 60
	DefaultServerPort        = 8080
	DefaultHealthPort        = 8081
)

type AWSConfig struct {
	Region string `yaml:"region"`
	// Endpoint overrides the autoscaling service endpoint, e.g. for a local stand-in.
	Endpoint string `yaml:"endpoint"`
}

type ScalingGroupConfig struct {
	Name            string `yaml:"name"`
	RestoreCapacity *int32 `yaml:"restore_capacity"`
}

type TriggerConfig struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
	// Enabled runs the refresh in-process at hour:minute UTC. Disabled leaves
	// triggering to an external scheduler.
	Enabled bool `yaml:"enabled"`
}

type WaiterConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxAttempts int           `yaml:"max_attempts"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type Config struct {
	AWS          AWSConfig             `yaml:"aws"`
	ScalingGroup ScalingGroupConfig    `yaml:"scaling_group"`
	Trigger      TriggerConfig         `yaml:"trigger"`
	Waiter       WaiterConfig          `yaml:"waiter"`
	Server       ServerConfig          `yaml:"server"`
	Health       models.HealthConfig   `yaml:"health"`
	Logging      helpers.LoggingConfig `yaml:"logging"`
}

func defaultConfig() Config {
	return Config{
		AWS: AWSConfig{
			Region: DefaultRegion,
		},
		Waiter: WaiterConfig{
			Interval:    DefaultWaiterInterval,
			MaxAttempts: DefaultWaiterMaxAttempts,
		},
		Server: ServerConfig{
			Port: DefaultServerPort,
		},
		Health: models.HealthConfig{
			Port: DefaultHealthPort,
		},
		Logging: helpers.LoggingConfig{
			Level: DefaultLoggingLevel,
		},
	}
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return &conf, nil
}

func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("Configuration error: aws.region is empty")
	}

	if c.ScalingGroup.Name == "" {
		return fmt.Errorf("Configuration error: scaling_group.name is empty")
	}
	if c.ScalingGroup.RestoreCapacity == nil {
		return fmt.Errorf("Configuration error: scaling_group.restore_capacity is not set")
	}
	if *c.ScalingGroup.RestoreCapacity < 0 {
		return fmt.Errorf("Configuration error: scaling_group.restore_capacity is less than 0")
	}

	if c.Trigger.Hour < 0 || c.Trigger.Hour > 23 {
		return fmt.Errorf("Configuration error: trigger.hour is not between 0 and 23")
	}
	if c.Trigger.Minute < 0 || c.Trigger.Minute > 59 {
		return fmt.Errorf("Configuration error: trigger.minute is not between 0 and 59")
	}

	if c.Waiter.Interval <= 0 {
		return fmt.Errorf("Configuration error: waiter.interval is less than or equal to 0")
	}
	if c.Waiter.MaxAttempts <= 0 {
		return fmt.Errorf("Configuration error: waiter.max_attempts is less than or equal to 0")
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("Configuration error: server.port is less than or equal to 0")
	}

	if err := c.Health.Validate(); err != nil {
		return err
	}

	return nil
}
