package helpers

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/lager/v3"
)

type LoggingConfig struct {
	Level         string `yaml:"level" json:"level"`
	PlainTextSink bool   `yaml:"plaintext_sink" json:"plaintext_sink"`
}

var redactedKeyPatterns = []string{"[Pp]wd", "[Pp]ass", "[Ss]ecret", "[Tt]oken", "[Cc]redential"}

func InitLoggerFromConfig(conf *LoggingConfig, name string) lager.Logger {
	logger, err := NewLogger(conf, name, os.Stdout)
	if err != nil {
		handleError("failed to initialize logger", err)
	}
	return logger
}

func NewLogger(conf *LoggingConfig, name string, writer io.Writer) (lager.Logger, error) {
	logLevel, err := ParseLogLevel(conf.Level)
	if err != nil {
		return nil, err
	}

	logger := lager.NewLogger(name)

	if conf.PlainTextSink {
		plaintextSink, err := lager.NewRedactingSink(NewTextSink(writer, logLevel), redactedKeyPatterns, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redacted sink: %w", err)
		}
		logger.RegisterSink(plaintextSink)
		return logger, nil
	}

	redactedSink, err := NewRedactingJSONSink(writer, logLevel, redactedKeyPatterns, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redacted sink: %w", err)
	}
	logger.RegisterSink(redactedSink)

	return logger, nil
}

func ParseLogLevel(level string) (lager.LogLevel, error) {
	switch level {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return -1, fmt.Errorf("unsupported log level: %s", level)
	}
}

func handleError(message string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", message, err.Error())
	os.Exit(1)
}
