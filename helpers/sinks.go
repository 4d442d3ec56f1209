package helpers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type redactingJSONSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	writeL      sync.Mutex
	redacter    *URLCredentialRedacter
}

func NewRedactingJSONSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewURLCredentialRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingJSONSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}, nil
}

func (sink *redactingJSONSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	line := sink.redacter.Redact(NewLogEntry(log).ToJSON())

	sink.writeL.Lock()
	defer sink.writeL.Unlock()
	_, _ = sink.writer.Write(line)
	_, _ = sink.writer.Write([]byte("\n"))
}

type textSink struct {
	logger *slog.Logger
}

var _ lager.Sink = &textSink{}

func NewTextSink(writer io.Writer, logLevel lager.LogLevel) lager.Sink {
	opts := &slog.HandlerOptions{
		Level: toSlogLevel(logLevel),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339))
			}
			return a
		},
	}
	return &textSink{logger: slog.New(slog.NewTextHandler(writer, opts))}
}

func toSlogLevel(l lager.LogLevel) slog.Level {
	switch l {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (sink *textSink) Log(log lager.LogFormat) {
	attrs := make([]slog.Attr, 0, len(log.Data)+1)
	if log.Source != "" {
		attrs = append(attrs, slog.String("source", log.Source))
	}
	for key, value := range log.Data {
		attrs = append(attrs, slog.Any(key, value))
	}
	sink.logger.LogAttrs(context.Background(), toSlogLevel(log.LogLevel), log.Message, attrs...)
}
