package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

// LogEntry is a lager log line with a human readable log_time next to the
// epoch timestamp.
type LogEntry struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func NewLogEntry(log lager.LogFormat) LogEntry {
	seconds, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		seconds = 0
	}
	return LogEntry{
		LogFormat: log,
		LogTime:   time.Unix(int64(seconds), 0).UTC().Format(time.RFC3339),
	}
}

func (e LogEntry) ToJSON() []byte {
	content, err := json.Marshal(e)
	if err == nil {
		return content
	}

	var unsupportedErr *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if errors.As(err, &unsupportedErr) || errors.As(err, &marshalErr) {
		e.Data = lager.Data{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", e.Data)}
		content, err = json.Marshal(e)
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return []byte("{}")
	}
	return content
}
