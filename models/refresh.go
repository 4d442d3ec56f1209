package models

import (
	"fmt"
	"net/http"
)

type RefreshOutcome string

const (
	RefreshOutcomeSkipped   RefreshOutcome = "skipped"
	RefreshOutcomeSucceeded RefreshOutcome = "succeeded"
	RefreshOutcomeFailed    RefreshOutcome = "failed"
)

const (
	RefreshSkippedMessage   = "Not triggering the refresh at this time."
	RefreshSucceededMessage = "Auto Scaling Group refreshed successfully!"
	RefreshFailedPrefix     = "Error refreshing Auto Scaling Group"
)

// RefreshResult is what a trigger hands back to its caller. The JSON shape matches
// a synchronous function response: {"statusCode": 200, "body": "..."}.
type RefreshResult struct {
	StatusCode int            `json:"statusCode"`
	Body       string         `json:"body"`
	Outcome    RefreshOutcome `json:"-"`
}

func NewSkippedResult() *RefreshResult {
	return &RefreshResult{
		StatusCode: http.StatusOK,
		Body:       RefreshSkippedMessage,
		Outcome:    RefreshOutcomeSkipped,
	}
}

func NewSucceededResult() *RefreshResult {
	return &RefreshResult{
		StatusCode: http.StatusOK,
		Body:       RefreshSucceededMessage,
		Outcome:    RefreshOutcomeSucceeded,
	}
}

func NewFailedResult(err error) *RefreshResult {
	return &RefreshResult{
		StatusCode: http.StatusInternalServerError,
		Body:       fmt.Sprintf("%s: %s", RefreshFailedPrefix, err.Error()),
		Outcome:    RefreshOutcomeFailed,
	}
}

func (r *RefreshResult) IsFailure() bool {
	return r.Outcome == RefreshOutcomeFailed
}
