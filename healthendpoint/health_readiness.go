package healthendpoint

import (
	"encoding/json"
	"net/http"
)

type (
	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck

	// RefreshStatus is implemented by refresher.Metrics.
	RefreshStatus interface {
		LastRefreshFailed() bool
	}
)

const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

func readiness(checkers []Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		checks := make([]ReadinessCheck, 0, len(checkers))
		overallStatus := StatusUp
		for _, checker := range checkers {
			check := checker()
			checks = append(checks, check)
			if check.Status == StatusDown {
				overallStatus = StatusDown
			}
		}

		response, err := json.Marshal(readinessResponse{OverallStatus: overallStatus, Checks: checks})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal error"}`))
			return
		}
		_, _ = w.Write(response)
	}
}

func RefreshChecker(name string, status RefreshStatus) Checker {
	return func() ReadinessCheck {
		check := ReadinessCheck{Name: name, Type: "refresh", Status: StatusUp}
		if status.LastRefreshFailed() {
			check.Status = StatusDown
		}
		return check
	}
}
