package server

import (
	"encoding/json"
	"net/http"

	"code.cloudfoundry.org/asg-refresher/refresher"

	"code.cloudfoundry.org/lager/v3"
)

type RefreshHandler struct {
	logger    lager.Logger
	refresher refresher.Refresher
}

func NewRefreshHandler(logger lager.Logger, refresher refresher.Refresher) *RefreshHandler {
	return &RefreshHandler{
		logger:    logger.Session("refresh-handler"),
		refresher: refresher,
	}
}

// Refresh runs synchronously so the caller receives the outcome of the cycle.
func (h *RefreshHandler) Refresh(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	result := h.refresher.Refresh(r.Context())

	body, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed-to-marshal-result", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(result.StatusCode)
	_, _ = w.Write(body)
}
