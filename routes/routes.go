package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	RefreshPath      = "/v1/refresh"
	RefreshRouteName = "Refresh"
)

// RefresherRoutes returns a fresh router with the trigger routes named but not yet bound.
func RefresherRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Path(RefreshPath).Methods(http.MethodPut).Name(RefreshRouteName)
	return r
}
