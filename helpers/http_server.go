package helpers

import (
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

// ListenAddr binds to localhost when ASG_REFRESHER_TEST_RUN is set.
func ListenAddr(port int) string {
	if os.Getenv("ASG_REFRESHER_TEST_RUN") == "true" {
		return fmt.Sprintf("localhost:%d", port)
	}
	return fmt.Sprintf("0.0.0.0:%d", port)
}

func NewHTTPServer(logger lager.Logger, port int, handler http.Handler) ifrit.Runner {
	addr := ListenAddr(port)
	logger.Info("new-http-server", lager.Data{"addr": addr})
	return http_server.New(addr, handler)
}
