package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/asg-refresher/helpers"
	"code.cloudfoundry.org/asg-refresher/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"golang.org/x/crypto/bcrypt"
)

const ReadinessPath = "/health/readiness"

type basicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *basicAuthenticationMiddleware) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()

		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func NewServerWithBasicAuth(conf models.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, checkers, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger.Session("health-server"), conf.Port, healthRouter), nil
}

// NewHealthRouter serves metrics on every path. Basic auth guards everything except
// the readiness check when credentials are configured.
func NewHealthRouter(conf models.HealthConfig, checkers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle(ReadinessPath, readiness(checkers)).Methods(http.MethodGet)
	}

	if !conf.BasicAuth.Enabled() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuthentication, err := createBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.middleware)
	everything.PathPrefix("").Handler(promHandler)

	return router, nil
}

func createBasicAuthMiddleware(logger lager.Logger, auth models.BasicAuth) (*basicAuthenticationMiddleware, error) {
	usernameHash, err := hashOrGenerate(auth.UsernameHash, auth.Username)
	if err != nil {
		logger.Error("failed-new-server-username", err)
		return nil, err
	}

	passwordHash, err := hashOrGenerate(auth.PasswordHash, auth.Password)
	if err != nil {
		logger.Error("failed-new-server-password", err)
		return nil, err
	}

	return &basicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}, nil
}

func hashOrGenerate(hash string, cleartext string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	// MinCost: the config already holds the cleartext
	return bcrypt.GenerateFromPassword([]byte(cleartext), bcrypt.MinCost)
}
