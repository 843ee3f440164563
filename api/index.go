package handler

import (
	"net/http"
	"sync"

	"concierge/config"
	"concierge/di"
	"concierge/shared/logger"
	transport "concierge/transport/http"
	"concierge/transport/http/response"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler is the serverless entry point. The service graph is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		srv, _, err := di.InitializeService()
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize service")

			return
		}

		server = srv
	})

	if server == nil {
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
