package handler

import (
	"net/http"
	"sync"

	"hotelhills/config"
	"hotelhills/di"
	"hotelhills/shared/logger"
	transport "hotelhills/transport/http"
)

var (
	service *transport.HTTP
	once    sync.Once
)

// Handler is the serverless entrypoint. The service graph is built on the first invocation and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
