package handler

import (
	"net/http"
	"sync"

	"desk/config"
	"desk/di"
	"desk/shared/logger"
	transport "desk/transport/http"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler serves a single request in a serverless runtime, building the app on first use.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
