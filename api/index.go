package handler

import (
	"net/http"
	"sync"

	"scaffold/config"
	"scaffold/di"
	"scaffold/shared/logger"
	transportHTTP "scaffold/transport/http"
)

var (
	server *transportHTTP.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint. The stack is wired once per instance
// so the in-memory stores survive between invocations of a warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
