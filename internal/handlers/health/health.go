package health

import (
	"net/http"

	"scaffold/transport/http/response"

	"github.com/go-chi/chi/v5"
)

const (
	messageRunning  = "Backend is running"
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Handler answers liveness probes. ready reports whether the server is
// still accepting traffic; it turns false once shutdown has begun.
type Handler struct {
	ready func() bool
}

func New(ready func() bool) Handler {
	return Handler{ready: ready}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/health", handler.Health)
}

// Root confirms the backend is up.
// @Summary Root
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Router / [get]
func (handler *Handler) Root(writer http.ResponseWriter, _ *http.Request) {
	response.WithMessage(writer, http.StatusOK, messageRunning)
}

// Health reports whether the server should receive traffic.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Status
// @Failure 503 {object} response.Status
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, _ *http.Request) {
	if handler.ready != nil && !handler.ready() {
		response.WithStatus(writer, http.StatusServiceUnavailable, statusUnhealthy)

		return
	}

	response.WithStatus(writer, http.StatusOK, statusHealthy)
}
