package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"scaffold/config"
	_ "scaffold/docs" // swagger docs
	"scaffold/infras/events"
	"scaffold/infras/metrics"
	"scaffold/infras/otel"
	"scaffold/internal/handlers/health"
	"scaffold/shared/constant"
	"scaffold/shared/failure"
	"scaffold/transport/http/middleware"
	"scaffold/transport/http/response"
	"scaffold/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Metrics    *metrics.Metrics
	Events     events.Bus
	Otel       otel.Otel

	state     atomic.Int32
	mux       *chi.Mux
	server    *http.Server
	setupOnce sync.Once
	stopOnce  sync.Once
	consumers context.CancelFunc
}

func New(
	cfg *config.Config,
	r router.Router,
	mw middleware.AppMiddleware,
	m *metrics.Metrics,
	bus events.Bus,
	otl otel.Otel,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Metrics:    m,
		Events:     bus,
		Otel:       otl,
	}
}

// Serve blocks until the server has been shut down by a signal.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	done := make(chan struct{})
	h.setupGracefulShutdown(done)

	log.Info().Str("addr", h.server.Addr).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP lets the fully wired stack run behind another server, e.g. a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Ready reports whether the server still wants new traffic.
func (h *HTTP) Ready() bool {
	return h.State() == ServerStateReady
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.setupConsumers()
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		h.Middleware.RequestID,
		h.Middleware.Recoverer,
		h.Middleware.Logger,
		h.Middleware.Tracing,
		h.Middleware.Metrics,
		h.Middleware.Secure,
		h.Middleware.CORS,
		h.rejectWhileCleaningUp,
		h.Middleware.RateLimit,
	)

	h.mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(http.StatusText(http.StatusNotFound)))
	})
	h.mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.MethodNotAllowed(http.StatusText(http.StatusMethodNotAllowed)))
	})

	healthHandler := health.New(h.Ready)
	healthHandler.Router(h.mux)

	h.mux.Method(http.MethodGet, "/metrics", h.Metrics.Handler())

	if h.Config.App.Swagger.Enable {
		h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	h.Router.SetupRoutes(h.mux)
}

// setupConsumers keeps an audit trail of every record change.
func (h *HTTP) setupConsumers() {
	ctx, cancel := context.WithCancel(context.Background())
	h.consumers = cancel

	for _, topic := range []string{constant.TopicItems, constant.TopicTodos} {
		err := h.Events.Consume(ctx, topic, func(event events.Event) {
			h.Metrics.EventConsumed(topic, event.Action)

			log.Info().
				Str("topic", topic).
				Str("entity", event.Entity).
				Str("action", event.Action).
				Int("id", event.ID).
				Time("occurred_at", event.OccurredAt).
				Msg("record changed")
		})
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to start event consumer")
		}
	}
}

// rejectWhileCleaningUp turns traffic away once the grace period is over,
// while health probes keep answering.
func (h *HTTP) rejectWhileCleaningUp(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod && r.URL.Path != "/health" {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown(done chan struct{}) {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh, done)
}

func (h *HTTP) respondToSigterm(signals chan os.Signal, done chan struct{}) {
	<-signals

	defer close(done)

	if h.Config.IsDevelopment() {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.stop(context.Background())

		return
	}

	log.Info().Msg("Received SIGTERM.")

	h.Drain(context.Background())
}

// Drain walks the shutdown sequence: health turns unhealthy for the grace
// period, then requests are refused for the cleanup period, then the server
// and its dependencies stop.
func (h *HTTP) Drain(ctx context.Context) {
	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")
	h.state.Store(int32(ServerStateInGracePeriod))
	sleep(ctx, time.Duration(shutdownConfig.GracePeriodSeconds)*time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")
	h.state.Store(int32(ServerStateInCleanupPeriod))
	sleep(ctx, time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)

	h.stop(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) stop(ctx context.Context) {
	h.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, writeTimeout)
		defer cancel()

		if h.server != nil {
			if err := h.server.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("failed to shut down HTTP server")
			}
		}

		if h.consumers != nil {
			h.consumers()
		}

		if err := h.Events.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close event bus")
		}

		if err := h.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("failed to shut down tracer provider")
		}
	})
}

func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
