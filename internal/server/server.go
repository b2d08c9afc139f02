package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zemenlab/go-ethiopic/internal/config"
)

// ConversionServer exposes the calendar conversion core over HTTP/JSON.
// It is the Go counterpart of a host-language binding: a thin layer that
// checks input shape, delegates to the pure functions, and translates the
// two error kinds (input-shape vs calendar-validity) to distinct responses.
type ConversionServer struct {
	Port  string
	Clock Clock

	registry *prometheus.Registry
	metrics  *Metrics
}

// NewConversionServer creates a server with its own metrics registry and a
// real clock.
func NewConversionServer(port string) *ConversionServer {
	reg := prometheus.NewRegistry()
	return &ConversionServer{
		Port:     port,
		Clock:    RealClock{},
		registry: reg,
		metrics:  NewMetrics(reg),
	}
}

// Router wires all endpoints. Conversion and validation routes are read-only
// GETs taking query parameters, matching the narrow function surface of the
// core.
func (s *ConversionServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get(config.RouteEthiopicToGregorian, s.handleEthiopicToGregorian)
	r.Get(config.RouteGregorianToEthiopic, s.handleGregorianToEthiopic)
	r.Get(config.RouteValidateEthiopic, s.handleValidateEthiopic)
	r.Get(config.RouteValidateGregorian, s.handleValidateGregorian)
	r.Get(config.RouteDayOfWeek, s.handleDayOfWeek)
	r.Get(config.RouteToday, s.handleToday)

	r.Method(http.MethodGet, config.RouteMetrics,
		promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *ConversionServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, 1)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// requestLogger tags every request with a generated ID and logs the outcome
// with timing at debug level.
func (s *ConversionServer) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set(config.HeaderRequestID, requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		slog.Debug(config.MsgRequestDone,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyRequestID, requestID,
			config.LogKeyMethod, r.Method,
			config.LogKeyPath, r.URL.Path,
			config.LogKeyStatus, ww.Status(),
			config.LogKeyDuration, time.Since(start).Milliseconds(),
		)
	})
}
