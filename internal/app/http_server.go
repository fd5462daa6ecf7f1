package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/version"
)

const shutdownTimeout = 5 * time.Second

// newMetricsRouter собирает маршруты служебного HTTP-сервера.
func newMetricsRouter(gatherer prometheus.Gatherer, sessionID string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":     "ok",
			"version":    version.GetVersion(),
			"commit":     version.GetCommit(),
			"build_date": version.GetDate(),
			"session_id": sessionID,
		})
	})
	return r
}

// startMetricsServer слушает addr и отдаёт /metrics, /livez и /health.
// Ошибка привязки к адресу возвращается сразу.
func startMetricsServer(addr string, gatherer prometheus.Gatherer, sessionID string, logger *log.Entry) (*http.Server, net.Addr, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen metrics %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           newMetricsRouter(gatherer, sessionID),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Infof("metrics available at %s/metrics", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()
	return srv, lis.Addr(), nil
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
