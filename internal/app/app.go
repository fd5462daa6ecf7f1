// Package app собирает сессию кассового терминала и запускает её.
package app

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

// Run проводит одну сессию терминала поверх in/out до выхода оператора,
// конца ввода или отмены ctx. Служебный HTTP-сервер поднимается только
// при непустом cfg.MetricsAddr.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *log.Entry) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := NewDependencies(in, out, registry, logger)
	logger = logger.WithField("session_id", deps.SessionID)

	if cfg.MetricsAddr != "" {
		srv, _, err := startMetricsServer(cfg.MetricsAddr, registry, deps.SessionID, logger)
		if err != nil {
			return err
		}
		defer shutdownHTTP(srv, logger)
	}

	term := deps.Terminal()
	errCh := make(chan error, 1)
	go func() {
		errCh <- term.Run()
	}()

	select {
	case <-ctx.Done():
		// Чтение со стандартного ввода не прерывается: горутина терминала
		// завершится вместе с процессом или при закрытии ввода.
		logger.Info("stop signal received")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
