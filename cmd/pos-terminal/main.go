package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vladislavdragonenkov/pos-terminal/internal/app"
	"github.com/vladislavdragonenkov/pos-terminal/internal/version"
)

type lookupFunc func(string) (string, bool)

// newCLI описывает команду терминала. Ввод и вывод сессии идут через
// stdin/stdout, логи через stderr или файл из настроек.
func newCLI(stdin io.Reader, stdout, stderr io.Writer, lookup lookupFunc) *cli.App {
	return &cli.App{
		Name:      "pos-terminal",
		Usage:     "Console point-of-sale terminal",
		Version:   version.GetVersion(),
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file path",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace, debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs to this file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "Serve /metrics, /livez and /health on this address (e.g. :9090)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := readConfig(c, lookup)
			if err != nil {
				return err
			}
			return run(c.Context, cfg, stdin, stdout, stderr)
		},
	}
}

// readConfig накладывает настройки по порядку: значения по умолчанию,
// файл, переменные окружения, флаги.
func readConfig(c *cli.Context, lookup lookupFunc) (app.Config, error) {
	cfg := app.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := app.LoadFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = app.ApplyEnv(cfg, lookup)

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.LogFile = c.String("log-file")
	}
	if c.IsSet("metrics-addr") {
		cfg.MetricsAddr = c.String("metrics-addr")
	}
	return cfg, cfg.Validate()
}

func run(parent context.Context, cfg app.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, closeLog, err := app.NewLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	entry := logger.WithField("component", "app")
	entry.WithFields(log.Fields{
		"build":        version.String(),
		"metrics_addr": cfg.MetricsAddr,
	}).Info("starting pos terminal")

	if err := app.Run(ctx, cfg, stdin, stdout, entry); err != nil && !errors.Is(err, context.Canceled) {
		entry.WithError(err).Error("terminal stopped with error")
		return err
	}

	entry.Info("pos terminal stopped")
	return nil
}

func main() {
	if err := newCLI(os.Stdin, os.Stdout, os.Stderr, os.LookupEnv).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
