package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func TestRun_QuitImmediately(t *testing.T) {
	out := &bytes.Buffer{}

	err := Run(context.Background(), DefaultConfig(), strings.NewReader("Q\n"), out, discardLogger())
	require.NoError(t, err)
	require.Contains(t, out.String(), "--- BURGERS ---")
	require.Contains(t, out.String(), "Thanks!")
}

func TestRun_CashSale(t *testing.T) {
	out := &bytes.Buffer{}
	input := "A\n1\n1\nB\nP\nCA\nN\n20\nQ\n"

	err := Run(context.Background(), DefaultConfig(), strings.NewReader(input), out, discardLogger())
	require.NoError(t, err)
	require.Contains(t, out.String(), "Change: $6.46")
	require.Contains(t, out.String(), "New order...")
}

func TestRun_EndOfInput(t *testing.T) {
	err := Run(context.Background(), DefaultConfig(), strings.NewReader(""), io.Discard, discardLogger())
	require.NoError(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	err := Run(context.Background(), cfg, strings.NewReader("Q\n"), io.Discard, discardLogger())
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, DefaultConfig(), pr, io.Discard, discardLogger())
	require.ErrorIs(t, err, context.Canceled)

	// Закрытие ввода отпускает горутину терминала.
	require.NoError(t, pw.Close())
}

func TestRun_WithMetricsServer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsAddr = "127.0.0.1:0"

	err := Run(context.Background(), cfg, strings.NewReader("Q\n"), io.Discard, discardLogger())
	require.NoError(t, err)
}

func TestRun_BadMetricsAddr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MetricsAddr = "256.0.0.1:0"

	err := Run(context.Background(), cfg, strings.NewReader("Q\n"), io.Discard, discardLogger())
	require.Error(t, err)
}
