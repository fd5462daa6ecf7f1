package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

const (
	EnvLogLevel    = "POS_LOG_LEVEL"
	EnvLogFile     = "POS_LOG_FILE"
	EnvMetricsAddr = "POS_METRICS_ADDR"
)

// Config описывает настройки запуска терминала.
// Пустой MetricsAddr отключает HTTP-эндпоинт метрик.
type Config struct {
	LogLevel    string `toml:"log_level"`
	LogFile     string `toml:"log_file"`
	MetricsAddr string `toml:"metrics_addr"`
}

// DefaultConfig возвращает настройки по умолчанию: только предупреждения
// в stderr и без HTTP-сервера.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
	}
}

// LoadFile накладывает значения из TOML-файла поверх cfg.
// Отсутствующие в файле ключи не меняют текущих значений.
func LoadFile(path string, cfg Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv переопределяет настройки переменными окружения POS_*.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
	return cfg
}

// Validate проверяет, что уровень логирования известен logrus.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return nil
}

// NewLogger создаёт логгер по настройкам. Если задан LogFile, логи пишутся
// в файл, иначе в fallback. Возвращённую функцию нужно вызвать при выходе.
func NewLogger(cfg Config, fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, ErrInvalidConfig)
	}

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)
	logger.SetOutput(fallback)

	closeFn := func() error { return nil }
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		closeFn = f.Close
	}
	return logger, closeFn, nil
}
