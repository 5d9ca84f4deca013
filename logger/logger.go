/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logger provides structured logging for the kschema tools using zerolog
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu           sync.RWMutex
	globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// Config selects level and destination of the global logger.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Debug      bool   `json:"debug" yaml:"debug"`
	Output     string `json:"output" yaml:"output"` // stderr (default), stdout or console
	TimeFormat string `json:"time_format" yaml:"time_format"`

	// Writer replaces the destination named by Output when set.
	Writer io.Writer `json:"-" yaml:"-"`
}

// New builds a logger from cfg without touching the global one.
func New(cfg Config) (zerolog.Logger, error) {
	output, err := writerFor(cfg)
	if err != nil {
		return zerolog.Nop(), err
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	} else if cfg.Level != "" {
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

func writerFor(cfg Config) (io.Writer, error) {
	if cfg.Writer != nil {
		return cfg.Writer, nil
	}
	switch cfg.Output {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "console":
		format := cfg.TimeFormat
		if format == "" {
			format = time.Kitchen
		}
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: format}, nil
	default:
		return nil, fmt.Errorf("invalid log output %q", cfg.Output)
	}
}

// Init replaces the global logger.
func Init(cfg Config) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	if cfg.TimeFormat != "" {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}

	mu.Lock()
	globalLogger = l
	mu.Unlock()
	return nil
}

func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func SetLevel(level zerolog.Level) {
	mu.Lock()
	globalLogger = globalLogger.Level(level)
	mu.Unlock()
}

func Debug() *zerolog.Event {
	l := GetLogger()
	return l.Debug()
}

func Info() *zerolog.Event {
	l := GetLogger()
	return l.Info()
}

func Warn() *zerolog.Event {
	l := GetLogger()
	return l.Warn()
}

func Error() *zerolog.Event {
	l := GetLogger()
	return l.Error()
}

// WithComponent returns a child of the global logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return GetLogger().With().Str("component", component).Logger()
}
