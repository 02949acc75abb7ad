// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package logging builds the structured loggers
// used by the commands.
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Environment variables read by FromEnv.
const (
	LevelEnv  = "LPJG_LOG_LEVEL"
	FormatEnv = "LPJG_LOG_FORMAT"
	OutputEnv = "LPJG_LOG_OUTPUT"
)

// Config is the configuration of a logger.
type Config struct {
	// Level is the minimum level,
	// e.g. "debug", "info", "warn" or "error".
	// An empty level is "warn".
	Level string

	// Format is either "console" or "json".
	Format string

	// Output is the path of the log.
	// By default it is the standard error.
	Output string
}

// FromEnv returns the configuration
// defined in the environment.
func FromEnv() Config {
	return Config{
		Level:  os.Getenv(LevelEnv),
		Format: os.Getenv(FormatEnv),
		Output: os.Getenv(OutputEnv),
	}
}

// New returns a new logger.
func New(c Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if strings.EqualFold(c.Format, "console") || c.Format == "" {
		zc = zap.NewDevelopmentConfig()
		zc.Encoding = "console"
		zc.DisableStacktrace = true
	} else if !strings.EqualFold(c.Format, "json") {
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}

	lv := c.Level
	if lv == "" {
		lv = "warn"
	}
	level, err := zap.ParseAtomicLevel(lv)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %v", c.Level, err)
	}
	zc.Level = level

	out := "stderr"
	if c.Output != "" {
		out = c.Output
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

// Must returns a new logger,
// or a no-op logger
// if the configuration is invalid.
func Must(c Config) *zap.Logger {
	l, err := New(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return zap.NewNop()
	}
	return l
}
