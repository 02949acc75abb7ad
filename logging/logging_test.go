// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hie-dave/lpjg-gui-sub000/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		c     logging.Config
		level zapcore.Level
		err   bool
	}{
		"default":       {c: logging.Config{}, level: zapcore.WarnLevel},
		"debug json":    {c: logging.Config{Level: "debug", Format: "json"}, level: zapcore.DebugLevel},
		"error console": {c: logging.Config{Level: "error", Format: "console"}, level: zapcore.ErrorLevel},
		"bad level":     {c: logging.Config{Level: "loud"}, err: true},
		"bad format":    {c: logging.Config{Format: "xml"}, err: true},
	}

	for name, test := range tests {
		l, err := logging.New(test.c)
		if test.err {
			if err == nil {
				t.Errorf("%s: expecting error", name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !l.Core().Enabled(test.level) {
			t.Errorf("%s: level %v should be enabled", name, test.level)
		}
		if test.level > zapcore.DebugLevel && l.Core().Enabled(test.level-1) {
			t.Errorf("%s: level %v should be disabled", name, test.level-1)
		}
	}
}

func TestOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lpjg.log")
	l, err := logging.New(logging.Config{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Info("output file parsed", zap.String("file", "lai.out"))
	l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(b), `"file":"lai.out"`) {
		t.Errorf("log %q: expecting file field", string(b))
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(logging.LevelEnv, "debug")
	t.Setenv(logging.FormatEnv, "json")
	t.Setenv(logging.OutputEnv, "")

	c := logging.FromEnv()
	if c.Level != "debug" || c.Format != "json" || c.Output != "" {
		t.Errorf("config: got %+v", c)
	}
	if l := logging.Must(logging.Config{Level: "loud"}); l == nil {
		t.Errorf("expecting a no-op logger")
	}
}
