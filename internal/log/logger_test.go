package log

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"healthrisk/internal/config"
)

func TestNewLogger(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	logger, err := NewLogger(config.LoggingConfig{
		Level:       "debug",
		Encoding:    "json",
		OutputPaths: []string{out},
	})
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(config.LoggingConfig{Level: "loud"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
