package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := Config{
		Level:  "info",
		Format: "text",
	}
	logger := New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	cfg.Format = "json"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}

	// Invalid level should default to info
	cfg.Level = "invalid"
	logger = New(cfg)
	if logger == nil {
		t.Error("Expected logger to not be nil")
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := New(Config{
		Level:  "info",
		Format: "text",
		File:   path,
	})

	logger.Info("hello from test", "key", "value")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("Expected log file to contain the message, got: %s", data)
	}
}

func TestWithComponent(t *testing.T) {
	logger := Default()
	componentLogger := logger.WithComponent("test-component")
	if componentLogger == nil {
		t.Error("Expected component logger to not be nil")
	}

	componentLogger2 := componentLogger.WithComponent("nested-component")
	if componentLogger2 == nil {
		t.Error("Expected nested component logger to not be nil")
	}
}

func TestWithEntity(t *testing.T) {
	logger := Default()
	entityLogger := logger.WithEntity("artist", "artist-123")
	if entityLogger == nil {
		t.Error("Expected entity logger to not be nil")
	}
}

func TestWithBatch(t *testing.T) {
	logger := Default()
	batchLogger := logger.WithBatch("batch-456")
	if batchLogger == nil {
		t.Error("Expected batch logger to not be nil")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Error("Expected default logger to not be nil")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close on file-less logger should be nil, got %v", err)
	}
}

func TestLogLevels(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error"}

	for _, level := range levels {
		cfg := Config{
			Level:  level,
			Format: "text",
		}
		logger := New(cfg)
		if logger == nil {
			t.Errorf("Expected logger to not be nil for level %s", level)
		}
	}
}
