package common

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

// resetLoggerForTest clears the singleton so a test can rebuild the logger
// with its own environment and output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
}

// captureLogOutput rebuilds the logger with stdout redirected to a pipe,
// runs logFn and returns whatever was written, trimmed.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) string {
	t.Helper()

	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w
	defer func() {
		os.Stdout, os.Stderr = origStdout, origStderr
	}()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if err := w.Close(); err != nil {
		t.Fatalf("close pipe: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read log output: %v", err)
	}
	return strings.TrimSpace(string(data))
}

func decodeLogEntry(t *testing.T, line string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("log line %q is not JSON: %v", line, err)
	}
	return payload
}

func TestLoggerEmitsCloudLoggingFields(t *testing.T) {
	line := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("GET /health")
	})
	payload := decodeLogEntry(t, line)

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatalf("level key should be renamed to severity")
	}
	if msg := payload["message"]; msg != "GET /health" {
		t.Fatalf("unexpected message %v", msg)
	}
	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected string timestamp, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp %q is not fixed-microsecond RFC 3339: %v", ts, err)
	}
}

func TestSugarLoggerIncludesFields(t *testing.T) {
	line := captureLogOutput(t, func(*zap.Logger) {
		Sugar().Warnw("slow response", "latency_ms", 120)
	})
	payload := decodeLogEntry(t, line)

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
	if latency, ok := payload["latency_ms"].(float64); !ok || latency != 120 {
		t.Fatalf("expected latency_ms 120, got %v", payload["latency_ms"])
	}
}

func TestSeverityNamesPerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	cases := []struct {
		log  func(*zap.Logger)
		want string
	}{
		{func(l *zap.Logger) { l.Debug("d") }, "DEBUG"},
		{func(l *zap.Logger) { l.Info("i") }, "INFO"},
		{func(l *zap.Logger) { l.Warn("w") }, "WARNING"},
		{func(l *zap.Logger) { l.Error("e") }, "ERROR"},
	}
	for _, tc := range cases {
		payload := decodeLogEntry(t, captureLogOutput(t, tc.log))
		if got := payload["severity"]; got != tc.want {
			t.Fatalf("expected severity %s, got %v", tc.want, got)
		}
	}
}

func TestLogLevelEnvFiltersEntries(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	if out := captureLogOutput(t, func(l *zap.Logger) { l.Info("dropped") }); out != "" {
		t.Fatalf("info entry should be filtered at error level, got %q", out)
	}

	line := captureLogOutput(t, func(l *zap.Logger) { l.Error("kept") })
	if line == "" {
		t.Fatalf("error entry should still be emitted at error level")
	}
	payload := decodeLogEntry(t, line)
	if got := payload["severity"]; got != "ERROR" {
		t.Fatalf("expected severity ERROR, got %v", got)
	}
}
