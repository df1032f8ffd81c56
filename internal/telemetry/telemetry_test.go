package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{in: "DEBUG", want: logrus.DebugLevel},
		{in: "info", want: logrus.InfoLevel},
		{in: "WARN", want: logrus.WarnLevel},
		{in: "ERROR", want: logrus.ErrorLevel},
		{in: "", want: logrus.WarnLevel},
		{in: "verbose", want: logrus.WarnLevel},
	}

	for _, tt := range tests {
		if got := LogLevel(tt.in); got != tt.want {
			t.Errorf("LogLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSetupLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, "INFO", "json")

	WithBoardID(logger, "123").Info("listing columns")
	logger.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["board_id"] != "123" {
		t.Errorf("expected board_id field, got %v", entry)
	}
	if entry["msg"] != "listing columns" {
		t.Errorf("unexpected msg %v", entry["msg"])
	}
}

func TestSetupLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, "", "")

	logger.Info("hidden at WARN")
	WithColumnID(logger, "abc").Warn("partial card")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info should be filtered: %q", out)
	}
	if !strings.Contains(out, "column_id=abc") {
		t.Errorf("expected column_id field: %q", out)
	}
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	if err := WriteMetrics("", reg); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}

	path := filepath.Join(t.TempDir(), "trellocli.prom")
	if err := WriteMetrics(path, reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(data), "test_total 1") {
		t.Errorf("unexpected metrics file: %s", data)
	}
}

func TestNewRegistry(t *testing.T) {
	mfs, err := NewRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Error("expected go collector metrics")
	}
}

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger(&buf, "ERROR", "text")

	logger.Warn("hidden")
	Configure(logger, "DEBUG", "json")
	logger.Debug("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("warn should be filtered at ERROR: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"msg":"visible"`) {
		t.Errorf("expected JSON debug line: %q", buf.String())
	}
}
