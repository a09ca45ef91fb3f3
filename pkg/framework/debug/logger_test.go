package debug

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("BasicLogging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "TEST", FlagLevel|FlagPrefix)

		logger.Info("Hello %s", "World")

		output := buf.String()
		if !strings.Contains(output, "[INFO]") {
			t.Error("Missing log level")
		}
		if !strings.Contains(output, "[TEST]") {
			t.Error("Missing prefix")
		}
		if !strings.Contains(output, "Hello World") {
			t.Error("Missing message")
		}
		if !strings.HasSuffix(output, "\n") {
			t.Error("Missing trailing newline")
		}
	})

	t.Run("LogLevels", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagLevel)
		logger.SetLevel(LogLevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Debug message should not be logged")
		}
		if strings.Contains(output, "info message") {
			t.Error("Info message should not be logged")
		}
		if !strings.Contains(output, "warn message") {
			t.Error("Warn message should be logged")
		}
		if !strings.Contains(output, "error message") {
			t.Error("Error message should be logged")
		}
	})

	t.Run("Off", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", DefaultFlags)
		logger.SetLevel(LogLevelOff)

		logger.Error("should not appear")

		if buf.Len() > 0 {
			t.Errorf("Logger at LogLevelOff wrote %q", buf.String())
		}
	})

	t.Run("CallerLine", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "", FlagShortFile)
		logger.Info("where")
		if !strings.Contains(buf.String(), "logger_test.go:") {
			t.Errorf("expected caller file in %q", buf.String())
		}
	})

	t.Run("With", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, "root", FlagPrefix)
		logger.SetLevel(LogLevelDebug)
		child := logger.With("player")
		child.Debug("started")
		if !strings.Contains(buf.String(), "[player] started") {
			t.Errorf("child prefix missing in %q", buf.String())
		}
		if child.Level() != LogLevelDebug {
			t.Error("child should inherit level")
		}
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{" warning ", LogLevelWarn},
		{"error", LogLevelError},
		{"off", LogLevelOff},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel should reject unknown names")
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "soyboy.log")
	logger, closer, err := NewFileLogger(path, "file", FlagPrefix)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Info("to disk")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "[file] to disk") {
		t.Errorf("unexpected log file contents %q", data)
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r := Analyze(nil)
		if r.Samples != 0 || r.Peak != 0 {
			t.Errorf("unexpected result for empty buffer: %+v", r)
		}
	})

	t.Run("Square", func(t *testing.T) {
		buf := []float32{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
		r := Analyze(buf)
		if r.Peak != 0.5 {
			t.Errorf("Peak = %f, want 0.5", r.Peak)
		}
		if math.Abs(float64(r.RMS)-0.5) > 1e-6 {
			t.Errorf("RMS = %f, want 0.5", r.RMS)
		}
		if r.DC != 0 {
			t.Errorf("DC = %f, want 0", r.DC)
		}
		if r.ZeroCrossings != 3 {
			t.Errorf("ZeroCrossings = %d, want 3", r.ZeroCrossings)
		}
		if r.Clipping() || r.Silent() {
			t.Error("square at half scale is neither clipping nor silent")
		}
	})

	t.Run("Problems", func(t *testing.T) {
		nan := float32(math.NaN())
		r := Analyze([]float32{1.5, nan, -2, 0})
		if r.ClippedSamples != 2 {
			t.Errorf("ClippedSamples = %d, want 2", r.ClippedSamples)
		}
		if r.NaNCount != 1 {
			t.Errorf("NaNCount = %d, want 1", r.NaNCount)
		}
		if r.Peak != 2 {
			t.Errorf("Peak = %f, want 2", r.Peak)
		}
	})

	t.Run("Silence", func(t *testing.T) {
		if !Analyze(make([]float32, 64)).Silent() {
			t.Error("zeros should be silent")
		}
	})
}

func TestLogStats(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", FlagLevel)
	LogStats(logger, "left", Analyze([]float32{2, float32(math.NaN()), 0}))

	out := buf.String()
	for _, want := range []string{"[INFO] left: 3 samples", "[WARN] left: 1 samples above full scale", "[ERROR] left: 1 NaN samples"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
