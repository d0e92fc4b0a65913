package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.config.level != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.config.level)
	}
	if logger.config.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.config.format != FormatJSON {
		t.Errorf("expected default format JSON, got %v", logger.config.format)
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelDebug))

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug message not logged after setting level to Debug")
	}

	buf.Reset()
	logger2 := Make(&buf, WithLevel(LevelError))
	logger2.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger2.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Make_JSONFormat_EmitsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))

	logger.Info("structured", slog.String("key", "value"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if record["msg"] != "structured" {
		t.Errorf("expected msg %q, got %v", "structured", record["msg"])
	}
	if record["key"] != "value" {
		t.Errorf("expected key %q, got %v", "value", record["key"])
	}
}

func TestLogger_Make_TextFormat_EmitsKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithPretty(false))

	logger.Info("plain message", slog.Int("count", 42))

	out := buf.String()
	if !strings.Contains(out, "plain message") {
		t.Errorf("message missing from output: %s", out)
	}
	if !strings.Contains(out, "count=42") {
		t.Errorf("attribute missing from output: %s", out)
	}
}

func TestLogger_Wrap_DerivesNewConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelError))

	derived := logger.Wrap(WithLevel(LevelDebug))

	if logger.Level() != LevelError {
		t.Error("Wrap modified the original logger")
	}
	if derived.Level() != LevelDebug {
		t.Errorf("expected derived level Debug, got %v", derived.Level())
	}

	derived.Debug("visible now")
	if !strings.Contains(buf.String(), "visible now") {
		t.Error("derived logger did not honor new level")
	}
}

func TestLogger_With_IncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	logger = logger.With(slog.String("component", "eval"))

	logger.Info("processing")

	if !strings.Contains(buf.String(), `"component":"eval"`) {
		t.Errorf("attached attribute missing: %s", buf.String())
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic, and must report defaults.
	logger.Info("into the void")
	logger.Error("still nothing")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}
	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format, got %v", logger.Format())
	}
}

func TestLogger_WithPretty_ColorizesOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(true))

	logger.Info("colored", slog.String("key", "value"))

	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Errorf("pretty output missing ANSI escapes: %q", out)
	}
	if !strings.Contains(out, "colored") {
		t.Errorf("message missing from pretty output: %q", out)
	}
}

func TestLogger_ConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("concurrent write")
		}()
	}
	wg.Wait()

	lines := strings.Count(buf.String(), "\n")
	if lines != 16 {
		t.Errorf("expected 16 log lines, got %d", lines)
	}
}

func TestConfig_ReconfiguresDefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMutex.Lock()
		defaultLogger = original
		defaultMutex.Unlock()
	}()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelDebug), WithPretty(false))

	Debug("through default logger")

	if !strings.Contains(buf.String(), "through default logger") {
		t.Errorf("default logger did not pick up new configuration: %q",
			buf.String())
	}
}
