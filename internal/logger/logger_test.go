package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := parseLogLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Level != "INFO" {
		t.Errorf("Default level = %q, want %q", config.Level, "INFO")
	}
	if config.ConsoleEnabled {
		t.Error("Default ConsoleEnabled = true, want false")
	}
	if !config.FileEnabled {
		t.Error("Default FileEnabled = false, want true")
	}
	if config.FilePath != "logs/dungeongen.log" {
		t.Errorf("Default FilePath = %q, want %q", config.FilePath, "logs/dungeongen.log")
	}
}

func TestEnvVarOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_CONSOLE_ENABLED", "true")
	t.Setenv("LOG_FILE_ENABLED", "false")
	t.Setenv("LOG_FILE_PATH", "/custom/path.log")

	config := DefaultConfig().ApplyEnv()

	if config.Level != "ERROR" {
		t.Errorf("Level = %q, want %q (from env var)", config.Level, "ERROR")
	}
	if config.ConsoleFormat != "json" || config.FileFormat != "json" {
		t.Errorf("formats = %q/%q, want json/json (from env var)", config.ConsoleFormat, config.FileFormat)
	}
	if !config.ConsoleEnabled {
		t.Error("ConsoleEnabled = false, want true (from env var)")
	}
	if config.FileEnabled {
		t.Error("FileEnabled = true, want false (from env var)")
	}
	if config.FilePath != "/custom/path.log" {
		t.Errorf("FilePath = %q, want %q (from env var)", config.FilePath, "/custom/path.log")
	}
}

func TestConsoleFormatOverridesLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_CONSOLE_FORMAT", "text")

	config := DefaultConfig().ApplyEnv()
	if config.ConsoleFormat != "text" {
		t.Errorf("ConsoleFormat = %q, want text", config.ConsoleFormat)
	}
	if config.FileFormat != "json" {
		t.Errorf("FileFormat = %q, want json", config.FileFormat)
	}
}

func TestInitializeWithTextFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := initialize(Config{Level: "INFO", ConsoleEnabled: true, ConsoleFormat: "text"}, &buf); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { Close() })

	Info("Test message", "key", "value")
	Debug("This should not appear")

	output := buf.String()
	if !strings.Contains(output, "Test message") {
		t.Errorf("Output missing INFO message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Output missing structured field: %s", output)
	}
	if strings.Contains(output, "This should not appear") {
		t.Errorf("Output contains DEBUG message when level is INFO: %s", output)
	}
}

func TestInitializeWithJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := initialize(Config{Level: "INFO", ConsoleEnabled: true, ConsoleFormat: "json"}, &buf); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { Close() })

	Info("JSON test", "field1", "value1", "field2", 42)

	output := buf.String()
	if !strings.Contains(output, `"msg":"JSON test"`) {
		t.Errorf("Output missing JSON message field: %s", output)
	}
	if !strings.Contains(output, `"field1":"value1"`) {
		t.Errorf("Output missing JSON field: %s", output)
	}
	if !strings.Contains(output, `"field2":42`) {
		t.Errorf("Output missing numeric JSON field: %s", output)
	}
}

func TestInitializeWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gen.log")
	config := DefaultConfig()
	config.FilePath = path
	config.Level = "DEBUG"

	if err := Initialize(config); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	Debugf("generated %d rooms", 7)
	if err := Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "generated 7 rooms") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestInitializeRejectsEmptyFilePath(t *testing.T) {
	if err := Initialize(Config{FileEnabled: true}); err == nil {
		t.Error("Initialize with empty file path should fail")
	}
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer
	if err := initialize(Config{Level: "DEBUG", ConsoleEnabled: true}, &buf); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	t.Cleanup(func() { Close() })

	Debugf("Debug: %d + %d = %d", 1, 2, 3)
	Infof("Info: %s", "test")
	Warningf("Warning: %.2f%%", 99.95)
	Errorf("Error: %v", "failed")

	output := buf.String()
	for _, want := range []string{"Debug: 1 + 2 = 3", "Info: test", "Warning: 99.95%", "Error: failed"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestMultiHandler(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	handler1 := slog.NewTextHandler(&buf1, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler2 := slog.NewTextHandler(&buf2, &slog.HandlerOptions{Level: slog.LevelError})

	l := slog.New(newMultiHandler(handler1, handler2)).With("seed", 42)
	l.Info("Multi-handler test", "field", "value")
	l.Error("both")

	if !strings.Contains(buf1.String(), "Multi-handler test") {
		t.Error("First handler did not receive message")
	}
	if strings.Contains(buf2.String(), "Multi-handler test") {
		t.Error("Second handler received a message below its level")
	}
	if !strings.Contains(buf2.String(), "both") || !strings.Contains(buf2.String(), "seed=42") {
		t.Errorf("Second handler missing error record or attrs: %s", buf2.String())
	}
}

func TestNilLogger(t *testing.T) {
	Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging with nil logger caused panic: %v", r)
		}
	}()

	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
}
