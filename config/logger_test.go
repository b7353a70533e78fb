package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggingPrepare_File(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "test.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "normal", Destination: dest, Mode: "overwrite"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("hidden message")
	log.Info("visible message")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("unable to read log: %v", err)
	}
	if !strings.Contains(string(data), "visible message") {
		t.Errorf("log misses info message:\n%s", data)
	}
	if strings.Contains(string(data), "hidden message") {
		t.Errorf("debug message must be filtered:\n%s", data)
	}
}

func TestLoggingPrepare_Report(t *testing.T) {
	dir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("report Prepare() error = %v", err)
	}
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none", Destination: filepath.Join(dir, "test.log")},
	}
	log, err := conf.Prepare(rpt)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	log.Debug("debug message")
	_ = log.Sync()

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	files := readArchive(t, rpt.Name())
	if !strings.Contains(files["final.log"], "debug message") {
		t.Errorf("report must carry debug log, got %q", files["final.log"])
	}
}

func TestLevelOf(t *testing.T) {
	for _, level := range []string{"debug", "normal"} {
		if _, ok := levelOf(level); !ok {
			t.Errorf("levelOf(%q) must be enabled", level)
		}
	}
	if _, ok := levelOf("none"); ok {
		t.Error("levelOf(none) must be disabled")
	}
}
