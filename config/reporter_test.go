package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "stored.log")
	if err := os.WriteFile(stored, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}
	r.Store("final.log", stored)
	r.Store("final.log", stored)
	r.Store("absent.log", filepath.Join(dir, "absent.log"))
	r.StoreData("input.txt", []byte("red"))
	r.StoreData("input.txt", []byte("blue"))

	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["final.log"] != "log line" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["input.txt"] != "red" {
		t.Errorf("input.txt = %q", files["input.txt"])
	}
	if _, ok := files["absent.log"]; ok {
		t.Error("absent file must be skipped")
	}
	versioned := 0
	for name := range files {
		if strings.HasPrefix(name, "input.txt-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned entry, got %d", versioned)
	}
	if !strings.Contains(files["MANIFEST"], "final.log") {
		t.Errorf("MANIFEST = %q", files["MANIFEST"])
	}
}

func TestReportStore_Overwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/tmp/one")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on overwrite")
		}
	}()
	r.Store("a", "/tmp/two")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Error("nil report must have no name")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
