package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()

	stored := filepath.Join(tmpDir, "recipe.yaml")
	if err := os.WriteFile(stored, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	rpt, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	rpt.Store("recipes/recipe.yaml", stored)
	rpt.StoreData("output/selectors.txt", []byte("main: #main\n"))

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("Failed to open report archive: %v", err)
	}
	defer zr.Close()

	want := map[string]bool{
		"MANIFEST":             false,
		"recipes/recipe.yaml":  false,
		"output/selectors.txt": false,
	}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("report archive missing entry %q", name)
		}
	}

	for _, f := range zr.File {
		if f.Name != "output/selectors.txt" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open archive entry: %v", err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		if string(data) != "main: #main\n" {
			t.Errorf("archive entry content = %q", data)
		}
	}
}

func TestReport_NilReceiver(t *testing.T) {
	var rpt *Report
	// all operations must be no-ops on absent report
	rpt.Store("a", "b")
	rpt.StoreData("c", []byte("d"))
	if rpt.Name() != "" {
		t.Error("Name() on nil report should be empty")
	}
	if err := rpt.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}
}
