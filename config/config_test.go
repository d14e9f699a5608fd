package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	_, err := Load("/nonexistent/path/occupancy.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	// Load with empty path uses default search (may use defaults if no config file)
	cfg, _ := Load("")
	if cfg.Data.Train != "data/datatraining.txt" {
		t.Errorf("default train: got %s", cfg.Data.Train)
	}
	if cfg.Classifier.Index != "bruteforce" {
		t.Errorf("default index: got %s", cfg.Classifier.Index)
	}
	if cfg.Sweep.KFrom != 1 || cfg.Sweep.KTo != 33 {
		t.Errorf("default sweep: got %d..%d", cfg.Sweep.KFrom, cfg.Sweep.KTo)
	}
	if cfg.Data.CommaRune() != ',' {
		t.Errorf("default comma: got %q", cfg.Data.CommaRune())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	content := `
data:
  train: "train.csv"
  test: "test.csv"
  features: ["Light", "CO2"]
  comma: ";"
classifier:
  index: vptree
  workers: 4
sweep:
  k_from: 3
  k_to: 15
report:
  plots_dir: "plots"
  store_path: "runs.db"
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Train != "train.csv" || cfg.Data.Test != "test.csv" {
		t.Errorf("data: got %+v", cfg.Data)
	}
	if len(cfg.Data.Features) != 2 || cfg.Data.Features[1] != "CO2" {
		t.Errorf("features: got %v", cfg.Data.Features)
	}
	if cfg.Data.CommaRune() != ';' {
		t.Errorf("comma: got %q", cfg.Data.CommaRune())
	}
	if cfg.Classifier.Index != "vptree" || cfg.Classifier.Workers != 4 {
		t.Errorf("classifier: got %+v", cfg.Classifier)
	}
	if cfg.Sweep.KFrom != 3 || cfg.Sweep.KTo != 15 {
		t.Errorf("sweep: got %+v", cfg.Sweep)
	}
	if cfg.Report.StorePath != "runs.db" || cfg.Report.PlotFormat != "png" {
		t.Errorf("report: got %+v", cfg.Report)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log format: got %s", cfg.Log.Format)
	}
}

func TestLoadResetsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := `
classifier:
  index: kdtree
sweep:
  k_from: -2
  k_to: 0
log:
  format: xml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Classifier.Index != "bruteforce" {
		t.Errorf("index: got %s", cfg.Classifier.Index)
	}
	if cfg.Sweep.KFrom != 1 || cfg.Sweep.KTo != 33 {
		t.Errorf("sweep: got %+v", cfg.Sweep)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log format: got %s", cfg.Log.Format)
	}
}
