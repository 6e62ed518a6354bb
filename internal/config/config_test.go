package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/rowsense-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	c, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.SampleSize != 10000 || c.SampleSeed != 42 {
		t.Fatalf("unexpected sampling defaults: %+v", c)
	}
	if c.SplitRatio != 0.2 || c.SplitSeed != 42 {
		t.Fatalf("unexpected split defaults: %+v", c)
	}
	if c.Trees != 500 || c.MaxDepth != 10 || c.NumLeaves != 20 || c.LearningRate != 0.1 {
		t.Fatalf("unexpected hyperparameter defaults: %+v", c)
	}
	if c.ReportFormat != "table" {
		t.Fatalf("unexpected report format: %q", c.ReportFormat)
	}
}

func TestSaveAndReload(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	c, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.DatasetPath = "/data/rows.jsonl"
	c.SampleSize = 250
	c.SampleSeed = -1
	if err := config.Save(c, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
	got, err := config.Load(p)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.DatasetPath != "/data/rows.jsonl" || got.SampleSize != 250 || got.SampleSeed != -1 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}
