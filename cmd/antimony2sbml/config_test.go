package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadBatchConfig(t *testing.T) {
	path := writeConfig(t, `
search_dirs = ["models/include"]

[[model]]
input  = "repressilator.ant"
output = "repressilator.xml"

[[model]]
input  = "oscillator.ant"
output = "oscillator.xml"
module = "core"
`)

	cfg, err := LoadBatchConfig(path)
	if err != nil {
		t.Fatalf("LoadBatchConfig: %v", err)
	}
	if len(cfg.Models) != 2 {
		t.Fatalf("models = %d, want 2", len(cfg.Models))
	}
	if cfg.Models[1].Module != "core" {
		t.Errorf("module = %q, want core", cfg.Models[1].Module)
	}
	if len(cfg.SearchDirs) != 1 || cfg.SearchDirs[0] != "models/include" {
		t.Errorf("search_dirs = %v", cfg.SearchDirs)
	}
}

func TestLoadBatchConfigRejectsEmpty(t *testing.T) {
	path := writeConfig(t, `search_dirs = []`)
	if _, err := LoadBatchConfig(path); err == nil {
		t.Fatal("empty config accepted")
	}
}

func TestLoadBatchConfigRequiresOutput(t *testing.T) {
	path := writeConfig(t, `
[[model]]
input = "m.ant"
`)
	if _, err := LoadBatchConfig(path); err == nil {
		t.Fatal("model without output accepted")
	}
}

func TestPlanSingleInput(t *testing.T) {
	jobs, dirs, err := plan("", "", "", []string{"model.ant"})
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(dirs) != 0 {
		t.Errorf("dirs = %v, want none", dirs)
	}
	if len(jobs) != 1 || jobs[0].Output != "model.xml" {
		t.Fatalf("jobs = %+v, want default .xml output", jobs)
	}
}

func TestPlanRequiresInput(t *testing.T) {
	if _, _, err := plan("", "", "", nil); err == nil {
		t.Fatal("plan with no input accepted")
	}
}
