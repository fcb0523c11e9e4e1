package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	content := `logging:
  level: debug
  format: console
output:
  format: json
solver:
  engine: simplex
  tolerance: 1e-9
  options:
    presolve: "off"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "json" {
		t.Errorf("output format = %s, expected json", conf.Output.Format)
	}
	if conf.Solver.Engine != "simplex" {
		t.Errorf("solver engine = %s, expected simplex", conf.Solver.Engine)
	}
	if conf.Solver.Tolerance != 1e-9 {
		t.Errorf("solver tolerance = %v, expected 1e-9", conf.Solver.Tolerance)
	}
	if conf.Solver.Options["presolve"] != "off" {
		t.Errorf("solver options = %v, expected presolve=off", conf.Solver.Options)
	}
}

func TestLoadConfigurationEmptyPathDefaults(t *testing.T) {
	conf, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration(\"\") error = %v", err)
	}
	if conf.Solver.Engine != constants.DefaultSolverEngine {
		t.Errorf("solver engine = %s, expected %s", conf.Solver.Engine, constants.DefaultSolverEngine)
	}
}

func TestLoadConfigurationEngineDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if conf.Solver.Engine != constants.DefaultSolverEngine {
		t.Errorf("solver engine = %s, expected default %s", conf.Solver.Engine, constants.DefaultSolverEngine)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
