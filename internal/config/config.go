// Package config defines the data structures related to application
// configuration and includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

// Configuration holds all configuration for collateral-allocator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Solver  SolverConfig  `yaml:"solver,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// SolverConfig selects and tunes the LP solver. Options is an opaque bag
// passed through to the solver implementation; the core defines no keys of
// its own.
type SolverConfig struct {
	Engine    string            `yaml:"engine,omitempty"`    // defaults to simplex
	Tolerance float64           `yaml:"tolerance,omitempty"` // reduced-cost tolerance, 0 for default
	Options   map[string]string `yaml:"options,omitempty"`
}

// Default returns the configuration used when no config file is supplied.
func Default() *Configuration {
	return &Configuration{
		Solver: SolverConfig{Engine: constants.DefaultSolverEngine},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields defaults without touching the
// filesystem. Each call uses its own viper instance.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if configPath == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Solver.Engine == "" {
		configuration.Solver.Engine = constants.DefaultSolverEngine
	}

	return &configuration, nil
}
