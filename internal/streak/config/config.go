// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the run configuration of streak.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Directory is the directory streak looks for its configuration in.
var Directory = filepath.Join(xdg.ConfigHome, "streak")

// File is the default configuration file.
var File = filepath.Join(Directory, "config.yaml")

// DefaultTrials is the number of simulation trials run when none is
// configured.
const DefaultTrials = 10_000

// Config is the configuration of an analysis run.
type Config struct {
	// PGN export to read the games from.
	Games string `yaml:"games"`

	// The player whose winning streaks are analysed.
	Player string `yaml:"player"`

	// Number of simulated trials.
	Trials int `yaml:"trials"`

	// Seed of the trials' random sources. A zero seed is replaced by a
	// time based one.
	Seed int64 `yaml:"seed"`

	// Number of trials simulated concurrently.
	Concurrency int `yaml:"concurrency"`

	// Skip games not played by the player instead of failing.
	Lenient bool `yaml:"lenient"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Trials:      DefaultTrials,
		Concurrency: runtime.NumCPU(),
	}
}

// Load reads the configuration file at path on top of the defaults. A
// missing file at the default location is not an error.
func Load(path string) (Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = File
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return config, nil
	default:
		return config, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that the configuration describes a runnable analysis.
func (config Config) Validate() error {
	switch {
	case config.Games == "":
		return errors.New("config: no games file given")
	case config.Player == "":
		return errors.New("config: no player given")
	case config.Trials < 0:
		return fmt.Errorf("config: invalid trial count %d", config.Trials)
	case config.Concurrency < 0:
		return fmt.Errorf("config: invalid concurrency %d", config.Concurrency)
	}

	return nil
}
