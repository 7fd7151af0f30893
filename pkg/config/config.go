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

// Package config loads and stores derby's race configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	derby "laptudirm.com/x/derby/pkg/common"
	"laptudirm.com/x/derby/pkg/race"
	"laptudirm.com/x/derby/pkg/schedule"
	"laptudirm.com/x/derby/pkg/series"
)

type Config struct {
	// The colors of the race's participants, in order of their ids.
	Colors []string `yaml:"colors"`

	// Name of the clicker used to autoplay races.
	Clicker string `yaml:"clicker"`

	// Pause between two clicks of an autoplayed race.
	Delay time.Duration `yaml:"delay"`

	Series struct {
		Races       int   `yaml:"races"`
		Concurrency int   `yaml:"concurrency"`
		Seed        int64 `yaml:"seed"`
	} `yaml:"series"`
}

// Default returns the default configuration, a race between red, blue,
// green, and yellow.
func Default() *Config {
	var config Config
	config.Colors = []string{"red", "blue", "green", "yellow"}
	config.Clicker = "round-robin"
	config.Delay = 250 * time.Millisecond
	config.Series.Races = 100
	config.Series.Concurrency = 4
	config.Series.Seed = 1
	return &config
}

// Load reads the configuration file at the given path. Fields missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(file))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	logrus.WithField("path", path).Debug("Loaded configuration")
	return config, nil
}

// LoadOrCreate reads the configuration file at the given path, writing the
// default configuration there first if it doesn't exist.
func LoadOrCreate(path string) (*Config, error) {
	data, err := Default().Marshal()
	if err != nil {
		return nil, err
	}

	created, err := derby.TryCreate(path, data)
	if err != nil {
		return nil, fmt.Errorf("create config: %w", err)
	}

	if created {
		logrus.WithField("path", path).Info("Created default configuration")
	}

	return Load(path)
}

// Save writes the configuration to the given path.
func (config *Config) Save(path string) error {
	data, err := config.Marshal()
	if err != nil {
		return err
	}

	if err := derby.TryMkdir(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, data, derby.FilePermissions)
}

func (config *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks that a race and a clicker can be created from the
// configuration.
func (config *Config) Validate() error {
	if _, err := race.New(config.Colors); err != nil {
		return err
	}

	if _, err := schedule.New(config.Clicker, config.Series.Seed); err != nil {
		return err
	}

	if config.Delay < 0 {
		return fmt.Errorf("negative delay %s", config.Delay)
	}

	return nil
}

// SeriesConfig returns the configuration of a series of races.
func (config *Config) SeriesConfig() series.Config {
	return series.Config{
		Colors:      config.Colors,
		Clicker:     config.Clicker,
		Races:       config.Series.Races,
		Concurrency: config.Series.Concurrency,
		Seed:        config.Series.Seed,
	}
}
