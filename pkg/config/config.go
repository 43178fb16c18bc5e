// Copyright 2025 Open3FS Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/open3fs/minunit/pkg/errors"
	"github.com/open3fs/minunit/pkg/harness"
	"github.com/open3fs/minunit/pkg/utils"
)

// ColorMode controls coloring of the test result markers.
type ColorMode string

// defines color modes
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorModes = utils.NewSet(ColorAuto, ColorAlways, ColorNever)

// Config is the harness config definition. A Tolerance of 0 requires exact
// floating point equality.
type Config struct {
	Color       ColorMode `yaml:"color"`
	LogLevel    string    `yaml:"logLevel"`
	Tolerance   float64   `yaml:"tolerance"`
	FailOnError bool      `yaml:"failOnError"`
	Suites      []string  `yaml:"suites,omitempty"`
}

// SetValidate validates the config and normalizes its values.
func (c *Config) SetValidate() error {
	if c.Color == "" {
		c.Color = ColorAuto
	}
	c.Color = ColorMode(strings.ToLower(string(c.Color)))
	if !colorModes.Contains(c.Color) {
		return errors.Errorf("invalid color mode: %s", c.Color)
	}

	if c.LogLevel == "" {
		c.LogLevel = logrus.WarnLevel.String()
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Annotatef(err, "invalid log level %s", c.LogLevel)
	}
	c.LogLevel = level.String()

	if c.Tolerance < 0 {
		return errors.Errorf("tolerance must not be negative: %g", c.Tolerance)
	}

	suiteSet := utils.NewSet[string]()
	for i, name := range c.Suites {
		if name == "" {
			return errors.Errorf("suites[%d] is empty", i)
		}
		if !suiteSet.AddIfNotExists(name) {
			return errors.Errorf("duplicate suite: %s", name)
		}
	}

	return nil
}

// Level returns the logrus level of LogLevel. It must be called after SetValidate.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// NewConfigWithDefaults creates a new config with default values
func NewConfigWithDefaults() *Config {
	return &Config{
		Color:       ColorAuto,
		LogLevel:    logrus.WarnLevel.String(),
		Tolerance:   harness.DefaultTolerance,
		FailOnError: true,
	}
}

// Load reads a yaml config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	cfg := NewConfigWithDefaults()
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "open config file")
	}
	defer file.Close()

	// an empty file keeps the defaults
	if err = yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Annotate(err, "decode config file")
	}
	if err = cfg.SetValidate(); err != nil {
		return nil, errors.Annotate(err, "validate config")
	}
	return cfg, nil
}
