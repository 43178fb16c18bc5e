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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/open3fs/minunit/pkg/common"
	"github.com/open3fs/minunit/pkg/config"
	"github.com/open3fs/minunit/pkg/errors"
	"github.com/open3fs/minunit/pkg/harness"
	"github.com/open3fs/minunit/pkg/log"
	"github.com/open3fs/minunit/pkg/utils"
)

var (
	configFilePath string
	logLevel       string
	noColor        bool
)

var exampleCmd = &cli.Command{
	Name:    "example",
	Aliases: []string{"ex"},
	Usage:   "Run the bundled example suites",
	Action:  runExample,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to the harness configuration file",
			Destination: &configFilePath,
		},
		&cli.StringSliceFlag{
			Name:    "suite",
			Aliases: []string{"s"},
			Usage:   "Suite to run, may be repeated (" + strings.Join(suiteNames(), ", ") + ")",
		},
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Log level of the diagnostics written to stderr",
			Destination: &logLevel,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored result markers",
			Destination: &noColor,
		},
	},
}

func suiteNames() []string {
	names := utils.NewSet[string]()
	for name := range exampleSuites {
		names.Add(name)
	}
	return names.Sorted()
}

// loadConfig loads the config file if any and applies the flags over it.
func loadConfig(path string, suites []string) (*config.Config, error) {
	cfg := config.NewConfigWithDefaults()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if len(suites) > 0 {
		cfg.Suites = suites
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if noColor {
		cfg.Color = config.ColorNever
	}
	if err := cfg.SetValidate(); err != nil {
		return nil, errors.Annotate(err, "validate config")
	}
	return cfg, nil
}

func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}

// runSuites runs the configured suites on a new harness and prints the report.
func runSuites(cfg *config.Config, out io.Writer) (harness.Summary, error) {
	names := cfg.Suites
	if len(names) == 0 {
		names = defaultSuites
	}
	suites := make([]harness.SuiteFunc, 0, len(names))
	for _, name := range names {
		suite, ok := exampleSuites[name]
		if !ok {
			return harness.Summary{}, errors.Errorf("unknown suite %s, valid suites: %s",
				name, strings.Join(suiteNames(), ", "))
		}
		suites = append(suites, suite)
	}

	h := harness.New(harness.Options{
		Out:       out,
		Logger:    log.Default(),
		Color:     useColor(cfg.Color),
		Tolerance: common.Pointer(cfg.Tolerance),
	})
	for i, suite := range suites {
		h.RunSuite(names[i], suite)
	}
	return h.Report(), nil
}

func runExample(ctx *cli.Context) error {
	cfg, err := loadConfig(configFilePath, ctx.StringSlice("suite"))
	if err != nil {
		return errors.Trace(err)
	}
	log.InitLogger(cfg.Level())
	log.Logger.Debugf("Harness config: %s", common.PrettySdump(cfg))

	summary, err := runSuites(cfg, os.Stdout)
	if err != nil {
		return errors.Annotate(err, "run example suites")
	}
	if summary.Failed() && cfg.FailOnError {
		return cli.Exit("", 1)
	}
	return nil
}
