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
	"os"
	"strconv"
	"text/template"

	"github.com/urfave/cli/v2"

	"github.com/open3fs/minunit/pkg/config"
	"github.com/open3fs/minunit/pkg/errors"
)

var sampleConfigPath string

var configCmd = &cli.Command{
	Name:    "config",
	Aliases: []string{"cfg"},
	Usage:   "Manage harness config",
	Subcommands: []*cli.Command{
		{
			Name:   "create",
			Usage:  "Create a sample harness config",
			Action: createSampleConfig,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "file",
					Aliases:     []string{"f"},
					Usage:       "Specify a configuration file path",
					Destination: &sampleConfigPath,
					Value:       "minunit.yml",
				},
			},
		},
	},
}

var sampleConfigTemplate = `# color of the result markers: auto, always or never
color: "{{.Color}}"
# logrus level of the diagnostics written to stderr
logLevel: "{{.LogLevel}}"
# absolute tolerance of floating point equality
tolerance: {{.Tolerance}}
# exit with status 1 when a test failed
failOnError: {{.FailOnError}}
# suites to run, all except "failures" when empty
suites:
{{- range .Suites}}
  - "{{.}}"
{{- end}}
`

func createSampleConfig(*cli.Context) error {
	return writeSampleConfig(sampleConfigPath)
}

func writeSampleConfig(path string) error {
	if path == "" {
		return errors.New("config file path is required")
	}
	tmpl, err := template.New("sampleConfig").Parse(sampleConfigTemplate)
	if err != nil {
		return errors.Annotate(err, "parse sample config template")
	}

	cfg := config.NewConfigWithDefaults()
	cfg.Suites = defaultSuites

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.Annotate(err, "create sample config file")
	}
	defer file.Close()

	data := map[string]any{
		"Color":       cfg.Color,
		"LogLevel":    cfg.LogLevel,
		"Tolerance":   strconv.FormatFloat(cfg.Tolerance, 'g', -1, 64),
		"FailOnError": cfg.FailOnError,
		"Suites":      cfg.Suites,
	}
	if err = tmpl.Execute(file, data); err != nil {
		return errors.Annotate(err, "write sample config file")
	}

	return nil
}
