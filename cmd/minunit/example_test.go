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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open3fs/minunit/pkg/config"
)

func newTestConfig(suites ...string) *config.Config {
	cfg := config.NewConfigWithDefaults()
	cfg.Color = config.ColorNever
	cfg.Suites = suites
	return cfg
}

func TestRunSuites(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		out := new(bytes.Buffer)
		sum, err := runSuites(newTestConfig(), out)
		require.NoError(t, err)

		assert.Equal(t, 7, sum.Runs)
		assert.Equal(t, 11, sum.Asserts)
		assert.Zero(t, sum.Fails)
		assert.True(t, strings.HasPrefix(out.String(), ".......\n\n7 tests, 11 assertions, 0 failures\n"),
			out.String())
		assert.Contains(t, out.String(), "seconds (real)")
	})

	t.Run("Failures", func(t *testing.T) {
		out := new(bytes.Buffer)
		sum, err := runSuites(newTestConfig(suiteFailures), out)
		require.NoError(t, err)

		assert.Equal(t, 5, sum.Runs)
		assert.Equal(t, 5, sum.Fails)
		assert.True(t, sum.Failed())
		assert.Contains(t, out.String(), "F\ntestCheckFail failed:\n\tcmd/minunit/suites.go:")
		assert.Contains(t, out.String(), ": foo should be <> 7\n")
		assert.Contains(t, out.String(), ": 5 expected but was 4\n")
		assert.Contains(t, out.String(), ": 1 expected but was 1.000001\n")
		assert.Contains(t, out.String(), ": 'minunit' expected but was 'maxunit'\n")
		assert.Contains(t, out.String(), "testFail failed:")
		assert.Contains(t, out.String(), "\n\n5 tests, 5 assertions, 5 failures\n")
	})

	t.Run("Unknown", func(t *testing.T) {
		out := new(bytes.Buffer)
		_, err := runSuites(newTestConfig("nope"), out)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown suite nope")
		assert.Empty(t, out.String())
	})

	t.Run("Color", func(t *testing.T) {
		cfg := newTestConfig(suiteHooks)
		cfg.Color = config.ColorAlways
		out := new(bytes.Buffer)
		_, err := runSuites(cfg, out)
		require.NoError(t, err)

		assert.Contains(t, out.String(), "\033[", "Output should contain color codes")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("FlagsOverFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "minunit.yml")
		require.NoError(t, os.WriteFile(path, []byte("color: always\nsuites: [failures]\n"), 0644))
		noColor = true
		logLevel = "debug"
		defer func() {
			noColor = false
			logLevel = ""
		}()

		cfg, err := loadConfig(path, []string{suiteHooks})
		require.NoError(t, err)

		assert.Equal(t, config.ColorNever, cfg.Color)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, []string{suiteHooks}, cfg.Suites)
	})

	t.Run("NoFile", func(t *testing.T) {
		cfg, err := loadConfig("", nil)
		require.NoError(t, err)

		assert.Equal(t, config.NewConfigWithDefaults(), cfg)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := loadConfig("", []string{suiteHooks, suiteHooks})

		assert.Error(t, err)
	})
}

func TestSuiteNames(t *testing.T) {
	assert.Equal(t, []string{suiteAssertions, suiteFailures, suiteHooks}, suiteNames())
}
