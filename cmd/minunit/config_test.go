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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open3fs/minunit/pkg/config"
)

func TestWriteSampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minunit.yml")

	require.NoError(t, writeSampleConfig(path))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	expected := config.NewConfigWithDefaults()
	expected.Suites = defaultSuites
	assert.Equal(t, expected, cfg)

	// an existing file is never overwritten
	assert.Error(t, writeSampleConfig(path))
	assert.Error(t, writeSampleConfig(""))
}
