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

package base

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/open3fs/minunit/pkg/errors"
)

// Suite is the base Suite for all test suites.
type Suite struct {
	suite.Suite
}

// SetupSuite runs before all tests in the suite.
func (s *Suite) SetupSuite() {
}

// TearDownSuite runs after all tests in the suite.
func (s *Suite) TearDownSuite() {
}

// SetupTest runs before each test in the suite.
func (s *Suite) SetupTest() {
}

// TearDownTest runs after each test in the suite.
func (s *Suite) TearDownTest() {
}

// R returns a require context.
func (s *Suite) R() *require.Assertions {
	return s.Require()
}

// NoError require no error, printing the full error stack on failure.
func (s *Suite) NoError(err error, args ...any) {
	if err != nil {
		err = fmt.Errorf("%s", errors.StackTrace(err))
	}
	s.R().NoError(err, args...)
}

// Error require error
func (s *Suite) Error(err error, args ...any) {
	s.R().Error(err, args...)
}

// InDelta require within delta.
func (s *Suite) InDelta(e, a any, delta float64, msg ...any) {
	s.R().InDelta(e, a, delta, msg...)
}

// Equal require equal
func (s *Suite) Equal(e, a any, msg ...any) {
	s.R().Equal(e, a, msg...)
}

// Empty require empty
func (s *Suite) Empty(object any, msg ...any) {
	s.R().Empty(object, msg...)
}

// Len require len
func (s *Suite) Len(object any, l int, args ...any) {
	s.R().Len(object, l, args...)
}

// Nil require nil
func (s *Suite) Nil(object any, args ...any) {
	s.R().Nil(object, args...)
}

// NotNil require not nil
func (s *Suite) NotNil(object any, args ...any) {
	s.R().NotNil(object, args...)
}

// True require true
func (s *Suite) True(value bool, args ...any) {
	s.R().True(value, args...)
}

// False require false
func (s *Suite) False(value bool, args ...any) {
	s.R().False(value, args...)
}

// Zero require 0
func (s *Suite) Zero(i any, args ...any) {
	s.R().Zero(i, args...)
}

// Contains require that the specified string, list(array, slice...) or map contains the specified
// substring or element.
func (s *Suite) Contains(object, contains any, args ...any) {
	s.R().Contains(object, contains, args...)
}

// NotContains require that the specified object does not contain the element.
func (s *Suite) NotContains(object, contains any, args ...any) {
	s.R().NotContains(object, contains, args...)
}

// TempFile writes content to a file under a per-test temp dir and returns its path.
func (s *Suite) TempFile(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.NoError(os.WriteFile(path, []byte(content), 0644))
	return path
}

// YamlMarshal marshal object to yaml.
func (s *Suite) YamlMarshal(v any) []byte {
	out, err := yaml.Marshal(v)
	s.NoError(err)
	return out
}

// YamlUnmarshal unmarshal yaml doc to object.
func (s *Suite) YamlUnmarshal(data []byte, dest any) {
	s.NoError(yaml.Unmarshal(data, dest))
}
