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

package errors

import (
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// Suite is the base suite of this package. tests/base can not be used here
// since it imports this package.
type Suite struct {
	suite.Suite
}

// R returns a require context.
func (s *Suite) R() *require.Assertions {
	return s.Require()
}
