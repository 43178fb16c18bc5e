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
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestFrameSuite(t *testing.T) {
	suite.Run(t, new(frameSuite))
}

type frameSuite struct {
	Suite
}

func sampleFunc() Frame {
	return CallerFrame(0)
}

func (s *frameSuite) TestCallerFrame() {
	r := s.R()

	f := sampleFunc()
	r.True(f.Valid())
	r.Equal("sampleFunc", f.Func)
	r.Equal(thisFrameFile, f.File)
	r.NotZero(f.Line)

	outer := func() Frame {
		return CallerFrame(1)
	}
	f = outer()
	r.Equal("(*frameSuite).TestCallerFrame", f.Func)
}

func (s *frameSuite) TestFuncName() {
	r := s.R()

	r.Equal("sampleFunc", FuncName(sampleFunc))
	r.Equal("(*frameSuite).TestFuncName", FuncName(s.TestFuncName))
	r.Equal("", FuncName(nil))
	r.Equal("", FuncName(42))
	var nilFunc func()
	r.Equal("", FuncName(nilFunc))
}

func (s *frameSuite) TestShortFuncName() {
	r := s.R()

	r.Equal("(*T).True", shortFuncName("github.com/open3fs/minunit/pkg/harness.(*T).True"))
	r.Equal("testCheck", shortFuncName("main.testCheck"))
	r.Equal("testCheck.func1", shortFuncName("main.testCheck.func1"))
	r.Equal("plain", shortFuncName("plain"))
}

const thisFrameFile = "pkg/errors/frame_test.go"
