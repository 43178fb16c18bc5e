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

package harness

import (
	"bytes"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/open3fs/minunit/pkg/log"
	"github.com/open3fs/minunit/tests/base"
)

type mockClock struct {
	mock.Mock
}

func (m *mockClock) Monotonic() Timespec {
	return m.Called().Get(0).(Timespec)
}

func (m *mockClock) ProcessCPU() Timespec {
	return m.Called().Get(0).(Timespec)
}

type baseSuite struct {
	base.Suite

	out    *bytes.Buffer
	logBuf *bytes.Buffer
	clock  *mockClock
	h      *Harness
}

func (s *baseSuite) SetupTest() {
	s.Suite.SetupTest()
	s.out = new(bytes.Buffer)
	s.logBuf = new(bytes.Buffer)
	s.clock = new(mockClock)
	s.clock.On("Monotonic").Return(Timespec{Sec: 10, Nsec: 500_000_000})
	s.clock.On("ProcessCPU").Return(Timespec{Sec: 1})
	s.h = s.newHarness(Options{})
}

func (s *baseSuite) newHarness(opts Options) *Harness {
	if opts.Out == nil {
		opts.Out = s.out
	}
	if opts.Clock == nil {
		opts.Clock = s.clock
	}
	if opts.Logger == nil {
		opts.Logger = log.NewLogger(logrus.DebugLevel, s.logBuf)
	}
	return New(opts)
}
