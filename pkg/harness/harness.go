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

// Package harness is a minimal unit testing harness. Test bodies are plain
// functions that return the first failed assertion:
//
//	func testSum(t *harness.T) error {
//		if err := t.IntEq(5, 2+3); err != nil {
//			return err
//		}
//		return t.DoubleEq(0.3, 0.1+0.2)
//	}
//
//	h := harness.New(harness.Options{})
//	h.Run(testSum)
//	h.Report()
//
// A Harness is not safe for concurrent use. Independent harnesses do not
// share any state.
package harness

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/open3fs/minunit/pkg/errors"
	"github.com/open3fs/minunit/pkg/log"
)

// MessageLen is the capacity of the last failure message, terminator included.
const MessageLen = 1024

// DefaultTolerance is the absolute tolerance used by DoubleEq.
const DefaultTolerance = 1e-12

// result markers
const (
	PassMarker = "."
	FailMarker = "F"
)

// TestFunc is a test body. A nil return means the test passed.
type TestFunc func(t *T) error

// SuiteFunc is a suite body, which runs its tests through h.Run.
type SuiteFunc func(h *Harness)

// Options are the options of a harness. Zero values select the defaults.
type Options struct {
	// Out receives the report, os.Stdout by default.
	Out io.Writer
	// Clock samples the timers, the system clocks by default.
	Clock Clock
	// Logger receives diagnostics, log.Default() by default.
	Logger log.Interface
	// Color enables colored result markers.
	Color bool
	// Tolerance is the absolute tolerance of DoubleEq, DefaultTolerance if nil.
	// Zero requires exact equality.
	Tolerance *float64
}

// Summary is the outcome of the tests run so far.
type Summary struct {
	Runs    int
	Asserts int
	Fails   int
	// Real and Proc are the elapsed wall clock and process CPU seconds.
	Real float64
	Proc float64
}

// Failed reports whether any test failed.
func (s Summary) Failed() bool {
	return s.Fails > 0
}

// Harness runs tests and keeps their counters, timers and hooks.
type Harness struct {
	id        string
	out       io.Writer
	clock     Clock
	logger    log.Interface
	tolerance float64
	passMark  *color.Color
	failMark  *color.Color

	setup    func()
	teardown func()

	started   bool
	realStart Timespec
	procStart Timespec

	runs        int
	asserts     int
	fails       int
	lastMessage string
}

// New creates a harness.
func New(opts Options) *Harness {
	h := &Harness{
		id:        uuid.NewString(),
		out:       opts.Out,
		clock:     opts.Clock,
		tolerance: DefaultTolerance,
		passMark:  color.New(color.FgGreen),
		failMark:  color.New(color.FgRed, color.Bold),
	}
	if h.out == nil {
		h.out = os.Stdout
	}
	if h.clock == nil {
		h.clock = systemClock{}
	}
	if opts.Tolerance != nil {
		h.tolerance = *opts.Tolerance
	}
	if opts.Color {
		h.passMark.EnableColor()
		h.failMark.EnableColor()
	} else {
		h.passMark.DisableColor()
		h.failMark.DisableColor()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	h.logger = logger.Subscribe(log.FieldKeyRun, h.id)
	return h
}

// ID returns the random id of this harness, used to tell runs apart in logs.
func (h *Harness) ID() string {
	return h.id
}

// Configure sets the hooks invoked before and after every test body.
// Either may be nil. A later call replaces both hooks.
func (h *Harness) Configure(setup, teardown func()) {
	h.setup = setup
	h.teardown = teardown
}

// Start captures the timer baselines. Run calls it, so an explicit call is
// only needed to include time spent before the first test.
func (h *Harness) Start() {
	if h.started {
		return
	}
	h.started = true
	h.realStart = h.clock.Monotonic()
	h.procStart = h.clock.ProcessCPU()
	h.logger.Debugf("Timers started")
}

// Run runs one test body between the setup and teardown hooks and prints
// its result marker.
func (h *Harness) Run(test TestFunc) {
	h.Start()

	name := errors.FuncName(test)
	logger := h.logger.Subscribe(log.FieldKeyTest, name)
	if h.setup != nil {
		logger.Debugf("Run setup hook")
		h.setup()
	}

	err := test(&T{h: h, name: name})
	h.runs++
	if err != nil {
		h.fails++
		var ae *AssertionError
		if errors.As(err, &ae) {
			h.setLastMessage(ae.Error())
		} else {
			h.setLastMessage(fmt.Sprintf("%s failed:\n\t%s", name, err))
		}
		fmt.Fprint(h.out, h.failMark.Sprint(FailMarker))
		fmt.Fprintf(h.out, "\n%s\n", h.lastMessage)
		logger.Debugf("Test failed: %s", err)
	} else {
		fmt.Fprint(h.out, h.passMark.Sprint(PassMarker))
		logger.Debugf("Test passed")
	}
	h.flush()

	if h.teardown != nil {
		logger.Debugf("Run teardown hook")
		h.teardown()
	}
}

// RunSuite runs a suite body with the suite name attached to diagnostics.
func (h *Harness) RunSuite(name string, suite SuiteFunc) {
	parent := h.logger
	h.logger = parent.Subscribe(log.FieldKeySuite, name)
	defer func() {
		h.logger = parent
	}()

	h.logger.Debugf("Run suite")
	suite(h)
}

// Summary returns the counters and the elapsed time without printing.
// Both durations are 0 when no test has run yet.
func (h *Harness) Summary() Summary {
	s := Summary{
		Runs:    h.runs,
		Asserts: h.asserts,
		Fails:   h.fails,
	}
	if h.started {
		s.Real = Diff(h.realStart, h.clock.Monotonic())
		s.Proc = Diff(h.procStart, h.clock.ProcessCPU())
	}
	return s
}

// Report prints the counters and the elapsed time. More tests may be run
// afterwards, the counters keep accumulating.
func (h *Harness) Report() Summary {
	s := h.Summary()
	fmt.Fprintf(h.out, "\n\n%d tests, %d assertions, %d failures\n", s.Runs, s.Asserts, s.Fails)
	fmt.Fprintf(h.out, "\nFinished in %.8f seconds (real) %.8f seconds (proc)\n\n", s.Real, s.Proc)
	h.flush()
	h.logger.Infof("%d tests, %d assertions, %d failures", s.Runs, s.Asserts, s.Fails)
	return s
}

// LastMessage returns the message of the most recent failure. It is only
// meaningful right after a failed test.
func (h *Harness) LastMessage() string {
	return h.lastMessage
}

func (h *Harness) setLastMessage(msg string) {
	if len(msg) >= MessageLen {
		n := MessageLen - 1
		for n > 0 && !utf8.RuneStart(msg[n]) {
			n--
		}
		msg = msg[:n]
	}
	h.lastMessage = msg
}

// flush pushes buffered output, e.g. of a bufio.Writer. os.Stdout is not
// buffered and needs nothing.
func (h *Harness) flush() {
	if f, ok := h.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			h.logger.Warnf("Flush output failed: %v", err)
		}
	}
}
