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
	"math"
	"strings"

	"github.com/open3fs/minunit/pkg/harness"
)

// defines bundled suite names
const (
	suiteAssertions = "assertions"
	suiteHooks      = "hooks"
	suiteFailures   = "failures"
)

// defaultSuites run when neither config nor flags select suites. The
// failures suite only demonstrates diagnostics and must be asked for.
var defaultSuites = []string{suiteAssertions, suiteHooks}

var exampleSuites = map[string]harness.SuiteFunc{
	suiteAssertions: assertionsSuite,
	suiteHooks:      hooksSuite,
	suiteFailures:   failuresSuite,
}

// fixture is reset by the setup hook before every test.
type fixture struct {
	foo  int
	bar  int
	dbar float64
	name string
}

func (f *fixture) setup() {
	f.foo = 7
	f.bar = 4
	f.dbar = 0.1
	f.name = "minunit"
}

func (f *fixture) teardown() {
	*f = fixture{}
}

func (f *fixture) testCheck(t *harness.T) error {
	return t.True(f.foo == 7, "foo should be 7")
}

func (f *fixture) testAssertEq(t *harness.T) error {
	if err := t.IntEq(4, f.bar); err != nil {
		return err
	}
	return t.IntEq(11, f.foo+f.bar)
}

func (f *fixture) testAssertDoubleEq(t *harness.T) error {
	if err := t.DoubleEq(0.1, f.dbar); err != nil {
		return err
	}
	if err := t.DoubleEq(0.3, f.dbar*3); err != nil {
		return err
	}
	return t.DoubleEq(math.Sqrt2, math.Sqrt(2))
}

func (f *fixture) testStringEq(t *harness.T) error {
	return t.StringEq("MINUNIT", strings.ToUpper(f.name))
}

func assertionsSuite(h *harness.Harness) {
	f := new(fixture)
	h.Configure(f.setup, f.teardown)

	h.Run(f.testCheck)
	h.Run(f.testAssertEq)
	h.Run(f.testAssertDoubleEq)
	h.Run(f.testStringEq)
}

// hookCounter counts hook calls and checks them from inside test bodies.
type hookCounter struct {
	setups    int
	teardowns int
}

func (c *hookCounter) testSetupBeforeBody(t *harness.T) error {
	return t.IntEq(c.teardowns+1, c.setups)
}

func (c *hookCounter) testTeardownAfterBody(t *harness.T) error {
	if err := t.True(c.setups > c.teardowns, "teardown ran before the body"); err != nil {
		return err
	}
	return t.IntEq(c.setups-1, c.teardowns)
}

func hooksSuite(h *harness.Harness) {
	c := new(hookCounter)
	h.Configure(func() { c.setups++ }, func() { c.teardowns++ })

	h.Run(c.testSetupBeforeBody)
	h.Run(c.testTeardownAfterBody)
	h.Run(c.testSetupBeforeBody)
}

func testCheckFail(t *harness.T) error {
	foo := 7
	return t.True(foo != 7, "foo should be <> 7")
}

func testAssertEqFail(t *harness.T) error {
	return t.IntEq(5, 4)
}

func testAssertDoubleEqFail(t *harness.T) error {
	return t.DoubleEq(1.0, 1.0+1e-6)
}

func testStringEqFail(t *harness.T) error {
	return t.StringEq("minunit", "maxunit")
}

func testFail(t *harness.T) error {
	return t.Fail("fail now")
}

func failuresSuite(h *harness.Harness) {
	h.Configure(nil, nil)

	h.Run(testCheckFail)
	h.Run(testAssertEqFail)
	h.Run(testAssertDoubleEqFail)
	h.Run(testStringEqFail)
	h.Run(testFail)
}
