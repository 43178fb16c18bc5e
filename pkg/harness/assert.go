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
	"fmt"
	"math"

	"github.com/open3fs/minunit/pkg/errors"
)

// AssertionError is a failed assertion. Test is the function which called
// the assertion, File and Line its location.
type AssertionError struct {
	Test    string
	File    string
	Line    int
	Message string
}

// Error formats the failure as "<test> failed:\n\t<file>:<line>: <message>".
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s failed:\n\t%s:%d: %s", e.Test, e.File, e.Line, e.Message)
}

// T is passed to a test body and provides the assertions. Every assertion
// counts once and returns an *AssertionError on failure, which the body
// must return right away:
//
//	if err := t.True(ok, "ok expected"); err != nil {
//		return err
//	}
type T struct {
	h    *Harness
	name string
}

// Name returns the name of the running test body.
func (t *T) Name() string {
	return t.name
}

// True fails with message unless cond holds.
func (t *T) True(cond bool, message string) error {
	t.h.asserts++
	if !cond {
		return t.fail(message)
	}
	return nil
}

// IntEq fails unless expected equals actual.
func (t *T) IntEq(expected, actual int) error {
	t.h.asserts++
	if expected != actual {
		return t.fail(fmt.Sprintf("%d expected but was %d", expected, actual))
	}
	return nil
}

// DoubleEq fails when expected and actual differ by more than the harness
// tolerance. Equal values, infinities included, always match. A NaN on
// either side never matches, whereas a bare abs(expected-actual) > tolerance
// test would let it pass.
func (t *T) DoubleEq(expected, actual float64) error {
	t.h.asserts++
	if expected == actual {
		return nil
	}
	if diff := math.Abs(expected - actual); !(diff <= t.h.tolerance) {
		return t.fail(fmt.Sprintf("%g expected but was %g", expected, actual))
	}
	return nil
}

// StringEq fails unless expected equals actual.
func (t *T) StringEq(expected, actual string) error {
	t.h.asserts++
	if expected != actual {
		return t.fail(fmt.Sprintf("'%s' expected but was '%s'", expected, actual))
	}
	return nil
}

// Fail always fails with message.
func (t *T) Fail(message string) error {
	t.h.asserts++
	return t.fail(message)
}

// fail must be called directly by an assertion method, the frame two levels
// up is the assertion's caller.
func (t *T) fail(message string) error {
	frame := errors.CallerFrame(2)
	err := &AssertionError{
		Test:    frame.Func,
		File:    frame.File,
		Line:    frame.Line,
		Message: message,
	}
	if err.Test == "" {
		err.Test = t.name
	}
	t.h.setLastMessage(err.Error())
	return err
}
