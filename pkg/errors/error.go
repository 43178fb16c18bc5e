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
	stderrors "errors"
	"fmt"
	"strings"
)

// Stacker represents an error who implements Stack method
type Stacker interface {
	error
	Stack() string
}

// Underlying represents an error who implements Underlie method
type Underlying interface {
	error
	Underlie() error
}

// Err is an error that has a message and the frame where it was created.
type Err struct {
	// underlying is the error under current error in error stack
	underlying error

	msg   string
	frame Frame
}

// Caller records caller's stack frame with specified stack frames above.
func (err *Err) Caller(callDepth int) {
	err.frame.caller(callDepth + 1)
}

// Frame returns the recorded frame.
func (err *Err) Frame() Frame {
	return err.frame
}

// Error joins all nonempty messages in the error stack.
func (err *Err) Error() string {
	switch {
	case err.underlying == nil:
		return err.msg
	case err.msg == "":
		// only a trace
		return err.underlying.Error()
	}
	return fmt.Sprintf("%s: %s", err.msg, err.underlying.Error())
}

// Format supports %+v, which prints the stack frame of this error.
func (err *Err) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprint(f, err.Stack())
		return
	}
	fmt.Fprint(f, err.Error())
}

// Underlie returns the error under current error in the stack.
func (err *Err) Underlie() error {
	return err.underlying
}

// Unwrap makes Err work with the standard errors.Is and errors.As.
func (err *Err) Unwrap() error {
	return err.underlying
}

// Stack returns error message with stack frame information.
func (err *Err) Stack() string {
	if err.frame.Valid() {
		return fmt.Sprintf("%s:%d:%s: %s", err.frame.File, err.frame.Line, err.frame.Func, err.msg)
	}
	return fmt.Sprintf("UnknownStack: %s", err.msg)
}

// Message returns the message of this error only.
func (err *Err) Message() string {
	return err.msg
}

func rawNew(message string) *Err {
	return &Err{msg: message}
}

// New creates an error with given message and records caller's location.
func New(message string) error {
	err := rawNew(message)
	err.Caller(1)
	return err
}

// Errorf creates an error with given format specifier, and records caller's location.
func Errorf(format string, a ...any) error {
	err := rawNew(fmt.Sprintf(format, a...))
	err.Caller(1)
	return err
}

// Annotate adds an extra context, and records caller's location.
func Annotate(err error, ctx string) error {
	if err == nil {
		return nil
	}
	newErr := rawNew(ctx)
	newErr.underlying = err
	newErr.Caller(1)
	return newErr
}

// Annotatef adds an extra context with given format specifier, and records caller's location.
func Annotatef(err error, format string, a ...any) error {
	if err == nil {
		return nil
	}
	newErr := rawNew(fmt.Sprintf(format, a...))
	newErr.underlying = err
	newErr.Caller(1)
	return newErr
}

// Trace adds an extra stack frame to an error.
func Trace(err error) error {
	if err == nil {
		return nil
	}
	newErr := rawNew("")
	newErr.underlying = err
	newErr.Caller(1)
	return newErr
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Cause returns the innermost error in error stack.
func Cause(err error) error {
	for {
		e, ok := err.(Underlying)
		if !ok {
			return err
		}
		next := e.Underlie()
		if next == nil {
			return err
		}
		err = next
	}
}

// StackTrace formats the error stack from the innermost error outwards, one
// frame per line:
//
//	pkg/config/config.go:88:Load: open config file
//	cmd/minunit/example.go:71:runExample: load config
func StackTrace(err error) string {
	var lines []string
	for err != nil {
		if e, ok := err.(Stacker); ok {
			lines = append(lines, e.Stack())
		} else {
			lines = append(lines, err.Error())
		}
		e, ok := err.(Underlying)
		if !ok {
			break
		}
		err = e.Underlie()
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}
