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
	"reflect"
	"runtime"
	"strings"
)

// Frame is a stack frame of the function who created an error or
// called an assertion.
type Frame struct {
	PC   uintptr
	File string
	Line int
	Func string
}

// Valid reports whether the frame was resolved.
func (f *Frame) Valid() bool {
	return f.PC != 0
}

// caller resolves through CallersFrames, which reports inlined functions
// under their own names.
func (f *Frame) caller(callDepth int) {
	pcs := make([]uintptr, 1)
	if runtime.Callers(callDepth+2, pcs) == 0 {
		*f = Frame{}
		return
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	f.PC = frame.PC
	f.File = trimModuleRoot(frame.File)
	f.Line = frame.Line
	f.Func = shortFuncName(frame.Function)
}

// CallerFrame returns the frame callDepth levels above the caller of CallerFrame.
// CallerFrame(0) is the caller itself.
func CallerFrame(callDepth int) Frame {
	var f Frame
	f.caller(callDepth + 1)
	return f
}

// FuncName returns the short name of a function value, e.g. "testCheck" or
// "(*suite).TestRun". It returns an empty string for nil or non-func values.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return shortFuncName(f.Name())
}

// shortFuncName strips the import path and package name:
//
//	github.com/open3fs/minunit/pkg/harness.(*T).True -> (*T).True
//	main.testCheck.func1                           -> testCheck.func1
//
// The "-fm" suffix of method values is dropped too.
func shortFuncName(name string) string {
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	return name
}
