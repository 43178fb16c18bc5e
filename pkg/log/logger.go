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

package log

import (
	"io"
	"maps"
	"os"

	"github.com/sirupsen/logrus"
)

// defines logger field keys.
const (
	FieldKeyRun   = "RUN"
	FieldKeySuite = "SUITE"
	FieldKeyTest  = "TEST"
)

// Interface is the interface of logger.
type Interface interface {
	Subscribe(key, val string) Interface

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

var _ Interface = new(logger)

// Logger is the global logger.
var Logger Interface

type logger struct {
	*logrus.Logger
	fields logrus.Fields
}

// Debugf logs a message at level Debug.
func (l *logger) Debugf(format string, args ...any) {
	l.WithFields(l.fields).Debugf(format, args...)
}

// Infof logs a message at level Info.
func (l *logger) Infof(format string, args ...any) {
	l.WithFields(l.fields).Infof(format, args...)
}

// Warnf logs a message at level Warn.
func (l *logger) Warnf(format string, args ...any) {
	l.WithFields(l.fields).Warnf(format, args...)
}

// Errorf logs a message at level Error.
func (l *logger) Errorf(format string, args ...any) {
	l.WithFields(l.fields).Errorf(format, args...)
}

// Debug logs a message at level Debug.
func (l *logger) Debug(args ...any) {
	l.WithFields(l.fields).Debug(args...)
}

// Info logs a message at level Info.
func (l *logger) Info(args ...any) {
	l.WithFields(l.fields).Info(args...)
}

// Warn logs a message at level Warn.
func (l *logger) Warn(args ...any) {
	l.WithFields(l.fields).Warn(args...)
}

// Error logs a message at level Error.
func (l *logger) Error(args ...any) {
	l.WithFields(l.fields).Error(args...)
}

// Subscribe adds a field base on current logger and returns a new logger.
func (l *logger) Subscribe(key, val string) Interface {
	fields := make(logrus.Fields, len(l.fields)+1)
	maps.Copy(fields, l.fields)
	fields[key] = val
	return &logger{
		Logger: l.Logger,
		fields: fields,
	}
}

// NewLogger creates a logger writing text records to out.
func NewLogger(level logrus.Level, out io.Writer) Interface {
	l := &logrus.Logger{
		Out:       out,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		ExitFunc:  os.Exit,
	}
	l.SetLevel(level)
	return &logger{
		Logger: l,
		fields: logrus.Fields{},
	}
}

// InitLogger initializes the global logger, which writes to stderr so that
// it never interleaves with the test report on stdout.
func InitLogger(level logrus.Level) {
	Logger = NewLogger(level, os.Stderr)
}

// Default returns the global logger, initializing it at warn level when
// InitLogger was never called.
func Default() Interface {
	if Logger == nil {
		InitLogger(logrus.WarnLevel)
	}
	return Logger
}
