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

// NanosPerSecond is the number of nanoseconds in one second.
const NanosPerSecond = 1_000_000_000

// Timespec is a clock sample split into whole seconds and nanoseconds.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// Clock samples the two clocks measured by the harness.
type Clock interface {
	// Monotonic returns the monotonic wall clock.
	Monotonic() Timespec
	// ProcessCPU returns the CPU time consumed by the process.
	ProcessCPU() Timespec
}

// Diff returns end-start in seconds, borrowing one second when the
// nanosecond part underflows.
func Diff(start, end Timespec) float64 {
	var diff Timespec
	if end.Nsec-start.Nsec < 0 {
		diff.Sec = end.Sec - start.Sec - 1
		diff.Nsec = NanosPerSecond + end.Nsec - start.Nsec
	} else {
		diff.Sec = end.Sec - start.Sec
		diff.Nsec = end.Nsec - start.Nsec
	}
	return float64(diff.Sec) + float64(diff.Nsec)/NanosPerSecond
}
