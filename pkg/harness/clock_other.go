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

//go:build !linux && !darwin

package harness

import (
	"time"
)

var clockBase = time.Now()

type systemClock struct{}

func (systemClock) Monotonic() Timespec {
	d := time.Since(clockBase)
	return Timespec{Sec: int64(d / time.Second), Nsec: int64(d % time.Second)}
}

// ProcessCPU is not available here, the proc duration is always reported as 0.
func (systemClock) ProcessCPU() Timespec {
	return Timespec{}
}
