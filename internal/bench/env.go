// Copyright 2025 go-sortsuite Authors
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

package bench

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Env describes the machine a benchmark ran on, so timings from different
// hosts can be compared with the hardware in view.
type Env struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

// Environment probes the current host.
func Environment() Env {
	e := Env{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
	}

	if cpu.X86.HasSSE42 {
		e.Features = append(e.Features, "sse4.2")
	}
	if cpu.X86.HasAVX2 {
		e.Features = append(e.Features, "avx2")
	}
	if cpu.X86.HasAVX512F {
		e.Features = append(e.Features, "avx512f")
	}
	if cpu.ARM64.HasASIMD {
		e.Features = append(e.Features, "asimd")
	}
	if cpu.ARM64.HasSVE {
		e.Features = append(e.Features, "sve")
	}
	return e
}

func (e Env) String() string {
	s := fmt.Sprintf("%s/%s, %d cpus", e.GOOS, e.GOARCH, e.NumCPU)
	if len(e.Features) > 0 {
		s += " (" + strings.Join(e.Features, ", ") + ")"
	}
	return s
}
