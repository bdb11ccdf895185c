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

// Package config loads benchmark harness settings from TOML.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Bench holds benchmark harness settings.
type Bench struct {
	// Size is the generated array length.
	Size int `toml:"size"`
	// Warmup runs are timed but discarded.
	Warmup int `toml:"warmup"`
	// Runs is the number of measured iterations per algorithm.
	Runs int `toml:"runs"`
}

// DefaultBench mirrors the reference harness: one 10,000-element array.
func DefaultBench() Bench {
	return Bench{Size: 10000, Warmup: 2, Runs: 10}
}

// LoadBench reads path as TOML over the defaults; keys absent from the file
// keep their default values.
func LoadBench(path string) (Bench, error) {
	cfg := DefaultBench()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read bench config")
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse bench config")
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.WithMessagef(err, "bench config %s", path)
	}
	return cfg, nil
}

func (b Bench) validate() error {
	if b.Size < 0 {
		return errors.Errorf("size must be >= 0, got %d", b.Size)
	}
	if b.Warmup < 0 {
		return errors.Errorf("warmup must be >= 0, got %d", b.Warmup)
	}
	if b.Runs < 1 {
		return errors.Errorf("runs must be >= 1, got %d", b.Runs)
	}
	return nil
}
