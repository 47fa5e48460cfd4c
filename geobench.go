// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geobench measures two ways of exposing geometric value types to
// embedded scripts: as native types registered by the host, and as the map
// literals of the script language.
//
// A Scenario combines an engine, a profile and a path. Its entry point,
// do_work(n), builds and combines vectors, rectangles and points n times and
// returns the sum of the results. Throughput is reported in items per
// second, where the items processed by a measurement are its iterations
// times n.
//
// The benchmarks of the package can be run with
//
//	go test -bench . github.com/open2b/geobench
package geobench

import (
	"flag"
	"testing"

	"github.com/open2b/geobench/engine"
	"github.com/open2b/geobench/workload"
)

// Sizes contains the default values of n.
var Sizes = []int{100, 1000, 10000}

// Scenario is a benchmark scenario.
type Scenario struct {
	Engine  engine.Engine
	Profile workload.Profile
	Path    workload.Path

	// Scripts contains the scripts. If it is nil, the scripts of
	// workload.Default are used.
	Scripts *workload.Set
}

// Name returns the name of the scenario, as "scriggo/full/native".
func (s Scenario) Name() string {
	return s.Engine.Name() + "/" + string(s.Profile) + "/" + string(s.Path)
}

// Setup creates an environment for the scenario, registers the value types
// for the native path, loads the script and returns its entry point.
func (s Scenario) Setup() (engine.DoWork, error) {
	scripts := s.Scripts
	if scripts == nil {
		scripts = workload.Default()
	}
	src, err := scripts.Source(s.Engine.Lang(), s.Profile, s.Path)
	if err != nil {
		return nil, err
	}
	env := s.Engine.NewEnv()
	if s.Path == workload.Native {
		if err := env.Register(); err != nil {
			return nil, err
		}
	}
	if err := env.Load(src); err != nil {
		return nil, err
	}
	return env.EntryPoint()
}

// Scenarios returns the scenarios for all the combinations of engines,
// profiles and paths, ordered by engine, profile and path.
func Scenarios(engines []engine.Engine, profiles []workload.Profile, paths []workload.Path, scripts *workload.Set) []Scenario {
	scenarios := make([]Scenario, 0, len(engines)*len(profiles)*len(paths))
	for _, e := range engines {
		for _, profile := range profiles {
			for _, path := range paths {
				scenarios = append(scenarios, Scenario{Engine: e, Profile: profile, Path: path, Scripts: scripts})
			}
		}
	}
	return scenarios
}

// SetBenchTime sets the run time of the measurements done by Measure. t is
// a duration, as "1s", or a number of iterations, as "100x".
//
// It has the same effect of the -test.benchtime flag of go test.
func SetBenchTime(t string) error {
	testing.Init()
	return flag.Set("test.benchtime", t)
}
