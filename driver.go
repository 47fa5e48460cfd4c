// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geobench

import (
	"errors"
	"testing"
	"time"
)

// Sink receives the sums returned by the entry points, so that the calls
// cannot be optimized away.
var Sink float64

// Result is the result of a measurement.
type Result struct {
	Scenario    Scenario
	N           int           // value of n passed to the entry point.
	Iterations  int           // calls of the entry point.
	Elapsed     time.Duration // total time of the calls.
	Sum         float64       // sum returned by the last call.
	AllocsPerOp int64
	BytesPerOp  int64
}

// Items returns the number of items processed by iterations calls with
// argument n.
func Items(iterations, n int) int64 {
	return int64(iterations) * int64(n)
}

// Items returns the number of items processed.
func (r Result) Items() int64 {
	return Items(r.Iterations, r.N)
}

// ItemsPerSecond returns the items processed per second. It returns zero if
// no time has elapsed.
func (r Result) ItemsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Items()) / r.Elapsed.Seconds()
}

// Benchmark returns a benchmark function that calls the entry point of the
// scenario with argument n. The entry point is resolved once, before the
// timer starts. Load, resolution and call errors are fatal.
//
// The function reports the items/s metric.
func (s Scenario) Benchmark(n int) func(b *testing.B) {
	return func(b *testing.B) {
		doWork, err := s.Setup()
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sum, err := doWork(n)
			if err != nil {
				b.Fatal(err)
			}
			Sink = sum
		}
		b.StopTimer()
		if sec := b.Elapsed().Seconds(); sec > 0 {
			b.ReportMetric(float64(Items(b.N, n))/sec, "items/s")
		}
	}
}

// errNoIterations is returned by Measure if the benchmark did not complete.
var errNoIterations = errors.New("geobench: benchmark did not complete")

// Measure measures the scenario with argument n using testing.Benchmark.
// The run time of the measurement can be changed with SetBenchTime.
func Measure(s Scenario, n int) (Result, error) {
	doWork, err := s.Setup()
	if err != nil {
		return Result{}, err
	}
	var sum float64
	var callErr error
	br := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sum, callErr = doWork(n)
			if callErr != nil {
				b.FailNow()
			}
			Sink = sum
		}
	})
	if callErr != nil {
		return Result{}, callErr
	}
	if br.N == 0 {
		return Result{}, errNoIterations
	}
	return Result{
		Scenario:    s,
		N:           n,
		Iterations:  br.N,
		Elapsed:     br.T,
		Sum:         sum,
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
	}, nil
}
