// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"

	"github.com/open2b/scriggo/native"
	"github.com/open2b/scriggo/scripts"

	"github.com/open2b/geobench/registry"
	"github.com/open2b/geobench/workload"
)

// Scriggo is the engine that executes Go scripts with Scriggo.
//
// The body is loaded as the body of a function literal assigned to the
// global variable DoWork:
//
//	DoWork = func(n int) float64 {
//		body
//	}
type Scriggo struct{}

func (Scriggo) Name() string        { return "scriggo" }
func (Scriggo) Lang() workload.Lang { return workload.Go }
func (Scriggo) Module() string      { return "github.com/open2b/scriggo" }

func (Scriggo) NewEnv() Env {
	env := &scriggoEnv{}
	env.globals = native.Declarations{"DoWork": &env.doWork}
	return env
}

type scriggoEnv struct {
	globals native.Declarations
	doWork  func(int) float64
	loaded  bool
}

func (env *scriggoEnv) Register() error {
	if env.loaded {
		return ErrLoaded
	}
	registry.Scriggo(env.globals)
	return nil
}

func (env *scriggoEnv) Load(body []byte) error {
	if env.loaded {
		return ErrLoaded
	}
	var src bytes.Buffer
	src.WriteString("DoWork = func(n int) float64 {\n")
	src.Write(body)
	src.WriteString("\n}\n")
	script, err := scripts.Build(&src, &scripts.BuildOptions{Globals: env.globals})
	if err != nil {
		return &Error{Engine: "scriggo", Op: "load", Err: err}
	}
	// Running the script assigns the entry point to DoWork.
	err = script.Run(nil, nil)
	if err != nil {
		return &Error{Engine: "scriggo", Op: "load", Err: err}
	}
	env.loaded = true
	return nil
}

func (env *scriggoEnv) EntryPoint() (DoWork, error) {
	if !env.loaded {
		return nil, ErrNotLoaded
	}
	if env.doWork == nil {
		return nil, &Error{Engine: "scriggo", Op: "resolve", Err: ErrNoEntryPoint}
	}
	fn := env.doWork
	return func(n int) (float64, error) {
		return call("scriggo", func(n int) (float64, error) { return fn(n), nil }, n)
	}, nil
}
