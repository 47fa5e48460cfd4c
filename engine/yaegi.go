// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"

	"github.com/open2b/geobench/registry"
	"github.com/open2b/geobench/workload"
)

// Yaegi is the engine that executes Go scripts with yaegi.
//
// The body is loaded as the body of the function DoWork of package main. If
// the environment has been registered, the geom package is dot imported:
//
//	package main
//
//	import . "github.com/open2b/geobench/geom"
//
//	func DoWork(n int) float64 {
//		body
//	}
type Yaegi struct{}

func (Yaegi) Name() string        { return "yaegi" }
func (Yaegi) Lang() workload.Lang { return workload.Go }
func (Yaegi) Module() string      { return "github.com/traefik/yaegi" }

func (Yaegi) NewEnv() Env {
	return &yaegiEnv{i: interp.New(interp.Options{})}
}

type yaegiEnv struct {
	i          *interp.Interpreter
	registered bool
	loaded     bool
}

func (env *yaegiEnv) Register() error {
	if env.loaded {
		return ErrLoaded
	}
	if env.registered {
		return nil
	}
	if err := registry.Yaegi(env.i); err != nil {
		return &Error{Engine: "yaegi", Op: "register", Err: err}
	}
	env.registered = true
	return nil
}

func (env *yaegiEnv) Load(body []byte) error {
	if env.loaded {
		return ErrLoaded
	}
	var src strings.Builder
	src.WriteString("package main\n\n")
	if env.registered {
		fmt.Fprintf(&src, "import . %q\n\n", registry.GeomPath)
	}
	src.WriteString("func DoWork(n int) float64 {\n")
	src.Write(body)
	src.WriteString("\n}\n")
	if _, err := env.i.Eval(src.String()); err != nil {
		return &Error{Engine: "yaegi", Op: "load", Err: err}
	}
	env.loaded = true
	return nil
}

func (env *yaegiEnv) EntryPoint() (DoWork, error) {
	if !env.loaded {
		return nil, ErrNotLoaded
	}
	v, err := env.i.Eval("main.DoWork")
	if err != nil {
		return nil, &Error{Engine: "yaegi", Op: "resolve", Err: fmt.Errorf("%w: %s", ErrNoEntryPoint, err)}
	}
	fn, ok := v.Interface().(func(int) float64)
	if !ok {
		return nil, &Error{Engine: "yaegi", Op: "resolve", Err: fmt.Errorf("%w: DoWork has type %s", ErrNoEntryPoint, v.Type())}
	}
	return func(n int) (float64, error) {
		return call("yaegi", func(n int) (float64, error) { return fn(n), nil }, n)
	}, nil
}
