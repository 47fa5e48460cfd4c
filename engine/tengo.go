// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/d5/tengo/v2"

	"github.com/open2b/geobench/registry"
	"github.com/open2b/geobench/workload"
)

// Tengo is the engine that executes Tengo scripts.
//
// The body must declare the function do_work. The engine appends a call to
// it, so each call of the entry point sets the argument and runs the
// compiled script again:
//
//	body
//	__result := do_work(__n)
//
// As the whole script is run on each call, the declaration of do_work is
// also executed on each call, unlike with Scriggo and yaegi where only the
// function is called.
type Tengo struct{}

func (Tengo) Name() string        { return "tengo" }
func (Tengo) Lang() workload.Lang { return workload.Tengo }
func (Tengo) Module() string      { return "github.com/d5/tengo/v2" }

func (Tengo) NewEnv() Env {
	return &tengoEnv{}
}

type tengoEnv struct {
	registered bool
	compiled   *tengo.Compiled
}

// Register records that the value types must be bound. Tengo binds
// variables to a script before compiling it, so they are bound by Load.
func (env *tengoEnv) Register() error {
	if env.compiled != nil {
		return ErrLoaded
	}
	env.registered = true
	return nil
}

func (env *tengoEnv) Load(body []byte) error {
	if env.compiled != nil {
		return ErrLoaded
	}
	src := make([]byte, 0, len(body)+32)
	src = append(src, body...)
	src = append(src, "\n__result := do_work(__n)\n"...)
	s := tengo.NewScript(src)
	if err := s.Add("__n", 0); err != nil {
		return &Error{Engine: "tengo", Op: "load", Err: err}
	}
	if env.registered {
		if err := registry.Tengo(s); err != nil {
			return &Error{Engine: "tengo", Op: "register", Err: err}
		}
	}
	c, err := s.Compile()
	if err != nil {
		return &Error{Engine: "tengo", Op: "load", Err: err}
	}
	env.compiled = c
	return nil
}

func (env *tengoEnv) EntryPoint() (DoWork, error) {
	if env.compiled == nil {
		return nil, ErrNotLoaded
	}
	c := env.compiled
	run := func(n int) (float64, error) {
		if err := c.Set("__n", n); err != nil {
			return 0, &Error{Engine: "tengo", Op: "call", Err: err}
		}
		if err := c.Run(); err != nil {
			return 0, &Error{Engine: "tengo", Op: "call", Err: err}
		}
		result := c.Get("__result")
		sum, ok := tengo.ToFloat64(result.Object())
		if !ok {
			return 0, &Error{Engine: "tengo", Op: "call", Err: fmt.Errorf("do_work returned %s, expecting a number", result.ValueType())}
		}
		return sum, nil
	}
	return func(n int) (float64, error) {
		return call("tengo", run, n)
	}, nil
}
