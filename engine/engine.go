// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine provides isolated script environments built on embeddable
// interpreters.
//
// An Env is used in three steps: optionally Register, to bind the geometric
// value types, then Load, to load the script defining the entry point, and
// finally EntryPoint, to resolve it:
//
//	env := engine.Scriggo{}.NewEnv()
//	if err := env.Register(); err != nil {
//		return err
//	}
//	if err := env.Load(src); err != nil {
//		return err
//	}
//	doWork, err := env.EntryPoint()
//
// An Env is not safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/open2b/geobench/workload"
)

// DoWork is the entry point of a script. It returns the sum computed for n
// iterations.
type DoWork func(n int) (float64, error)

// Env is a script environment.
type Env interface {

	// Register binds the geometric value types into the environment.
	// Calling it more than once has no further effect. It returns ErrLoaded
	// if it is called after Load.
	Register() error

	// Load loads the body of the entry point. The body is in the language of
	// the engine that created the environment. It returns ErrLoaded if a
	// script has already been loaded.
	Load(body []byte) error

	// EntryPoint returns the entry point of the loaded script. It returns
	// ErrNotLoaded if no script has been loaded.
	EntryPoint() (DoWork, error)
}

// Engine creates script environments.
type Engine interface {

	// Name returns the name of the engine.
	Name() string

	// Lang returns the language of the scripts executed by the engine.
	Lang() workload.Lang

	// Module returns the path of the Go module implementing the engine.
	Module() string

	// NewEnv returns a new environment. Environments are independent of
	// each other.
	NewEnv() Env
}

var (
	ErrLoaded       = errors.New("engine: script already loaded")
	ErrNotLoaded    = errors.New("engine: script not loaded")
	ErrNoEntryPoint = errors.New("engine: entry point do_work is not defined")
)

// Error is an error returned by an engine.
type Error struct {
	Engine string // engine name.
	Op     string // "register", "load", "resolve" or "call".
	Err    error
}

func (e *Error) Error() string {
	return e.Engine + ": " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

var engines = []Engine{Scriggo{}, Yaegi{}, Tengo{}}

// All returns all the engines.
func All() []Engine {
	return append([]Engine(nil), engines...)
}

// Names returns the names of all the engines.
func Names() []string {
	names := make([]string, len(engines))
	for i, e := range engines {
		names[i] = e.Name()
	}
	return names
}

// Lookup returns the engine with the given name.
func Lookup(name string) (Engine, error) {
	for _, e := range engines {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("engine: unknown engine %q, valid engines are %s", name, strings.Join(Names(), ", "))
}

// call calls fn with argument n. If fn panics, call returns the panic as an
// error.
func call(engine string, fn DoWork, n int) (sum float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			err = &Error{Engine: engine, Op: "call", Err: e}
		}
	}()
	return fn(n)
}
