// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"reflect"

	"github.com/traefik/yaegi/interp"
)

// Yaegi exports the geom package to the interpreter i, so that it can be
// imported with the path GeomPath.
func Yaegi(i *interp.Interpreter) error {
	return i.Use(interp.Exports{GeomPath + "/geom": yaegiSymbols()})
}

// yaegiSymbols returns the symbols of the geom package in the form expected
// by yaegi: types are represented by a nil pointer to the type.
func yaegiSymbols() map[string]reflect.Value {
	symbols := make(map[string]reflect.Value, len(types)+len(constructors))
	for name, typ := range types {
		symbols[name] = reflect.Zero(reflect.PointerTo(typ))
	}
	for name, fn := range constructors {
		symbols[name] = reflect.ValueOf(fn)
	}
	return symbols
}
