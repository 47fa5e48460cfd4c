// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry binds the geom value types into script environments.
//
// Each function takes the environment to initialize as argument and installs
// into it the types Vector2, Vector3, RectF and Point, together with a way to
// construct them, to read and write their fields and, for the vector types,
// to add, subtract, multiply by a scalar and divide by a scalar.
//
// The functions have no state of their own and calling one of them more than
// once on the same environment has the same effect as calling it once.
package registry

import (
	"reflect"

	"github.com/open2b/geobench/geom"
)

// GeomPath is the import path of the geom package.
const GeomPath = "github.com/open2b/geobench/geom"

// types contains the registered types.
var types = map[string]reflect.Type{
	"Vector2": reflect.TypeOf(geom.Vector2{}),
	"Vector3": reflect.TypeOf(geom.Vector3{}),
	"RectF":   reflect.TypeOf(geom.RectF{}),
	"Point":   reflect.TypeOf(geom.Point{}),
}

// constructors contains the registered constructors.
var constructors = map[string]interface{}{
	"NewVector2": geom.NewVector2,
	"NewVector3": geom.NewVector3,
	"NewRectF":   geom.NewRectF,
	"NewPoint":   geom.NewPoint,
}

// Names returns the names of the declarations installed by Scriggo and
// Yaegi.
func Names() []string {
	names := make([]string, 0, len(types)+len(constructors))
	for name := range types {
		names = append(names, name)
	}
	for name := range constructors {
		names = append(names, name)
	}
	return names
}
