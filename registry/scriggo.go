// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/open2b/scriggo/native"
)

// Scriggo declares the geom types and their constructors in globals and
// returns globals. If globals is nil, a new map is allocated.
//
// Fields and methods are those of the Go types, so a script can write
//
//	v := NewVector2(1, 2).Add(NewVector2(3, 4)).Mul(2)
//	x := v.X
func Scriggo(globals native.Declarations) native.Declarations {
	if globals == nil {
		globals = native.Declarations{}
	}
	for name, typ := range types {
		globals[name] = typ
	}
	for name, fn := range constructors {
		globals[name] = fn
	}
	return globals
}
