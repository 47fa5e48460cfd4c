// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/d5/tengo/v2"

	"github.com/open2b/geobench/geom"
)

// Tengo adds to the script s the callables Vector2, Vector3, RectF and Point.
//
// The values they return support the operators + and - between vectors of
// the same type, * and / with a number as right operand, and the selectors
// x, y, z, w and h to read and write their fields.
func Tengo(s *tengo.Script) error {
	for _, fn := range tengoConstructors {
		err := s.Add(fn.Name, fn)
		if err != nil {
			return err
		}
	}
	return nil
}

var tengoConstructors = []*tengo.UserFunction{
	{Name: "Vector2", Value: tengoVector2},
	{Name: "Vector3", Value: tengoVector3},
	{Name: "RectF", Value: tengoRectF},
	{Name: "Point", Value: tengoPoint},
}

func tengoVector2(args ...tengo.Object) (tengo.Object, error) {
	var a [2]float64
	if err := floatArgs(args, a[:]); err != nil {
		return nil, err
	}
	return &vector2{v: geom.NewVector2(a[0], a[1])}, nil
}

func tengoVector3(args ...tengo.Object) (tengo.Object, error) {
	var a [3]float64
	if err := floatArgs(args, a[:]); err != nil {
		return nil, err
	}
	return &vector3{v: geom.NewVector3(a[0], a[1], a[2])}, nil
}

func tengoRectF(args ...tengo.Object) (tengo.Object, error) {
	var a [4]float64
	if err := floatArgs(args, a[:]); err != nil {
		return nil, err
	}
	return &rectF{r: geom.NewRectF(a[0], a[1], a[2], a[3])}, nil
}

func tengoPoint(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	var a [2]int
	for i, arg := range args {
		n, ok := tengo.ToInt(arg)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: ordinals[i], Expected: "int", Found: arg.TypeName()}
		}
		a[i] = n
	}
	return &point{p: geom.NewPoint(a[0], a[1])}, nil
}

var ordinals = []string{"first", "second", "third", "fourth"}

// floatArgs converts args to floats storing them in dst. It returns an error
// if the number of arguments is not len(dst) or an argument is not numeric.
func floatArgs(args []tengo.Object, dst []float64) error {
	if len(args) != len(dst) {
		return tengo.ErrWrongNumArguments
	}
	for i, arg := range args {
		f, ok := tengo.ToFloat64(arg)
		if !ok {
			return tengo.ErrInvalidArgumentType{Name: ordinals[i], Expected: "float", Found: arg.TypeName()}
		}
		dst[i] = f
	}
	return nil
}
