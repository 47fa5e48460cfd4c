// Copyright 2026 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/token"

	"github.com/open2b/geobench/geom"
)

// vector2 is the Tengo object of a geom.Vector2.
type vector2 struct {
	tengo.ObjectImpl
	v geom.Vector2
}

func (o *vector2) TypeName() string { return "Vector2" }

func (o *vector2) String() string {
	return fmt.Sprintf("Vector2(%g, %g)", o.v.X, o.v.Y)
}

func (o *vector2) Copy() tengo.Object { return &vector2{v: o.v} }

func (o *vector2) IsFalsy() bool { return false }

func (o *vector2) Equals(x tengo.Object) bool {
	w, ok := x.(*vector2)
	return ok && w.v == o.v
}

func (o *vector2) BinaryOp(op token.Token, rhs tengo.Object) (tengo.Object, error) {
	switch op {
	case token.Add, token.Sub:
		w, ok := rhs.(*vector2)
		if !ok {
			return nil, tengo.ErrInvalidOperator
		}
		if op == token.Add {
			return &vector2{v: o.v.Add(w.v)}, nil
		}
		return &vector2{v: o.v.Sub(w.v)}, nil
	case token.Mul, token.Quo:
		s, ok := tengo.ToFloat64(rhs)
		if !ok {
			return nil, tengo.ErrInvalidOperator
		}
		if op == token.Mul {
			return &vector2{v: o.v.Mul(s)}, nil
		}
		return &vector2{v: o.v.Div(s)}, nil
	}
	return nil, tengo.ErrInvalidOperator
}

func (o *vector2) IndexGet(index tengo.Object) (tengo.Object, error) {
	name, ok := fieldName(index)
	if !ok {
		return nil, tengo.ErrInvalidIndexType
	}
	switch name {
	case "x":
		return &tengo.Float{Value: o.v.X}, nil
	case "y":
		return &tengo.Float{Value: o.v.Y}, nil
	}
	return tengo.UndefinedValue, nil
}

func (o *vector2) IndexSet(index, value tengo.Object) error {
	name, ok := fieldName(index)
	if !ok {
		return tengo.ErrInvalidIndexType
	}
	f, ok := tengo.ToFloat64(value)
	if !ok {
		return tengo.ErrInvalidIndexValueType
	}
	switch name {
	case "x":
		o.v.X = f
	case "y":
		o.v.Y = f
	default:
		return tengo.ErrInvalidIndexType
	}
	return nil
}

// vector3 is the Tengo object of a geom.Vector3.
type vector3 struct {
	tengo.ObjectImpl
	v geom.Vector3
}

func (o *vector3) TypeName() string { return "Vector3" }

func (o *vector3) String() string {
	return fmt.Sprintf("Vector3(%g, %g, %g)", o.v.X, o.v.Y, o.v.Z)
}

func (o *vector3) Copy() tengo.Object { return &vector3{v: o.v} }

func (o *vector3) IsFalsy() bool { return false }

func (o *vector3) Equals(x tengo.Object) bool {
	w, ok := x.(*vector3)
	return ok && w.v == o.v
}

func (o *vector3) BinaryOp(op token.Token, rhs tengo.Object) (tengo.Object, error) {
	switch op {
	case token.Add, token.Sub:
		w, ok := rhs.(*vector3)
		if !ok {
			return nil, tengo.ErrInvalidOperator
		}
		if op == token.Add {
			return &vector3{v: o.v.Add(w.v)}, nil
		}
		return &vector3{v: o.v.Sub(w.v)}, nil
	case token.Mul, token.Quo:
		s, ok := tengo.ToFloat64(rhs)
		if !ok {
			return nil, tengo.ErrInvalidOperator
		}
		if op == token.Mul {
			return &vector3{v: o.v.Mul(s)}, nil
		}
		return &vector3{v: o.v.Div(s)}, nil
	}
	return nil, tengo.ErrInvalidOperator
}

func (o *vector3) IndexGet(index tengo.Object) (tengo.Object, error) {
	name, ok := fieldName(index)
	if !ok {
		return nil, tengo.ErrInvalidIndexType
	}
	switch name {
	case "x":
		return &tengo.Float{Value: o.v.X}, nil
	case "y":
		return &tengo.Float{Value: o.v.Y}, nil
	case "z":
		return &tengo.Float{Value: o.v.Z}, nil
	}
	return tengo.UndefinedValue, nil
}

func (o *vector3) IndexSet(index, value tengo.Object) error {
	name, ok := fieldName(index)
	if !ok {
		return tengo.ErrInvalidIndexType
	}
	f, ok := tengo.ToFloat64(value)
	if !ok {
		return tengo.ErrInvalidIndexValueType
	}
	switch name {
	case "x":
		o.v.X = f
	case "y":
		o.v.Y = f
	case "z":
		o.v.Z = f
	default:
		return tengo.ErrInvalidIndexType
	}
	return nil
}

// rectF is the Tengo object of a geom.RectF.
type rectF struct {
	tengo.ObjectImpl
	r geom.RectF
}

func (o *rectF) TypeName() string { return "RectF" }

func (o *rectF) String() string {
	return fmt.Sprintf("RectF(%g, %g, %g, %g)", o.r.X, o.r.Y, o.r.W, o.r.H)
}

func (o *rectF) Copy() tengo.Object { return &rectF{r: o.r} }

func (o *rectF) IsFalsy() bool { return false }

func (o *rectF) Equals(x tengo.Object) bool {
	w, ok := x.(*rectF)
	return ok && w.r == o.r
}

func (o *rectF) IndexGet(index tengo.Object) (tengo.Object, error) {
	name, ok := fieldName(index)
	if !ok {
		return nil, tengo.ErrInvalidIndexType
	}
	switch name {
	case "x":
		return &tengo.Float{Value: o.r.X}, nil
	case "y":
		return &tengo.Float{Value: o.r.Y}, nil
	case "w":
		return &tengo.Float{Value: o.r.W}, nil
	case "h":
		return &tengo.Float{Value: o.r.H}, nil
	}
	return tengo.UndefinedValue, nil
}

func (o *rectF) IndexSet(index, value tengo.Object) error {
	name, ok := fieldName(index)
	if !ok {
		return tengo.ErrInvalidIndexType
	}
	f, ok := tengo.ToFloat64(value)
	if !ok {
		return tengo.ErrInvalidIndexValueType
	}
	switch name {
	case "x":
		o.r.X = f
	case "y":
		o.r.Y = f
	case "w":
		o.r.W = f
	case "h":
		o.r.H = f
	default:
		return tengo.ErrInvalidIndexType
	}
	return nil
}

// point is the Tengo object of a geom.Point.
type point struct {
	tengo.ObjectImpl
	p geom.Point
}

func (o *point) TypeName() string { return "Point" }

func (o *point) String() string {
	return fmt.Sprintf("Point(%d, %d)", o.p.X, o.p.Y)
}

func (o *point) Copy() tengo.Object { return &point{p: o.p} }

func (o *point) IsFalsy() bool { return false }

func (o *point) Equals(x tengo.Object) bool {
	w, ok := x.(*point)
	return ok && w.p == o.p
}

func (o *point) IndexGet(index tengo.Object) (tengo.Object, error) {
	name, ok := fieldName(index)
	if !ok {
		return nil, tengo.ErrInvalidIndexType
	}
	switch name {
	case "x":
		return &tengo.Int{Value: int64(o.p.X)}, nil
	case "y":
		return &tengo.Int{Value: int64(o.p.Y)}, nil
	}
	return tengo.UndefinedValue, nil
}

func (o *point) IndexSet(index, value tengo.Object) error {
	name, ok := fieldName(index)
	if !ok {
		return tengo.ErrInvalidIndexType
	}
	n, ok := tengo.ToInt(value)
	if !ok {
		return tengo.ErrInvalidIndexValueType
	}
	switch name {
	case "x":
		o.p.X = n
	case "y":
		o.p.Y = n
	default:
		return tengo.ErrInvalidIndexType
	}
	return nil
}

// fieldName returns the field name selected by index.
func fieldName(index tengo.Object) (string, bool) {
	s, ok := index.(*tengo.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}
