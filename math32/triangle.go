// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Point3
	B Point3
	C Point3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Point3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c, following the
// right-hand rule for counter-clockwise winding. Unlike [Vector3.Normal],
// a degenerate (zero area) triangle returns the zero vector.
func Normal(a, b, c Point3) Vector3 {
	nv := b.Sub(a).Cross(c.Sub(a))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// BarycoordFromPoint returns the barycentric coordinates for the specified point.
func BarycoordFromPoint(point, a, b, c Point3) Vector3 {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := point.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01

	// colinear or singular triangle
	if denom == 0 {
		return Vec3(-2, -1, -1)
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	// barycoordinates must always sum to 1
	return Vec3(1-u-v, v, u)
}

// ContainsPoint returns whether a triangle contains a point.
func ContainsPoint(point, a, b, c Point3) bool {
	rv := BarycoordFromPoint(point, a, b, c)
	return rv.Y() >= 0 && rv.Z() >= 0 && rv.Y()+rv.Z() <= 1
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Point3) {
	t.A = a
	t.B = b
	t.C = c
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t Triangle) Midpoint() Point3 {
	return t.A.Add(t.B).Add(t.C).DivScalar(3)
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// BarycoordFromPoint returns the barycentric coordinates for the specified point.
func (t Triangle) BarycoordFromPoint(point Point3) Vector3 {
	return BarycoordFromPoint(point, t.A, t.B, t.C)
}

// ContainsPoint returns whether the triangle contains a point.
func (t Triangle) ContainsPoint(point Point3) bool {
	return ContainsPoint(point, t.A, t.B, t.C)
}
