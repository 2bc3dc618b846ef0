// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
	"ysmath.org/core/base/tolassert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{4, 4, 4}, Vector3Scalar(4))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromVector2(Vec2(1, 2), 3))
	assert.Equal(t, Vector3{1, 2, 3}, Vector3FromF32(f32.Vec3{1, 2, 3}))
	assert.Equal(t, f32.Vec3{1, 2, 3}, Vec3(1, 2, 3).F32())
	assert.Equal(t, "(1, 2, 3)", Vec3(1, 2, 3).String())

	v := Vec3(1, 2, 3)
	assert.Equal(t, v.X(), v.R())
	assert.Equal(t, v.Y(), v.G())
	assert.Equal(t, v.Z(), v.B())

	v.SetR(5)
	assert.Equal(t, float32(5), v.X())
	v.SetY(6)
	assert.Equal(t, float32(6), v.G())
	v.SetB(7)
	assert.Equal(t, float32(7), v[2])
	assert.Equal(t, float32(7), v.Dim(Z))
	v.SetX(0)
	v.SetG(0)
	v.SetZ(0)
	assert.Equal(t, Vector3{}, v)

	v.Set(1, 2, 3)
	v.SetDim(Y, 8)
	assert.Equal(t, Vec3(1, 8, 3), v)
	v.SetScalar(2)
	assert.Equal(t, Vec3(2, 2, 2), v)
	assert.Panics(t, func() { v.SetDim(W, 1) })

	buf := make([]float32, 3)
	Vec3(7, 8, 9).ToSlice(buf, 0)
	v.FromSlice(buf, 0)
	assert.Equal(t, Vec3(7, 8, 9), v)
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, 5, 6)

	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, Vec3(4, 2.5, 2), b.Div(a))
	assert.Equal(t, Vec3(2, 3, 4), a.AddScalar(1))
	assert.Equal(t, Vec3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, Vec3(3, 6, 9), a.MulScalar(3))
	assert.Equal(t, Vec3(2, 2.5, 3), b.DivScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, b, a.Max(b))
	assert.Equal(t, Vec3(2.5, 3.5, 4.5), a.Lerp(b, 0.5))

	c := a
	c.SetAdd(b)
	c.SetSub(a)
	assert.Equal(t, b, c)
	c.SetMul(a)
	c.SetDiv(a)
	assert.Equal(t, b, c)
	c.SetAddScalar(2)
	c.SetSubScalar(2)
	assert.Equal(t, b, c)
	c.SetMulScalar(2)
	c.SetDivScalar(2)
	assert.Equal(t, b, c)
	c.SetNegate()
	assert.Equal(t, b.Negate(), c)
}

func TestVector3Length(t *testing.T) {
	v := Vec3(2, 3, 6)
	assert.Equal(t, float32(49), v.LengthSquared())
	assert.Equal(t, float32(7), v.Length())
	assert.Equal(t, float32(7), Vector3{}.DistanceTo(v))

	tolAssertEqualVector3(t, Vec3(2.0/7, 3.0/7, 6.0/7), v.Normal())
	v.SetNormal()
	tolassert.EqualTol(t, 1, v.Length(), standardTol)

	assert.Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))
	tolAssertEqualVector3(t, Vec3(0, 0, 3), Vec3(1, 2, 3).Project(Vec3(0, 0, -2)))
}

func TestVector3Cross(t *testing.T) {
	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	z := Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Negate(), y.Cross(x))

	assert.Equal(t, Vector3{}, Vec3(1, 2, 3).Cross(Vec3(2, 4, 6)))
	assert.Equal(t, Vector3{}, Vec3(1, 2, 3).Cross(Vector3{}))

	v := x
	v.SetCross(y)
	assert.Equal(t, z, v)
}

func TestVector3ZeroDivisor(t *testing.T) {
	d := Vec3(1, -1, 0).DivScalar(0)
	assert.True(t, IsInf(d.X(), 1))
	assert.True(t, IsInf(d.Y(), -1))
	assert.True(t, IsNaN(d.Z()))

	var n Vector3
	n.SetNormal()
	assert.True(t, IsNaN(n.X()))
	assert.True(t, IsNaN(Vec3(1, 2, 3).Project(Vector3{}).Z()))
}

func TestVector3Properties(t *testing.T) {
	rnd := newRand()
	for range numSamples {
		a := randVector3(rnd)
		b := randVector3(rnd)

		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, a.Sub(b), a.Add(b.Negate()))
		assert.Equal(t, a.Dot(b), b.Dot(a))

		assert.Greater(t, a.Length(), float32(0))
		tolassert.EqualTol(t, 1, a.Normal().Length(), 1e-5)

		tolAssertEqualVector3(t, a.Cross(b), b.Cross(a).Negate(), propertyTol)
		tolassert.EqualTol(t, 0, a.Dot(a.Cross(b)), propertyTol)
		tolassert.EqualTol(t, 0, b.Dot(a.Cross(b)), propertyTol)

		tolassert.EqualTol(t, 0, a.Sub(a.Project(b)).Dot(b), propertyTol)
	}
}
