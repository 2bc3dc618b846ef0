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

func TestVector4(t *testing.T) {
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vec4(1, 2, 3, 4))
	assert.Equal(t, Vector4{2, 2, 2, 2}, Vector4Scalar(2))
	assert.Equal(t, Vector4{1, 2, 3, 1}, Vector4FromVector3(Vec3(1, 2, 3), 1))
	assert.Equal(t, Vector4{1, 2, 3, 4}, Vector4FromF32(f32.Vec4{1, 2, 3, 4}))
	assert.Equal(t, f32.Vec4{1, 2, 3, 4}, Vec4(1, 2, 3, 4).F32())
	assert.Equal(t, Vec3(1, 2, 3), Vec4(1, 2, 3, 4).Vector3())
	assert.Equal(t, "(1, 2, 3, 4)", Vec4(1, 2, 3, 4).String())

	c := Color4{0.1, 0.2, 0.3, 1}
	assert.Equal(t, c.X(), c.R())
	assert.Equal(t, c.Y(), c.G())
	assert.Equal(t, c.Z(), c.B())
	assert.Equal(t, c.W(), c.A())

	c.SetA(0.5)
	assert.Equal(t, float32(0.5), c.W())
	c.SetW(0.25)
	assert.Equal(t, float32(0.25), c.A())
	c.SetR(1)
	c.SetG(2)
	c.SetB(3)
	assert.Equal(t, Vec4(1, 2, 3, 0.25), c)
	c.SetX(4)
	c.SetY(5)
	c.SetZ(6)
	assert.Equal(t, Color4{4, 5, 6, 0.25}, c)
	for d := X; d < DimsN; d++ {
		assert.Equal(t, c[d], c.Dim(d))
	}

	var v Vector4
	v.Set(1, 2, 3, 4)
	v.SetDim(W, 9)
	assert.Equal(t, Vec4(1, 2, 3, 9), v)
	v.SetScalar(0)
	assert.Equal(t, Vector4{}, v)
	v.SetFromVector3(Vec3(1, 2, 3), 4)
	assert.Equal(t, Vec4(1, 2, 3, 4), v)

	buf := make([]float32, 6)
	v.ToSlice(buf, 2)
	var w Vector4
	w.FromSlice(buf, 2)
	assert.Equal(t, v, w)
}

func TestVector4Arithmetic(t *testing.T) {
	a := Vec4(1, 2, 3, 4)
	b := Vec4(4, 3, 2, 1)

	assert.Equal(t, Vec4(5, 5, 5, 5), a.Add(b))
	assert.Equal(t, Vec4(-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, Vec4(4, 6, 6, 4), a.Mul(b))
	assert.Equal(t, Vec4(4, 1.5, 1, 0.25), a.Mul(b).Div(Vec4(1, 4, 6, 16)))
	assert.Equal(t, Vec4(2, 3, 4, 5), a.AddScalar(1))
	assert.Equal(t, Vec4(0, 1, 2, 3), a.SubScalar(1))
	assert.Equal(t, Vec4(2, 4, 6, 8), a.MulScalar(2))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vec4(-1, -2, -3, -4), a.Negate())
	assert.Equal(t, Vec4(1, 2, 2, 1), a.Min(b))
	assert.Equal(t, Vec4(4, 3, 3, 4), a.Max(b))
	assert.Equal(t, Vec4(2.5, 2.5, 2.5, 2.5), a.Lerp(b, 0.5))

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec4(5, 5, 5, 5), c)
	c.SetSub(b)
	c.SetMul(b)
	c.SetDiv(b)
	assert.Equal(t, a, c)
	c.SetAddScalar(3)
	c.SetSubScalar(3)
	c.SetMulScalar(8)
	c.SetDivScalar(8)
	assert.Equal(t, a, c)
	c.SetNegate()
	assert.Equal(t, a.Negate(), c)
}

func TestVector4Length(t *testing.T) {
	v := Vec4(1, 1, 1, 1)
	assert.Equal(t, float32(4), v.LengthSquared())
	assert.Equal(t, float32(2), v.Length())
	assert.Equal(t, Vector4Scalar(0.5), v.Normal())
	v.SetNormal()
	assert.Equal(t, Vector4Scalar(0.5), v)

	assert.Equal(t, float32(20), Vec4(1, 2, 3, 4).Dot(Vec4(4, 3, 2, 1)))
	tolAssertEqualVector4(t, Vec4(2, 0, 0, 0), Vec4(2, 7, -1, 3).Project(Vec4(5, 0, 0, 0)))
}

func TestVector4ZeroDivisor(t *testing.T) {
	d := Vec4(1, 1, 1, 1).Div(Vec4(0, 1, 1, 1))
	assert.True(t, IsInf(d.X(), 1))
	assert.Equal(t, float32(1), d.Y())

	n := Vector4{}.Normal()
	for i := range n {
		assert.True(t, IsNaN(n[i]))
	}
}

func TestVector4Properties(t *testing.T) {
	rnd := newRand()
	for range numSamples {
		a := randVector4(rnd)
		b := randVector4(rnd)

		assert.Equal(t, a.Add(b), b.Add(a))
		assert.Equal(t, a.Sub(b), a.Add(b.Negate()))
		assert.Equal(t, a.Dot(b), b.Dot(a))

		assert.Greater(t, a.Length(), float32(0))
		tolassert.EqualTol(t, 1, a.Normal().Length(), 1e-5)

		m := a
		m.SetNegate()
		assert.Equal(t, a.Negate(), m)

		tolassert.EqualTol(t, 0, a.Sub(a.Project(b)).Dot(b), propertyTol)
	}
}
