// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components,
// stored in that order.
type Vector2 [2]float32

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{FromFixed(pt.X), FromFixed(pt.Y)}
}

// Vector2FromF32 returns a new [Vector2] from the given [f32.Vec2].
func Vector2FromF32(v f32.Vec2) Vector2 {
	return Vector2(v)
}

// X returns the X component.
func (v Vector2) X() float32 { return v[0] }

// Y returns the Y component.
func (v Vector2) Y() float32 { return v[1] }

// SetX sets the X component.
func (v *Vector2) SetX(x float32) { v[0] = x }

// SetY sets the Y component.
func (v *Vector2) SetY(y float32) { v[1] = y }

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v[0] = x
	v[1] = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
}

// SetFixed sets this vector from the given [fixed.Point26_6].
func (v *Vector2) SetFixed(pt fixed.Point26_6) {
	v[0] = FromFixed(pt.X)
	v[1] = FromFixed(pt.Y)
}

// SetDim sets this vector component value by dimension index.
func (v *Vector2) SetDim(dim Dims, value float32) {
	v[dim] = value
}

// Dim returns this vector component.
func (v Vector2) Dim(dim Dims) float32 {
	return v[dim]
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v[0], v[1])
}

// ToPoint returns the vector as an [image.Point], truncating the components.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(v[0]), int(v[1]))
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v[0]), Y: ToFixed(v[1])}
}

// F32 returns the vector as an [f32.Vec2], which shares its layout.
func (v Vector2) F32() f32.Vec2 {
	return f32.Vec2(v)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector2) FromSlice(array []float32, offset int) {
	v[0] = array[offset]
	v[1] = array[offset+1]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector2) ToSlice(array []float32, offset int) {
	array[offset] = v[0]
	array[offset+1] = v[1]
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v[0] + other[0], v[1] + other[1]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{v[0] + s, v[1] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector2) SetAdd(other Vector2) {
	v[0] += other[0]
	v[1] += other[1]
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector2) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v[0] - other[0], v[1] - other[1]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{v[0] - s, v[1] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector2) SetSub(other Vector2) {
	v[0] -= other[0]
	v[1] -= other[1]
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector2) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v[0] * other[0], v[1] * other[1]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v[0] * s, v[1] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector2) SetMul(other Vector2) {
	v[0] *= other[0]
	v[1] *= other[1]
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector2) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. A zero component in other yields Inf or NaN.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v[0] / other[0], v[1] / other[1]}
}

// DivScalar multiplies each component of this vector by 1/s and returns resulting vector.
// If s is zero the components are Inf or NaN.
func (v Vector2) DivScalar(s float32) Vector2 {
	return v.MulScalar(1 / s)
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector2) SetDiv(other Vector2) {
	v[0] /= other[0]
	v[1] /= other[1]
}

// SetDivScalar sets this to division by scalar.
func (v *Vector2) SetDivScalar(s float32) {
	v.SetMulScalar(1 / s)
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v[0], other[0]), Min(v[1], other[1])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v[0], other[0]), Max(v[1], other[1])}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v[0], -v[1]}
}

// SetNegate negates each of this vector's components.
func (v *Vector2) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v[0]*other[0] + v[1]*other[1]
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1]
}

// Normal returns this vector multiplied by the reciprocal of its length
// (its unit vector). The zero vector has no direction and yields Inf or NaN.
func (v Vector2) Normal() Vector2 {
	return v.MulScalar(1 / v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector2) SetNormal() {
	v.SetMulScalar(1 / v.Length())
}

// DistanceTo returns the distance of this point to other.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	dx := v[0] - other[0]
	dy := v[1] - other[1]
	return dx*dx + dy*dy
}

// Project returns the projection of this vector onto other:
// other scaled by Dot(other) / other.LengthSquared().
// Projecting onto the zero vector yields Inf or NaN.
func (v Vector2) Project(other Vector2) Vector2 {
	return other.MulScalar(v.Dot(other) / other.LengthSquared())
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha}
}
