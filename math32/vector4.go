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

	"golang.org/x/image/math/f32"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// The same slots are also readable as R, G, B and A color channels.
type Vector4 [4]float32

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(scalar float32) Vector4 {
	return Vector4{scalar, scalar, scalar, scalar}
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	nv := Vector4{}
	nv.SetFromVector3(v, w)
	return nv
}

// Vector4FromF32 returns a new [Vector4] from the given [f32.Vec4].
func Vector4FromF32(v f32.Vec4) Vector4 {
	return Vector4(v)
}

// X returns the X component.
func (v Vector4) X() float32 { return v[0] }

// Y returns the Y component.
func (v Vector4) Y() float32 { return v[1] }

// Z returns the Z component.
func (v Vector4) Z() float32 { return v[2] }

// W returns the W component.
func (v Vector4) W() float32 { return v[3] }

// R returns the red channel, which is the X component.
func (v Vector4) R() float32 { return v[0] }

// G returns the green channel, which is the Y component.
func (v Vector4) G() float32 { return v[1] }

// B returns the blue channel, which is the Z component.
func (v Vector4) B() float32 { return v[2] }

// A returns the alpha channel, which is the W component.
func (v Vector4) A() float32 { return v[3] }

// SetX sets the X component.
func (v *Vector4) SetX(x float32) { v[0] = x }

// SetY sets the Y component.
func (v *Vector4) SetY(y float32) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector4) SetZ(z float32) { v[2] = z }

// SetW sets the W component.
func (v *Vector4) SetW(w float32) { v[3] = w }

// SetR sets the red channel, which is the X component.
func (v *Vector4) SetR(r float32) { v[0] = r }

// SetG sets the green channel, which is the Y component.
func (v *Vector4) SetG(g float32) { v[1] = g }

// SetB sets the blue channel, which is the Z component.
func (v *Vector4) SetB(b float32) { v[2] = b }

// SetA sets the alpha channel, which is the W component.
func (v *Vector4) SetA(a float32) { v[3] = a }

// Set sets this vector X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v[0] = x
	v[1] = y
	v[2] = z
	v[3] = w
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector4) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
	v[2] = scalar
	v[3] = scalar
}

// SetFromVector3 sets this vector from a Vector3 and W
func (v *Vector4) SetFromVector3(other Vector3, w float32) {
	v[0] = other[0]
	v[1] = other[1]
	v[2] = other[2]
	v[3] = w
}

// SetDim sets this vector component value by dimension index.
func (v *Vector4) SetDim(dim Dims, value float32) {
	v[dim] = value
}

// Dim returns this vector component.
func (v Vector4) Dim(dim Dims) float32 {
	return v[dim]
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v[0], v[1], v[2], v[3])
}

// F32 returns the vector as an [f32.Vec4], which shares its layout.
func (v Vector4) F32() f32.Vec4 {
	return f32.Vec4(v)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector4) FromSlice(array []float32, offset int) {
	v[0] = array[offset]
	v[1] = array[offset+1]
	v[2] = array[offset+2]
	v[3] = array[offset+3]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector4) ToSlice(array []float32, offset int) {
	array[offset] = v[0]
	array[offset+1] = v[1]
	array[offset+2] = v[2]
	array[offset+3] = v[3]
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vector4{v[0] + s, v[1] + s, v[2] + s, v[3] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector4) SetAdd(other Vector4) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
	v[3] += other[3]
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector4) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
	v[2] += s
	v[3] += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vector4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vector4{v[0] - s, v[1] - s, v[2] - s, v[3] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector4) SetSub(other Vector4) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
	v[3] -= other[3]
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector4) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
	v[2] -= s
	v[3] -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vector4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector4) SetMul(other Vector4) {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
	v[3] *= other[3]
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector4) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
	v[3] *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. A zero component in other yields Inf or NaN.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vector4{v[0] / other[0], v[1] / other[1], v[2] / other[2], v[3] / other[3]}
}

// DivScalar multiplies each component of this vector by 1/s and returns resulting vector.
// If s is zero the components are Inf or NaN.
func (v Vector4) DivScalar(s float32) Vector4 {
	return v.MulScalar(1 / s)
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector4) SetDiv(other Vector4) {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
	v[3] /= other[3]
}

// SetDivScalar sets this to division by scalar.
func (v *Vector4) SetDivScalar(s float32) {
	v.SetMulScalar(1 / s)
}

// Min returns min of this vector components vs. other vector.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vector4{Min(v[0], other[0]), Min(v[1], other[1]), Min(v[2], other[2]), Min(v[3], other[3])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vector4{Max(v[0], other[0]), Max(v[1], other[1]), Max(v[2], other[2]), Max(v[3], other[3])}
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vector4{-v[0], -v[1], -v[2], -v[3]}
}

// SetNegate negates each of this vector's components.
func (v *Vector4) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
	v[3] = -v[3]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2] + v[3]*other[3]
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector4) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3]
}

// Normal returns this vector multiplied by the reciprocal of its length
// (its unit vector). The zero vector has no direction and yields Inf or NaN.
func (v Vector4) Normal() Vector4 {
	return v.MulScalar(1 / v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector4) SetNormal() {
	v.SetMulScalar(1 / v.Length())
}

// Project returns the projection of this vector onto other:
// other scaled by Dot(other) / other.LengthSquared().
// Projecting onto the zero vector yields Inf or NaN.
func (v Vector4) Project(other Vector4) Vector4 {
	return other.MulScalar(v.Dot(other) / other.LengthSquared())
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector4) Lerp(other Vector4, alpha float32) Vector4 {
	return Vector4{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha, v[2] + (other[2]-v[2])*alpha,
		v[3] + (other[3]-v[3])*alpha}
}

// Matrix operations:

// MulMatrix4 returns the vector multiplied by the given 4x4 matrix,
// treating the vector as a column vector (m * v).
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return m.MulVector4(v)
}

// Vector3 returns the X, Y and Z components as a [Vector3].
func (v Vector4) Vector3() Vector3 {
	return Vector3{v[0], v[1], v[2]}
}
