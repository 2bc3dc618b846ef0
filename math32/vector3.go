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

// Vector3 is a 3D vector/point with X, Y and Z components.
// The same slots are also readable as R, G and B color channels.
type Vector3 [3]float32

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2(v Vector2, z float32) Vector3 {
	return Vector3{v[0], v[1], z}
}

// Vector3FromF32 returns a new [Vector3] from the given [f32.Vec3].
func Vector3FromF32(v f32.Vec3) Vector3 {
	return Vector3(v)
}

// X returns the X component.
func (v Vector3) X() float32 { return v[0] }

// Y returns the Y component.
func (v Vector3) Y() float32 { return v[1] }

// Z returns the Z component.
func (v Vector3) Z() float32 { return v[2] }

// R returns the red channel, which is the X component.
func (v Vector3) R() float32 { return v[0] }

// G returns the green channel, which is the Y component.
func (v Vector3) G() float32 { return v[1] }

// B returns the blue channel, which is the Z component.
func (v Vector3) B() float32 { return v[2] }

// SetX sets the X component.
func (v *Vector3) SetX(x float32) { v[0] = x }

// SetY sets the Y component.
func (v *Vector3) SetY(y float32) { v[1] = y }

// SetZ sets the Z component.
func (v *Vector3) SetZ(z float32) { v[2] = z }

// SetR sets the red channel, which is the X component.
func (v *Vector3) SetR(r float32) { v[0] = r }

// SetG sets the green channel, which is the Y component.
func (v *Vector3) SetG(g float32) { v[1] = g }

// SetB sets the blue channel, which is the Z component.
func (v *Vector3) SetB(b float32) { v[2] = b }

// Set sets this vector X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v[0] = x
	v[1] = y
	v[2] = z
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector3) SetScalar(scalar float32) {
	v[0] = scalar
	v[1] = scalar
	v[2] = scalar
}

// SetDim sets this vector component value by dimension index.
func (v *Vector3) SetDim(dim Dims, value float32) {
	v[dim] = value
}

// Dim returns this vector component.
func (v Vector3) Dim(dim Dims) float32 {
	return v[dim]
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v[0], v[1], v[2])
}

// F32 returns the vector as an [f32.Vec3], which shares its layout.
func (v Vector3) F32() f32.Vec3 {
	return f32.Vec3(v)
}

// FromSlice sets this vector's components from the given slice, starting at offset.
func (v *Vector3) FromSlice(array []float32, offset int) {
	v[0] = array[offset]
	v[1] = array[offset+1]
	v[2] = array[offset+2]
}

// ToSlice copies this vector's components to the given slice, starting at offset.
func (v Vector3) ToSlice(array []float32, offset int) {
	array[offset] = v[0]
	array[offset+1] = v[1]
	array[offset+2] = v[2]
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// AddScalar adds scalar s to each component of this vector and returns new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v[0] + s, v[1] + s, v[2] + s}
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *Vector3) SetAdd(other Vector3) {
	v[0] += other[0]
	v[1] += other[1]
	v[2] += other[2]
}

// SetAddScalar sets this to addition with scalar.
func (v *Vector3) SetAddScalar(s float32) {
	v[0] += s
	v[1] += s
	v[2] += s
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// SubScalar subtracts scalar s from each component of this vector and returns new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v[0] - s, v[1] - s, v[2] - s}
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *Vector3) SetSub(other Vector3) {
	v[0] -= other[0]
	v[1] -= other[1]
	v[2] -= other[2]
}

// SetSubScalar sets this to subtraction of scalar.
func (v *Vector3) SetSubScalar(s float32) {
	v[0] -= s
	v[1] -= s
	v[2] -= s
}

// Mul multiplies each component of this vector by the corresponding one from other
// and returns resulting vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// MulScalar multiplies each component of this vector by the scalar s and returns resulting vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *Vector3) SetMul(other Vector3) {
	v[0] *= other[0]
	v[1] *= other[1]
	v[2] *= other[2]
}

// SetMulScalar sets this to multiplication by scalar.
func (v *Vector3) SetMulScalar(s float32) {
	v[0] *= s
	v[1] *= s
	v[2] *= s
}

// Div divides each component of this vector by the corresponding one from other vector
// and returns resulting vector. A zero component in other yields Inf or NaN.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{v[0] / other[0], v[1] / other[1], v[2] / other[2]}
}

// DivScalar multiplies each component of this vector by 1/s and returns resulting vector.
// If s is zero the components are Inf or NaN.
func (v Vector3) DivScalar(s float32) Vector3 {
	return v.MulScalar(1 / s)
}

// SetDiv sets this to division by other vector (i.e., /= or divide-equals).
func (v *Vector3) SetDiv(other Vector3) {
	v[0] /= other[0]
	v[1] /= other[1]
	v[2] /= other[2]
}

// SetDivScalar sets this to division by scalar.
func (v *Vector3) SetDivScalar(s float32) {
	v.SetMulScalar(1 / s)
}

// Min returns min of this vector components vs. other vector.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{Min(v[0], other[0]), Min(v[1], other[1]), Min(v[2], other[2])}
}

// Max returns max of this vector components vs. other vector.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{Max(v[0], other[0]), Max(v[1], other[1]), Max(v[2], other[2])}
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// SetNegate negates each of this vector's components.
func (v *Vector3) SetNegate() {
	v[0] = -v[0]
	v[1] = -v[1]
	v[2] = -v[2]
}

// Distance, Normal:

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector3) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normal returns this vector multiplied by the reciprocal of its length
// (its unit vector). The zero vector has no direction and yields Inf or NaN.
func (v Vector3) Normal() Vector3 {
	return v.MulScalar(1 / v.Length())
}

// SetNormal normalizes this vector so its length will be 1.
func (v *Vector3) SetNormal() {
	v.SetMulScalar(1 / v.Length())
}

// DistanceTo returns the distance of this point to other.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the distance squared of this point to other.
func (v Vector3) DistanceToSquared(other Vector3) float32 {
	dx := v[0] - other[0]
	dy := v[1] - other[1]
	dz := v[2] - other[2]
	return dx*dx + dy*dy + dz*dz
}

// Cross returns the right-handed cross product of this vector with other.
// It is zero when the vectors are parallel.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// SetCross sets this vector to the cross product of itself with other.
func (v *Vector3) SetCross(other Vector3) {
	*v = v.Cross(other)
}

// Project returns the projection of this vector onto other:
// other scaled by Dot(other) / other.LengthSquared().
// Projecting onto the zero vector yields Inf or NaN.
func (v Vector3) Project(other Vector3) Vector3 {
	return other.MulScalar(v.Dot(other) / other.LengthSquared())
}

// Lerp returns vector with each components as the linear interpolated value of
// alpha between itself and the corresponding other component.
func (v Vector3) Lerp(other Vector3, alpha float32) Vector3 {
	return Vector3{v[0] + (other[0]-v[0])*alpha, v[1] + (other[1]-v[1])*alpha, v[2] + (other[2]-v[2])*alpha}
}

// MulMatrix3 returns the vector multiplied by the given 3x3 matrix,
// treating the vector as a column vector (m * v).
func (v Vector3) MulMatrix3(m *Matrix3) Vector3 {
	return m.MulVector3(v)
}
