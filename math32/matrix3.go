// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix3 is a 3x3 matrix stored in row-major order:
// m[3*r+c] is the element in row r and column c.
// It has the same layout as [f32.Mat3].
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3].
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromF32 returns a new [Matrix3] from the given [f32.Mat3].
func Matrix3FromF32(m f32.Mat3) Matrix3 {
	return Matrix3(m)
}

// F32 returns the matrix as an [f32.Mat3].
func (m Matrix3) F32() f32.Mat3 {
	return f32.Mat3(m)
}

// At returns the element at row r and column c.
func (m Matrix3) At(r, c int) float32 { return m[3*r+c] }

// SetAt sets the element at row r and column c.
func (m *Matrix3) SetAt(r, c int, v float32) { m[3*r+c] = v }

// Mrc returns the element at row r and column c.

func (m Matrix3) M00() float32 { return m[0] }
func (m Matrix3) M01() float32 { return m[1] }
func (m Matrix3) M02() float32 { return m[2] }
func (m Matrix3) M10() float32 { return m[3] }
func (m Matrix3) M11() float32 { return m[4] }
func (m Matrix3) M12() float32 { return m[5] }
func (m Matrix3) M20() float32 { return m[6] }
func (m Matrix3) M21() float32 { return m[7] }
func (m Matrix3) M22() float32 { return m[8] }

// SetMrc sets the element at row r and column c.

func (m *Matrix3) SetM00(v float32) { m[0] = v }
func (m *Matrix3) SetM01(v float32) { m[1] = v }
func (m *Matrix3) SetM02(v float32) { m[2] = v }
func (m *Matrix3) SetM10(v float32) { m[3] = v }
func (m *Matrix3) SetM11(v float32) { m[4] = v }
func (m *Matrix3) SetM12(v float32) { m[5] = v }
func (m *Matrix3) SetM20(v float32) { m[6] = v }
func (m *Matrix3) SetM21(v float32) { m[7] = v }
func (m *Matrix3) SetM22(v float32) { m[8] = v }

// Row returns row r as a vector.
func (m Matrix3) Row(r int) Vector3 {
	return Vector3{m[3*r], m[3*r+1], m[3*r+2]}
}

// Col returns column c as a vector.
func (m Matrix3) Col(c int) Vector3 {
	return Vector3{m[c], m[3+c], m[6+c]}
}

func (m Matrix3) String() string {
	return fmt.Sprintf("(%v, %v, %v; %v, %v, %v; %v, %v, %v)", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix3) Add(other Matrix3) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] + other[i]
	}
	return r
}

// SetAdd sets this to addition with other matrix.
func (m *Matrix3) SetAdd(other Matrix3) {
	*m = m.Add(other)
}

// Sub returns the elementwise difference of this matrix and other.
func (m Matrix3) Sub(other Matrix3) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] - other[i]
	}
	return r
}

// SetSub sets this to subtraction of other matrix.
func (m *Matrix3) SetSub(other Matrix3) {
	*m = m.Sub(other)
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// SetMulScalar multiplies every element of this matrix by s.
func (m *Matrix3) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix multiplied by 1/s.
// If s is zero the elements are Inf or NaN.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	return m.MulScalar(1 / s)
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// SetTranspose transposes this matrix in place.
func (m *Matrix3) SetTranspose() {
	*m = m.Transpose()
}

// Mul returns the matrix product m * other.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var p Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[3*r+k] * other[3*k+c]
			}
			p[3*r+c] = sum
		}
	}
	return p
}

// SetMul sets this matrix to the product of itself and other (m = m * other).
func (m *Matrix3) SetMul(other Matrix3) {
	*m = m.Mul(other)
}

// MulVector3 returns m * v, treating v as a column vector.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}
