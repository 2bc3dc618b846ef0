// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Matrix4 is a 4x4 matrix stored in row-major order:
// m[4*r+c] is the element in row r and column c.
// It has the same layout as [f32.Mat4].
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromF32 returns a new [Matrix4] from the given [f32.Mat4].
func Matrix4FromF32(m f32.Mat4) Matrix4 {
	return Matrix4(m)
}

// F32 returns the matrix as an [f32.Mat4].
func (m Matrix4) F32() f32.Mat4 {
	return f32.Mat4(m)
}

// At returns the element at row r and column c.
func (m Matrix4) At(r, c int) float32 { return m[4*r+c] }

// SetAt sets the element at row r and column c.
func (m *Matrix4) SetAt(r, c int, v float32) { m[4*r+c] = v }

// Mrc returns the element at row r and column c.

func (m Matrix4) M00() float32 { return m[0] }
func (m Matrix4) M01() float32 { return m[1] }
func (m Matrix4) M02() float32 { return m[2] }
func (m Matrix4) M03() float32 { return m[3] }
func (m Matrix4) M10() float32 { return m[4] }
func (m Matrix4) M11() float32 { return m[5] }
func (m Matrix4) M12() float32 { return m[6] }
func (m Matrix4) M13() float32 { return m[7] }
func (m Matrix4) M20() float32 { return m[8] }
func (m Matrix4) M21() float32 { return m[9] }
func (m Matrix4) M22() float32 { return m[10] }
func (m Matrix4) M23() float32 { return m[11] }
func (m Matrix4) M30() float32 { return m[12] }
func (m Matrix4) M31() float32 { return m[13] }
func (m Matrix4) M32() float32 { return m[14] }
func (m Matrix4) M33() float32 { return m[15] }

// SetMrc sets the element at row r and column c.

func (m *Matrix4) SetM00(v float32) { m[0] = v }
func (m *Matrix4) SetM01(v float32) { m[1] = v }
func (m *Matrix4) SetM02(v float32) { m[2] = v }
func (m *Matrix4) SetM03(v float32) { m[3] = v }
func (m *Matrix4) SetM10(v float32) { m[4] = v }
func (m *Matrix4) SetM11(v float32) { m[5] = v }
func (m *Matrix4) SetM12(v float32) { m[6] = v }
func (m *Matrix4) SetM13(v float32) { m[7] = v }
func (m *Matrix4) SetM20(v float32) { m[8] = v }
func (m *Matrix4) SetM21(v float32) { m[9] = v }
func (m *Matrix4) SetM22(v float32) { m[10] = v }
func (m *Matrix4) SetM23(v float32) { m[11] = v }
func (m *Matrix4) SetM30(v float32) { m[12] = v }
func (m *Matrix4) SetM31(v float32) { m[13] = v }
func (m *Matrix4) SetM32(v float32) { m[14] = v }
func (m *Matrix4) SetM33(v float32) { m[15] = v }

// Row returns row r as a vector.
func (m Matrix4) Row(r int) Vector4 {
	return Vector4{m[4*r], m[4*r+1], m[4*r+2], m[4*r+3]}
}

// Col returns column c as a vector.
func (m Matrix4) Col(c int) Vector4 {
	return Vector4{m[c], m[4+c], m[8+c], m[12+c]}
}

func (m Matrix4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v; %v, %v, %v, %v; %v, %v, %v, %v; %v, %v, %v, %v)", m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], m[9], m[10], m[11], m[12], m[13], m[14], m[15])
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] + other[i]
	}
	return r
}

// SetAdd sets this to addition with other matrix.
func (m *Matrix4) SetAdd(other Matrix4) {
	*m = m.Add(other)
}

// Sub returns the elementwise difference of this matrix and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] - other[i]
	}
	return r
}

// SetSub sets this to subtraction of other matrix.
func (m *Matrix4) SetSub(other Matrix4) {
	*m = m.Sub(other)
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// SetMulScalar multiplies every element of this matrix by s.
func (m *Matrix4) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix multiplied by 1/s.
// If s is zero the elements are Inf or NaN.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	return m.MulScalar(1 / s)
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// SetTranspose transposes this matrix in place.
func (m *Matrix4) SetTranspose() {
	*m = m.Transpose()
}

// Mul returns the matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var p Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[4*r+k] * other[4*k+c]
			}
			p[4*r+c] = sum
		}
	}
	return p
}

// SetMul sets this matrix to the product of itself and other (m = m * other).
func (m *Matrix4) SetMul(other Matrix4) {
	*m = m.Mul(other)
}

// MulVector4 returns m * v, treating v as a column vector.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vector4{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3]*v[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7]*v[3],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11]*v[3],
		m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]*v[3],
	}
}
