// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix2 is a 2x2 matrix stored in row-major order:
// m[2*r+c] is the element in row r and column c.
type Matrix2 [4]float32

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
	}
}

// Mat2 returns a new [Matrix2] from the given elements in row-major order.
func Mat2(m00, m01, m10, m11 float32) Matrix2 {
	return Matrix2{m00, m01, m10, m11}
}

// At returns the element at row r and column c.
func (m Matrix2) At(r, c int) float32 { return m[2*r+c] }

// SetAt sets the element at row r and column c.
func (m *Matrix2) SetAt(r, c int, v float32) { m[2*r+c] = v }

// Mrc returns the element at row r and column c.

func (m Matrix2) M00() float32 { return m[0] }
func (m Matrix2) M01() float32 { return m[1] }
func (m Matrix2) M10() float32 { return m[2] }
func (m Matrix2) M11() float32 { return m[3] }

// SetMrc sets the element at row r and column c.

func (m *Matrix2) SetM00(v float32) { m[0] = v }
func (m *Matrix2) SetM01(v float32) { m[1] = v }
func (m *Matrix2) SetM10(v float32) { m[2] = v }
func (m *Matrix2) SetM11(v float32) { m[3] = v }

// Row returns row r as a vector.
func (m Matrix2) Row(r int) Vector2 {
	return Vector2{m[2*r], m[2*r+1]}
}

// Col returns column c as a vector.
func (m Matrix2) Col(c int) Vector2 {
	return Vector2{m[c], m[2+c]}
}

func (m Matrix2) String() string {
	return fmt.Sprintf("(%v, %v; %v, %v)", m[0], m[1], m[2], m[3])
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix2) Add(other Matrix2) Matrix2 {
	return Matrix2{m[0] + other[0], m[1] + other[1], m[2] + other[2], m[3] + other[3]}
}

// SetAdd sets this to addition with other matrix.
func (m *Matrix2) SetAdd(other Matrix2) {
	*m = m.Add(other)
}

// Sub returns the elementwise difference of this matrix and other.
func (m Matrix2) Sub(other Matrix2) Matrix2 {
	return Matrix2{m[0] - other[0], m[1] - other[1], m[2] - other[2], m[3] - other[3]}
}

// SetSub sets this to subtraction of other matrix.
func (m *Matrix2) SetSub(other Matrix2) {
	*m = m.Sub(other)
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix2) MulScalar(s float32) Matrix2 {
	return Matrix2{m[0] * s, m[1] * s, m[2] * s, m[3] * s}
}

// SetMulScalar multiplies every element of this matrix by s.
func (m *Matrix2) SetMulScalar(s float32) {
	*m = m.MulScalar(s)
}

// DivScalar returns this matrix multiplied by 1/s.
// If s is zero the elements are Inf or NaN.
func (m Matrix2) DivScalar(s float32) Matrix2 {
	return m.MulScalar(1 / s)
}

// Transpose returns the transpose of this matrix.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{
		m[0], m[2],
		m[1], m[3],
	}
}

// SetTranspose transposes this matrix in place.
func (m *Matrix2) SetTranspose() {
	m[1], m[2] = m[2], m[1]
}

// Mul returns the matrix product m * other.
func (m Matrix2) Mul(other Matrix2) Matrix2 {
	return Matrix2{
		m[0]*other[0] + m[1]*other[2], m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2], m[2]*other[1] + m[3]*other[3],
	}
}

// SetMul sets this matrix to the product of itself and other (m = m * other).
func (m *Matrix2) SetMul(other Matrix2) {
	*m = m.Mul(other)
}

// MulVector2 returns m * v, treating v as a column vector.
func (m Matrix2) MulVector2(v Vector2) Vector2 {
	return Vector2{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
	}
}

func (m Matrix2) det() float32 {
	return m[0]*m[3] - m[1]*m[2]
}

// Inverse returns the inverse of this matrix. If the matrix is
// singular it returns the zero matrix and [ErrSingularMatrix].
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.det()
	if det == 0 {
		return Matrix2{}, ErrSingularMatrix
	}
	return Matrix2{
		m[3], -m[1],
		-m[2], m[0],
	}.MulScalar(1 / det), nil
}

// Div returns m * other⁻¹. If other is singular it returns the
// zero matrix and [ErrSingularMatrix].
func (m Matrix2) Div(other Matrix2) (Matrix2, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Matrix2{}, err
	}
	return m.Mul(inv), nil
}
