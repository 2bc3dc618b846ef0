// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "strconv"

// Dims is a list of vector dimension (component) names,
// in storage order.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W
)

// DimsN is the number of [Dims] values.
const DimsN Dims = 4

// String returns the lowercase name of the dimension.
func (d Dims) String() string {
	switch d {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	case W:
		return "w"
	}
	return "Dims(" + strconv.FormatInt(int64(d), 10) + ")"
}

// OtherDim returns the other dimension for 2D X,Y
func OtherDim(d Dims) Dims {
	switch d {
	case X:
		return Y
	default:
		return X
	}
}
