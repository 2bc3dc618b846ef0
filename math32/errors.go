// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "errors"

// ErrSingularMatrix is returned when an operation needs the inverse
// of a matrix whose determinant is zero.
var ErrSingularMatrix = errors.New("math32: matrix is singular")
