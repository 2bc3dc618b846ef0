// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Point and color names for the vector types. They share layout
// and methods with the vector they alias, and only document
// intent at the call site.
type (
	Point2 = Vector2
	Point3 = Vector3
	Point4 = Vector4

	Color2 = Vector2
	Color3 = Vector3
	Color4 = Vector4
)
