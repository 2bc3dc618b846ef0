// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line3 represents a 3D line segment defined by a start and an end point.
type Line3 struct {
	Start Point3
	End   Point3
}

// NewLine3 creates and returns a new Line3 with the
// specified start and end points.
func NewLine3(start, end Point3) Line3 {
	return Line3{start, end}
}

// Center calculates this line segment center point.
func (l Line3) Center() Point3 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this line segment.
func (l Line3) Delta() Vector3 {
	return l.End.Sub(l.Start)
}

// LengthSquared returns the square of the distance from the start point to the end point.
func (l Line3) LengthSquared() float32 {
	return l.Start.DistanceToSquared(l.End)
}

// Length returns the length from the start point to the end point.
func (l Line3) Length() float32 {
	return l.Start.DistanceTo(l.End)
}

// ClosestPointToPoint returns the point along the line that is
// closest to the given point. The segment must have nonzero length.
func (l Line3) ClosestPointToPoint(point Point3) Point3 {
	v := l.Delta()
	t := point.Sub(l.Start).Dot(v) / v.LengthSquared()
	switch {
	case t <= 0:
		return l.Start
	case t >= 1:
		return l.End
	default:
		return l.Start.Add(point.Sub(l.Start).Project(v))
	}
}
