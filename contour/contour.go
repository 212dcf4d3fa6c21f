// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contour provides closed planar point loops and their
// normalization into the canonical form expected by triangulators.
package contour

import (
	"slices"

	"cogentcore.org/inkdraw/math32"
)

// Contour is a closed loop of planar points, relative to its centroid,
// wound clockwise (negative [SignedArea]). The loop closes from the
// last point back to the first, which is not repeated.
type Contour struct {

	// Points are the loop points relative to Centroid.
	Points []math32.Vector2

	// Centroid is the mean of the original points, in plane coordinates.
	Centroid math32.Vector2
}

// Normalize returns the canonical contour for the given closed loop:
// the points are recentered on their centroid and, if they wind
// counter-clockwise, reversed. The input is not modified.
// Zero-area loops keep their order.
func Normalize(points []math32.Vector2) Contour {
	c := Contour{Centroid: Centroid(points)}
	c.Points = make([]math32.Vector2, len(points))
	for i, p := range points {
		c.Points[i] = p.Sub(c.Centroid)
	}
	if SignedArea(c.Points) > 0 {
		slices.Reverse(c.Points)
	}
	return c
}

// Len returns the number of points.
func (c Contour) Len() int {
	return len(c.Points)
}

// Edge returns the two end points of edge i, from point i
// to point i+1, wrapping around at the end.
func (c Contour) Edge(i int) (a, b math32.Vector2) {
	n := len(c.Points)
	return c.Points[i%n], c.Points[(i+1)%n]
}

// Area returns the unsigned area enclosed by the contour.
func (c Contour) Area() float32 {
	return math32.Abs(SignedArea(c.Points))
}

// Perimeter returns the closed length of the contour.
func (c Contour) Perimeter() float32 {
	return Length(c.Points, true)
}

// IsCanonical returns whether the contour has the canonical
// clockwise winding.
func (c Contour) IsCanonical() bool {
	return SignedArea(c.Points) < 0
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []math32.Vector2) math32.Vector2 {
	if len(points) == 0 {
		return math32.Vector2{}
	}
	var sum math32.Vector2
	for _, p := range points {
		sum.SetAdd(p)
	}
	return sum.DivScalar(float32(len(points)))
}

// SignedArea returns the area of the closed polygon through the given
// points by the shoelace formula: positive for counter-clockwise
// winding, negative for clockwise.
func SignedArea(points []math32.Vector2) float32 {
	area := float32(0)
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		area += points[j].Cross(points[i])
	}
	return area / 2
}

// Length returns the length of the path through the given points,
// including the closing edge back to the first point if closed
// and there are more than two points.
func Length(points []math32.Vector2, closed bool) float32 {
	n := len(points)
	l := float32(0)
	for i := 1; i < n; i++ {
		l += points[i-1].DistanceTo(points[i])
	}
	if closed && n > 2 {
		l += points[n-1].DistanceTo(points[0])
	}
	return l
}

// Distinct returns the number of distinct points, treating points
// closer than eps as the same.
func Distinct(points []math32.Vector2, eps float32) int {
	eps2 := eps * eps
	var seen []math32.Vector2
	for _, p := range points {
		dup := slices.ContainsFunc(seen, func(s math32.Vector2) bool {
			return s.DistanceToSquared(p) <= eps2
		})
		if !dup {
			seen = append(seen, p)
		}
	}
	return len(seen)
}
