// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cmp"
	"slices"

	"cogentcore.org/inkdraw/math32"
)

// Convex is a convex hull collision shape.
type Convex struct {

	// Points are the hull vertices.
	Points []math32.Vector3

	// BBox is the bounding box of the points.
	BBox math32.Box3
}

// NewConvex returns the convex shape of the given hull points.
func NewConvex(points []math32.Vector3) *Convex {
	cv := &Convex{Points: points}
	cv.BBox.SetFromPoints(points)
	return cv
}

// SweptConvex returns the convex hull of the given planar points swept
// between -half and +half along axis, where u and v are the world
// directions of the planar axes.
func SweptConvex(points []math32.Vector2, u, v, axis math32.Vector3, half float32) *Convex {
	hull := Hull(points)
	front := axis.MulScalar(half)
	pts := make([]math32.Vector3, 0, 2*len(hull))
	for _, p := range hull {
		pts = append(pts, u.MulScalar(p.X).Add(v.MulScalar(p.Y)).Add(front))
	}
	for _, p := range hull {
		pts = append(pts, u.MulScalar(p.X).Add(v.MulScalar(p.Y)).Sub(front))
	}
	return NewConvex(pts)
}

// Hull returns the 2D convex hull of the given points in counter-clockwise
// order, without colinear points, using the monotone chain algorithm.
func Hull(points []math32.Vector2) []math32.Vector2 {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b math32.Vector2) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}
	hull := make([]math32.Vector2, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && math32.TriangleArea2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && math32.TriangleArea2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
