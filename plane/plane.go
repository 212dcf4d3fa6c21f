// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plane provides the 2D drawing plane of a stroke:
// an oriented plane in world space with its own planar coordinates.
package plane

import (
	"cogentcore.org/inkdraw/math32"
)

// Plane is an oriented plane in world space with an orthonormal
// basis U, V such that U x V = Normal. Points on the plane have
// planar coordinates (x, y) = Origin + U*x + V*y.
type Plane struct {

	// Origin is the world position of planar coordinate (0, 0).
	Origin math32.Vector3

	// Normal is the unit normal of the plane.
	Normal math32.Vector3

	// U is the unit world direction of the planar X axis.
	U math32.Vector3

	// V is the unit world direction of the planar Y axis.
	V math32.Vector3
}

// New returns the plane through origin with the given normal,
// which need not be normalized. For the +Y normal, U is +X and V is -Z.
func New(origin, normal math32.Vector3) Plane {
	n := normal.Normal()
	ref := math32.Vec3(1, 0, 0)
	if math32.Abs(n.X) > 0.9 {
		ref = math32.Vec3(0, 0, 1)
	}
	u := ref.Sub(n.MulScalar(ref.Dot(n))).Normal()
	v := n.Cross(u)
	return Plane{Origin: origin, Normal: n, U: u, V: v}
}

// Direction returns the world direction for the given planar offset,
// without the plane origin.
func (p Plane) Direction(pt math32.Vector2) math32.Vector3 {
	return p.U.MulScalar(pt.X).Add(p.V.MulScalar(pt.Y))
}

// Point returns the world position of the given planar point.
func (p Plane) Point(pt math32.Vector2) math32.Vector3 {
	return p.Origin.Add(p.Direction(pt))
}

// Project returns the planar coordinates of the given world point
// projected along the normal onto the plane.
func (p Plane) Project(world math32.Vector3) math32.Vector2 {
	d := world.Sub(p.Origin)
	return math32.Vec2(d.Dot(p.U), d.Dot(p.V))
}

// IntersectRay returns the planar coordinates where the given ray
// meets the plane. ok is false if the ray misses it.
func (p Plane) IntersectRay(ray math32.Ray) (pt math32.Vector2, ok bool) {
	t, ok := ray.DistanceToPlane(p.Origin, p.Normal)
	if !ok {
		return math32.Vector2{}, false
	}
	return p.Project(ray.At(t)), true
}
