// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// DistanceToPlane returns the distance along the ray at which it meets
// the plane through point with the given unit normal.
// ok is false if the ray is parallel to the plane or the plane lies behind
// the ray origin.
func (ray *Ray) DistanceToPlane(point, normal Vector3) (t float32, ok bool) {
	denom := normal.Dot(ray.Dir)
	if denom == 0 {
		return 0, false
	}
	t = point.Sub(ray.Origin).Dot(normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}
