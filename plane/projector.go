// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plane

import (
	"cogentcore.org/inkdraw/math32"
)

// Pick is the result of picking the scene at the pointer
// when a stroke begins.
type Pick struct {

	// Point is the world position that was hit.
	Point math32.Vector3

	// Hit is whether anything was hit at all.
	Hit bool
}

// Projector resolves the drawing plane of a stroke from its initial pick.
type Projector struct {

	// Up is the normal of every drawing plane.
	Up math32.Vector3
}

// Resolve returns the drawing plane for a stroke: the plane with normal
// [Projector.Up] through the picked point, or through the world origin
// if nothing was hit.
func (pj *Projector) Resolve(pick Pick) Plane {
	if !pick.Hit {
		return New(math32.Vector3{}, pj.Up)
	}
	return New(pick.Point, pj.Up)
}
