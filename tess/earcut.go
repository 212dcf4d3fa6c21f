// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"fmt"

	"cogentcore.org/inkdraw/math32"
	"github.com/rclancey/earcut"
)

// Earcut is a [Triangulator] using ear clipping. It only triangulates
// simple polygons well, but it keeps the input vertices as they are,
// so the resulting [Cap.ContourIndex] is the identity.
type Earcut struct{}

func (Earcut) Triangulate(contour []math32.Vector2) (*Cap, error) {
	coords := make([]float64, 2*len(contour))
	for i, p := range contour {
		coords[2*i] = float64(p.X)
		coords[2*i+1] = float64(p.Y)
	}
	elems, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("tess: %w", err)
	}
	verts := make([]math32.Vector2, len(contour))
	copy(verts, contour)
	c := newCap(verts, elems)
	c.ContourIndex = make([]int, len(contour))
	for i := range c.ContourIndex {
		c.ContourIndex[i] = i
	}
	return c, nil
}
