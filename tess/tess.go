// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tess triangulates closed planar contours into caps:
// the flat triangulated faces of an extruded solid.
// The triangulation algorithm itself is provided by an external library;
// this package adapts it to a common [Triangulator] interface.
package tess

import (
	"fmt"
	"slices"

	"cogentcore.org/inkdraw/math32"
)

// Cap is a triangulated planar face.
type Cap struct {

	// Vertices are the cap vertex positions, in plane coordinates.
	// A triangulator may reorder the contour points or add new ones.
	Vertices []math32.Vector2

	// Indices has three vertex indexes per triangle,
	// each triangle wound counter-clockwise in plane coordinates.
	Indices []uint32

	// ContourIndex maps each contour point to its cap vertex index,
	// when the triangulator preserves the input vertices.
	// It is nil otherwise, and the correspondence must be
	// resolved by position.
	ContourIndex []int
}

// NumVertices returns the number of cap vertices.
func (c *Cap) NumVertices() int {
	return len(c.Vertices)
}

// NumTriangles returns the number of cap triangles.
func (c *Cap) NumTriangles() int {
	return len(c.Indices) / 3
}

// Triangle returns the vertices of triangle i.
func (c *Cap) Triangle(i int) (a, b, d math32.Vector2) {
	return c.Vertices[c.Indices[3*i]], c.Vertices[c.Indices[3*i+1]], c.Vertices[c.Indices[3*i+2]]
}

// Area returns the total area covered by the cap triangles.
func (c *Cap) Area() float32 {
	area := float32(0)
	for i := range c.NumTriangles() {
		a, b, d := c.Triangle(i)
		area += math32.Abs(math32.TriangleArea2(a, b, d)) / 2
	}
	return area
}

// Orient makes every triangle wind counter-clockwise,
// swapping the last two indexes of clockwise triangles.
func (c *Cap) Orient() {
	for i := range c.NumTriangles() {
		a, b, d := c.Triangle(i)
		if math32.TriangleArea2(a, b, d) < 0 {
			c.Indices[3*i+1], c.Indices[3*i+2] = c.Indices[3*i+2], c.Indices[3*i+1]
		}
	}
}

// Triangulator triangulates the interior of a closed contour, using
// the even-odd fill rule, into a [Cap] made only of triangles.
// Self-intersecting or degenerate contours may produce a wrong
// but well formed cap.
type Triangulator interface {
	Triangulate(contour []math32.Vector2) (*Cap, error)
}

// EarcutName is the name of the [Earcut] triangulator.
const EarcutName = "earcut"

// Names returns the names of all available triangulators.
func Names() []string {
	return []string{EarcutName}
}

// New returns the triangulator with the given name.
func New(name string) (Triangulator, error) {
	switch name {
	case EarcutName:
		return Earcut{}, nil
	}
	return nil, fmt.Errorf("tess: unknown triangulator %q; must be one of %v", name, Names())
}

// newCap returns a counter-clockwise oriented cap from the given
// vertices and flat triangle index list, skipping incomplete triangles.
func newCap(verts []math32.Vector2, elems []int) *Cap {
	c := &Cap{Vertices: verts, Indices: make([]uint32, 0, len(elems))}
	for i := 0; i+2 < len(elems); i += 3 {
		tri := elems[i : i+3]
		if slices.ContainsFunc(tri, func(e int) bool { return e < 0 || e >= len(verts) }) {
			continue
		}
		c.Indices = append(c.Indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}
	c.Orient()
	return c
}
