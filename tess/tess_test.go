// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"testing"

	"cogentcore.org/inkdraw/base/tolassert"
	"cogentcore.org/inkdraw/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square is a unit square centered at the origin, wound clockwise.
var square = []math32.Vector2{
	{X: -0.5, Y: -0.5}, {X: -0.5, Y: 0.5}, {X: 0.5, Y: 0.5}, {X: 0.5, Y: -0.5},
}

// ell is a concave L shape of area 3, wound clockwise.
var ell = []math32.Vector2{
	{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0},
}

func allCCW(t *testing.T, c *Cap) {
	t.Helper()
	for i := range c.NumTriangles() {
		a, b, d := c.Triangle(i)
		assert.Greater(t, math32.TriangleArea2(a, b, d), float32(0), "triangle %d", i)
	}
}

func TestTriangulators(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			tr, err := New(name)
			require.NoError(t, err)

			c, err := tr.Triangulate(square)
			require.NoError(t, err)
			assert.Equal(t, 4, c.NumVertices())
			assert.Equal(t, 2, c.NumTriangles())
			tolassert.EqualTol(t, 1, c.Area(), 1e-5)
			allCCW(t, c)

			c, err = tr.Triangulate(ell)
			require.NoError(t, err)
			assert.Equal(t, 4, c.NumTriangles())
			tolassert.EqualTol(t, 3, c.Area(), 1e-5)
			allCCW(t, c)
		})
	}
}

func TestEarcutContourIndex(t *testing.T) {
	c, err := Earcut{}.Triangulate(ell)
	require.NoError(t, err)
	require.Len(t, c.ContourIndex, len(ell))
	for i, ci := range c.ContourIndex {
		assert.Equal(t, ell[i], c.Vertices[ci])
	}
}

func TestNewUnknown(t *testing.T) {
	_, err := New("quadtree")
	assert.ErrorContains(t, err, "unknown triangulator")
}

func TestOrient(t *testing.T) {
	c := newCap([]math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, []int{0, 2, 1, 0, 1, -1})
	assert.Equal(t, []uint32{0, 1, 2}, c.Indices)
}
