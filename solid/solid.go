// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solid extrudes a triangulated planar contour into a closed
// solid of uniform thickness, producing render buffers with normals
// and world aligned texture coordinates.
package solid

import (
	"fmt"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/contour"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/mesh"
	"cogentcore.org/inkdraw/plane"
	"cogentcore.org/inkdraw/tess"
)

// Params are the extrusion parameters.
type Params struct {

	// HalfThickness is the offset of each cap from the drawing plane
	// along the plane normal.
	HalfThickness float32

	// TextureScale is the world size of one texture repeat.
	TextureScale float32

	// Plane is the drawing plane of the contour, with its Origin at the
	// contour centroid. The solid is built around the origin, and texture
	// coordinates are taken from world positions relative to this plane.
	Plane plane.Plane
}

// Solid is an extruded contour. Vertex positions are relative to
// the contour centroid. The first CapVertices vertices are the front
// cap, the next CapVertices the back cap, followed by four vertices
// per side wall quad. It is not modified after [Extrude] returns it.
type Solid struct {

	// Vertex has three floats per vertex position.
	Vertex math32.ArrayF32

	// Normal has three floats per vertex normal.
	Normal math32.ArrayF32

	// TexCoord has two floats per vertex texture coordinate.
	TexCoord math32.ArrayF32

	// Index has three vertex indexes per triangle.
	Index math32.ArrayU32

	// CapVertices is the number of vertices of each cap.
	CapVertices int

	// CapTriangles is the number of triangles of each cap.
	CapTriangles int

	// Edges is the number of side wall quads, one per contour edge.
	Edges int

	// Base has the cap vertices in plane coordinates.
	Base []math32.Vector2

	// Params are the parameters the solid was extruded with.
	Params Params

	// BBox is the bounding box of the vertex positions.
	BBox math32.Box3
}

// Extrude builds a solid from the cap triangulating the given contour.
// The front cap is offset by +HalfThickness along the plane normal and
// faces along it; the back cap is its mirror with reversed triangles.
// Each contour edge becomes a quad of four vertices with the outward
// wall normal.
func Extrude(cp *tess.Cap, ct contour.Contour, params Params) (*Solid, error) {
	if cp == nil || cp.NumVertices() == 0 || cp.NumTriangles() == 0 {
		return nil, errors.New("solid: empty cap")
	}
	n := ct.Len()
	if n < 3 {
		return nil, fmt.Errorf("solid: contour has %d points, need at least 3", n)
	}
	if params.TextureScale <= 0 {
		params.TextureScale = 1
	}
	pl := params.Plane
	axis := pl.Normal
	front := axis.MulScalar(params.HalfThickness)
	back := front.Negate()

	nv := cp.NumVertices()
	nt := cp.NumTriangles()
	s := &Solid{CapVertices: nv, CapTriangles: nt, Edges: n, Params: params}
	s.Base = append(s.Base, cp.Vertices...)
	total := 2*nv + 4*n
	s.Vertex = math32.NewArrayF32(0, 3*total)
	s.Normal = math32.NewArrayF32(0, 3*total)
	s.TexCoord = math32.NewArrayF32(0, 2*total)
	s.Index = math32.NewArrayU32(0, 3*(2*nt+2*n))

	add := func(pos, norm math32.Vector3) {
		s.Vertex.AppendVector3(pos)
		s.Normal.AppendVector3(norm)
		s.TexCoord.AppendVector2(s.uv(pos))
	}

	for _, v := range cp.Vertices {
		add(pl.Direction(v).Add(front), axis)
	}
	for _, v := range cp.Vertices {
		add(pl.Direction(v).Add(back), axis.Negate())
	}
	for i := range nt {
		a, b, c := cp.Indices[3*i], cp.Indices[3*i+1], cp.Indices[3*i+2]
		s.Index.Append(a, b, c)
	}
	off := uint32(nv)
	for i := range nt {
		a, b, c := cp.Indices[3*i], cp.Indices[3*i+1], cp.Indices[3*i+2]
		s.Index.Append(off+a, off+c, off+b)
	}

	capIndex := contourToCap(cp, ct.Points)
	flip := !ct.IsCanonical()
	for i := range n {
		j := (i + 1) % n
		fi, fj := capIndex[i], capIndex[j]
		edge := pl.Direction(ct.Points[j].Sub(ct.Points[i]))
		norm := axis.Cross(edge).Normal()
		if flip {
			norm = norm.Negate()
		}
		base := uint32(s.NumVertices())
		// front i, front j, back j, back i, reusing the cap texture coordinates
		for _, ci := range []int{fi, fj, nv + fj, nv + fi} {
			s.Vertex.AppendVector3(s.Vertex.GetVector3(3 * ci))
			s.Normal.AppendVector3(norm)
			s.TexCoord.AppendVector2(s.TexCoord.GetVector2(2 * ci))
		}
		if flip {
			s.Index.Append(base, base+2, base+1, base, base+3, base+2)
		} else {
			s.Index.Append(base, base+1, base+2, base, base+2, base+3)
		}
	}
	s.BBox = mesh.BBoxFromVertices(s.Vertex, 0, s.NumVertices())
	return s, nil
}

// uv returns the texture coordinates of the given centroid relative position.
func (s *Solid) uv(pos math32.Vector3) math32.Vector2 {
	pl := s.Params.Plane
	world := pl.Origin.Add(pos)
	return math32.Vec2(world.Dot(pl.U), world.Dot(pl.V)).DivScalar(s.Params.TextureScale)
}

// contourToCap returns the cap vertex index of each contour point:
// the cap's own map when it has one, or else the nearest cap vertex.
func contourToCap(cp *tess.Cap, points []math32.Vector2) []int {
	if len(cp.ContourIndex) == len(points) {
		return cp.ContourIndex
	}
	idx := make([]int, len(points))
	for i, p := range points {
		best := math32.Infinity
		for vi, v := range cp.Vertices {
			if d := p.DistanceToSquared(v); d < best {
				best = d
				idx[i] = vi
			}
		}
	}
	return idx
}

// NumVertices returns the number of vertices.
func (s *Solid) NumVertices() int {
	return len(s.Vertex) / 3
}

// NumTriangles returns the number of triangles.
func (s *Solid) NumTriangles() int {
	return len(s.Index) / 3
}

// Position returns the position of vertex i.
func (s *Solid) Position(i int) math32.Vector3 {
	return s.Vertex.GetVector3(3 * i)
}

// VertexNormal returns the normal of vertex i.
func (s *Solid) VertexNormal(i int) math32.Vector3 {
	return s.Normal.GetVector3(3 * i)
}

// UV returns the texture coordinates of vertex i.
func (s *Solid) UV(i int) math32.Vector2 {
	return s.TexCoord.GetVector2(2 * i)
}

// Mesh returns a render mesh with the given name sharing the solid buffers.
func (s *Solid) Mesh(name string) *mesh.GenMesh {
	return mesh.NewGenMesh(name, s.Vertex, s.Normal, s.TexCoord, s.Index)
}
