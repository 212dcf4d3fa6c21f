// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides indexed triangle meshes for rendering drawn
// shapes, and export of them to the Wavefront OBJ format.
package mesh

import (
	"cogentcore.org/inkdraw/math32"
)

// Mesh is an indexed triangle mesh.
// All Meshes must know in advance the number of vertex and index points
// they require, and the Set method writes the mesh data to arrays of
// appropriate vector data.
// Per-vertex Color is optional.
type Mesh interface {

	// MeshSize returns the number of vertex points and indexes,
	// and whether the mesh has per-vertex colors.
	MeshSize() (numVertex, numIndex int, hasColor bool)

	// Set copies the mesh data into the given arrays, which must be
	// sized according to [Mesh.MeshSize]: three floats per vertex and
	// normal, two per texture coordinate and four per color.
	Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32)

	// MeshBBox returns the bounding box of the mesh vertices.
	MeshBBox() math32.Box3
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh.
	Name string

	// NumVertex is the number of [math32.Vector3] vertex points. This always
	// includes [math32.Vector3] normals and [math32.Vector2] texture coordinates.
	NumVertex int

	// NumIndex is the number of [math32.ArrayU32] indexes.
	NumIndex int

	// HasColor is whether the mesh has per-vertex colors
	// as four floats per vertex.
	HasColor bool

	// BBox is the bounding box of the vertices.
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

func (ms *MeshBase) MeshSize() (numVertex, numIndex int, hasColor bool) {
	return ms.NumVertex, ms.NumIndex, ms.HasColor
}

func (ms *MeshBase) MeshBBox() math32.Box3 {
	return ms.BBox
}

// GenMesh is a generic, arbitrary Mesh, storing its values
type GenMesh struct {
	MeshBase
	Vertex   math32.ArrayF32
	Normal   math32.ArrayF32
	TexCoord math32.ArrayF32
	Color    math32.ArrayF32
	Index    math32.ArrayU32
}

// NewGenMesh returns a mesh with the given name using the given buffers,
// which are not copied.
func NewGenMesh(name string, vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) *GenMesh {
	ms := &GenMesh{Vertex: vertex, Normal: normal, TexCoord: texcoord, Index: index}
	ms.Name = name
	ms.MeshSize()
	ms.BBox = BBoxFromVertices(ms.Vertex, 0, ms.NumVertex)
	return ms
}

func (ms *GenMesh) MeshSize() (numVertex, nIndex int, hasColor bool) {
	ms.NumVertex = len(ms.Vertex) / 3
	ms.NumIndex = len(ms.Index)
	ms.HasColor = len(ms.Color) > 0
	return ms.NumVertex, ms.NumIndex, ms.HasColor
}

func (ms *GenMesh) Set(vertex, normal, texcoord, clrs math32.ArrayF32, index math32.ArrayU32) {
	copy(vertex, ms.Vertex)
	copy(normal, ms.Normal)
	copy(texcoord, ms.TexCoord)
	if ms.HasColor {
		copy(clrs, ms.Color)
	}
	copy(index, ms.Index)
	ms.BBox = BBoxFromVertices(ms.Vertex, 0, ms.NumVertex)
}

// BBoxFromVertices returns the bounding box of n vertex points
// in the given array, starting at vertex start.
func BBoxFromVertices(vertex math32.ArrayF32, start, n int) math32.Box3 {
	bb := math32.B3Empty()
	for i := range n {
		bb.ExpandByPoint(vertex.GetVector3(3 * (start + i)))
	}
	return bb
}
