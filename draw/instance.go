// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package draw turns freehand strokes into physical shapes. A [Session]
// captures one stroke at a time against an ink budget, and on release
// validates, triangulates and extrudes it into an [Instance] created
// by a [Factory].
package draw

import (
	"image/color"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/config"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/mesh"
	"cogentcore.org/inkdraw/physics"
	"cogentcore.org/inkdraw/solid"
	"github.com/oklog/ulid/v2"
)

// Material is the surface appearance of a drawn shape.
type Material struct {

	// Name is the palette entry the material was made from.
	Name string

	// Color is the base color of the surface.
	Color color.RGBA
}

// Instance is a drawn shape placed in the scene. The caller owns it
// and is responsible for destroying it.
type Instance struct {

	// ID uniquely identifies the instance.
	ID ulid.ULID

	// Name is the name of the instance and of its mesh and body.
	Name string

	// Solid is the extruded geometry the instance was made from.
	Solid *solid.Solid

	// Mesh is the render mesh, in body coordinates.
	Mesh *mesh.GenMesh

	// Collider is the convex collision proxy, in body coordinates.
	Collider *physics.Convex

	// Body is the movable physical body, positioned at the contour centroid.
	Body *physics.Dynamic

	// Material is the surface material.
	Material Material

	// Draggable is whether the user can pick up and move the instance.
	Draggable bool
}

// Factory creates scene instances from extruded solids.
type Factory interface {

	// Instantiate returns a new instance for the given solid, with its
	// body at the given world position of the contour centroid.
	Instantiate(sd *solid.Solid, centroid math32.Vector3, mat Material) (*Instance, error)
}

// BodyFactory is the default [Factory]: it makes a render mesh from the
// solid buffers, a convex proxy swept from the solid cap, and a draggable
// dynamic body with the configured body settings.
type BodyFactory struct {

	// Body has the settings of new bodies.
	Body config.Body
}

// NewBodyFactory returns a factory using the given body settings.
func NewBodyFactory(body config.Body) *BodyFactory {
	return &BodyFactory{Body: body}
}

func (bf *BodyFactory) Instantiate(sd *solid.Solid, centroid math32.Vector3, mat Material) (*Instance, error) {
	if sd == nil || sd.NumTriangles() == 0 {
		return nil, errors.New("draw: cannot instantiate an empty solid")
	}
	id := ulid.Make()
	name := "shape-" + id.String()
	pl := sd.Params.Plane

	inst := &Instance{ID: id, Name: name, Solid: sd, Material: mat, Draggable: true}
	inst.Mesh = sd.Mesh(name)
	inst.Collider = physics.SweptConvex(sd.Base, pl.U, pl.V, pl.Normal, sd.Params.HalfThickness)

	body := physics.NewDynamic(name, centroid)
	body.LinearDamping = bf.Body.LinearDamping
	body.Interpolate = bf.Body.Interpolate
	body.SetGravity(bf.Body.Gravity)
	body.Layer = bf.Body.Layer
	body.Collider = inst.Collider
	inst.Body = body
	return inst, nil
}
