// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics describes the physical bodies created for drawn
// shapes: their rigid body properties, drag behavior and convex
// collision proxies. Simulating them is up to the host engine.
package physics

import (
	"cogentcore.org/inkdraw/math32"
)

// Body is the common interface for all body types
type Body interface {

	// AsBodyBase returns the body as a BodyBase
	AsBodyBase() *BodyBase
}

// Rigid contains the rigid body properties of a body.
type Rigid struct {

	// 1/mass; 0 for no mass
	InvMass float32

	// coefficient of restitution: how bouncy is it? 0 = no bounce, 1 = max bounce.
	Bounce float32

	// friction coefficient: how much friction is generated by transverse motion
	Friction float32
}

// Defaults sets a unit mass with no bounce and some friction.
func (r *Rigid) Defaults() {
	r.InvMass = 1
	r.Bounce = 0
	r.Friction = 0.6
}

// BodyBase is the base type for all specific Body types
type BodyBase struct {

	// Name of the body.
	Name string

	// rigid body properties, including mass, bounce, friction etc.
	Rigid Rigid

	// current position and velocity, in world coordinates.
	State State

	// Layer is the collision layer name of the body.
	Layer string
}

func (bb *BodyBase) AsBodyBase() *BodyBase {
	return bb
}

// Dynamic is a movable body that can be dragged by the user.
// Gravity is suspended while it is dragged.
type Dynamic struct {
	BodyBase

	// LinearDamping is the fraction of linear velocity lost per second.
	LinearDamping float32

	// Interpolate is whether rendering interpolates between physics steps.
	Interpolate bool

	// Gravity is whether gravity currently applies to the body.
	Gravity bool

	// Collider is the collision shape of the body, in body coordinates.
	Collider *Convex

	dragging   bool
	useGravity bool
}

// NewDynamic returns a dynamic body at the given position with default properties.
func NewDynamic(name string, pos math32.Vector3) *Dynamic {
	dy := &Dynamic{}
	dy.Name = name
	dy.State.Pos = pos
	dy.Defaults()
	return dy
}

// Defaults sets the draggable body defaults.
func (dy *Dynamic) Defaults() {
	dy.Rigid.Defaults()
	dy.LinearDamping = 1
	dy.Interpolate = true
	dy.Gravity = true
	dy.useGravity = true
}

// SetGravity sets whether gravity applies when the body is not dragged.
func (dy *Dynamic) SetGravity(on bool) *Dynamic {
	dy.useGravity = on
	if !dy.dragging {
		dy.Gravity = on
	}
	return dy
}

// IsDragging returns whether the body is being dragged.
func (dy *Dynamic) IsDragging() bool {
	return dy.dragging
}

// BeginDrag starts dragging the body, suspending gravity.
func (dy *Dynamic) BeginDrag() {
	if dy.dragging {
		return
	}
	dy.dragging = true
	dy.Gravity = false
}

// DragTo moves a dragged body to the given position.
// It does nothing if the body is not being dragged.
func (dy *Dynamic) DragTo(pos math32.Vector3) {
	if !dy.dragging {
		return
	}
	dy.State.Move(pos.Sub(dy.State.Pos))
}

// EndDrag releases the body, restoring gravity.
func (dy *Dynamic) EndDrag() {
	if !dy.dragging {
		return
	}
	dy.dragging = false
	dy.Gravity = dy.useGravity
}

// WorldBBox returns the bounding box of the collider at the body position.
func (dy *Dynamic) WorldBBox() math32.Box3 {
	if dy.Collider == nil {
		return math32.B3Empty()
	}
	return dy.Collider.BBox.Translate(dy.State.Pos)
}
