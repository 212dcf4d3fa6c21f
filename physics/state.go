// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"cogentcore.org/inkdraw/math32"
)

// State contains the basic physical state of a body: position and velocity.
// Values such as mass go in [Rigid].
type State struct {

	// position of center of mass of object
	Pos math32.Vector3

	// linear velocity
	LinVel math32.Vector3
}

// StepByLinVel steps the Pos from the linear velocity
func (ps *State) StepByLinVel(step float32) {
	ps.Pos = ps.Pos.Add(ps.LinVel.MulScalar(step))
}

// Move moves (translates) Pos by given amount, and sets the LinVel to the given
// delta -- this can be useful for scripted motion to track movement.
func (ps *State) Move(delta math32.Vector3) {
	ps.LinVel = delta
	ps.Pos.SetAdd(delta)
}
