// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"cogentcore.org/inkdraw/stroke"
)

// Feedback receives the events of a [Session], for the presentation
// layer to render ink bars, messages and sounds from.
// All methods are called synchronously from the session.
type Feedback interface {

	// InkChanged is called when the remaining ink or the projected cost
	// of the next point changes.
	InkChanged(remaining, projected float32)

	// StrokeLength is called with the open-path length of the active
	// stroke each time a point is committed to it.
	StrokeLength(length float32)

	// Accepted is called with each new instance.
	Accepted(inst *Instance)

	// Rejected is called when a finished stroke is not accepted.
	Rejected(reason stroke.Reason)

	// Abandoned is called when the active stroke is cancelled.
	Abandoned()
}

// NopFeedback is a [Feedback] that ignores all events.
type NopFeedback struct{}

func (NopFeedback) InkChanged(remaining, projected float32) {}
func (NopFeedback) StrokeLength(length float32)            {}
func (NopFeedback) Accepted(inst *Instance)                {}
func (NopFeedback) Rejected(reason stroke.Reason)          {}
func (NopFeedback) Abandoned()                             {}
