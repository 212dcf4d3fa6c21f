// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	"slices"
	"strconv"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/contour"
	"cogentcore.org/inkdraw/ink"
	"cogentcore.org/inkdraw/math32"
)

var (
	// ErrNotClosed is the error for strokes that end too far from their start.
	ErrNotClosed = errors.New("stroke: not closed")

	// ErrDegenerate is the error for strokes with fewer than three
	// distinct points or no enclosed area.
	ErrDegenerate = errors.New("stroke: degenerate contour")
)

// Reason is the outcome of validating a finished stroke.
type Reason int32

const (
	// Accepted is a closed stroke that was paid for.
	Accepted Reason = iota

	// TooFar is a stroke whose end is beyond the closure threshold from its start.
	TooFar

	// InsufficientInk is a closed stroke whose closing edge does not fit the ink left.
	InsufficientInk

	// Degenerate is a stroke with fewer than three distinct points or zero area.
	Degenerate
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "Accepted"
	case TooFar:
		return "TooFar"
	case InsufficientInk:
		return "InsufficientInk"
	case Degenerate:
		return "Degenerate"
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// Err returns the error for a rejection reason, or nil for [Accepted].
func (r Reason) Err() error {
	switch r {
	case TooFar:
		return ErrNotClosed
	case InsufficientInk:
		return ink.ErrInsufficientInk
	case Degenerate:
		return ErrDegenerate
	}
	return nil
}

// Verdict is the result of [Validator.Validate].
type Verdict struct {

	// Reason is why the stroke was rejected, or [Accepted].
	Reason Reason

	// Closing is the length of the closing edge charged on acceptance.
	Closing float32

	// Loop has the points of an accepted stroke as a closed loop,
	// without a final point repeating the first one.
	Loop []math32.Vector2
}

// Accepted returns whether the stroke was accepted.
func (v Verdict) Accepted() bool {
	return v.Reason == Accepted
}

// Validator decides whether a finished stroke forms a closed shape.
type Validator struct {

	// Threshold is the maximum distance between the first and last
	// points of a closed stroke.
	Threshold float32

	// Spacing is the stroke point spacing: a last point this close to the
	// first one is the closing point itself and is not kept in the loop.
	Spacing float32

	// MinArea is the area at or below which a loop is degenerate.
	MinArea float32
}

// DefaultMinArea is the default [Validator.MinArea].
const DefaultMinArea = 1e-6

// NewValidator returns a validator with the given closure threshold
// and point spacing.
func NewValidator(threshold, spacing float32) *Validator {
	return &Validator{Threshold: threshold, Spacing: spacing, MinArea: DefaultMinArea}
}

// Validate checks the given stroke points at release. Degenerate strokes
// are rejected first, then strokes ending beyond the threshold, then
// strokes whose closing edge does not fit the ink left (the open path has
// already been charged as it was drawn). On acceptance the closing edge is
// charged to the ledger. Rejection never refunds ink.
func (v *Validator) Validate(points []math32.Vector2, ledger *ink.Ledger) Verdict {
	n := len(points)
	if n < 3 {
		return Verdict{Reason: Degenerate}
	}
	first, last := points[0], points[n-1]
	loop := points
	if last.DistanceTo(first) <= v.Spacing {
		loop = points[:n-1]
	}
	if len(loop) < 3 || contour.Distinct(loop, 0) < 3 || math32.Abs(contour.SignedArea(loop)) <= v.MinArea {
		return Verdict{Reason: Degenerate}
	}
	closing := last.DistanceTo(first)
	if closing > v.Threshold {
		return Verdict{Reason: TooFar}
	}
	if ledger.Charge(closing) != nil {
		return Verdict{Reason: InsufficientInk}
	}
	return Verdict{Reason: Accepted, Closing: closing, Loop: slices.Clone(loop)}
}
