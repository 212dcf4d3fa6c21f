// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stroke captures freehand strokes in a drawing plane against
// an ink budget, and decides whether a finished stroke is an
// acceptable closed shape.
package stroke

import (
	"fmt"

	"cogentcore.org/inkdraw/ink"
	"cogentcore.org/inkdraw/math32"
)

// Buffer accumulates the points of the stroke being drawn,
// charging the [ink.Ledger] for the open path as it grows.
// Points are in plane coordinates and their order defines the path.
type Buffer struct {

	// Spacing is the minimum distance between consecutive points.
	// Candidates at or within this distance of the last point are ignored.
	Spacing float32

	// OnLength, if set, is called with the open path length
	// each time a point is appended.
	OnLength func(length float32)

	ledger *ink.Ledger
	points []math32.Vector2
	length float32
}

// NewBuffer returns an empty buffer drawing from the given ledger.
func NewBuffer(ledger *ink.Ledger, spacing float32) *Buffer {
	return &Buffer{Spacing: spacing, ledger: ledger}
}

// Ledger returns the ledger the buffer charges.
func (b *Buffer) Ledger() *ink.Ledger {
	return b.ledger
}

// Points returns the committed points. The slice must not be modified.
func (b *Buffer) Points() []math32.Vector2 {
	return b.points
}

// Len returns the number of committed points.
func (b *Buffer) Len() int {
	return len(b.points)
}

// Length returns the open path length of the committed points,
// which is the ink charged for this stroke so far.
func (b *Buffer) Length() float32 {
	return b.length
}

// ClosingLength returns the length of the edge that would close the
// committed path, from its last point back to its first.
func (b *Buffer) ClosingLength() float32 {
	if len(b.points) < 2 {
		return 0
	}
	return b.points[len(b.points)-1].DistanceTo(b.points[0])
}

// ProjectedCost returns the ink still needed to close the shape if pt
// were appended: the increment from the last point to pt plus the
// closing edge from pt back to the first point.
// It has no side effects.
func (b *Buffer) ProjectedCost(pt math32.Vector2) float32 {
	n := len(b.points)
	if n == 0 {
		return 0
	}
	return b.points[n-1].DistanceTo(pt) + pt.DistanceTo(b.points[0])
}

// ProjectedLength returns the total closed length of the shape
// if pt were appended. It has no side effects.
func (b *Buffer) ProjectedLength(pt math32.Vector2) float32 {
	return b.length + b.ProjectedCost(pt)
}

// TryAppend offers a candidate point to the stroke. If the ink left
// cannot pay for the candidate and the edge closing the shape from it,
// nothing changes and an error wrapping [ink.ErrInsufficientInk] is
// returned. A candidate too close to the last point is ignored without
// error. Otherwise the point is appended and only the open path increment
// is charged. It returns whether the point was appended.
func (b *Buffer) TryAppend(pt math32.Vector2) (bool, error) {
	if b.ledger.Empty() {
		return false, fmt.Errorf("%w: no ink left", ink.ErrInsufficientInk)
	}
	cost := b.ProjectedCost(pt)
	if !b.ledger.WouldFit(cost) {
		return false, fmt.Errorf("%w: closing the shape needs %g, have %g", ink.ErrInsufficientInk, cost, b.ledger.Remaining())
	}
	inc := float32(0)
	if n := len(b.points); n > 0 {
		inc = b.points[n-1].DistanceTo(pt)
		if inc <= b.Spacing {
			return false, nil
		}
	}
	if err := b.ledger.Charge(inc); err != nil {
		return false, err
	}
	b.points = append(b.points, pt)
	b.length += inc
	if b.OnLength != nil {
		b.OnLength(b.length)
	}
	return true, nil
}

// Reset discards all points, keeping any ink already charged.
func (b *Buffer) Reset() {
	b.points = b.points[:0]
	b.length = 0
}
