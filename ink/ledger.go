// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ink tracks the depletable ink resource that bounds
// the total length of drawn strokes.
package ink

import (
	"fmt"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/math32"
)

// ErrInsufficientInk is returned when a length to charge exceeds
// the remaining ink.
var ErrInsufficientInk = errors.New("ink: insufficient ink")

// Tolerance is the float32 slack allowed when comparing a length
// with the remaining ink, so that a stroke using exactly the
// remaining ink is not rejected by rounding error.
const Tolerance = 1e-5

// Ledger holds the ink available to a drawing session.
// Its balance never goes negative and only grows through [Ledger.Reset].
// A Ledger is owned by a single session and is not safe for concurrent use.
type Ledger struct {
	max     float32
	current float32
}

// NewLedger returns a full ledger holding the given maximum ink.
func NewLedger(max float32) *Ledger {
	l := &Ledger{}
	l.Reset(max)
	return l
}

// Max returns the maximum ink of the ledger.
func (l *Ledger) Max() float32 {
	return l.max
}

// Remaining returns the ink left.
func (l *Ledger) Remaining() float32 {
	return l.current
}

// Consumed returns the ink used since the last reset.
func (l *Ledger) Consumed() float32 {
	return l.max - l.current
}

// Empty returns whether no ink is left.
func (l *Ledger) Empty() bool {
	return l.current <= 0
}

// WouldFit returns whether the given length can be charged.
func (l *Ledger) WouldFit(length float32) bool {
	return length <= l.current+Tolerance
}

// Charge subtracts the given length from the remaining ink.
// It returns an error wrapping [ErrInsufficientInk], and leaves the
// balance unchanged, if the length does not fit.
func (l *Ledger) Charge(length float32) error {
	if length < 0 || math32.IsNaN(length) {
		return fmt.Errorf("ink: invalid length %g", length)
	}
	if !l.WouldFit(length) {
		return fmt.Errorf("%w: need %g, have %g", ErrInsufficientInk, length, l.current)
	}
	l.current = math32.Max(l.current-length, 0)
	return nil
}

// Reset refills the ledger to the given maximum.
func (l *Ledger) Reset(toMax float32) {
	l.max = math32.Max(toMax, 0)
	l.current = l.max
}

// Fraction returns the fraction of ink left, in [0, 1],
// for display as an ink bar.
func (l *Ledger) Fraction() float32 {
	if l.max <= 0 {
		return 0
	}
	return math32.Clamp01(l.current / l.max)
}

// ProjectedFraction returns the given projected length as a fraction
// of the ink left, in [0, 1], for display as a projected-cost bar drawn
// inside the remaining-ink bar. It is 0 when no ink is left, and 1 for
// any projection at or beyond the ink left, so the projected bar never
// overflows the remaining one.
func (l *Ledger) ProjectedFraction(projected float32) float32 {
	if l.current <= 0 || l.max <= 0 {
		return 0
	}
	return math32.Clamp01(math32.Clamp01(projected/l.max) / l.Fraction())
}
