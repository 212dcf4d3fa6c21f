// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stroke

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/base/tolassert"
	"cogentcore.org/inkdraw/contour"
	"cogentcore.org/inkdraw/ink"
	"cogentcore.org/inkdraw/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	spacing   = 0.025
	threshold = 0.1
)

func square() []math32.Vector2 {
	return []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
}

func draw(t *testing.T, b *Buffer, pts []math32.Vector2) {
	t.Helper()
	for _, p := range pts {
		ok, err := b.TryAppend(p)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestBufferSquare(t *testing.T) {
	l := ink.NewLedger(5)
	b := NewBuffer(l, spacing)
	var lengths []float32
	b.OnLength = func(length float32) { lengths = append(lengths, length) }

	draw(t, b, square())
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, float32(4), b.Length())
	assert.Equal(t, float32(1), l.Remaining())
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, lengths)

	v := NewValidator(threshold, spacing)
	vd := v.Validate(b.Points(), l)
	assert.True(t, vd.Accepted())
	assert.Len(t, vd.Loop, 4)
	assert.Equal(t, float32(0), vd.Closing)
	assert.Equal(t, float32(1), l.Remaining())
}

func TestBufferLedgerIdentity(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 7))
	for trial := range 50 {
		budget := 1 + 9*rnd.Float32()
		l := ink.NewLedger(budget)
		b := NewBuffer(l, spacing)
		for range 40 {
			pt := math32.Vec2(2*rnd.Float32(), 2*rnd.Float32())
			before := l.Remaining()
			ok, err := b.TryAppend(pt)
			if err != nil {
				assert.True(t, errors.Is(err, ink.ErrInsufficientInk), "trial %d", trial)
				assert.Equal(t, before, l.Remaining(), "trial %d", trial)
				continue
			}
			if !ok {
				continue
			}
			assert.GreaterOrEqual(t, l.Remaining(), float32(0))
			tolassert.EqualTol(t, contour.Length(b.Points(), false), b.Length(), 5e-4)
			tolassert.EqualTol(t, budget-b.Length(), l.Remaining(), 5e-4)
			assert.GreaterOrEqual(t, l.Remaining()+5e-4, b.ClosingLength(), "trial %d", trial)
		}

		vd := NewValidator(100, spacing).Validate(b.Points(), l)
		if vd.Accepted() {
			tolassert.EqualTol(t, budget-b.Length()-vd.Closing, l.Remaining(), 5e-4)
		} else {
			tolassert.EqualTol(t, budget-b.Length(), l.Remaining(), 5e-4)
		}
		assert.GreaterOrEqual(t, l.Remaining(), float32(0))
	}
}

func TestBufferBudgetExceeded(t *testing.T) {
	l := ink.NewLedger(3)
	b := NewBuffer(l, spacing)
	draw(t, b, square()[:2])
	assert.Equal(t, float32(2), l.Remaining())

	// 1 to (1,1) plus sqrt(2) back to the start does not fit in 2
	tolassert.EqualTol(t, 1+math32.Sqrt(2), b.ProjectedCost(math32.Vec2(1, 1)), 1e-5)
	ok, err := b.TryAppend(math32.Vec2(1, 1))
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ink.ErrInsufficientInk))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, float32(2), l.Remaining())
}

func TestBufferSpacing(t *testing.T) {
	l := ink.NewLedger(5)
	b := NewBuffer(l, spacing)
	calls := 0
	b.OnLength = func(float32) { calls++ }
	draw(t, b, []math32.Vector2{{X: 0, Y: 0}})

	ok, err := b.TryAppend(math32.Vec2(0.01, 0))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 1, calls)
	assert.Equal(t, float32(5), l.Remaining())

	ok, err = b.TryAppend(math32.Vec2(0.5, 0))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), b.Length())
	assert.Equal(t, float32(0.5), b.ClosingLength())
	assert.Equal(t, float32(2), b.ProjectedLength(math32.Vec2(1, 0)))

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, float32(0), b.Length())
	assert.Equal(t, float32(4.5), l.Remaining(), "reset keeps charged ink")
}

func TestBufferEmptyLedger(t *testing.T) {
	b := NewBuffer(ink.NewLedger(0), spacing)
	ok, err := b.TryAppend(math32.Vec2(0, 0))
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ink.ErrInsufficientInk))
	assert.Equal(t, 0, b.Len())
}

func TestValidateThreshold(t *testing.T) {
	v := NewValidator(threshold, spacing)
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0.05}}
	l := ink.NewLedger(10)
	vd := v.Validate(pts, l)
	assert.Equal(t, Accepted, vd.Reason)
	assert.Len(t, vd.Loop, 5)
	tolassert.EqualTol(t, 0.05, vd.Closing, 1e-6)
	tolassert.EqualTol(t, 9.95, l.Remaining(), 1e-5)

	pts[4] = math32.Vec2(-(threshold + 1), 0)
	l = ink.NewLedger(10)
	vd = v.Validate(pts, l)
	assert.Equal(t, TooFar, vd.Reason)
	assert.Nil(t, vd.Loop)
	assert.Equal(t, float32(10), l.Remaining())
	assert.Equal(t, ErrNotClosed, vd.Reason.Err())
}

func TestValidateInsufficientInk(t *testing.T) {
	v := NewValidator(threshold, spacing)
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0.05}}
	l := ink.NewLedger(0.02)
	vd := v.Validate(pts, l)
	assert.Equal(t, InsufficientInk, vd.Reason)
	assert.Equal(t, float32(0.02), l.Remaining())
	assert.True(t, errors.Is(vd.Reason.Err(), ink.ErrInsufficientInk))
}

func TestValidateTrailingPoint(t *testing.T) {
	v := NewValidator(threshold, spacing)
	pts := []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.01, Y: 0}}
	vd := v.Validate(pts, ink.NewLedger(10))
	assert.True(t, vd.Accepted())
	assert.Equal(t, pts[:4], vd.Loop)
	tolassert.EqualTol(t, 0.01, vd.Closing, 1e-6)
}

func TestValidateDegenerate(t *testing.T) {
	v := NewValidator(threshold, spacing)
	tests := []struct {
		name string
		pts  []math32.Vector2
	}{
		{"empty", nil},
		{"two", []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		{"colinear", []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}},
		{"repeated", []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}},
		{"closed triangle of two", []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ink.NewLedger(1)
			vd := v.Validate(tt.pts, l)
			assert.Equal(t, Degenerate, vd.Reason)
			assert.Equal(t, ErrDegenerate, vd.Reason.Err())
			assert.Equal(t, float32(1), l.Remaining())
		})
	}
}

func TestReason(t *testing.T) {
	assert.Equal(t, "Accepted", Accepted.String())
	assert.Equal(t, "InsufficientInk", InsufficientInk.String())
	assert.Equal(t, "Reason(9)", Reason(9).String())
	assert.NoError(t, Accepted.Err())
}
