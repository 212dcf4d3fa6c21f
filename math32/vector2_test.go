// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/inkdraw/base/tolassert"
	"github.com/stretchr/testify/assert"
)

// TolAssertEqualVector asserts that two vectors are equal within tol.
func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

const StandardTol = float32(1.0e-6)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetZero()
	assert.True(t, v.IsNil())
}

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, -2)

	assert.Equal(t, Vec2(4, 2), a.Add(b))
	assert.Equal(t, Vec2(2, 6), a.Sub(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(-10), a.Cross(b))
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(5), Vector2{}.DistanceTo(a))
	TolAssertEqualVector(t, StandardTol, Vec2(0.6, 0.8), a.Normal())

	assert.Equal(t, float32(1), Vec2(1, 0).Cross(Vec2(0, 1)))
	assert.Equal(t, float32(1), TriangleArea2(Vec2(0, 0), Vec2(1, 0), Vec2(0, 1)))
	assert.Equal(t, float32(-1), TriangleArea2(Vec2(0, 0), Vec2(0, 1), Vec2(1, 0)))
}
