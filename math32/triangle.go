// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Normal returns the normal of the triangle a, b, c,
// following the right-hand rule on the vertex order.
// A degenerate triangle has a zero normal.
func Normal(a, b, c Vector3) Vector3 {
	nv := b.Sub(a).Cross(c.Sub(a))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// TriangleArea2 returns twice the signed area of the planar triangle
// a, b, c: positive when the vertices wind counter-clockwise.
func TriangleArea2(a, b, c Vector2) float32 {
	return b.Sub(a).Cross(c.Sub(a))
}
