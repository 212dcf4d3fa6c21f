// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for packing vectors into flat vertex buffers.
type ArrayF32 []float32

// NewArrayF32 creates and returns a slice of float32 values
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// Len returns the number of float32 elements in the array
func (a ArrayF32) Len() int {
	return len(a)
}

// AppendVector2 appends the given [Vector2] components to the array.
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for _, vv := range v {
		*a = append(*a, vv.X, vv.Y)
	}
}

// AppendVector3 appends the given [Vector3] components to the array.
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for _, vv := range v {
		*a = append(*a, vv.X, vv.Y, vv.Z)
	}
}

// GetVector2 returns the [Vector2] starting at the given float offset.
func (a ArrayF32) GetVector2(offset int) Vector2 {
	return Vector2{a[offset], a[offset+1]}
}

// GetVector3 returns the [Vector3] starting at the given float offset.
func (a ArrayF32) GetVector3(offset int) Vector3 {
	return Vector3{a[offset], a[offset+1], a[offset+2]}
}

// ArrayU32 is a slice of uint32 with additional convenience methods,
// used for triangle index buffers.
type ArrayU32 []uint32

// NewArrayU32 creates and returns a slice of uint32 values
// with the specified initial size and capacity
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Len returns the number of uint32 elements in the array
func (a ArrayU32) Len() int {
	return len(a)
}

// Append appends n elements to the array
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}
