// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/base/tolassert"
	"cogentcore.org/inkdraw/config"
	"cogentcore.org/inkdraw/ink"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/plane"
	"cogentcore.org/inkdraw/stroke"
	"cogentcore.org/inkdraw/tess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fan triangulates convex contours and counts its calls.
type fan struct {
	calls int
}

func (f *fan) Triangulate(contour []math32.Vector2) (*tess.Cap, error) {
	f.calls++
	cp := &tess.Cap{Vertices: contour, ContourIndex: make([]int, len(contour))}
	for i := range contour {
		cp.ContourIndex[i] = i
	}
	for i := 1; i+1 < len(contour); i++ {
		cp.Indices = append(cp.Indices, 0, uint32(i), uint32(i+1))
	}
	cp.Orient()
	return cp, nil
}

// recorder records feedback events.
type recorder struct {
	remaining []float32
	projected []float32
	lengths   []float32
	accepted  []*Instance
	rejected  []stroke.Reason
	abandoned int
}

func (r *recorder) InkChanged(remaining, projected float32) {
	r.remaining = append(r.remaining, remaining)
	r.projected = append(r.projected, projected)
}
func (r *recorder) StrokeLength(length float32)   { r.lengths = append(r.lengths, length) }
func (r *recorder) Accepted(inst *Instance)       { r.accepted = append(r.accepted, inst) }
func (r *recorder) Rejected(reason stroke.Reason) { r.rejected = append(r.rejected, reason) }
func (r *recorder) Abandoned()                    { r.abandoned++ }

func newSession(t *testing.T, maxInk float32) (*Session, *fan, *recorder) {
	t.Helper()
	st := config.New()
	st.MaxInk = maxInk
	ss, err := NewSession(st)
	require.NoError(t, err)
	tr := &fan{}
	rec := &recorder{}
	ss.SetTriangulator(tr).SetFeedback(rec).SetRand(rand.New(rand.NewPCG(1, 2)))
	return ss, tr, rec
}

func square() []math32.Vector2 {
	return []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
}

func addAll(t *testing.T, ss *Session, pts []math32.Vector2) {
	t.Helper()
	for _, p := range pts {
		require.NoError(t, ss.Add(p))
	}
}

func TestSessionSquare(t *testing.T) {
	ss, tr, rec := newSession(t, 5)
	require.NoError(t, ss.Begin(plane.Pick{}))
	assert.True(t, ss.Active())
	assert.Contains(t, ss.Settings.Palette, ss.Material().Name)

	addAll(t, ss, square())
	inst, err := ss.End()
	require.NoError(t, err)
	require.NotNil(t, inst)
	assert.False(t, ss.Active())
	assert.Equal(t, 1, tr.calls)
	assert.Equal(t, float32(1), ss.RemainingInk())

	assert.Equal(t, 24, inst.Solid.NumVertices())
	assert.Equal(t, 12, inst.Solid.NumTriangles())
	nv, _, _ := inst.Mesh.MeshSize()
	assert.Equal(t, 24, nv)
	assert.True(t, inst.Draggable)
	assert.False(t, inst.ID.IsZero())
	assert.Equal(t, inst.Name, inst.Body.Name)

	// the centroid (0.5, 0.5) on the ground plane, where V is -Z
	pos := inst.Body.State.Pos
	tolassert.EqualTol(t, 0.5, pos.X, 1e-6)
	tolassert.EqualTol(t, 0, pos.Y, 1e-6)
	tolassert.EqualTol(t, -0.5, pos.Z, 1e-6)
	assert.Equal(t, "Terrain", inst.Body.Layer)
	assert.Equal(t, float32(1), inst.Body.LinearDamping)
	assert.True(t, inst.Body.Gravity)
	assert.Len(t, inst.Collider.Points, 8)

	assert.Equal(t, []*Instance{inst}, rec.accepted)
	assert.Empty(t, rec.rejected)
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, rec.lengths)
	assert.Equal(t, []float32{5, 4, 3, 2, 1}, rec.remaining[:5])
	assert.Equal(t, float32(1), rec.remaining[len(rec.remaining)-1])
}

func TestSessionBudgetExceeded(t *testing.T) {
	ss, tr, rec := newSession(t, 3)
	require.NoError(t, ss.Begin(plane.Pick{}))
	addAll(t, ss, square()[:2])

	err := ss.Add(math32.Vec2(1, 1))
	assert.True(t, errors.Is(err, ink.ErrInsufficientInk))
	assert.True(t, ss.Active())
	assert.Len(t, ss.Points(), 2)
	assert.Equal(t, float32(2), ss.RemainingInk())
	assert.Equal(t, []float32{0, 1}, rec.lengths)
	// the rejected point shows the whole remaining ink as projected
	assert.Equal(t, float32(2), rec.remaining[len(rec.remaining)-1])
	assert.Equal(t, float32(2), rec.projected[len(rec.projected)-1])
	tolassert.EqualTol(t, 1+math32.Sqrt(2), ss.Preview(math32.Vec2(1, 1)), 1e-5)
	tolassert.EqualTol(t, 1+math32.Sqrt(2), rec.projected[len(rec.projected)-1], 1e-5)

	_, err = ss.End()
	assert.True(t, errors.Is(err, stroke.ErrDegenerate))
	assert.Equal(t, 0, tr.calls)
	assert.Equal(t, float32(2), ss.RemainingInk())
}

func TestSessionDegenerate(t *testing.T) {
	ss, tr, rec := newSession(t, 10)
	require.NoError(t, ss.Begin(plane.Pick{}))
	addAll(t, ss, []math32.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
	inst, err := ss.End()
	assert.Nil(t, inst)
	assert.Equal(t, stroke.ErrDegenerate, err)
	assert.Equal(t, 0, tr.calls)
	assert.Equal(t, []stroke.Reason{stroke.Degenerate}, rec.rejected)
	assert.Equal(t, float32(8), ss.RemainingInk(), "no refund")

	require.NoError(t, ss.Begin(plane.Pick{}))
}

func TestSessionNotClosed(t *testing.T) {
	ss, tr, rec := newSession(t, 5)
	require.NoError(t, ss.Begin(plane.Pick{}))
	addAll(t, ss, square()[:4])
	_, err := ss.End()
	assert.Equal(t, stroke.ErrNotClosed, err)
	assert.Equal(t, 0, tr.calls)
	assert.Equal(t, []stroke.Reason{stroke.TooFar}, rec.rejected)
	assert.Equal(t, float32(2), ss.RemainingInk())
}

func TestSessionLifecycle(t *testing.T) {
	ss, _, rec := newSession(t, 5)
	_, err := ss.End()
	assert.Equal(t, ErrNoStroke, err)
	assert.Equal(t, ErrNoStroke, ss.Add(math32.Vec2(0, 0)))
	assert.Equal(t, float32(0), ss.ProjectedCost(math32.Vec2(1, 1)))

	require.NoError(t, ss.Begin(plane.Pick{}))
	assert.Equal(t, ErrStrokeActive, ss.Begin(plane.Pick{}))
	addAll(t, ss, square()[:3])
	ss.Abandon()
	assert.False(t, ss.Active())
	assert.Equal(t, 1, rec.abandoned)
	assert.Equal(t, float32(3), ss.RemainingInk())

	require.NoError(t, ss.Begin(plane.Pick{}))
	ss.ResetInk()
	assert.Equal(t, float32(5), ss.RemainingInk())
}

func TestSessionSettingsSnapshot(t *testing.T) {
	ss, _, _ := newSession(t, 5)
	require.NoError(t, ss.Begin(plane.Pick{}))
	ss.Settings.Spacing = 10
	ss.Settings.CloseThreshold = 0
	addAll(t, ss, square())
	assert.Len(t, ss.Points(), 5)
	_, err := ss.End()
	assert.NoError(t, err)
}

func TestSessionRay(t *testing.T) {
	ss, _, _ := newSession(t, 5)
	require.NoError(t, ss.Begin(plane.Pick{Point: math32.Vec3(0, 2, 0), Hit: true}))
	pl, ok := ss.Plane()
	require.True(t, ok)
	tolassert.EqualTol(t, 2, pl.Origin.Y, 1e-6)

	require.NoError(t, ss.AddRay(math32.Ray{Origin: math32.Vec3(0.5, 5, -0.5), Dir: math32.Vec3(0, -1, 0)}))
	require.NoError(t, ss.AddRay(math32.Ray{Origin: math32.Vec3(0, 5, 0), Dir: math32.Vec3(1, 0, 0)}))
	require.NoError(t, ss.AddWorld(math32.Vec3(1.5, 7, -0.5)))
	pts := ss.Points()
	require.Len(t, pts, 2)
	tolassert.EqualTol(t, 0.5, pts[0].X, 1e-6)
	tolassert.EqualTol(t, 0.5, pts[0].Y, 1e-6)
	tolassert.EqualTol(t, 1.5, pts[1].X, 1e-6)
}

func TestSessionEarcut(t *testing.T) {
	st := config.New()
	st.Triangulator = tess.EarcutName
	st.MaxInk = 10
	ss, err := NewSession(st)
	require.NoError(t, err)
	require.NoError(t, ss.Begin(plane.Pick{}))
	addAll(t, ss, []math32.Vector2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}})
	inst, err := ss.End()
	require.NoError(t, err)
	assert.Equal(t, 6, inst.Solid.CapVertices)
	assert.Equal(t, 4, inst.Solid.CapTriangles)
	assert.Equal(t, 2*6+4*6, inst.Solid.NumVertices())
}

func TestNewSessionInvalid(t *testing.T) {
	st := config.New()
	st.MaxInk = 0
	_, err := NewSession(st)
	assert.Error(t, err)
}
