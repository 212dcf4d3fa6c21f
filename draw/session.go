// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package draw

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/config"
	"cogentcore.org/inkdraw/contour"
	"cogentcore.org/inkdraw/ink"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/plane"
	"cogentcore.org/inkdraw/solid"
	"cogentcore.org/inkdraw/stroke"
	"cogentcore.org/inkdraw/tess"
)

var (
	// ErrStrokeActive is returned by [Session.Begin] while a stroke is active.
	ErrStrokeActive = errors.New("draw: a stroke is already active")

	// ErrNoStroke is returned when a stroke operation is called with no active stroke.
	ErrNoStroke = errors.New("draw: no active stroke")
)

// Session owns the ink budget of a drawing user and the one stroke
// they may be drawing. It is not safe for concurrent use.
type Session struct {

	// Settings are the current settings. Each stroke uses a snapshot
	// taken when it begins, so they may be replaced between strokes or
	// while one is drawn. Like the rest of the session, they must only be
	// replaced from the goroutine using it: settings reloaded by
	// [config.Watch] arrive on another goroutine and must be handed over.
	Settings *config.Settings

	// Factory creates the instances of accepted strokes.
	Factory Factory

	// Feedback receives the session events.
	Feedback Feedback

	// Triangulator, if set, is used instead of the one named in the settings.
	Triangulator tess.Triangulator

	ledger *ink.Ledger
	rand   *rand.Rand
	active *active
}

// active is the state of the stroke being drawn.
type active struct {
	settings *config.Settings
	plane    plane.Plane
	buffer   *stroke.Buffer
	material Material
}

// NewSession returns a session with a full ink budget from the given settings,
// which must be valid.
func NewSession(settings *config.Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ss := &Session{
		Settings: settings,
		Factory:  NewBodyFactory(settings.Body),
		Feedback: NopFeedback{},
		ledger:   ink.NewLedger(settings.MaxInk),
		rand:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	return ss, nil
}

// SetFactory sets the [Session.Factory].
func (ss *Session) SetFactory(f Factory) *Session {
	ss.Factory = f
	return ss
}

// SetFeedback sets the [Session.Feedback].
func (ss *Session) SetFeedback(fb Feedback) *Session {
	ss.Feedback = fb
	return ss
}

// SetTriangulator sets the [Session.Triangulator].
func (ss *Session) SetTriangulator(tr tess.Triangulator) *Session {
	ss.Triangulator = tr
	return ss
}

// SetRand sets the random source used to pick stroke materials.
func (ss *Session) SetRand(r *rand.Rand) *Session {
	ss.rand = r
	return ss
}

// Ledger returns the ink ledger of the session.
func (ss *Session) Ledger() *ink.Ledger {
	return ss.ledger
}

// RemainingInk returns the ink left.
func (ss *Session) RemainingInk() float32 {
	return ss.ledger.Remaining()
}

// ResetInk refills the ink to the maximum of the current settings.
func (ss *Session) ResetInk() {
	ss.ledger.Reset(ss.Settings.MaxInk)
	ss.inkChanged(0)
}

// Active returns whether a stroke is being drawn.
func (ss *Session) Active() bool {
	return ss.active != nil
}

// Plane returns the drawing plane of the active stroke.
func (ss *Session) Plane() (plane.Plane, bool) {
	if ss.active == nil {
		return plane.Plane{}, false
	}
	return ss.active.plane, true
}

// Points returns the committed points of the active stroke,
// in plane coordinates. The slice must not be modified.
func (ss *Session) Points() []math32.Vector2 {
	if ss.active == nil {
		return nil
	}
	return ss.active.buffer.Points()
}

// Material returns the material of the active stroke.
func (ss *Session) Material() Material {
	if ss.active == nil {
		return Material{}
	}
	return ss.active.material
}

// Begin starts a new stroke on the drawing plane resolved from the given pick.
// It returns [ErrStrokeActive] if a stroke is already being drawn.
func (ss *Session) Begin(pick plane.Pick) error {
	if ss.active != nil {
		return ErrStrokeActive
	}
	st := ss.Settings.Clone()
	mat, err := ss.pickMaterial(st)
	if err != nil {
		return err
	}
	pj := plane.Projector{Up: st.Up}
	ac := &active{settings: st, plane: pj.Resolve(pick), material: mat}
	ac.buffer = stroke.NewBuffer(ss.ledger, st.Spacing)
	ac.buffer.OnLength = func(length float32) {
		ss.Feedback.StrokeLength(length)
		ss.inkChanged(0)
	}
	ss.active = ac
	slog.Debug("stroke begin", "origin", ac.plane.Origin, "hit", pick.Hit, "material", mat.Name)
	return nil
}

// pickMaterial returns a random material from the palette of the given settings.
func (ss *Session) pickMaterial(st *config.Settings) (Material, error) {
	clrs, err := st.Colors()
	if err != nil {
		return Material{}, err
	}
	if len(clrs) == 0 {
		return Material{}, errors.New("draw: empty palette")
	}
	i := ss.rand.IntN(len(clrs))
	return Material{Name: st.Palette[i], Color: clrs[i]}, nil
}

// Add offers a point in plane coordinates to the active stroke.
// It returns an error wrapping [ink.ErrInsufficientInk] if the ink left
// cannot close the shape through the point, in which case the stroke is
// unchanged and remains active, and the [Feedback] is shown the
// whole remaining ink as the projected cost.
func (ss *Session) Add(pt math32.Vector2) error {
	if ss.active == nil {
		return ErrNoStroke
	}
	_, err := ss.active.buffer.TryAppend(pt)
	if errors.Is(err, ink.ErrInsufficientInk) {
		ss.inkChanged(ss.ledger.Remaining())
	}
	return err
}

// AddWorld offers a world position, projected onto the drawing plane.
func (ss *Session) AddWorld(pos math32.Vector3) error {
	if ss.active == nil {
		return ErrNoStroke
	}
	return ss.Add(ss.active.plane.Project(pos))
}

// AddRay offers the point where the given pointer ray meets the drawing
// plane. A ray that misses the plane is ignored.
func (ss *Session) AddRay(ray math32.Ray) error {
	if ss.active == nil {
		return ErrNoStroke
	}
	pt, ok := ss.active.plane.IntersectRay(ray)
	if !ok {
		return nil
	}
	return ss.Add(pt)
}

// ProjectedCost returns the ink needed to close the active stroke through
// the given point, or 0 with no active stroke. It has no side effects.
func (ss *Session) ProjectedCost(pt math32.Vector2) float32 {
	if ss.active == nil {
		return 0
	}
	return ss.active.buffer.ProjectedCost(pt)
}

// Preview reports the projected cost of the given pointer position
// to the [Feedback] and returns it.
func (ss *Session) Preview(pt math32.Vector2) float32 {
	cost := ss.ProjectedCost(pt)
	ss.inkChanged(cost)
	return cost
}

// Abandon discards the active stroke. Ink already spent is not refunded.
func (ss *Session) Abandon() {
	if ss.active == nil {
		return
	}
	slog.Debug("stroke abandoned", "points", ss.active.buffer.Len())
	ss.active = nil
	ss.Feedback.Abandoned()
	ss.inkChanged(0)
}

// End finishes the active stroke. If the stroke is a valid closed shape
// that the ink left can pay for, it is extruded and instantiated, and
// the new instance is returned. Otherwise the stroke is discarded and
// the error for the rejection reason is returned: [stroke.ErrNotClosed],
// [stroke.ErrDegenerate] or [ink.ErrInsufficientInk].
// Either way the session is ready for a new stroke.
func (ss *Session) End() (*Instance, error) {
	ac := ss.active
	if ac == nil {
		return nil, ErrNoStroke
	}
	ss.active = nil
	st := ac.settings
	defer ss.inkChanged(0)

	vd := stroke.NewValidator(st.CloseThreshold, st.Spacing).Validate(ac.buffer.Points(), ss.ledger)
	if !vd.Accepted() {
		slog.Info("stroke rejected", "reason", vd.Reason, "points", ac.buffer.Len(), "ink", ss.ledger.Remaining())
		ss.Feedback.Rejected(vd.Reason)
		return nil, vd.Reason.Err()
	}
	inst, err := ss.build(ac, vd.Loop)
	if err != nil {
		slog.Error("stroke failed", "err", err)
		ss.Feedback.Rejected(stroke.Degenerate)
		return nil, err
	}
	slog.Info("stroke accepted", "name", inst.Name, "points", len(vd.Loop), "ink", ss.ledger.Remaining())
	ss.Feedback.Accepted(inst)
	return inst, nil
}

// build normalizes, triangulates, extrudes and instantiates an accepted loop.
func (ss *Session) build(ac *active, loop []math32.Vector2) (*Instance, error) {
	st := ac.settings
	tr := ss.Triangulator
	if tr == nil {
		var err error
		tr, err = tess.New(st.Triangulator)
		if err != nil {
			return nil, err
		}
	}
	ct := contour.Normalize(loop)
	cp, err := tr.Triangulate(ct.Points)
	if err != nil {
		return nil, fmt.Errorf("draw: triangulate: %w", err)
	}
	if cp.NumTriangles() == 0 {
		return nil, fmt.Errorf("%w: no triangles", stroke.ErrDegenerate)
	}
	centroid := ac.plane.Point(ct.Centroid)
	pl := ac.plane
	pl.Origin = centroid
	sd, err := solid.Extrude(cp, ct, solid.Params{HalfThickness: st.HalfThickness, TextureScale: st.TextureScale, Plane: pl})
	if err != nil {
		return nil, err
	}
	return ss.Factory.Instantiate(sd, centroid, ac.material)
}

// inkChanged reports the ink state to the [Feedback].
func (ss *Session) inkChanged(projected float32) {
	ss.Feedback.InkChanged(ss.ledger.Remaining(), projected)
}
