// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings that control stroke capture,
// ink budgeting and solid generation for drawn shapes.
package config

import (
	"fmt"
	"image/color"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/tess"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
)

// Settings are the tunable parameters of a drawing session.
type Settings struct {

	// Spacing is the minimum distance between consecutive stroke points;
	// pointer samples closer than this to the last point are ignored.
	Spacing float32 `toml:"spacing" yaml:"spacing"`

	// CloseThreshold is the maximum distance between the first and last
	// points of a stroke for it to be treated as a closed shape.
	CloseThreshold float32 `toml:"close_threshold" yaml:"close_threshold"`

	// HalfThickness is half the thickness of the extruded solid.
	HalfThickness float32 `toml:"half_thickness" yaml:"half_thickness"`

	// MaxInk is the total stroke length available to the session.
	MaxInk float32 `toml:"max_ink" yaml:"max_ink"`

	// TextureScale is the world distance covered by one texture repeat.
	TextureScale float32 `toml:"texture_scale" yaml:"texture_scale"`

	// Up is the normal of the drawing plane and the extrusion axis.
	Up math32.Vector3 `toml:"up" yaml:"up"`

	// Triangulator is the name of the cap triangulator; see [tess.Names].
	Triangulator string `toml:"triangulator" yaml:"triangulator"`

	// Palette is the list of hex colors one of which is
	// picked at random as the material of each new stroke.
	Palette []string `toml:"palette" yaml:"palette"`

	// Body has the physical defaults for drawn shapes.
	Body Body `toml:"body" yaml:"body"`
}

// Body has the rigid body defaults given to drawn shapes,
// matching the other draggable bodies of a scene.
type Body struct {

	// LinearDamping slows the linear velocity of the body.
	LinearDamping float32 `toml:"linear_damping" yaml:"linear_damping"`

	// Interpolate smooths rendering of the body between physics steps.
	Interpolate bool `toml:"interpolate" yaml:"interpolate"`

	// Gravity is whether gravity acts on the body when it is not dragged.
	Gravity bool `toml:"gravity" yaml:"gravity"`

	// Layer is the collision layer the body is placed on.
	Layer string `toml:"layer" yaml:"layer"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.Spacing = 0.025
	s.CloseThreshold = 0.1
	s.HalfThickness = 0.01
	s.MaxInk = 5
	s.TextureScale = 1
	s.Up = math32.Vec3(0, 1, 0)
	s.Triangulator = tess.EarcutName
	s.Palette = []string{"#e5484d", "#f5a524", "#30a46c", "#0090ff", "#8e4ec6"}
	s.Body.Defaults()
}

// Defaults sets the default body settings.
func (b *Body) Defaults() {
	b.LinearDamping = 1
	b.Interpolate = true
	b.Gravity = true
	b.Layer = "Terrain"
}

// New returns new [Settings] with default values.
func New() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Validate returns an error describing every invalid setting, or nil.
func (s *Settings) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %g", name, v))
		}
	}
	positive("spacing", s.Spacing)
	positive("close_threshold", s.CloseThreshold)
	positive("half_thickness", s.HalfThickness)
	positive("max_ink", s.MaxInk)
	positive("texture_scale", s.TextureScale)
	if s.Up.LengthSquared() == 0 {
		errs = append(errs, errors.New("config: up axis must be non-zero"))
	}
	if _, err := tess.New(s.Triangulator); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if len(s.Palette) == 0 {
		errs = append(errs, errors.New("config: palette must have at least one color"))
	}
	if _, err := s.Colors(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := &Settings{}
	errors.Log(copier.CopyWithOption(c, s, copier.Option{DeepCopy: true}))
	return c
}

// Colors parses the [Settings.Palette] hex colors.
func (s *Settings) Colors() ([]color.RGBA, error) {
	clrs := make([]color.RGBA, 0, len(s.Palette))
	for _, hex := range s.Palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("config: palette color %q: %w", hex, err)
		}
		r, g, b := c.RGB255()
		clrs = append(clrs, color.RGBA{r, g, b, 255})
	}
	return clrs, nil
}
