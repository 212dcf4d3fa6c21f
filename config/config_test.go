// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/tess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, float32(0.025), s.Spacing)
	assert.Equal(t, float32(0.1), s.CloseThreshold)
	assert.Equal(t, float32(0.01), s.HalfThickness)
	assert.Equal(t, float32(5), s.MaxInk)
	assert.Equal(t, math32.Vec3(0, 1, 0), s.Up)
	assert.Equal(t, tess.EarcutName, s.Triangulator)
	assert.Equal(t, "Terrain", s.Body.Layer)
	assert.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	s := New()
	s.Spacing = 0
	s.MaxInk = -1
	s.Up = math32.Vector3{}
	s.Triangulator = "nope"
	s.Palette = []string{"#zzz"}
	err := s.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"spacing", "max_ink", "up axis", "nope", "#zzz"} {
		assert.Contains(t, msg, want)
	}

	s = New()
	s.Palette = nil
	assert.ErrorContains(t, s.Validate(), "palette")
}

func TestColors(t *testing.T) {
	s := New()
	clrs, err := s.Colors()
	require.NoError(t, err)
	assert.Len(t, clrs, len(s.Palette))
	assert.Equal(t, color.RGBA{229, 72, 77, 255}, clrs[0])
}

func TestClone(t *testing.T) {
	s := New()
	c := s.Clone()
	assert.Equal(t, s, c)
	c.Palette[0] = "#000000"
	c.Body.Layer = "Default"
	assert.Equal(t, "#e5484d", s.Palette[0])
	assert.Equal(t, "Terrain", s.Body.Layer)
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, TOML, FormatOf("settings.toml"))
	assert.Equal(t, YAML, FormatOf("settings.YAML"))
	assert.Equal(t, YAML, FormatOf("a/b.yml"))
	assert.Equal(t, TOML, FormatOf("settings"))
}

func custom() *Settings {
	s := New()
	s.Spacing = 0.5
	s.CloseThreshold = 0.25
	s.HalfThickness = 0.125
	s.MaxInk = 8
	s.TextureScale = 2
	s.Up = math32.Vec3(0, 0, 1)
	s.Triangulator = tess.EarcutName
	s.Palette = []string{"#ffffff"}
	s.Body.Gravity = false
	return s
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"settings.toml", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			fn := filepath.Join(dir, "sub", name)
			s := custom()
			require.NoError(t, s.Save(fn))
			o, err := Open(fn)
			require.NoError(t, err)
			assert.Equal(t, s, o)
		})
	}
}

func TestDecodePartial(t *testing.T) {
	s := New()
	require.NoError(t, Decode(s, strings.NewReader("max_ink = 3\n[body]\nlayer = \"Props\"\n"), TOML))
	assert.Equal(t, float32(3), s.MaxInk)
	assert.Equal(t, "Props", s.Body.Layer)
	assert.Equal(t, float32(0.025), s.Spacing)
	assert.True(t, s.Body.Gravity)

	s = New()
	require.NoError(t, Decode(s, strings.NewReader(""), YAML))
	assert.Equal(t, New(), s)

	assert.Error(t, Decode(New(), strings.NewReader("max_ink = ["), TOML))
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, New().Encode(&b, TOML))
	assert.Contains(t, b.String(), "close_threshold =")
	assert.Contains(t, b.String(), "[body]")
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "settings.toml")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got := make(chan *Settings, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func(s *Settings) { got <- s })
	}()

	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case s := <-got:
			if s.MaxInk != 7 {
				continue // a partially written file
			}
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(fn, []byte("max_ink = 7\n"), 0o644))
		case <-ctx.Done():
			t.Fatal("settings change not seen")
		}
	}
}
