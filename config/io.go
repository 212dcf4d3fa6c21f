// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a settings file format.
type Format int

const (
	// TOML is the default settings file format.
	TOML Format = iota

	// YAML is used for files with a .yaml or .yml extension.
	YAML
)

// FormatOf returns the [Format] for the given file name, based on its extension.
func FormatOf(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// DefaultPath returns the path of the user settings file,
// ~/.config/inkdraw/settings.toml.
func DefaultPath() (string, error) {
	return homedir.Expand(filepath.Join("~", ".config", "inkdraw", "settings.toml"))
}

// Open reads settings from the given file. Settings missing from the
// file keep their default values.
func Open(filename string) (*Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s := New()
	if err := Decode(s, bytes.NewReader(b), FormatOf(filename)); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return s, nil
}

// OpenDefault reads the settings at [DefaultPath] if that file exists,
// and otherwise returns the default settings.
func OpenDefault() (*Settings, error) {
	fn, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return New(), nil
	}
	return Open(fn)
}

// Save writes the settings to the given file, in the format
// given by its extension, creating its directory if needed.
func (s *Settings) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	var b bytes.Buffer
	if err := s.Encode(&b, FormatOf(filename)); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0o644)
}

// Decode reads settings in the given format from r into s.
func Decode(s *Settings, r io.Reader, format Format) error {
	switch format {
	case YAML:
		err := yaml.NewDecoder(r).Decode(s)
		if err == io.EOF {
			return nil
		}
		return err
	default:
		return toml.NewDecoder(r).Decode(s)
	}
}

// Encode writes the settings in the given format to w.
func (s *Settings) Encode(w io.Writer, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(s)
	}
}
