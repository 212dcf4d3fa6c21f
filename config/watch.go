// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/inkdraw/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with freshly loaded settings each time the given file
// is written or replaced, until ctx is done. Files that fail to load or
// validate are logged and skipped. The containing directory is watched,
// so files replaced by a rename are seen too.
func Watch(ctx context.Context, filename string, fn func(s *Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	filename = filepath.Clean(filename)
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filename || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s, err := Open(filename)
			if errors.Log(err) != nil {
				continue
			}
			if errors.Log(s.Validate()) != nil {
				continue
			}
			slog.Info("reloaded settings", "file", filename)
			fn(s)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
