// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command inkdraw turns recorded strokes into extruded solids.
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/inkdraw/base/logx"
)

func main() {
	logx.SetDefault()
	app := newCLIApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
