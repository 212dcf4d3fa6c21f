// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/inkdraw/base/errors"
	"cogentcore.org/inkdraw/config"
	"cogentcore.org/inkdraw/draw"
	"cogentcore.org/inkdraw/math32"
	"cogentcore.org/inkdraw/mesh"
	"cogentcore.org/inkdraw/plane"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// newCLIApp creates the CLI application reading from stdin and writing to stdout.
func newCLIApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := &cli.App{
		Name:      "inkdraw",
		Usage:     "Extrude hand drawn closed strokes into solids",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			extrudeCmd(),
			configCmd(),
		},
	}
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// loadSettings returns the settings from the --config flag,
// or the user settings file if there is one.
func loadSettings(c *cli.Context) (*config.Settings, error) {
	var s *config.Settings
	var err error
	if fn := c.String("config"); fn != "" {
		s, err = config.Open(fn)
	} else {
		s, err = config.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	return s, applyFlags(c, s)
}

// applyFlags applies the settings overrides given as flags to s
// and validates the result.
func applyFlags(c *cli.Context, s *config.Settings) error {
	if tr := c.String("triangulator"); tr != "" {
		s.Triangulator = tr
	}
	if c.IsSet("max-ink") {
		s.MaxInk = float32(c.Float64("max-ink"))
	}
	return s.Validate()
}

var configFlag = &cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Settings file (.toml or .yaml)"}

// extrudeCmd creates the extrude command.
func extrudeCmd() *cli.Command {
	return &cli.Command{
		Name:      "extrude",
		Usage:     "Replay strokes and write the accepted shapes as Wavefront OBJ",
		ArgsUsage: "[stroke files...]",
		Description: "Each line of the input has the x and y plane coordinates of one point.\n" +
			"Strokes are separated by blank lines; lines starting with # are ignored.\n" +
			"The strokes of each file share one ink budget; files are replayed concurrently.",
		Flags: []cli.Flag{
			configFlag,
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "OBJ file to write (default stdout)"},
			&cli.StringFlag{Name: "triangulator", Aliases: []string{"t"}, Usage: "Cap triangulator name"},
			&cli.Float64Flag{Name: "max-ink", Usage: "Ink budget, overriding the settings"},
			&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "Extrude again whenever the settings file changes"},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("watch") {
				return watchExtrude(c)
			}
			st, err := loadSettings(c)
			if err != nil {
				return err
			}
			return extrude(c, st)
		},
	}
}

// extrude replays the inputs with the given settings and writes the OBJ output.
func extrude(c *cli.Context, st *config.Settings) error {
	insts, err := extrudeInputs(c, st)
	if err != nil {
		return err
	}
	names := make([]string, len(insts))
	meshes := make([]mesh.Mesh, len(insts))
	offsets := make([]math32.Vector3, len(insts))
	for i, inst := range insts {
		names[i] = inst.Name
		meshes[i] = inst.Mesh
		offsets[i] = inst.Body.State.Pos
	}
	if fn := c.String("output"); fn != "" {
		return mesh.SaveOBJ(fn, names, meshes, offsets...)
	}
	return mesh.WriteOBJ(c.App.Writer, names, meshes, offsets...)
}

// watchExtrude extrudes once, then again each time the settings file
// changes, until interrupted. Each run uses new sessions.
func watchExtrude(c *cli.Context) error {
	fn := c.String("config")
	if fn == "" || c.String("output") == "" || c.NArg() == 0 {
		return errors.New("--watch needs --config, --output and stroke files")
	}
	if st, err := loadSettings(c); err == nil {
		errors.Log(extrude(c, st))
	} else {
		errors.Log(err)
	}
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()
	return config.Watch(ctx, fn, func(st *config.Settings) {
		if errors.Log(applyFlags(c, st)) != nil {
			return
		}
		if errors.Log(extrude(c, st)) == nil {
			slog.Info("extruded", "output", c.String("output"))
		}
	})
}

// extrudeInputs replays the stroke files given as arguments, or stdin
// if there are none, each in its own session.
func extrudeInputs(c *cli.Context, st *config.Settings) ([]*draw.Instance, error) {
	if c.NArg() == 0 {
		strokes, err := readStrokes(c.App.Reader)
		if err != nil {
			return nil, err
		}
		return closed(replay(st, strokes))
	}
	files := c.Args().Slice()
	results := make([][]*draw.Instance, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fn := range files {
		g.Go(func() error {
			strokes, err := openStrokes(fn)
			if err != nil {
				return err
			}
			results[i], err = replay(st.Clone(), strokes)
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return closed(slices.Concat(results...), nil)
}

// closed returns an error if no stroke formed a closed shape.
func closed(insts []*draw.Instance, err error) ([]*draw.Instance, error) {
	if err == nil && len(insts) == 0 {
		err = errors.New("no stroke formed a closed shape")
	}
	return insts, err
}

// replay draws the given strokes in a new session on the ground plane,
// returning the accepted instances. Rejected strokes are logged.
func replay(st *config.Settings, strokes [][]math32.Vector2) ([]*draw.Instance, error) {
	ss, err := draw.NewSession(st)
	if err != nil {
		return nil, err
	}
	var insts []*draw.Instance
	for i, pts := range strokes {
		if err := ss.Begin(plane.Pick{}); err != nil {
			return nil, err
		}
		for _, p := range pts {
			if err := ss.Add(p); err != nil {
				slog.Warn("point rejected", "stroke", i, "point", p, "err", err)
				break
			}
		}
		inst, err := ss.End()
		if err != nil {
			slog.Warn("stroke rejected", "stroke", i, "err", err)
			continue
		}
		insts = append(insts, inst)
	}
	slog.Info("replayed strokes", "accepted", len(insts), "strokes", len(strokes), "ink", ss.RemainingInk())
	return insts, nil
}

// openStrokes reads the strokes in the named file.
func openStrokes(filename string) ([][]math32.Vector2, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readStrokes(f)
}

// readStrokes reads blank line separated strokes of "x y" points.
func readStrokes(r io.Reader) ([][]math32.Vector2, error) {
	var strokes [][]math32.Vector2
	var cur []math32.Vector2
	flush := func() {
		if len(cur) > 0 {
			strokes = append(strokes, cur)
			cur = nil
		}
	}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(txt, "#") {
			continue
		}
		if txt == "" {
			flush()
			continue
		}
		fs := strings.Fields(txt)
		if len(fs) != 2 {
			return nil, fmt.Errorf("line %d: want 2 coordinates, got %d", line, len(fs))
		}
		x, err := strconv.ParseFloat(fs[0], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fs[1], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cur = append(cur, math32.Vec2(float32(x), float32(y)))
	}
	flush()
	return strokes, sc.Err()
}

// configCmd creates the config command.
func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the settings, or the defaults with --defaults",
		Flags: []cli.Flag{
			configFlag,
			&cli.BoolFlag{Name: "defaults", Usage: "Print the default settings"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "toml", Usage: "Output format: toml|yaml"},
		},
		Action: func(c *cli.Context) error {
			st := config.New()
			if !c.Bool("defaults") {
				var err error
				st, err = loadSettings(c)
				if err != nil {
					return err
				}
			}
			format := config.TOML
			switch c.String("format") {
			case "toml":
			case "yaml":
				format = config.YAML
			default:
				return fmt.Errorf("unknown format %q", c.String("format"))
			}
			return st.Encode(c.App.Writer, format)
		},
	}
}
