// seehuhn.de/go/heatmap - click density heatmaps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command clickmap renders a click heatmap over a background image.
//
// The setup is read from a scenario file, or taken from one of the
// built-in scenarios.  Additional clicks can be given on the command line
// as surface positions:
//
//	clickmap -scenario clicks.yaml -bg screenshot.png -click 120,80 -o out.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/heatpdf"
	"seehuhn.de/go/heatmap/scenarios"
)

func main() {
	scenarioFile := flag.String("scenario", "", "scenario file (.yaml, .toml or .json)")
	builtin := flag.String("builtin", "sample/clicks", "built-in scenario, as category/name")
	bgPath := flag.String("bg", "", "background image, overrides the scenario")
	width := flag.Int("w", 0, "surface width, overrides the scenario")
	height := flag.Int("h", 0, "surface height, overrides the scenario")
	out := flag.String("o", "clickmap.png", "output PNG file")
	heatOut := flag.String("heat", "", "write the heat layer alone to this PNG file")
	pdfOut := flag.String("pdf", "", "write the intensity map to this PDF file")
	crosshair := flag.Bool("crosshair", false, "draw the center crosshair")
	verbose := flag.Bool("v", false, "log debug messages")
	var clicks []heatmap.Point
	flag.Func("click", "add a click at surface position `x,y[,weight]` (repeatable)", func(s string) error {
		p, err := parseClick(s)
		if err != nil {
			return err
		}
		clicks = append(clicks, p)
		return nil
	})
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	heatmap.SetLogger(log)

	s, err := loadScenario(*scenarioFile, *builtin)
	if err != nil {
		fatal(err)
	}
	if *bgPath != "" {
		s.Background = *bgPath
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}
	if *crosshair {
		s.Config.Crosshair = true
	}
	s.Clicks = append(s.Clicks, clicks...)

	o, err := s.Overlay()
	if err != nil {
		fatal(err)
	}
	if n := len(s.Clicks); n > 0 {
		log.Info("clicks added", "requested", n, "points", len(o.Points()))
	}

	img := o.Paint()
	if img == nil {
		fatal(fmt.Errorf("empty surface %dx%d", s.Width, s.Height))
	}
	if err := writePNG(*out, img); err != nil {
		fatal(err)
	}
	log.Info("heatmap written", "file", *out, "width", s.Width, "height", s.Height)

	if *heatOut != "" {
		if err := writePNG(*heatOut, o.Raster()); err != nil {
			fatal(err)
		}
	}
	if *pdfOut != "" {
		opts := &heatpdf.Options{Crosshair: o.Crosshair()}
		if err := heatpdf.Write(*pdfOut, o.Intensity(), opts); err != nil {
			fatal(err)
		}
	}
}

func loadScenario(file, builtin string) (*scenarios.Scenario, error) {
	if file != "" {
		return scenarios.Load(file)
	}
	category, name, _ := strings.Cut(builtin, "/")
	for _, s := range scenarios.All[category] {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("unknown built-in scenario %q", builtin)
}

func parseClick(s string) (heatmap.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return heatmap.Point{}, fmt.Errorf("invalid click %q", s)
	}
	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return heatmap.Point{}, fmt.Errorf("invalid click %q: %w", s, err)
		}
		vals[i] = v
	}
	p := heatmap.Point{Pos: vec.Vec2{X: vals[0], Y: vals[1]}, Weight: heatmap.DefaultWeight}
	if len(vals) == 3 {
		p.Weight = vals[2]
	}
	return p, nil
}

func writePNG(path string, img image.Image) error {
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "clickmap: %v\n", err)
	os.Exit(1)
}
