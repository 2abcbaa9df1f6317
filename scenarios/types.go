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

// Package scenarios describes complete heatmap setups: a surface, a
// background, overlay settings and points.  Scenarios can be built in
// (see [All]) or read from YAML, TOML and JSON files.
package scenarios

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
)

// Scenario defines a single heatmap setup.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // surface width in pixels
	Height int    // surface height in pixels

	// Background is the path of the background image file.  If empty,
	// Backdrop is used instead.
	Background string

	// Backdrop describes a generated background image.  If nil and no
	// Background is given, the overlay has no background.
	Backdrop *Backdrop

	Config heatmap.Config

	// Points are stored directly, in the coordinate mode selected by
	// Config.NormalizedCoordinates.
	Points []heatmap.Point

	// Clicks are surface positions.  They are added after the points,
	// through the overlay's hit test.
	Clicks []heatmap.Point
}

// Backdrop is a generated background: a vertical gradient from nearly
// black at the top to Color at the bottom.
type Backdrop struct {
	Width, Height int
	Color         color.RGBA
}

// Image renders the backdrop.
func (b *Backdrop) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		grad := 0.05 + 0.95*float64(y)/float64(max(1, b.Height-1))
		c := color.RGBA{
			R: uint8(float64(b.Color.R) * grad),
			G: uint8(float64(b.Color.G) * grad),
			B: uint8(float64(b.Color.B) * grad),
			A: 255,
		}
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Overlay creates an overlay showing the scenario.
func (s *Scenario) Overlay() (*heatmap.Overlay, error) {
	o := heatmap.NewOverlay(s.Config)
	o.Resize(s.Width, s.Height)

	switch {
	case s.Background != "":
		img, err := heatmap.LoadImage(s.Background)
		if err != nil {
			return nil, err
		}
		o.SetBackground(img)
	case s.Backdrop != nil:
		o.SetBackground(s.Backdrop.Image())
	}

	o.SetPoints(s.Points)
	for _, c := range s.Clicks {
		o.AddClickAt(c.Pos, c.Weight)
	}
	return o, nil
}

// config returns the default overlay settings, modified by the given
// functions.
func config(mods ...func(*heatmap.Config)) heatmap.Config {
	cfg := heatmap.DefaultConfig()
	for _, mod := range mods {
		mod(&cfg)
	}
	return cfg
}

// pt is a helper to create a point with weight 1.
func pt(x, y float64) heatmap.Point {
	return heatmap.Point{Pos: vec.Vec2{X: x, Y: y}, Weight: heatmap.DefaultWeight}
}
