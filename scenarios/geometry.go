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

package scenarios

import (
	"image/color"

	"seehuhn.de/go/heatmap"
)

var grey = color.RGBA{R: 200, G: 200, B: 200, A: 255}

func fit(p heatmap.FitPolicy) func(*heatmap.Config) {
	return func(cfg *heatmap.Config) {
		cfg.Fit = p
	}
}

// Backgrounds with a different aspect ratio than the surface, under
// both fit policies.
var geometryScenarios = []Scenario{
	{
		Name:     "fit_inside_wide",
		Width:    300,
		Height:   100,
		Backdrop: &Backdrop{Width: 200, Height: 200, Color: grey},
		Config:   config(fit(heatmap.FitInside), func(cfg *heatmap.Config) { cfg.PointRadius = 20 }),
		Points:   []heatmap.Point{pt(0, 0), pt(0.5, 0.5), pt(1, 1)},
	},
	{
		Name:     "fit_inside_tall",
		Width:    100,
		Height:   300,
		Backdrop: &Backdrop{Width: 400, Height: 200, Color: grey},
		Config:   config(fit(heatmap.FitInside)),
		Points:   []heatmap.Point{pt(0.25, 0.5), pt(0.75, 0.5)},
	},
	{
		Name:     "cover_wide",
		Width:    300,
		Height:   100,
		Backdrop: &Backdrop{Width: 200, Height: 200, Color: grey},
		Config:   config(fit(heatmap.CoverWidget)),
		Points:   []heatmap.Point{pt(0.5, 0.1), pt(0.5, 0.5), pt(0.5, 0.9)},
	},
	{
		Name:     "cover_tall",
		Width:    100,
		Height:   300,
		Backdrop: &Backdrop{Width: 400, Height: 200, Color: grey},
		Config:   config(fit(heatmap.CoverWidget), fixedRadius(10)),
		Points:   []heatmap.Point{pt(0.1, 0.5), pt(0.5, 0.5), pt(0.9, 0.5)},
	},
	{
		Name:     "raw_scaled",
		Width:    400,
		Height:   200,
		Backdrop: &Backdrop{Width: 800, Height: 400, Color: grey},
		Config:   config(fit(heatmap.FitInside), rawCoordinates),
		Points:   []heatmap.Point{pt(200, 100), pt(400, 200), pt(600, 300)},
	},
	{
		Name:     "clicks",
		Width:    300,
		Height:   200,
		Backdrop: &Backdrop{Width: 300, Height: 300, Color: grey},
		Config:   config(fit(heatmap.FitInside), fixedRadius(15)),
		Clicks:   []heatmap.Point{pt(150, 100), pt(160, 110), pt(10, 100)},
	},
}
