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

// The sample scenario shows three click clusters on a gradient
// background.  It is used for the screenshot in the documentation.
var sampleScenarios = []Scenario{
	{
		Name:   "clicks",
		Width:  900,
		Height: 600,
		Backdrop: &Backdrop{
			Width:  900,
			Height: 600,
			Color:  color.RGBA{R: 245, G: 247, B: 250, A: 255},
		},
		Config: config(fixedRadius(70), func(cfg *heatmap.Config) {
			cfg.Opacity = 0.65
			cfg.Ramp = heatmap.Ramp{
				Cold: color.RGBA{R: 0, G: 188, B: 212, A: 255},
				Hot:  color.RGBA{R: 255, G: 87, B: 34, A: 255},
			}
		}),
		Points: []heatmap.Point{
			pt(0.22, 0.30),
			pt(0.28, 0.32),
			pt(0.50, 0.55),
			pt(0.52, 0.60),
			pt(0.76, 0.42),
			pt(0.78, 0.45),
			pt(0.80, 0.40),
		},
	},
}
