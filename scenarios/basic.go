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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
)

func fixedRadius(r int) func(*heatmap.Config) {
	return func(cfg *heatmap.Config) {
		cfg.PointRadius = r
		cfg.AdaptiveRadius = false
	}
}

func rawCoordinates(cfg *heatmap.Config) {
	cfg.NormalizedCoordinates = false
}

func noNormalize(cfg *heatmap.Config) {
	cfg.AutoNormalize = false
}

var basicScenarios = []Scenario{
	{
		Name:   "single_point",
		Width:  200,
		Height: 100,
		Config: config(fixedRadius(25)),
		Points: []heatmap.Point{pt(0.5, 0.5)},
	},
	{
		Name:   "double_point",
		Width:  200,
		Height: 100,
		Config: config(fixedRadius(25)),
		Points: []heatmap.Point{pt(0.5, 0.5), pt(0.5, 0.5)},
	},
	{
		Name:   "double_point_raw_heat",
		Width:  200,
		Height: 100,
		Config: config(fixedRadius(25), noNormalize),
		Points: []heatmap.Point{pt(0.5, 0.5), pt(0.5, 0.5)},
	},
	{
		Name:   "weights",
		Width:  240,
		Height: 80,
		Config: config(fixedRadius(20), noNormalize),
		Points: []heatmap.Point{
			{Pos: vec.Vec2{X: 0.2, Y: 0.5}, Weight: 0.5},
			{Pos: vec.Vec2{X: 0.5, Y: 0.5}, Weight: 1},
			{Pos: vec.Vec2{X: 0.8, Y: 0.5}, Weight: 2},
		},
	},
	{
		Name:   "raw_pixels",
		Width:  160,
		Height: 120,
		Config: config(fixedRadius(15), rawCoordinates),
		Points: []heatmap.Point{pt(40, 30), pt(50, 36), pt(120, 90)},
	},
	{
		Name:   "outside",
		Width:  100,
		Height: 100,
		Config: config(fixedRadius(30)),
		Points: []heatmap.Point{pt(-0.1, 0.5), pt(0.5, 1.2)},
	},
	{
		Name:   "crosshair",
		Width:  120,
		Height: 80,
		Config: config(fixedRadius(12), func(cfg *heatmap.Config) {
			cfg.Crosshair = true
			cfg.Opacity = 1
		}),
		Points: []heatmap.Point{pt(0.25, 0.25), pt(0.75, 0.75)},
	},
	{
		Name:   "empty",
		Width:  64,
		Height: 48,
		Config: config(),
	},
}
