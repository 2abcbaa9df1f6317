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

package heatmap

import "seehuhn.de/go/geom/vec"

const (
	// DefaultWeight is the weight of points added without an explicit weight.
	DefaultWeight = 1.0

	// MinWeight is the smallest weight a point can have.
	// Smaller weights, including zero and NaN, are raised to MinWeight.
	MinWeight = 0.01

	// peakAlpha is the center intensity of a point with weight 1.
	peakAlpha = 180
)

// Point is a weighted sample point.
type Point struct {
	// Pos is either normalized to [0,1]² relative to the displayed
	// background, or given in native background pixels.  Which one
	// applies is decided by the overlay, not by the point.
	Pos vec.Vec2

	Weight float64
}

// NewPoint returns a point at (x, y) with the given weight,
// raised to at least MinWeight.
func NewPoint(x, y, weight float64) Point {
	return Point{Pos: vec.Vec2{X: x, Y: y}, Weight: floorWeight(weight)}
}

func floorWeight(w float64) float64 {
	if !(w >= MinWeight) {
		return MinWeight
	}
	return w
}

// peak returns the center intensity of the point, on the 0–255 alpha
// scale.
func (p Point) peak() float64 {
	return min(ceiling, peakAlpha*floorWeight(p.Weight))
}
