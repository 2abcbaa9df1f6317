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

// RadiusPolicy determines the accumulation radius of the points.
type RadiusPolicy struct {
	// Base is the configured radius.  Values below 1 are treated as 1.
	Base int

	// Adaptive scales the radius with the background.
	Adaptive bool
}

// Radius returns the effective radius in surface pixels.  The result is
// at least 1.
//
// With an image on screen, an adaptive radius follows the smaller of the
// two axis scale factors.  Without an image, in normalized coordinates,
// the radius is taken relative to the smaller surface dimension.
func (p RadiusPolicy) Radius(g Geometry, normalized bool) float64 {
	base := float64(max(p.Base, 1))
	if !p.Adaptive {
		return base
	}

	scale := 1.0
	if s, ok := g.ImageScale(); ok {
		scale = s
	} else if normalized {
		scale = float64(min(g.Width, g.Height))
	}
	return max(1.0, base*scale)
}
