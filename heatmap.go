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

// Package heatmap renders click density maps over a background image.
//
// Weighted sample points are turned into a translucent heat layer in four
// steps:
//
//  1. Point positions are mapped to surface pixels (see [Geometry]).
//     Positions are either normalized to the displayed background, or
//     given in native background pixels.
//  2. Every point adds a linear radial falloff to an [Intensity] buffer
//     (see [Accumulator]).  Overlapping points add up.
//  3. Optionally, the buffer is rescaled so that its maximum is full
//     intensity (see [Normalize]).
//  4. Intensities are mapped through a two-color [Ramp] into a
//     premultiplied RGBA image (see [Colorize]).
//
// An [Overlay] ties these steps together.  It caches the heat layer and
// rebuilds it lazily whenever points, settings, the background or the
// surface size change.  [Overlay.Paint] composites the background, the
// heat layer and an optional crosshair into the final image.
package heatmap

//go:generate go run ./scenarios/export
