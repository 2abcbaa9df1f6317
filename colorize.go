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

import (
	"image"
	"image/color"
)

// Ramp is a two-color linear gradient.  The alpha components of the
// end points are ignored.
type Ramp struct {
	Cold color.RGBA // color at the lowest intensity
	Hot  color.RGBA // color at full intensity
}

// DefaultRamp goes from blue to red.
var DefaultRamp = Ramp{
	Cold: color.RGBA{R: 0, G: 120, B: 255, A: 255},
	Hot:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
}

// At returns the opaque ramp color at t ∈ [0,1].
// Channels are truncated towards the cold end.
func (r Ramp) At(t float64) color.RGBA {
	t = min(max(t, 0), 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: lerp(r.Cold.R, r.Hot.R),
		G: lerp(r.Cold.G, r.Hot.G),
		B: lerp(r.Cold.B, r.Hot.B),
		A: 255,
	}
}

// Colorize converts an intensity buffer into a premultiplied RGBA image.
//
// Each value is clamped to a byte a.  Pixels with a = 0 become transparent
// black, whatever the ramp colors.  Other pixels get the ramp color at
// a/255, with alpha a.
func Colorize(buf *Intensity, ramp Ramp) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))

	// The output only depends on the alpha byte, so all 256 possible
	// pixels are computed up front.
	var lut [ceiling + 1][4]uint8
	for a := 1; a <= ceiling; a++ {
		c := ramp.At(float64(a) / ceiling)
		lut[a] = [4]uint8{premul(c.R, a), premul(c.G, a), premul(c.B, a), uint8(a)}
	}

	for y := 0; y < buf.Height; y++ {
		src := buf.Alpha[y*buf.Width : (y+1)*buf.Width]
		dst := img.Pix[y*img.Stride : y*img.Stride+4*buf.Width]
		for x, v := range src {
			copy(dst[4*x:4*x+4], lut[alphaByte(v)][:])
		}
	}
	return img
}

func premul(c uint8, a int) uint8 {
	return uint8((int(c)*a + ceiling/2) / ceiling)
}
