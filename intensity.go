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
	"math"

	"gonum.org/v1/gonum/floats"
)

// ceiling is the largest value of an 8-bit alpha channel.
const ceiling = 255

// Intensity is a single-channel buffer of accumulated heat.
//
// Values use the 0–255 alpha scale but are not bounded while points are
// being accumulated.  They are clamped only when converted to bytes.
type Intensity struct {
	Width, Height int
	Alpha         []float64 // row-major, len = Width*Height
}

// NewIntensity allocates a zeroed buffer.
// Negative dimensions are treated as zero.
func NewIntensity(width, height int) *Intensity {
	b := &Intensity{}
	b.Reset(width, height)
	return b
}

// Reset resizes the buffer and sets all values to zero.
// The underlying storage grows as needed but never shrinks.
func (b *Intensity) Reset(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height
	if cap(b.Alpha) < n {
		b.Alpha = make([]float64, n)
	} else {
		b.Alpha = b.Alpha[:n]
		clear(b.Alpha)
	}
	b.Width = width
	b.Height = height
}

// At returns the accumulated value at pixel (x, y).
// Pixels outside the buffer have value 0.
func (b *Intensity) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Alpha[y*b.Width+x]
}

// Byte returns the value at pixel (x, y), rounded and clamped to a byte.
func (b *Intensity) Byte(x, y int) uint8 {
	return alphaByte(b.At(x, y))
}

// Max returns the largest value in the buffer, or 0 for an empty buffer.
func (b *Intensity) Max() float64 {
	if len(b.Alpha) == 0 {
		return 0
	}
	return floats.Max(b.Alpha)
}

// IsZero reports whether no pixel has received any heat.
func (b *Intensity) IsZero() bool {
	for _, v := range b.Alpha {
		if v != 0 {
			return false
		}
	}
	return true
}

func alphaByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= ceiling {
		return ceiling
	}
	return uint8(math.Round(v))
}
