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

import "gonum.org/v1/gonum/floats"

// Normalize rescales buf so that its largest value becomes 255.
// This is one global linear scale factor, computed from the whole buffer
// before any value is changed.  Buffers which are empty, all zero, or
// already peak at exactly 255 are left alone.  Accumulated peaks above
// 255 are scaled down.
//
// The return value reports whether the buffer was modified.
func Normalize(buf *Intensity) bool {
	m := buf.Max()
	if !(m > 0) || m == ceiling {
		return false
	}
	floats.Scale(ceiling/m, buf.Alpha)
	return true
}
