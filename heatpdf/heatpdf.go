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

// Package heatpdf writes intensity maps as vector PDF files.
//
// Every pixel becomes part of a filled rectangle, one page point per
// pixel.  Intensity is shown in gray, with black for full intensity on a
// white page.
package heatpdf

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/heatmap"
)

// Options control the PDF output.  A nil *Options gives the defaults.
type Options struct {
	// Levels is the number of distinct gray levels used, between 2 and
	// 256.  Fewer levels give smaller files.  Zero means 256.
	Levels int

	// Crosshair adds dashed lines through the center of the page.
	Crosshair bool
}

// Span is a horizontal run of pixels sharing one gray level.
type Span struct {
	X, Y, Len int
}

// Write stores the intensity map heat as a single-page PDF file.
func Write(path string, heat *heatmap.Intensity, opts *Options) error {
	if heat == nil || heat.Width <= 0 || heat.Height <= 0 {
		return errors.New("heatpdf: empty intensity map")
	}
	if opts == nil {
		opts = &Options{}
	}
	levels := opts.Levels
	if levels == 0 {
		levels = 256
	}
	if levels < 2 || levels > 256 {
		return fmt.Errorf("heatpdf: invalid number of levels %d", levels)
	}

	W, H := float64(heat.Width), float64(heat.Height)
	paper := &pdf.Rectangle{URx: W, URy: H}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("heatpdf: %w", err)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, W, H)
	page.Fill()

	// PDF origin is bottom-left; intensity maps use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, H})

	spans := Spans(heat, levels)
	for _, level := range slices.Sorted(maps.Keys(spans)) {
		page.SetFillColor(color.DeviceGray(1 - float64(level)/float64(levels-1)))
		for _, s := range spans[level] {
			page.Rectangle(float64(s.X), float64(s.Y), float64(s.Len), 1)
		}
		page.Fill()
	}

	if opts.Crosshair {
		cx := float64(heat.Width/2) + 0.5
		cy := float64(heat.Height/2) + 0.5
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(1)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineDash([]float64{4, 2}, 0)
		page.MoveTo(cx, 0)
		page.LineTo(cx, H)
		page.MoveTo(0, cy)
		page.LineTo(W, cy)
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("heatpdf: %w", err)
	}
	return nil
}

// Spans splits the non-zero pixels of heat into horizontal runs, grouped
// by quantized gray level in 1, ..., levels-1.
func Spans(heat *heatmap.Intensity, levels int) map[int][]Span {
	res := make(map[int][]Span)
	for y := 0; y < heat.Height; y++ {
		x := 0
		for x < heat.Width {
			level := quantize(heat.Byte(x, y), levels)
			start := x
			for x < heat.Width && quantize(heat.Byte(x, y), levels) == level {
				x++
			}
			if level > 0 {
				res[level] = append(res[level], Span{X: start, Y: y, Len: x - start})
			}
		}
	}
	return res
}

// quantize maps a byte to one of the given number of levels.
func quantize(a uint8, levels int) int {
	return (int(a)*(levels-1) + 127) / 255
}
