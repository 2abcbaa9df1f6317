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
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Paint renders the complete surface: the background scaled into the
// display rectangle, the heat layer at the configured opacity, and the
// crosshair if enabled.  The heat raster is rebuilt first if it is dirty.
// For an empty surface the result is nil.
//
// The returned image is newly allocated and belongs to the caller.
func (o *Overlay) Paint() *image.RGBA {
	heat := o.Raster()
	if heat == nil {
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	if bg := o.background(); bg != nil {
		copy(dst.Pix, bg.Pix)
	}

	if alpha := o.cfg.Opacity; alpha > 0 {
		mask := image.NewUniform(color.Alpha16{A: uint16(math.Round(alpha * 0xffff))})
		xdraw.DrawMask(dst, dst.Rect, heat, image.Point{}, mask, image.Point{}, xdraw.Over)
	}

	if o.cfg.Crosshair {
		dst = o.drawCrosshair(dst)
	}
	return dst
}

// background returns the background scaled into the display rectangle, on
// an otherwise transparent surface.  The image is placed through the same
// transform as raw point coordinates, so fractional offsets of the display
// rectangle are kept and the heat layer lines up with the background.
// The result is cached until the background or the display rectangle
// changes.
func (o *Overlay) background() *image.RGBA {
	g := o.Geometry()
	if !g.hasImage() {
		return nil
	}
	r := g.DisplayRect()
	if isEmpty(r) {
		return nil
	}
	size := image.Rect(0, 0, g.Width, g.Height)

	if o.bgCache != nil && o.bgRect == r && o.bgCache.Rect == size {
		return o.bgCache
	}

	// The display rectangle extends past the surface for CoverWidget.
	// The transform clips it to the destination without changing the scale.
	m := g.Transform(false)
	sb := o.bg.Bounds()
	aff := f64.Aff3{
		m[0], m[2], m[4] - m[0]*float64(sb.Min.X),
		m[1], m[3], m[5] - m[3]*float64(sb.Min.Y),
	}
	img := image.NewRGBA(size)
	xdraw.CatmullRom.Transform(img, aff, o.bg, sb, xdraw.Src, nil)
	o.bgCache = img
	o.bgRect = r
	return img
}

// drawCrosshair draws dashed yellow lines through the center of the
// surface.
func (o *Overlay) drawCrosshair(dst *image.RGBA) *image.RGBA {
	dc := gg.NewContextForImage(dst)
	defer dc.Close()

	cx := float64(o.width/2) + 0.5
	cy := float64(o.height/2) + 0.5
	dc.SetRGB(1, 1, 0)
	dc.SetLineWidth(1)
	dc.SetDash(4, 2)
	dc.DrawLine(cx, 0, cx, float64(o.height))
	dc.DrawLine(0, cy, float64(o.width), cy)
	if err := dc.Stroke(); err != nil {
		Logger().Warn("heatmap: crosshair not drawn", slog.Any("error", err))
		return dst
	}

	if img, ok := dc.Image().(*image.RGBA); ok {
		return img
	}
	res := image.NewRGBA(dst.Rect)
	xdraw.Draw(res, res.Rect, dc.Image(), image.Point{}, xdraw.Src)
	return res
}
