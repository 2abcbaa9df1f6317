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
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Accumulator adds the heat of sample points to an intensity buffer.
//
// Every point contributes a radial falloff: the point's peak value at the
// center, decreasing linearly to zero at the radius.  Contributions are
// added, so that repeated clicks at one spot build up a stronger peak.
// Along the rim the falloff is weighted by the anti-aliased coverage of
// the disk.
//
// Create one instance and reuse it.  Internal buffers grow as needed but
// never shrink.  An Accumulator is not safe for concurrent use.
type Accumulator struct {
	vr   *vector.Rasterizer
	mask *image.Alpha // disk coverage, reused across points
}

// Accumulate adds the contributions of all points to buf.  The map
// function converts stored point positions into buffer pixels; radius is
// the falloff radius in buffer pixels.
//
// Points outside the buffer still contribute wherever their disk overlaps
// it.  Non-finite centers and radii are ignored.
func (a *Accumulator) Accumulate(buf *Intensity, points []Point, radius float64, mapFn func(vec.Vec2) vec.Vec2) {
	for _, p := range points {
		a.AddPoint(buf, mapFn(p.Pos), radius, p.peak())
	}
}

// AddPoint adds a single falloff disk with the given center (in buffer
// pixels), radius and peak value.
func (a *Accumulator) AddPoint(buf *Intensity, center vec.Vec2, radius, peak float64) {
	if !isFinite(center.X) || !isFinite(center.Y) || !isFinite(radius) || radius <= 0 {
		return
	}

	// bounding box of the disk, clamped to the buffer
	fx0 := math.Max(math.Floor(center.X-radius), 0)
	fx1 := math.Min(math.Ceil(center.X+radius), float64(buf.Width))
	fy0 := math.Max(math.Floor(center.Y-radius), 0)
	fy1 := math.Min(math.Ceil(center.Y+radius), float64(buf.Height))
	if fx0 >= fx1 || fy0 >= fy1 {
		return
	}
	x0, x1 := int(fx0), int(fx1)
	y0, y1 := int(fy0), int(fy1)

	// Pixels whose center is closer than inner are entirely inside the
	// disk.  Only the pixels along the rim need the coverage mask.
	inner := radius - math.Sqrt2/2
	var mask *image.Alpha
	if farthestCorner(center, fx0, fx1, fy0, fy1) > inner {
		mask = a.coverage(center.X-fx0, center.Y-fy0, radius, x1-x0, y1-y0)
	}

	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		row := buf.Alpha[y*buf.Width : (y+1)*buf.Width]
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - center.X
			d := math.Hypot(dx, dy)
			if d >= radius {
				continue
			}
			v := peak * (1 - d/radius)
			if d > inner {
				cov := mask.Pix[(y-y0)*mask.Stride+(x-x0)]
				v *= float64(cov) / 255
			}
			row[x] += v
		}
	}
}

// coverage rasterizes a disk into the reusable w×h mask.  The center is
// given relative to the top-left corner of the mask.
func (a *Accumulator) coverage(cx, cy, radius float64, w, h int) *image.Alpha {
	if a.vr == nil {
		a.vr = vector.NewRasterizer(w, h)
	} else {
		a.vr.Reset(w, h)
	}
	// Reset restores draw.Over; the mask is reused and must be overwritten.
	a.vr.DrawOp = draw.Src
	addPath(a.vr, diskPath(vec.Vec2{X: cx, Y: cy}, radius))

	n := w * h
	if a.mask == nil || cap(a.mask.Pix) < n {
		a.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		a.mask.Pix = a.mask.Pix[:n]
		a.mask.Stride = w
		a.mask.Rect = image.Rect(0, 0, w, h)
	}

	a.vr.Draw(a.mask, a.mask.Bounds(), image.Opaque, image.Point{})
	return a.mask
}

// diskPath returns the outline of a disk as four cubic Bézier curves.
func diskPath(c vec.Vec2, r float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		const k = 0.5522847498
		kr := k * r

		var buf [3]vec.Vec2
		buf[0] = vec.Vec2{X: c.X, Y: c.Y - r}
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: c.X + kr, Y: c.Y - r}, vec.Vec2{X: c.X + r, Y: c.Y - kr}, vec.Vec2{X: c.X + r, Y: c.Y}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: c.X + r, Y: c.Y + kr}, vec.Vec2{X: c.X + kr, Y: c.Y + r}, vec.Vec2{X: c.X, Y: c.Y + r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: c.X - kr, Y: c.Y + r}, vec.Vec2{X: c.X - r, Y: c.Y + kr}, vec.Vec2{X: c.X - r, Y: c.Y}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		buf[0], buf[1], buf[2] = vec.Vec2{X: c.X - r, Y: c.Y - kr}, vec.Vec2{X: c.X - kr, Y: c.Y - r}, vec.Vec2{X: c.X, Y: c.Y - r}
		if !yield(path.CmdCubeTo, buf[:3]) {
			return
		}
		yield(path.CmdClose, nil)
	}
}

// addPath feeds a path to the rasterizer.
func addPath(r *vector.Rasterizer, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdLineTo:
			r.LineTo(float32(pts[0].X), float32(pts[0].Y))
		case path.CmdQuadTo:
			r.QuadTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y))
		case path.CmdCubeTo:
			r.CubeTo(float32(pts[0].X), float32(pts[0].Y),
				float32(pts[1].X), float32(pts[1].Y),
				float32(pts[2].X), float32(pts[2].Y))
		case path.CmdClose:
			r.ClosePath()
		}
	}
}

// farthestCorner returns the largest distance between c and the pixel
// centers at the corners of the box [x0,x1)×[y0,y1).
func farthestCorner(c vec.Vec2, x0, x1, y0, y1 float64) float64 {
	dx := math.Max(math.Abs(x0+0.5-c.X), math.Abs(x1-0.5-c.X))
	dy := math.Max(math.Abs(y0+0.5-c.Y), math.Abs(y1-0.5-c.Y))
	return math.Hypot(dx, dy)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
