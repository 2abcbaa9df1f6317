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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FitPolicy selects how the background image is scaled into the surface.
// Both policies preserve the aspect ratio and center the image.
type FitPolicy int

const (
	// FitInside scales the image to fit entirely inside the surface,
	// leaving empty bars along one axis.
	FitInside FitPolicy = iota

	// CoverWidget scales the image to cover the whole surface,
	// cropping the overflow along one axis.
	CoverWidget
)

func (p FitPolicy) String() string {
	switch p {
	case FitInside:
		return "fit-inside"
	case CoverWidget:
		return "cover-widget"
	default:
		return fmt.Sprintf("FitPolicy(%d)", int(p))
	}
}

// ParseFitPolicy converts the output of [FitPolicy.String] back
// into a FitPolicy.
func ParseFitPolicy(s string) (FitPolicy, error) {
	switch s {
	case "fit-inside", "FitInside":
		return FitInside, nil
	case "cover-widget", "CoverWidget":
		return CoverWidget, nil
	}
	return 0, fmt.Errorf("unknown fit policy %q", s)
}

// Geometry describes the display surface and the background image shown
// on it.  All heatmap coordinates are derived from a Geometry.
type Geometry struct {
	Width, Height int // surface size in pixels

	// ImageWidth and ImageHeight give the native size of the background
	// image.  If either is zero, no image is present.
	ImageWidth, ImageHeight int

	Fit FitPolicy
}

func (g Geometry) hasImage() bool {
	return g.ImageWidth > 0 && g.ImageHeight > 0
}

// DisplayRect returns the rectangle, in surface pixels, covered by the
// background image.  LLx and LLy hold the top-left corner.  Without an
// image the rectangle is the whole surface.  For a surface with zero area
// the zero rectangle is returned.
func (g Geometry) DisplayRect() rect.Rect {
	if g.Width <= 0 || g.Height <= 0 {
		return rect.Rect{}
	}
	W, H := float64(g.Width), float64(g.Height)
	if !g.hasImage() {
		return rect.Rect{URx: W, URy: H}
	}

	w, h := scaleSize(float64(g.ImageWidth), float64(g.ImageHeight), W, H, g.Fit)
	x0 := (W - w) / 2
	y0 := (H - h) / 2
	return rect.Rect{LLx: x0, LLy: y0, URx: x0 + w, URy: y0 + h}
}

// scaleSize scales (w, h) to the box (boxW, boxH), keeping the aspect
// ratio.  FitInside gives the largest size inside the box, CoverWidget the
// smallest size containing the box.
func scaleSize(w, h, boxW, boxH float64, fit FitPolicy) (float64, float64) {
	rw := boxH * w / h
	useHeight := rw <= boxW
	if fit == CoverWidget {
		useHeight = rw >= boxW
	}
	if useHeight {
		return rw, boxH
	}
	return boxW, boxW * h / w
}

// isEmpty reports whether r has no area.  NaN coordinates count as empty.
func isEmpty(r rect.Rect) bool {
	return !(r.URx > r.LLx && r.URy > r.LLy)
}

// ImageScale returns the smaller of the two per-axis scale factors between
// the native background size and the display rectangle.  The second return
// value is false if there is no image or the display rectangle is empty.
func (g Geometry) ImageScale() (float64, bool) {
	if !g.hasImage() {
		return 0, false
	}
	r := g.DisplayRect()
	if isEmpty(r) {
		return 0, false
	}
	sx := (r.URx - r.LLx) / float64(g.ImageWidth)
	sy := (r.URy - r.LLy) / float64(g.ImageHeight)
	return min(sx, sy), true
}

// Transform returns the matrix which maps stored point coordinates to
// surface pixels.  If normalized is set, points are in [0,1]² relative to
// the display rectangle, otherwise they are in native image pixels.
// The result never has a shear or rotation component.
func (g Geometry) Transform(normalized bool) matrix.Matrix {
	r := g.DisplayRect()
	if normalized {
		if isEmpty(r) {
			return matrix.Matrix{float64(g.Width), 0, 0, float64(g.Height), 0, 0}
		}
		return matrix.Matrix{r.URx - r.LLx, 0, 0, r.URy - r.LLy, r.LLx, r.LLy}
	}

	if g.hasImage() && !isEmpty(r) {
		sx := (r.URx - r.LLx) / float64(g.ImageWidth)
		sy := (r.URy - r.LLy) / float64(g.ImageHeight)
		return matrix.Matrix{sx, 0, 0, sy, r.LLx, r.LLy}
	}
	return matrix.Identity
}

// MapToDisplay converts a stored point position into surface pixels.
func (g Geometry) MapToDisplay(p vec.Vec2, normalized bool) vec.Vec2 {
	return apply(g.Transform(normalized), p)
}

// ClickToPoint converts a position on the surface into the coordinate
// space of the stored points.  The click is accepted only if it lies
// inside the display rectangle (edges included) and the rectangle has
// positive area.
func (g Geometry) ClickToPoint(pos vec.Vec2, normalized bool) (vec.Vec2, bool) {
	r := g.DisplayRect()
	if isEmpty(r) ||
		pos.X < r.LLx || pos.X > r.URx ||
		pos.Y < r.LLy || pos.Y > r.URy {
		return vec.Vec2{}, false
	}

	M := g.Transform(normalized)
	return vec.Vec2{
		X: (pos.X - M[4]) / M[0],
		Y: (pos.Y - M[5]) / M[3],
	}, true
}

// apply transforms p by the affine matrix M.
func apply(M matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: M[0]*p.X + M[2]*p.Y + M[4],
		Y: M[1]*p.X + M[3]*p.Y + M[5],
	}
}
