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
	"image"
	"image/color"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Property identifies a group of overlay settings in change notifications.
type Property int

// These are the properties reported to [Overlay.OnChange] listeners.
const (
	PropScaleMode Property = iota
	PropBaseImage
	PropClickPoints
	PropPointRadius
	PropAdaptiveRadius
	PropOpacity
	PropAutoNormalize
	PropNormalizedCoordinates
	PropColorRamp
	PropCrosshair
)

var propNames = [...]string{
	PropScaleMode:             "scaleMode",
	PropBaseImage:             "baseImage",
	PropClickPoints:           "clickPoints",
	PropPointRadius:           "pointRadius",
	PropAdaptiveRadius:        "adaptiveRadius",
	PropOpacity:               "opacity",
	PropAutoNormalize:         "autoNormalize",
	PropNormalizedCoordinates: "normalizedCoordinates",
	PropColorRamp:             "colorRamp",
	PropCrosshair:             "crosshair",
}

func (p Property) String() string {
	if p >= 0 && int(p) < len(propNames) {
		return propNames[p]
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

// Config holds the user-visible settings of an overlay.
type Config struct {
	Fit FitPolicy

	// PointRadius is the base accumulation radius.  Values below 1 are
	// raised to 1.
	PointRadius    int
	AdaptiveRadius bool

	// Opacity of the heat layer, clamped to [0, 1].
	Opacity float64

	AutoNormalize bool

	// NormalizedCoordinates selects whether point positions are given
	// relative to the displayed background ([0,1]²), or in native
	// background pixels.
	NormalizedCoordinates bool

	Ramp      Ramp
	Crosshair bool
}

// DefaultConfig returns the settings of a newly created overlay.
func DefaultConfig() Config {
	return Config{
		Fit:                   CoverWidget,
		PointRadius:           25,
		AdaptiveRadius:        true,
		Opacity:               0.65,
		AutoNormalize:         true,
		NormalizedCoordinates: true,
		Ramp:                  DefaultRamp,
		Crosshair:             false,
	}
}

// Overlay renders weighted sample points as a heatmap over a background
// image.
//
// The colorized heat raster is cached.  Changing any input which affects
// the raster marks the cache as dirty, and the raster is rebuilt in full
// on the next call to [Overlay.Raster] or [Overlay.Paint].  Opacity and
// the crosshair are applied while compositing and do not invalidate the
// cache.
//
// An Overlay is not safe for concurrent use.  The host must confine it to
// one goroutine, or serialize all calls.
type Overlay struct {
	cfg    Config
	width  int
	height int

	bg      image.Image
	bgCache *image.RGBA // scaled background, see background()
	bgRect  rect.Rect

	points []Point

	dirty  bool
	raster *image.RGBA
	heat   *Intensity
	acc    Accumulator

	listeners []func(Property)
	update    func()
}

// NewOverlay returns an overlay with the given settings and an empty
// surface.  Call [Overlay.Resize] before rendering.
func NewOverlay(cfg Config) *Overlay {
	o := &Overlay{
		heat:  &Intensity{},
		dirty: true,
	}
	o.cfg = sanitize(cfg)
	return o
}

func sanitize(cfg Config) Config {
	cfg.PointRadius = max(cfg.PointRadius, 1)
	cfg.Opacity = clampUnit(cfg.Opacity)
	cfg.Ramp.Cold.A = 255
	cfg.Ramp.Hot.A = 255
	return cfg
}

func clampUnit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return min(max(x, 0), 1)
}

// Config returns the current settings.
func (o *Overlay) Config() Config {
	return o.cfg
}

// Apply changes all settings at once.  Listeners are notified for every
// property which actually changed.
func (o *Overlay) Apply(cfg Config) {
	cfg = sanitize(cfg)
	o.SetFitPolicy(cfg.Fit)
	o.SetPointRadius(cfg.PointRadius)
	o.SetAdaptiveRadius(cfg.AdaptiveRadius)
	o.SetOpacity(cfg.Opacity)
	o.SetAutoNormalize(cfg.AutoNormalize)
	o.SetNormalizedCoordinates(cfg.NormalizedCoordinates)
	o.SetColdColor(cfg.Ramp.Cold)
	o.SetHotColor(cfg.Ramp.Hot)
	o.SetCrosshair(cfg.Crosshair)
}

// OnChange registers a function which is called whenever a property
// changes.
func (o *Overlay) OnChange(fn func(Property)) {
	o.listeners = append(o.listeners, fn)
}

// SetUpdateFunc sets the function used to ask the host for a repaint.
// It is called after every change which affects the rendered output.
func (o *Overlay) SetUpdateFunc(fn func()) {
	o.update = fn
}

// changed marks the cache dirty (if invalidate is set), notifies the
// listeners and requests a repaint.
func (o *Overlay) changed(p Property, invalidate bool) {
	if invalidate {
		o.dirty = true
	}
	for _, fn := range o.listeners {
		fn(p)
	}
	o.requestUpdate()
}

func (o *Overlay) requestUpdate() {
	if o.update != nil {
		o.update()
	}
}

// Resize sets the size of the display surface.  Zero and negative sizes
// are allowed and give an empty surface.
func (o *Overlay) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == o.width && height == o.height {
		return
	}
	o.width, o.height = width, height
	o.dirty = true
	o.requestUpdate()
}

// Size returns the size of the display surface.
func (o *Overlay) Size() (width, height int) {
	return o.width, o.height
}

// FitPolicy returns how the background is fitted into the surface.
func (o *Overlay) FitPolicy() FitPolicy {
	return o.cfg.Fit
}

// SetFitPolicy changes how the background is fitted into the surface.
func (o *Overlay) SetFitPolicy(fit FitPolicy) {
	if fit == o.cfg.Fit {
		return
	}
	o.cfg.Fit = fit
	o.changed(PropScaleMode, true)
}

// Background returns the background image, or nil.
func (o *Overlay) Background() image.Image {
	return o.bg
}

// SetBackground sets the background image.  Use nil to remove it.
// Images with zero width or height are treated as absent.
func (o *Overlay) SetBackground(img image.Image) {
	if img == nil && o.bg == nil {
		return
	}
	o.bg = img
	o.bgCache = nil
	o.changed(PropBaseImage, true)
}

// ClickPoints returns the positions of all points.
func (o *Overlay) ClickPoints() []vec.Vec2 {
	res := make([]vec.Vec2, len(o.points))
	for i, p := range o.points {
		res[i] = p.Pos
	}
	return res
}

// Points returns a copy of all points, including their weights.
func (o *Overlay) Points() []Point {
	return append([]Point(nil), o.points...)
}

// SetClickPoints replaces all points.  The new points have weight
// [DefaultWeight].
func (o *Overlay) SetClickPoints(pos []vec.Vec2) {
	pts := make([]Point, len(pos))
	for i, p := range pos {
		pts[i] = Point{Pos: p, Weight: DefaultWeight}
	}
	o.points = pts
	o.changed(PropClickPoints, true)
}

// SetPoints replaces all points.  Weights below [MinWeight] are raised.
func (o *Overlay) SetPoints(pts []Point) {
	o.points = o.points[:0]
	for _, p := range pts {
		p.Weight = floorWeight(p.Weight)
		o.points = append(o.points, p)
	}
	o.changed(PropClickPoints, true)
}

// AddClick appends a point.  The position uses the overlay's coordinate
// mode.  Weights below [MinWeight] are raised.
func (o *Overlay) AddClick(pos vec.Vec2, weight float64) {
	o.points = append(o.points, Point{Pos: pos, Weight: floorWeight(weight)})
	o.changed(PropClickPoints, true)
}

// AddClickAt adds a point at the given surface position.  The point is
// only added if the position lies inside the displayed background.
// The return value reports whether a point was added.
func (o *Overlay) AddClickAt(surfacePos vec.Vec2, weight float64) bool {
	p, ok := o.ClickToPoint(surfacePos)
	if !ok {
		return false
	}
	o.AddClick(p, weight)
	return true
}

// ClearClicks removes all points.
func (o *Overlay) ClearClicks() {
	if len(o.points) == 0 {
		return
	}
	o.points = o.points[:0]
	o.changed(PropClickPoints, true)
}

// PointRadius returns the base accumulation radius.
func (o *Overlay) PointRadius() int {
	return o.cfg.PointRadius
}

// SetPointRadius sets the base accumulation radius.
// Values below 1 are raised to 1.
func (o *Overlay) SetPointRadius(r int) {
	r = max(r, 1)
	if r == o.cfg.PointRadius {
		return
	}
	o.cfg.PointRadius = r
	o.changed(PropPointRadius, true)
}

// AdaptiveRadius reports whether the radius follows the background scale.
func (o *Overlay) AdaptiveRadius() bool {
	return o.cfg.AdaptiveRadius
}

// SetAdaptiveRadius sets whether the radius follows the background scale.
func (o *Overlay) SetAdaptiveRadius(on bool) {
	if on == o.cfg.AdaptiveRadius {
		return
	}
	o.cfg.AdaptiveRadius = on
	o.changed(PropAdaptiveRadius, true)
}

// Opacity returns the opacity of the heat layer.
func (o *Overlay) Opacity() float64 {
	return o.cfg.Opacity
}

// SetOpacity sets the opacity of the heat layer, clamped to [0, 1].
// The cached raster stays valid.
func (o *Overlay) SetOpacity(alpha float64) {
	alpha = clampUnit(alpha)
	if alpha == o.cfg.Opacity {
		return
	}
	o.cfg.Opacity = alpha
	o.changed(PropOpacity, false)
}

// AutoNormalize reports whether the heat is rescaled to full intensity.
func (o *Overlay) AutoNormalize() bool {
	return o.cfg.AutoNormalize
}

// SetAutoNormalize sets whether the heat is rescaled to full intensity.
func (o *Overlay) SetAutoNormalize(on bool) {
	if on == o.cfg.AutoNormalize {
		return
	}
	o.cfg.AutoNormalize = on
	o.changed(PropAutoNormalize, true)
}

// NormalizedCoordinates reports whether point positions are relative to
// the displayed background.
func (o *Overlay) NormalizedCoordinates() bool {
	return o.cfg.NormalizedCoordinates
}

// SetNormalizedCoordinates selects the coordinate mode of the points.
// Existing points are not converted.
func (o *Overlay) SetNormalizedCoordinates(on bool) {
	if on == o.cfg.NormalizedCoordinates {
		return
	}
	o.cfg.NormalizedCoordinates = on
	o.changed(PropNormalizedCoordinates, true)
}

// ColdColor returns the color used for the lowest intensities.
func (o *Overlay) ColdColor() color.RGBA {
	return o.cfg.Ramp.Cold
}

// SetColdColor sets the color used for the lowest intensities.
// The alpha component is ignored.
func (o *Overlay) SetColdColor(c color.RGBA) {
	c.A = 255
	if c == o.cfg.Ramp.Cold {
		return
	}
	o.cfg.Ramp.Cold = c
	o.changed(PropColorRamp, true)
}

// HotColor returns the color used for full intensity.
func (o *Overlay) HotColor() color.RGBA {
	return o.cfg.Ramp.Hot
}

// SetHotColor sets the color used for full intensity.
// The alpha component is ignored.
func (o *Overlay) SetHotColor(c color.RGBA) {
	c.A = 255
	if c == o.cfg.Ramp.Hot {
		return
	}
	o.cfg.Ramp.Hot = c
	o.changed(PropColorRamp, true)
}

// Crosshair reports whether the debug crosshair is drawn.
func (o *Overlay) Crosshair() bool {
	return o.cfg.Crosshair
}

// SetCrosshair turns the debug crosshair on or off.
// The cached raster stays valid.
func (o *Overlay) SetCrosshair(on bool) {
	if on == o.cfg.Crosshair {
		return
	}
	o.cfg.Crosshair = on
	o.changed(PropCrosshair, false)
}

// Geometry returns the current display geometry.
func (o *Overlay) Geometry() Geometry {
	g := Geometry{
		Width:  o.width,
		Height: o.height,
		Fit:    o.cfg.Fit,
	}
	if o.bg != nil {
		b := o.bg.Bounds()
		g.ImageWidth, g.ImageHeight = b.Dx(), b.Dy()
	}
	return g
}

// DisplayRect returns the surface rectangle covered by the background.
func (o *Overlay) DisplayRect() rect.Rect {
	return o.Geometry().DisplayRect()
}

// MapToDisplay converts a point position into surface pixels.
func (o *Overlay) MapToDisplay(p vec.Vec2) vec.Vec2 {
	return o.Geometry().MapToDisplay(p, o.cfg.NormalizedCoordinates)
}

// ClickToPoint converts a surface position into point coordinates.
// The second return value is false if the position lies outside the
// displayed background.
func (o *Overlay) ClickToPoint(surfacePos vec.Vec2) (vec.Vec2, bool) {
	return o.Geometry().ClickToPoint(surfacePos, o.cfg.NormalizedCoordinates)
}

// EffectiveRadius returns the accumulation radius in surface pixels.
func (o *Overlay) EffectiveRadius() float64 {
	p := RadiusPolicy{Base: o.cfg.PointRadius, Adaptive: o.cfg.AdaptiveRadius}
	return p.Radius(o.Geometry(), o.cfg.NormalizedCoordinates)
}

// Dirty reports whether the cached raster must be rebuilt before use.
func (o *Overlay) Dirty() bool {
	return o.dirty
}

// Raster returns the colorized heat layer, rebuilding it if necessary.
// The image must not be modified by the caller.  For an empty surface the
// result is nil.
func (o *Overlay) Raster() *image.RGBA {
	if !o.dirty {
		return o.raster
	}
	if o.width <= 0 || o.height <= 0 {
		o.raster = nil
		Logger().Debug("heatmap: empty surface, raster skipped",
			slog.Int("width", o.width), slog.Int("height", o.height))
		return nil
	}

	g := o.Geometry()
	normalized := o.cfg.NormalizedCoordinates
	radius := o.EffectiveRadius()
	M := g.Transform(normalized)

	o.heat.Reset(o.width, o.height)
	o.acc.Accumulate(o.heat, o.points, radius, func(p vec.Vec2) vec.Vec2 {
		return apply(M, p)
	})
	peak := o.heat.Max()
	rescaled := false
	if o.cfg.AutoNormalize {
		rescaled = Normalize(o.heat)
	}
	o.raster = Colorize(o.heat, o.cfg.Ramp)
	o.dirty = false

	Logger().Debug("heatmap: raster rebuilt",
		slog.Int("width", o.width),
		slog.Int("height", o.height),
		slog.Int("points", len(o.points)),
		slog.Float64("radius", radius),
		slog.Float64("max", peak),
		slog.Bool("normalized", rescaled))
	return o.raster
}

// Intensity returns the intensity buffer behind the current raster,
// rebuilding it if necessary.  The buffer is reused by later rebuilds.
// For an empty surface the result is nil.
func (o *Overlay) Intensity() *Intensity {
	if o.Raster() == nil {
		return nil
	}
	return o.heat
}
