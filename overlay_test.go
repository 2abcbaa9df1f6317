package heatmap

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func fixedConfig(radius int) Config {
	cfg := DefaultConfig()
	cfg.PointRadius = radius
	cfg.AdaptiveRadius = false
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	if o.FitPolicy() != CoverWidget ||
		o.PointRadius() != 25 ||
		!o.AdaptiveRadius() ||
		o.Opacity() != 0.65 ||
		!o.AutoNormalize() ||
		!o.NormalizedCoordinates() ||
		o.ColdColor() != (color.RGBA{0, 120, 255, 255}) ||
		o.HotColor() != (color.RGBA{255, 0, 0, 255}) ||
		o.Crosshair() {
		t.Errorf("unexpected defaults: %+v", o.Config())
	}
	if !o.Dirty() {
		t.Error("new overlay is clean")
	}
}

// TestCenterPoint renders a single normalized point in the middle of a
// 200x100 surface without background.
func TestCenterPoint(t *testing.T) {
	o := NewOverlay(fixedConfig(25))
	o.Resize(200, 100)
	o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)

	img := o.Raster()
	if img == nil {
		t.Fatal("no raster")
	}
	if o.Dirty() {
		t.Error("cache still dirty")
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 200, 100) {
		t.Errorf("raster bounds %v", b)
	}

	heat := o.Intensity()
	if got := heat.Byte(100, 50); got != 255 {
		t.Errorf("center intensity %d, want 255", got)
	}
	for _, p := range [][2]int{{126, 50}, {100, 76}, {74, 50}, {0, 0}} {
		if got := heat.At(p[0], p[1]); got != 0 {
			t.Errorf("pixel %v: intensity %g, want 0", p, got)
		}
	}

	if got, want := img.RGBAAt(100, 50), (color.RGBA{255, 0, 0, 255}); got != want {
		t.Errorf("center color %v, want %v", got, want)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("corner color %v, want transparent", got)
	}
}

func TestCoincidentPoints(t *testing.T) {
	cfg := fixedConfig(25)
	cfg.AutoNormalize = false
	o := NewOverlay(cfg)
	o.Resize(200, 100)
	o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)
	single := o.Intensity().Max()

	o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)
	double := o.Intensity().Max()
	if math.Abs(double-2*single) > 1e-9 {
		t.Errorf("two points give peak %g, want %g", double, 2*single)
	}
	if got := o.Raster().RGBAAt(100, 50).A; got != 255 {
		t.Errorf("saturated alpha %d, want 255", got)
	}

	o.SetAutoNormalize(true)
	if got := o.Intensity().Max(); math.Abs(got-255) > 1e-9 {
		t.Errorf("normalized peak %g, want 255", got)
	}
}

func TestResizeRoundTrip(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.Resize(200, 100)
	o.SetClickPoints([]vec.Vec2{{X: 0.3, Y: 0.4}, {X: 0.6, Y: 0.5}, {X: 0.62, Y: 0.55}})
	before := slices.Clone(o.Raster().Pix)

	o.Resize(0, 0)
	if img := o.Raster(); img != nil {
		t.Error("raster for empty surface")
	}
	if !o.Dirty() {
		t.Error("empty surface marked clean")
	}
	if img := o.Paint(); img != nil {
		t.Error("paint on empty surface")
	}

	o.Resize(200, 100)
	after := o.Raster()
	if after == nil {
		t.Fatal("no raster after resize")
	}
	if !bytes.Equal(before, after.Pix) {
		t.Error("raster changed after resize round trip")
	}
}

func TestNegativeSize(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.Resize(-5, 10)
	if w, h := o.Size(); w != 0 || h != 10 {
		t.Errorf("size %dx%d", w, h)
	}
	if o.Raster() != nil {
		t.Error("raster for empty surface")
	}
}

func TestCacheReuse(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.Resize(64, 64)
	o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)

	first := o.Raster()
	if second := o.Raster(); second != first {
		t.Error("clean cache was rebuilt")
	}

	// compositing settings keep the cache
	o.SetOpacity(0.2)
	o.SetCrosshair(true)
	if o.Dirty() {
		t.Error("opacity or crosshair invalidated the cache")
	}
	if o.Raster() != first {
		t.Error("raster rebuilt after opacity change")
	}
}

func TestInvalidation(t *testing.T) {
	mutators := map[string]func(o *Overlay){
		"fit":        func(o *Overlay) { o.SetFitPolicy(FitInside) },
		"background": func(o *Overlay) { o.SetBackground(image.NewRGBA(image.Rect(0, 0, 10, 20))) },
		"add":        func(o *Overlay) { o.AddClick(vec.Vec2{X: 0.1, Y: 0.1}, 1) },
		"set":        func(o *Overlay) { o.SetClickPoints(nil) },
		"points":     func(o *Overlay) { o.SetPoints([]Point{NewPoint(0.2, 0.2, 3)}) },
		"clear":      func(o *Overlay) { o.ClearClicks() },
		"radius":     func(o *Overlay) { o.SetPointRadius(7) },
		"adaptive":   func(o *Overlay) { o.SetAdaptiveRadius(false) },
		"normalize":  func(o *Overlay) { o.SetAutoNormalize(false) },
		"coords":     func(o *Overlay) { o.SetNormalizedCoordinates(false) },
		"cold":       func(o *Overlay) { o.SetColdColor(color.RGBA{1, 2, 3, 255}) },
		"hot":        func(o *Overlay) { o.SetHotColor(color.RGBA{4, 5, 6, 255}) },
		"resize":     func(o *Overlay) { o.Resize(50, 40) },
	}

	for name, mutate := range mutators {
		t.Run(name, func(t *testing.T) {
			o := NewOverlay(DefaultConfig())
			o.Resize(40, 30)
			o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)
			o.Raster()
			if o.Dirty() {
				t.Fatal("cache dirty after rebuild")
			}
			mutate(o)
			if !o.Dirty() {
				t.Error("cache not invalidated")
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	var props []Property
	o.OnChange(func(p Property) { props = append(props, p) })
	updates := 0
	o.SetUpdateFunc(func() { updates++ })

	// unchanged values are not reported
	o.SetOpacity(0.65)
	o.SetFitPolicy(CoverWidget)
	o.ClearClicks()
	if len(props) != 0 || updates != 0 {
		t.Errorf("spurious notifications %v, %d updates", props, updates)
	}

	o.SetOpacity(2)
	o.SetPointRadius(0)
	o.AddClick(vec.Vec2{}, 1)
	o.SetHotColor(color.RGBA{1, 1, 1, 0})
	o.SetCrosshair(true)
	o.Resize(10, 10)

	want := []Property{PropOpacity, PropPointRadius, PropClickPoints, PropColorRamp, PropCrosshair}
	if !slices.Equal(props, want) {
		t.Errorf("got %v, want %v", props, want)
	}
	if updates != 6 {
		t.Errorf("%d updates, want 6", updates)
	}

	if o.Opacity() != 1 {
		t.Errorf("opacity %g not clamped", o.Opacity())
	}
	if o.PointRadius() != 1 {
		t.Errorf("radius %d not floored", o.PointRadius())
	}
	if o.HotColor().A != 255 {
		t.Error("ramp color not opaque")
	}
}

func TestApply(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	cfg := Config{
		Fit:                   FitInside,
		PointRadius:           12,
		AdaptiveRadius:        false,
		Opacity:               0.5,
		AutoNormalize:         false,
		NormalizedCoordinates: false,
		Ramp:                  Ramp{Cold: color.RGBA{1, 2, 3, 255}, Hot: color.RGBA{4, 5, 6, 255}},
		Crosshair:             true,
	}
	count := 0
	o.OnChange(func(Property) { count++ })
	o.Apply(cfg)
	if got := o.Config(); got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
	if count != 9 {
		t.Errorf("%d notifications, want 9", count)
	}

	o.Apply(DefaultConfig())
	if got := o.Config(); got != DefaultConfig() {
		t.Errorf("got %+v, want defaults", got)
	}
}

func TestPointAccess(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.SetPoints([]Point{NewPoint(0.1, 0.2, 0), {Pos: vec.Vec2{X: 0.3, Y: 0.4}, Weight: 3}})

	pts := o.Points()
	if len(pts) != 2 || pts[0].Weight != MinWeight || pts[1].Weight != 3 {
		t.Errorf("unexpected points %v", pts)
	}
	pts[0].Weight = 100
	if o.Points()[0].Weight != MinWeight {
		t.Error("Points returned internal storage")
	}

	o.SetClickPoints(o.ClickPoints())
	for _, p := range o.Points() {
		if p.Weight != DefaultWeight {
			t.Errorf("weight %g after SetClickPoints", p.Weight)
		}
	}
	if got := o.ClickPoints(); !slices.Equal(got, []vec.Vec2{{X: 0.1, Y: 0.2}, {X: 0.3, Y: 0.4}}) {
		t.Errorf("positions %v", got)
	}

	o.ClearClicks()
	if len(o.Points()) != 0 {
		t.Error("points left after clear")
	}
}

func TestClearEmptiesRaster(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.Resize(50, 50)
	o.AddClick(vec.Vec2{X: 0.5, Y: 0.5}, 1)
	o.Raster()
	o.ClearClicks()

	if !o.Intensity().IsZero() {
		t.Error("intensity left after clear")
	}
	for i, v := range o.Raster().Pix {
		if v != 0 {
			t.Fatalf("byte %d is %d after clear", i, v)
		}
	}
}

func TestAddClickAt(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.SetFitPolicy(FitInside)
	o.SetBackground(image.NewRGBA(image.Rect(0, 0, 200, 200)))
	o.Resize(300, 100)

	if !o.AddClickAt(vec.Vec2{X: 150, Y: 50}, 1) {
		t.Fatal("click inside the background rejected")
	}
	if o.AddClickAt(vec.Vec2{X: 50, Y: 50}, 1) {
		t.Error("click in the letterbox accepted")
	}

	pts := o.ClickPoints()
	if len(pts) != 1 || pts[0].Sub(vec.Vec2{X: 0.5, Y: 0.5}).Length() > 1e-9 {
		t.Errorf("got %v", pts)
	}

	o.SetNormalizedCoordinates(false)
	o.ClearClicks()
	o.AddClickAt(vec.Vec2{X: 125, Y: 25}, 1)
	pts = o.ClickPoints()
	if len(pts) != 1 || pts[0].Sub(vec.Vec2{X: 50, Y: 50}).Length() > 1e-9 {
		t.Errorf("raw click: got %v", pts)
	}
}

// TestRawCoordinates checks that raw points follow the background when the
// surface is resized.
func TestRawCoordinates(t *testing.T) {
	cfg := fixedConfig(5)
	cfg.NormalizedCoordinates = false
	cfg.Fit = FitInside
	o := NewOverlay(cfg)
	o.SetBackground(image.NewRGBA(image.Rect(0, 0, 800, 400)))
	o.AddClick(vec.Vec2{X: 200, Y: 100}, 1)

	o.Resize(400, 200)
	if got := o.MapToDisplay(vec.Vec2{X: 200, Y: 100}); got != (vec.Vec2{X: 100, Y: 50}) {
		t.Errorf("mapped to %v", got)
	}
	if o.Intensity().Byte(100, 50) != 255 {
		t.Error("no peak at the mapped position")
	}

	o.Resize(800, 400)
	if o.Intensity().Byte(200, 100) != 255 {
		t.Error("no peak after resize")
	}
}

func TestEffectiveRadius(t *testing.T) {
	o := NewOverlay(DefaultConfig())
	o.SetFitPolicy(FitInside)
	o.SetBackground(image.NewRGBA(image.Rect(0, 0, 200, 200)))
	o.Resize(300, 100)
	if got := o.EffectiveRadius(); math.Abs(got-12.5) > 1e-9 {
		t.Errorf("got %g, want 12.5", got)
	}

	o.SetAdaptiveRadius(false)
	if got := o.EffectiveRadius(); got != 25 {
		t.Errorf("got %g, want 25", got)
	}
}

func TestPropertyString(t *testing.T) {
	if s := PropColorRamp.String(); s != "colorRamp" {
		t.Errorf("got %q", s)
	}
	if s := Property(99).String(); s != "Property(99)" {
		t.Errorf("got %q", s)
	}
}
