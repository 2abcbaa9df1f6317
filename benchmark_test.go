package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
)

// BenchmarkAccumulate benchmarks adding a single point of various radii.
func BenchmarkAccumulate(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			buf := NewIntensity(size, size)
			var acc Accumulator

			center := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			radius := float64(size) * 0.45

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				acc.AddPoint(buf, center, radius, peakAlpha)
			}
		})
	}
}

// BenchmarkVectorDisk benchmarks x/image/vector filling a disk of the same
// size, for comparison.  This only computes coverage, without the falloff.
func BenchmarkVectorDisk(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := vec.Vec2{X: float64(size) / 2, Y: float64(size) / 2}
			radius := float64(size) * 0.45

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				addPath(r, diskPath(center, radius))
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkRaster benchmarks a complete rebuild of the heat layer.
func BenchmarkRaster(b *testing.B) {
	pts := make([]vec.Vec2, 0, 100)
	for i := range 100 {
		// deterministic scatter over the unit square
		x := float64((i*37)%100) / 100
		y := float64((i*61)%100) / 100
		pts = append(pts, vec.Vec2{X: x, Y: y})
	}

	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("points=%d", n), func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.AdaptiveRadius = false
			o := NewOverlay(cfg)
			o.Resize(900, 600)
			o.SetClickPoints(pts[:n])

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				o.dirty = true
				o.Raster()
			}
		})
	}
}

func BenchmarkColorize(b *testing.B) {
	buf := NewIntensity(900, 600)
	for i := range buf.Alpha {
		buf.Alpha[i] = float64(i % 256)
	}

	b.ReportAllocs()
	for b.Loop() {
		Colorize(buf, DefaultRamp)
	}
}
