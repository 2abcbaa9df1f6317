package heatmap

import (
	"math"
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name    string
		in      []float64
		want    []float64
		changed bool
	}{
		{"empty", nil, nil, false},
		{"zero", []float64{0, 0, 0}, []float64{0, 0, 0}, false},
		{"full", []float64{255, 100, 0}, []float64{255, 100, 0}, false},
		{"low", []float64{51, 25.5, 0}, []float64{255, 127.5, 0}, true},
		{"high", []float64{510, 255, 0}, []float64{255, 127.5, 0}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := &Intensity{Width: len(c.in), Height: 1, Alpha: slices.Clone(c.in)}
			if buf.Width == 0 {
				buf.Height = 0
			}
			changed := Normalize(buf)
			if changed != c.changed {
				t.Errorf("changed: got %t, want %t", changed, c.changed)
			}
			for i := range c.want {
				if math.Abs(buf.Alpha[i]-c.want[i]) > 1e-9 {
					t.Errorf("value %d: got %g, want %g", i, buf.Alpha[i], c.want[i])
				}
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	buf := NewIntensity(60, 40)
	var acc Accumulator
	acc.Accumulate(buf, []Point{
		NewPoint(20, 20, 1),
		NewPoint(25, 22, 1),
		NewPoint(45, 10, 0.3),
	}, 12, identity)

	Normalize(buf)
	first := make([]uint8, len(buf.Alpha))
	for i, v := range buf.Alpha {
		first[i] = alphaByte(v)
	}
	if first[slices.Index(buf.Alpha, buf.Max())] != 255 {
		t.Error("maximum does not map to 255")
	}

	Normalize(buf)
	for i, v := range buf.Alpha {
		if alphaByte(v) != first[i] {
			t.Fatalf("pixel %d changed from %d to %d", i, first[i], alphaByte(v))
		}
	}
}
