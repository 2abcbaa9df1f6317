package main

import (
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/heatmap"
)

func TestParseClick(t *testing.T) {
	cases := []struct {
		in   string
		want heatmap.Point
	}{
		{"120,80", heatmap.Point{Pos: vec.Vec2{X: 120, Y: 80}, Weight: heatmap.DefaultWeight}},
		{"1.5, 2.25", heatmap.Point{Pos: vec.Vec2{X: 1.5, Y: 2.25}, Weight: heatmap.DefaultWeight}},
		{"10,20,3", heatmap.Point{Pos: vec.Vec2{X: 10, Y: 20}, Weight: 3}},
	}
	for _, c := range cases {
		got, err := parseClick(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	for _, in := range []string{"", "5", "1,2,3,4", "a,2", "1,b", "1,2,w"} {
		if _, err := parseClick(in); err == nil {
			t.Errorf("%q accepted", in)
		}
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := loadScenario("", "sample/clicks")
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "clicks" || s.Width != 900 || s.Height != 600 {
		t.Errorf("got %s %dx%d", s.Name, s.Width, s.Height)
	}

	for _, name := range []string{"sample/missing", "nosuch/clicks", "clicks", ""} {
		if _, err := loadScenario("", name); err == nil {
			t.Errorf("%q accepted", name)
		}
	}

	if _, err := loadScenario("does-not-exist.yaml", "sample/clicks"); err == nil {
		t.Error("missing scenario file accepted")
	}
}
