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

package scenarios

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/heatmap"
)

// file is the on-disk form of a scenario.  Settings which are missing
// from a file take the values from [heatmap.DefaultConfig].  Nil settings
// are never written.
type file struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`

	Background     string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	BackdropWidth  int    `json:"backdrop_width,omitempty" yaml:"backdrop_width,omitempty" toml:"backdrop_width,omitempty"`
	BackdropHeight int    `json:"backdrop_height,omitempty" yaml:"backdrop_height,omitempty" toml:"backdrop_height,omitempty"`
	BackdropColor  string `json:"backdrop_color,omitempty" yaml:"backdrop_color,omitempty" toml:"backdrop_color,omitempty"`

	Fit                   *string  `json:"fit,omitempty" yaml:"fit,omitempty" toml:"fit"`
	PointRadius           *int     `json:"point_radius,omitempty" yaml:"point_radius,omitempty" toml:"point_radius"`
	AdaptiveRadius        *bool    `json:"adaptive_radius,omitempty" yaml:"adaptive_radius,omitempty" toml:"adaptive_radius"`
	Opacity               *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty" toml:"opacity"`
	AutoNormalize         *bool    `json:"auto_normalize,omitempty" yaml:"auto_normalize,omitempty" toml:"auto_normalize"`
	NormalizedCoordinates *bool    `json:"normalized_coordinates,omitempty" yaml:"normalized_coordinates,omitempty" toml:"normalized_coordinates"`
	ColdColor             *string  `json:"cold_color,omitempty" yaml:"cold_color,omitempty" toml:"cold_color"`
	HotColor              *string  `json:"hot_color,omitempty" yaml:"hot_color,omitempty" toml:"hot_color"`
	Crosshair             *bool    `json:"crosshair,omitempty" yaml:"crosshair,omitempty" toml:"crosshair"`

	Points []filePoint `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	Clicks []filePoint `json:"clicks,omitempty" yaml:"clicks,omitempty" toml:"clicks,omitempty"`
}

type filePoint struct {
	X      float64 `json:"x" yaml:"x" toml:"x"`
	Y      float64 `json:"y" yaml:"y" toml:"y"`
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty" toml:"weight,omitempty"`
}

// Load reads a scenario file.  The format is chosen by the file name
// extension: ".yaml" or ".yml", ".toml" or ".json".  A relative
// background path is taken relative to the directory of the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	case ".toml":
		_, err = toml.Decode(string(data), &f)
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		return nil, fmt.Errorf("%s: unsupported scenario format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s, err := f.scenario()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Background != "" && !filepath.IsAbs(s.Background) {
		s.Background = filepath.Join(filepath.Dir(path), s.Background)
	}
	return s, nil
}

// Save writes a scenario file, in the format given by the file name
// extension (see [Load]).
func Save(path string, s *Scenario) error {
	f := fromScenario(s)

	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(f)
		if err == nil {
			err = enc.Close()
		}
	case ".toml":
		err = toml.NewEncoder(&buf).Encode(f)
	case ".json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(f)
	default:
		return fmt.Errorf("%s: unsupported scenario format %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (f *file) scenario() (*Scenario, error) {
	if f.Width < 0 || f.Height < 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", f.Width, f.Height)
	}
	s := &Scenario{
		Name:       f.Name,
		Width:      f.Width,
		Height:     f.Height,
		Background: f.Background,
	}

	if f.BackdropWidth > 0 && f.BackdropHeight > 0 {
		b := &Backdrop{Width: f.BackdropWidth, Height: f.BackdropHeight, Color: color.RGBA{A: 255}}
		if f.BackdropColor != "" {
			c, err := ParseColor(f.BackdropColor)
			if err != nil {
				return nil, err
			}
			b.Color = c
		}
		s.Backdrop = b
	}

	cfg := heatmap.DefaultConfig()
	if f.Fit != nil {
		p, err := heatmap.ParseFitPolicy(*f.Fit)
		if err != nil {
			return nil, err
		}
		cfg.Fit = p
	}
	if f.PointRadius != nil {
		cfg.PointRadius = *f.PointRadius
	}
	if f.AdaptiveRadius != nil {
		cfg.AdaptiveRadius = *f.AdaptiveRadius
	}
	if f.Opacity != nil {
		cfg.Opacity = *f.Opacity
	}
	if f.AutoNormalize != nil {
		cfg.AutoNormalize = *f.AutoNormalize
	}
	if f.NormalizedCoordinates != nil {
		cfg.NormalizedCoordinates = *f.NormalizedCoordinates
	}
	if f.ColdColor != nil {
		c, err := ParseColor(*f.ColdColor)
		if err != nil {
			return nil, err
		}
		cfg.Ramp.Cold = c
	}
	if f.HotColor != nil {
		c, err := ParseColor(*f.HotColor)
		if err != nil {
			return nil, err
		}
		cfg.Ramp.Hot = c
	}
	if f.Crosshair != nil {
		cfg.Crosshair = *f.Crosshair
	}
	s.Config = cfg

	s.Points = toPoints(f.Points)
	s.Clicks = toPoints(f.Clicks)
	return s, nil
}

func toPoints(fps []filePoint) []heatmap.Point {
	if len(fps) == 0 {
		return nil
	}
	res := make([]heatmap.Point, len(fps))
	for i, fp := range fps {
		w := fp.Weight
		if w == 0 {
			w = heatmap.DefaultWeight
		}
		res[i] = heatmap.NewPoint(fp.X, fp.Y, w)
	}
	return res
}

func fromScenario(s *Scenario) *file {
	cfg := s.Config
	fitName := cfg.Fit.String()
	cold := FormatColor(cfg.Ramp.Cold)
	hot := FormatColor(cfg.Ramp.Hot)
	f := &file{
		Name:                  s.Name,
		Width:                 s.Width,
		Height:                s.Height,
		Background:            s.Background,
		Fit:                   &fitName,
		PointRadius:           &cfg.PointRadius,
		AdaptiveRadius:        &cfg.AdaptiveRadius,
		Opacity:               &cfg.Opacity,
		AutoNormalize:         &cfg.AutoNormalize,
		NormalizedCoordinates: &cfg.NormalizedCoordinates,
		ColdColor:             &cold,
		HotColor:              &hot,
		Crosshair:             &cfg.Crosshair,
		Points:                fromPoints(s.Points),
		Clicks:                fromPoints(s.Clicks),
	}
	if b := s.Backdrop; b != nil {
		f.BackdropWidth = b.Width
		f.BackdropHeight = b.Height
		f.BackdropColor = FormatColor(b.Color)
	}
	return f
}

func fromPoints(pts []heatmap.Point) []filePoint {
	if len(pts) == 0 {
		return nil
	}
	res := make([]filePoint, len(pts))
	for i, p := range pts {
		res[i] = filePoint{X: p.Pos.X, Y: p.Pos.Y, Weight: p.Weight}
	}
	return res
}

// ParseColor parses a color of the form "#rrggbb".  The result is opaque.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// FormatColor returns the "#rrggbb" form of c.  Alpha is ignored.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
