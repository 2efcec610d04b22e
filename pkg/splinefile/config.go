// Configuration surface. Options arrive as a JSON object and are
// merged shallowly over the defaults: absent keys keep their default,
// present keys replace it wholesale.

package splinefile

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// Config is the full recognized option set: engine behaviour, the
// cosmetic rendering parameters consumed by the renderers, and an
// optional initial point set in the export schema.
type Config struct {
	HistorySize       int     `json:"historySize"`
	Mode              string  `json:"mode"` // "natural" or "classical"
	MaxHitDistance    float64 `json:"maxHitDistance"`
	SmoothFactor      float64 `json:"smoothFactor"`
	ConstrainTangents bool    `json:"constrainTangents"`

	// Cosmetic parameters for the rendering collaborator.
	KnotSize        int     `json:"knotSize"`
	HandleSize      int     `json:"handleSize"`
	KnotShape       string  `json:"knotShape"`   // "disc" or "square"
	HandleShape     string  `json:"handleShape"` // "disc" or "square"
	CurveColor      string  `json:"curveColor"`
	KnotColor       string  `json:"knotColor"`
	HandleColor     string  `json:"handleColor"`
	HandleLineColor string  `json:"handleLineColor"`
	CurveWidth      float64 `json:"curveWidth"`
	HandleLineWidth float64 `json:"handleLineWidth"`
	LineCap         string  `json:"lineCap"`

	Points []spline.KnotRecord `json:"points"`
}

// DefaultConfig returns the option defaults.
func DefaultConfig() Config {
	return Config{
		HistorySize:       50,
		Mode:              "natural",
		MaxHitDistance:    30,
		SmoothFactor:      0.3,
		ConstrainTangents: true,
		KnotSize:          8,
		HandleSize:        6,
		KnotShape:         "disc",
		HandleShape:       "square",
		CurveColor:        "#333333",
		KnotColor:         "#2e7d32",
		HandleColor:       "#1565c0",
		HandleLineColor:   "#999999",
		CurveWidth:        2,
		HandleLineWidth:   1,
		LineCap:           "round",
	}
}

// ParseConfig merges a JSON option object shallowly over the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Mode {
	case "natural", "classical":
	default:
		return Config{}, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return cfg, nil
}

// EngineOptions converts the behavioural subset into engine options.
func (c Config) EngineOptions() spline.Options {
	mode := spline.ModeNatural
	if c.Mode == "classical" {
		mode = spline.ModeClassical
	}
	return spline.Options{
		Mode:              mode,
		HistorySize:       c.HistorySize,
		MaxHitDistance:    c.MaxHitDistance,
		SmoothFactor:      c.SmoothFactor,
		ConstrainTangents: c.ConstrainTangents,
	}
}

// parseHexColor decodes "#rrggbb" (or "#rgb"); malformed values fall
// back to black.
func parseHexColor(s string) color.RGBA {
	c := color.RGBA{A: 255}
	switch len(s) {
	case 7:
		fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	}
	return c
}
