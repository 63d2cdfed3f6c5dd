package docs

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBColor is a color with red/green/blue components in [0.0, 1.0].
type RGBColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Color wraps an RGB color in the protocol's color envelope.
type Color struct {
	RGBColor *RGBColor `json:"rgbColor,omitempty"`
}

// OptionalColor is the protocol's nullable color wrapper.
type OptionalColor struct {
	Color *Color `json:"color,omitempty"`
}

// RGB builds an OptionalColor from component values in [0.0, 1.0].
func RGB(red, green, blue float64) *OptionalColor {
	return &OptionalColor{
		Color: &Color{
			RGBColor: &RGBColor{Red: red, Green: green, Blue: blue},
		},
	}
}

// ParseHexColor parses a "#RRGGBB" or "RRGGBB" hex color into an RGBColor.
func ParseHexColor(hex string) (RGBColor, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(clean) != 6 {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", hex)
	}

	var channels [3]float64
	for i := range 3 {
		v, err := strconv.ParseUint(clean[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
		}
		channels[i] = float64(v) / 255.0
	}

	return RGBColor{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

// HexColor converts a hex string to an OptionalColor.
func HexColor(hex string) (*OptionalColor, error) {
	rgb, err := ParseHexColor(hex)
	if err != nil {
		return nil, err
	}
	return &OptionalColor{Color: &Color{RGBColor: &rgb}}, nil
}
