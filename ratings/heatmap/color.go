// Package heatmap renders a year of daily activity as a GitHub-style
// calendar grid: 53 week columns by 7 weekday rows, Sunday at the top.
package heatmap

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrNoColors is returned by Blend when given nothing to blend. The
// aggregator guarantees every day with data has at least one category, so
// hitting this means a caller bug.
var ErrNoColors = errors.New("heatmap: blend of zero colors")

// RGB is a color with channels normalized to [0, 1].
type RGB struct {
	R, G, B float64
}

// HexToRGB parses a #rrggbb string into normalized channels.
func HexToRGB(hex string) (RGB, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("heatmap: bad hex color %q", hex)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("heatmap: bad hex color %q: %w", hex, err)
		}
		ch[i] = float64(v) / 255
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats normalized channels as #rrggbb. Channel values are
// truncated to integer pixel values, not rounded; blends therefore come
// out very slightly darker, matching the established output.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255))
}

// Color converts to a stdlib color for drawing.
func (c RGB) Color() color.Color {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

// Blend combines hex colors by taking the per-channel arithmetic mean
// ("mean blend"), so the result is independent of input order. A single
// color is returned as-is, avoiding a round trip through the truncating
// hex conversion.
func Blend(colors []string) (string, error) {
	if len(colors) == 0 {
		return "", ErrNoColors
	}
	if len(colors) == 1 {
		return colors[0], nil
	}
	var sum RGB
	for _, h := range colors {
		c, err := HexToRGB(h)
		if err != nil {
			return "", err
		}
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	n := float64(len(colors))
	return RGBToHex(RGB{R: sum.R / n, G: sum.G / n, B: sum.B / n}), nil
}

// lerp interpolates between two colors; t=0 yields a, t=1 yields b.
func lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R*(1-t) + b.R*t,
		G: a.G*(1-t) + b.G*t,
		B: a.B*(1-t) + b.B*t,
	}
}
