package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit sRGB color.
type RGB struct {
	R, G, B uint8
}

var ErrBadHex = errors.New("color: invalid hex color")

// ParseHex parses "#RRGGBB" (leading '#' optional, case-insensitive).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, ErrBadHex
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, ErrBadHex
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustHex is ParseHex for compile-time palette tables; panics on bad input.
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic("color: bad literal " + s)
	}
	return c
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance is the perceptual brightness per ITU-R BT.601, in [0,255].
func (c RGB) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// HSL converts to hue [0,360), saturation [0,100], lightness [0,100].
func (c RGB) HSL() (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	l = (max + min) / 2
	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s * 100, l * 100
}

// FromHSL converts hue [0,360), saturation [0,100], lightness [0,100] to RGB.
func FromHSL(h, s, l float64) RGB {
	h = h / 360
	s = clampPct(s) / 100
	l = clampPct(l) / 100

	if s == 0 {
		v := round255(l)
		return RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return RGB{
		R: round255(hueToChannel(p, q, h+1.0/3)),
		G: round255(hueToChannel(p, q, h)),
		B: round255(hueToChannel(p, q, h-1.0/3)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Darken reduces lightness by pct percent of its current value.
func Darken(c RGB, pct float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s, l*(1-clampPct(pct)/100))
}

// Lighten raises lightness by pct percent of the remaining headroom.
func Lighten(c RGB, pct float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s, l+(100-l)*clampPct(pct)/100)
}

// Saturate raises saturation by pct percent of the remaining headroom.
func Saturate(c RGB, pct float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s+(100-s)*clampPct(pct)/100, l)
}

// Desaturate reduces saturation by pct percent of its current value.
func Desaturate(c RGB, pct float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s*(1-clampPct(pct)/100), l)
}

// Warm shifts the color toward red/yellow. Deep skin shadows use this so
// they read as subsurface scattering rather than plain gray darkening.
func Warm(c RGB, pct float64) RGB {
	amt := clampPct(pct) / 100 * 255 * 0.3
	return RGB{
		R: clamp255(float64(c.R) + amt),
		G: clamp255(float64(c.G) + amt*0.4),
		B: clamp255(float64(c.B) - amt*0.5),
	}
}

// Cool shifts the color toward blue; used for specular-ish highlights.
func Cool(c RGB, pct float64) RGB {
	amt := clampPct(pct) / 100 * 255 * 0.3
	return RGB{
		R: clamp255(float64(c.R) - amt*0.5),
		G: clamp255(float64(c.G) - amt*0.1),
		B: clamp255(float64(c.B) + amt),
	}
}

// AddChannels applies signed per-channel deltas with saturating clamps.
func AddChannels(c RGB, dr, dg, db int) RGB {
	return RGB{
		R: clamp255(float64(int(c.R) + dr)),
		G: clamp255(float64(int(c.G) + dg)),
		B: clamp255(float64(int(c.B) + db)),
	}
}

func clampPct(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func round255(v float64) uint8 {
	return clamp255(v * 255)
}
