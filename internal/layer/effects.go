package layer

import "math"

// Built-in effect names, registered on the default registry in this order.
const (
	Rainbow = "rainbow"
	Black   = "black"
	Lighten = "lighten"
	Invert  = "invert"
	Red     = "red"
	Green   = "green"
	Blue    = "blue"
	Sparkle = "sparkle"
	Darken  = "darken"
)

func rainbow(_ Color, t int, x, y int) Color {
	hue := math.Mod(float64(x+y)*4+float64(t)*0.5, 360)
	return hsv(hue, 0.8, 1)
}

func black(Color, int, int, int) Color { return Color{} }

func lighten(c Color, _ int, _, _ int) Color {
	return Color{R: addSat(c.R, 40), G: addSat(c.G, 40), B: addSat(c.B, 40)}
}

func invert(c Color, _ int, _, _ int) Color { return c.Invert() }

func red(Color, int, int, int) Color { return Color{R: 255} }

func green(Color, int, int, int) Color { return Color{G: 255} }

func blue(Color, int, int, int) Color { return Color{B: 255} }

// sparkle lights a pseudo-random subset of cells; the pattern shifts every
// 16 ticks and depends only on (t, x, y).
func sparkle(c Color, t int, x, y int) Color {
	h := uint32(x)*73856093 ^ uint32(y)*19349663 ^ uint32(t/16)*83492791
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	if h%7 == 0 {
		return Color{R: 255, G: 255, B: 255}
	}
	return c
}

func darken(c Color, _ int, _, _ int) Color {
	return Color{R: c.R / 2, G: c.G / 2, B: c.B / 2}
}

func addSat(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}

// hsv converts hue in degrees, saturation and value in [0,1] to RGB.
func hsv(h, s, v float64) Color {
	c := v * s
	hp := h / 60
	xx := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, xx, 0
	case hp < 2:
		r, g, b = xx, c, 0
	case hp < 3:
		r, g, b = 0, c, xx
	case hp < 4:
		r, g, b = 0, xx, c
	case hp < 5:
		r, g, b = xx, 0, c
	default:
		r, g, b = c, 0, xx
	}
	m := v - c
	return Color{R: unit8(r + m), G: unit8(g + m), B: unit8(b + m)}
}

func unit8(f float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
}

func init() {
	r := defaultRegistry
	r.MustRegister(Rainbow, rainbow)
	r.MustRegister(Black, black)
	r.MustRegister(Lighten, lighten)
	r.MustRegister(Invert, invert)
	r.MustRegister(Red, red)
	r.MustRegister(Green, green)
	r.MustRegister(Blue, blue)
	r.MustRegister(Sparkle, sparkle)
	r.MustRegister(Darken, darken)
}
