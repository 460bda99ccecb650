// Package palette holds the fixed set of base colors the game draws from
// and the hex codec for them.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB value. Two Colors are equal when their channels are,
// regardless of how their hex text was cased.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Parse decodes a "#rrggbb" string. Hex digits may be upper or lower case.
func Parse(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("palette: %q is not a #rrggbb color", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("palette: cannot parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParse is like Parse but panics on malformed input.
// Only meant for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the lowercase, zero-padded "#rrggbb" form.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// Channels returns the red, green and blue channels as ints.
func (c Color) Channels() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Palette is an ordered list of distinct colors.
type Palette []Color

// base is the game's palette: red, green, blue, yellow, magenta, cyan,
// orange, purple.
var base = Palette{
	MustParse("#FF0000"),
	MustParse("#00FF00"),
	MustParse("#0000FF"),
	MustParse("#FFFF00"),
	MustParse("#FF00FF"),
	MustParse("#00FFFF"),
	MustParse("#FFA500"),
	MustParse("#800080"),
}

// Named entries of the base palette.
var (
	Red     = base[0]
	Green   = base[1]
	Blue    = base[2]
	Yellow  = base[3]
	Magenta = base[4]
	Cyan    = base[5]
	Orange  = base[6]
	Purple  = base[7]
)

// Base returns a copy of the base palette.
func Base() Palette {
	out := make(Palette, len(base))
	copy(out, base)
	return out
}

// Contains reports whether c is in the palette.
func (p Palette) Contains(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Without returns the palette entries other than c, order preserved.
func (p Palette) Without(c Color) Palette {
	out := make(Palette, 0, len(p))
	for _, pc := range p {
		if pc != c {
			out = append(out, pc)
		}
	}
	return out
}
