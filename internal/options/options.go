// Package options builds the set of colors offered to the player each round:
// the target plus decoys. Red targets get near-duplicate shades as decoys,
// everything else gets other palette entries.
package options

import (
	"math/rand"

	"github.com/vovakirdan/color-guess/internal/palette"
)

const (
	// DecoyCount is the number of decoys requested per round.
	DecoyCount = 5

	// ShadeCount is the number of shades RedShades produces, base included.
	ShadeCount = 5

	redStep   = 40
	otherStep = 20
)

// Round is one target color and the options shown for it.
// Options contains Target exactly once.
type Round struct {
	Target  palette.Color
	Options []palette.Color
}

// IsRedLike reports whether c reads as a shade of red: a strong red channel
// with weak green and blue.
func IsRedLike(c palette.Color) bool {
	r, g, b := c.Channels()
	return r > 200 && g < 100 && b < 100
}

// RedShades derives shades from base by stepping red down and green/blue up.
// Shade 0 is base itself.
func RedShades(base palette.Color) [ShadeCount]palette.Color {
	var shades [ShadeCount]palette.Color
	r, g, b := base.Channels()

	for i := range ShadeCount {
		shades[i] = palette.RGB(
			uint8(max(r-redStep*i, 0)),
			uint8(min(g+otherStep*i, 255)),
			uint8(min(b+otherStep*i, 255)),
		)
	}
	return shades
}

// Generator picks targets and decoys from a palette.
type Generator struct {
	rng     *rand.Rand
	palette palette.Palette
}

// NewGenerator creates a generator over the base palette.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{
		rng:     rng,
		palette: palette.Base(),
	}
}

// Palette returns the colors targets are drawn from.
func (g *Generator) Palette() palette.Palette {
	return g.palette
}

// Generate picks a target uniformly from the palette and builds its options.
func (g *Generator) Generate() Round {
	target := g.palette[g.rng.Intn(len(g.palette))]
	return Round{
		Target:  target,
		Options: g.OptionsFor(target),
	}
}

// OptionsFor returns target plus its decoys in random order.
//
// A red-like target only yields four decoys: shade 0 duplicates the target
// and is dropped without a replacement, so the round shows five options.
func (g *Generator) OptionsFor(target palette.Color) []palette.Color {
	var decoys []palette.Color

	if IsRedLike(target) {
		for _, shade := range RedShades(target) {
			if shade == target {
				continue
			}
			decoys = append(decoys, shade)
		}
		if len(decoys) > DecoyCount {
			decoys = decoys[:DecoyCount]
		}
	} else {
		rest := g.palette.Without(target)
		g.shuffle(rest)
		decoys = rest[:min(DecoyCount, len(rest))]
	}

	opts := make([]palette.Color, 0, len(decoys)+1)
	opts = append(opts, target)
	opts = append(opts, decoys...)
	g.shuffle(opts)
	return opts
}

// shuffle is an in-place Fisher-Yates shuffle.
func (g *Generator) shuffle(colors []palette.Color) {
	g.rng.Shuffle(len(colors), func(i, j int) {
		colors[i], colors[j] = colors[j], colors[i]
	})
}
