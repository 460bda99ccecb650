package options

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/color-guess/internal/palette"
)

func TestIsRedLike(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#FF0000", true},
		{"#00FF00", false},
		{"#0000FF", false},
		{"#FFA500", false}, // green 165
		{"#800080", false},
		{"#FF00FF", false},
		{"#C90000", true},  // red 201
		{"#C80000", false}, // red 200
		{"#FF6363", true},  // green/blue 99
		{"#FF6400", false}, // green 100
		{"#FF0064", false}, // blue 100
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			if got := IsRedLike(palette.MustParse(tt.hex)); got != tt.want {
				t.Errorf("IsRedLike(%s) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRedShades(t *testing.T) {
	want := [ShadeCount]string{"#ff0000", "#d71414", "#af2828", "#873c3c", "#5f5050"}

	shades := RedShades(palette.Red)
	for i, s := range shades {
		if s.Hex() != want[i] {
			t.Errorf("shade[%d] = %s, want %s", i, s.Hex(), want[i])
		}
	}

	if shades[0] != palette.Red {
		t.Error("shade 0 should equal the base color")
	}
}

func TestRedShadesClamp(t *testing.T) {
	// Red floors at 0, green and blue cap at 255.
	shades := RedShades(palette.RGB(60, 230, 250))

	want := [ShadeCount]palette.Color{
		palette.RGB(60, 230, 250),
		palette.RGB(20, 250, 255),
		palette.RGB(0, 255, 255),
		palette.RGB(0, 255, 255),
		palette.RGB(0, 255, 255),
	}
	if shades != want {
		t.Errorf("RedShades() = %v, want %v", shades, want)
	}
}

func countOf(opts []palette.Color, c palette.Color) int {
	n := 0
	for _, o := range opts {
		if o == c {
			n++
		}
	}
	return n
}

func assertUnique(t *testing.T, opts []palette.Color) {
	t.Helper()
	seen := make(map[palette.Color]bool)
	for _, o := range opts {
		if seen[o] {
			t.Errorf("duplicate option %s in %v", o, opts)
		}
		seen[o] = true
	}
}

func TestOptionsForNonRed(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	others := palette.Base().Without(palette.Green)

	for range 50 {
		opts := gen.OptionsFor(palette.Green)

		if len(opts) != 6 {
			t.Fatalf("got %d options, want 6", len(opts))
		}
		if countOf(opts, palette.Green) != 1 {
			t.Errorf("target should appear exactly once in %v", opts)
		}
		assertUnique(t, opts)

		for _, o := range opts {
			if o != palette.Green && !others.Contains(o) {
				t.Errorf("decoy %s is not a palette color", o)
			}
		}
	}
}

func TestOptionsForRed(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(7)))
	shades := RedShades(palette.Red)

	for range 50 {
		opts := gen.OptionsFor(palette.Red)

		// Shade 0 duplicates the target and is not replaced.
		if len(opts) != 5 {
			t.Fatalf("got %d options, want 5", len(opts))
		}
		if countOf(opts, palette.Red) != 1 {
			t.Errorf("target should appear exactly once in %v", opts)
		}
		assertUnique(t, opts)

		for _, s := range shades[1:] {
			if countOf(opts, s) != 1 {
				t.Errorf("shade %s missing from %v", s, opts)
			}
		}
	}
}

func TestOptionsOrderVaries(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(42)))

	// The target should land in every slot given enough rounds.
	positions := make(map[int]bool)
	for range 500 {
		opts := gen.OptionsFor(palette.Blue)
		for i, o := range opts {
			if o == palette.Blue {
				positions[i] = true
			}
		}
	}
	if len(positions) != 6 {
		t.Errorf("target appeared in %d distinct slots, want 6", len(positions))
	}
}

func TestGenerate(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	targets := make(map[palette.Color]bool)

	for range 400 {
		round := gen.Generate()

		if !gen.Palette().Contains(round.Target) {
			t.Fatalf("target %s not in palette", round.Target)
		}
		if countOf(round.Options, round.Target) != 1 {
			t.Errorf("target %s should appear once in %v", round.Target, round.Options)
		}

		want := 6
		if IsRedLike(round.Target) {
			want = 5
		}
		if len(round.Options) != want {
			t.Errorf("target %s: got %d options, want %d", round.Target, len(round.Options), want)
		}
		targets[round.Target] = true
	}

	if len(targets) != len(gen.Palette()) {
		t.Errorf("only %d of %d palette colors were picked as target", len(targets), len(gen.Palette()))
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := NewGenerator(rand.New(rand.NewSource(99)))
	b := NewGenerator(rand.New(rand.NewSource(99)))

	for range 20 {
		ra, rb := a.Generate(), b.Generate()
		if ra.Target != rb.Target {
			t.Fatalf("targets differ: %s vs %s", ra.Target, rb.Target)
		}
		for i := range ra.Options {
			if ra.Options[i] != rb.Options[i] {
				t.Fatalf("options differ at %d: %v vs %v", i, ra.Options, rb.Options)
			}
		}
	}
}
