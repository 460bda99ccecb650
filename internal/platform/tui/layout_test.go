package tui

import (
	"testing"

	"github.com/vovakirdan/color-guess/internal/config"
)

func TestComputeLayoutSix(t *testing.T) {
	d := config.Default().Display
	l := computeLayout(80, 23, 6, d)

	if l.tooSmall {
		t.Fatal("80x23 should fit six swatches")
	}
	if len(l.frames) != 6 || len(l.swatch) != 6 {
		t.Fatalf("got %d frames, %d swatches, want 6", len(l.frames), len(l.swatch))
	}

	if l.target.W != d.TargetWidth || l.target.H != d.TargetHeight {
		t.Errorf("target = %+v", l.target)
	}
	if l.target.X != (80-d.TargetWidth)/2 {
		t.Errorf("target not centered: x = %d", l.target.X)
	}

	for i, f := range l.frames {
		if f.Right() > 80 || f.Bottom() > l.statusY {
			t.Errorf("frame %d %+v overflows", i, f)
		}
		if f.Y < l.target.Bottom() {
			t.Errorf("frame %d %+v overlaps the target", i, f)
		}
		if l.swatch[i].W != d.SwatchWidth || l.swatch[i].H != d.SwatchHeight {
			t.Errorf("swatch %d = %+v", i, l.swatch[i])
		}
		for j := i + 1; j < len(l.frames); j++ {
			g := l.frames[j]
			overlap := f.X < g.Right() && g.X < f.Right() && f.Y < g.Bottom() && g.Y < f.Bottom()
			if overlap {
				t.Errorf("frames %d and %d overlap", i, j)
			}
		}
	}

	// Three per row.
	if l.frames[0].Y != l.frames[2].Y || l.frames[3].Y == l.frames[0].Y {
		t.Errorf("unexpected rows: %+v", l.frames)
	}
}

func TestComputeLayoutCentersShortRow(t *testing.T) {
	l := computeLayout(80, 23, 5, config.Default().Display)
	if l.tooSmall {
		t.Fatal("80x23 should fit five swatches")
	}

	left := l.frames[3].X
	right := 80 - l.frames[4].Right()
	if diff := left - right; diff < -1 || diff > 1 {
		t.Errorf("short row not centered: left margin %d, right margin %d", left, right)
	}
}

func TestComputeLayoutTooSmall(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"narrow", 30, 23},
		{"short", 80, 12},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := computeLayout(tt.w, tt.h, 6, config.Default().Display)
			if !l.tooSmall {
				t.Errorf("%dx%d should be too small", tt.w, tt.h)
			}
			if l.hit(0, 0) != -1 {
				t.Error("too-small layout should have no hit targets")
			}
		})
	}
}

func TestLayoutHit(t *testing.T) {
	l := computeLayout(80, 23, 6, config.Default().Display)

	for i, f := range l.frames {
		cx, cy := f.Center()
		if got := l.hit(cx, cy); got != i {
			t.Errorf("hit(center of frame %d) = %d", i, got)
		}
		// Frame border counts as part of the swatch.
		if got := l.hit(f.X, f.Y); got != i {
			t.Errorf("hit(corner of frame %d) = %d", i, got)
		}
	}

	tx, ty := l.target.Center()
	if got := l.hit(tx, ty); got != -1 {
		t.Errorf("hit(target) = %d, want -1", got)
	}
	if got := l.hit(0, 0); got != -1 {
		t.Errorf("hit(0, 0) = %d, want -1", got)
	}
}
