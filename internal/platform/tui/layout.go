package tui

import (
	"github.com/vovakirdan/color-guess/internal/config"
	"github.com/vovakirdan/color-guess/internal/core"
)

const (
	maxCols   = 3 // Swatches per grid row
	gapX      = 2 // Columns between swatch frames
	gapY      = 1 // Rows between swatch frames
	frameSize = 1 // Selection frame around each swatch

	titleY  = 0
	scoreY  = 1
	targetY = 3

	minTextWidth = 30 // Room for the longest status line
)

// boardLayout holds screen positions for one frame.
type boardLayout struct {
	width, height int

	target  core.Rect
	frames  []core.Rect // Selection frame per option
	swatch  []core.Rect // Painted area per option, inside its frame
	statusY int

	tooSmall bool
}

// computeLayout places n option swatches below the target on a w x h screen.
func computeLayout(w, h, n int, d config.DisplayConfig) boardLayout {
	l := boardLayout{width: w, height: h}

	slotW := d.SwatchWidth + 2*frameSize
	slotH := d.SwatchHeight + 2*frameSize

	cols := core.Clamp(n, 1, maxCols)
	rows := (n + maxCols - 1) / maxCols
	gridW := cols*slotW + (cols-1)*gapX
	gridH := rows*slotH + max(rows-1, 0)*gapY

	gridY := targetY + d.TargetHeight + 1
	l.statusY = gridY + gridH + 1

	needW := max(gridW, d.TargetWidth, minTextWidth)
	needH := l.statusY + 1
	if w < needW || h < needH {
		l.tooSmall = true
		return l
	}

	l.target = core.NewRect((w-d.TargetWidth)/2, targetY, d.TargetWidth, d.TargetHeight)

	l.frames = make([]core.Rect, n)
	l.swatch = make([]core.Rect, n)
	for i := range n {
		row, col := i/maxCols, i%maxCols

		// Center a partial last row.
		rowCols := min(maxCols, n-row*maxCols)
		rowW := rowCols*slotW + (rowCols-1)*gapX
		x0 := (w - rowW) / 2

		frame := core.NewRect(x0+col*(slotW+gapX), gridY+row*(slotH+gapY), slotW, slotH)
		l.frames[i] = frame
		l.swatch[i] = frame.Inset(frameSize)
	}

	return l
}

// hit returns the option index whose frame contains (x, y), or -1.
func (l boardLayout) hit(x, y int) int {
	for i, f := range l.frames {
		if f.Contains(x, y) {
			return i
		}
	}
	return -1
}
