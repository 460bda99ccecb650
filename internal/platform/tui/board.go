package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/color-guess/internal/config"
	"github.com/vovakirdan/color-guess/internal/core"
	"github.com/vovakirdan/color-guess/internal/game"
	"github.com/vovakirdan/color-guess/internal/palette"
)

// swatch is one selectable option and the callback bound to it.
type swatch struct {
	color    palette.Color
	onSelect func(palette.Color)
}

// Board is the view state the controller draws on. It implements
// game.Display; the Bubble Tea model renders it every frame.
type Board struct {
	target   palette.Color
	swatches []swatch
	feedback game.Feedback
	score    int
	cursor   int
}

var _ game.Display = (*Board)(nil)

// ShowTarget sets the color to match.
func (b *Board) ShowTarget(c palette.Color) {
	b.target = c
}

// ShowOptions replaces the swatches and moves the cursor to the first one.
func (b *Board) ShowOptions(opts []palette.Color, onSelect func(palette.Color)) {
	b.swatches = make([]swatch, len(opts))
	for i, c := range opts {
		b.swatches[i] = swatch{color: c, onSelect: onSelect}
	}
	b.cursor = 0
}

// ShowFeedback sets the status line.
func (b *Board) ShowFeedback(f game.Feedback) {
	b.feedback = f
}

// ShowScore sets the score display.
func (b *Board) ShowScore(score int) {
	b.score = score
}

// Len returns the number of swatches shown.
func (b *Board) Len() int {
	return len(b.swatches)
}

// Cursor returns the highlighted swatch index.
func (b *Board) Cursor() int {
	return b.cursor
}

// Move shifts the cursor by delta, wrapping around the ends.
func (b *Board) Move(delta int) {
	n := len(b.swatches)
	if n == 0 {
		return
	}
	b.cursor = ((b.cursor+delta)%n + n) % n
}

// MoveRow shifts the cursor one grid row up (dir < 0) or down (dir > 0),
// staying put when there is no row in that direction.
func (b *Board) MoveRow(dir int) {
	next := b.cursor + dir*maxCols
	if next < 0 {
		return
	}
	if next >= len(b.swatches) {
		// Land on the last swatch of a shorter final row.
		if b.cursor/maxCols == (len(b.swatches)-1)/maxCols {
			return
		}
		next = len(b.swatches) - 1
	}
	b.cursor = next
}

// Select fires the callback of swatch i. Out-of-range indices are ignored.
func (b *Board) Select(i int) bool {
	if i < 0 || i >= len(b.swatches) {
		return false
	}
	b.cursor = i
	s := b.swatches[i]
	s.onSelect(s.color)
	return true
}

// Render draws the board into dst using layout l.
func (b *Board) Render(dst *core.Screen, l boardLayout, texts config.FeedbackConfig) {
	dst.Clear()

	if l.tooSmall {
		renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(titleY, "COLOR GUESS", core.ColorAccent)
	dst.DrawTextCentered(scoreY, fmt.Sprintf("Score: %d", b.score), core.ColorDefault)

	dst.FillRect(l.target, core.Color(b.target.Hex()))
	dst.DrawTextCentered(l.target.Bottom(), "match this color", core.ColorMuted)

	for i, s := range b.swatches {
		if i >= len(l.frames) {
			break
		}
		frameColor := core.ColorMuted
		if i == b.cursor {
			frameColor = core.ColorAccent
		}
		dst.DrawBox(l.frames[i], frameColor)
		dst.DrawTextColor(l.frames[i].X+1, l.frames[i].Y, strconv.Itoa(i+1), frameColor)
		dst.FillRect(l.swatch[i], core.Color(s.color.Hex()))
	}

	switch b.feedback {
	case game.FeedbackCorrect:
		dst.DrawTextCentered(l.statusY, texts.CorrectText, core.ColorCorrect)
	case game.FeedbackWrong:
		dst.DrawTextCentered(l.statusY, texts.WrongText, core.ColorWrong)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}
