// Package game owns the round/score state of a color guessing session.
// It contains no UI code: the platform supplies a Display to draw on and a
// Scheduler for the delayed feedback callbacks.
package game

import (
	"time"

	"github.com/vovakirdan/color-guess/internal/options"
	"github.com/vovakirdan/color-guess/internal/palette"
)

// DefaultFeedbackDelay is how long Correct/Wrong feedback stays visible.
const DefaultFeedbackDelay = time.Second

// Feedback is the transient result shown after a guess.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// String returns a human-readable name for the feedback.
func (f Feedback) String() string {
	switch f {
	case FeedbackNone:
		return "None"
	case FeedbackCorrect:
		return "Correct"
	case FeedbackWrong:
		return "Wrong"
	default:
		return "Unknown"
	}
}

// Display is the surface a Controller draws on.
type Display interface {
	// ShowTarget paints the swatch the player has to match.
	ShowTarget(c palette.Color)

	// ShowOptions replaces the selectable swatches. onSelect must be called
	// with the chosen color when the player picks one.
	ShowOptions(opts []palette.Color, onSelect func(palette.Color))

	// ShowFeedback sets the status region.
	ShowFeedback(f Feedback)

	// ShowScore sets the score display.
	ShowScore(score int)
}

// Scheduler runs fn once after d. Scheduled callbacks cannot be cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Controller runs rounds: it picks options, checks guesses and keeps score.
type Controller struct {
	gen     *options.Generator
	display Display
	sched   Scheduler
	delay   time.Duration

	round    options.Round
	score    int
	feedback Feedback
}

// NewController creates a controller. A non-positive delay falls back to
// DefaultFeedbackDelay. Call ResetGame to show the first round.
func NewController(gen *options.Generator, display Display, sched Scheduler, delay time.Duration) *Controller {
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	return &Controller{
		gen:     gen,
		display: display,
		sched:   sched,
		delay:   delay,
	}
}

// StartRound replaces the current round with a freshly generated one.
func (c *Controller) StartRound() {
	c.round = c.gen.Generate()
	c.display.ShowTarget(c.round.Target)
	c.display.ShowOptions(c.round.Options, c.SubmitGuess)
}

// SubmitGuess checks chosen against the current target.
//
// A correct guess scores a point and, after the feedback delay, starts a new
// round. A wrong guess only shows feedback; the round stays. Pending
// callbacks are not tied to the round they were scheduled in, so a callback
// fires against whatever round is current by then.
func (c *Controller) SubmitGuess(chosen palette.Color) {
	if chosen == c.round.Target {
		c.setFeedback(FeedbackCorrect)
		c.score++
		c.display.ShowScore(c.score)
		c.sched.After(c.delay, func() {
			c.StartRound()
			c.setFeedback(FeedbackNone)
		})
		return
	}

	c.setFeedback(FeedbackWrong)
	c.sched.After(c.delay, func() {
		c.setFeedback(FeedbackNone)
	})
}

// ResetGame zeroes the score, clears feedback and starts a round.
func (c *Controller) ResetGame() {
	c.score = 0
	c.display.ShowScore(c.score)
	c.setFeedback(FeedbackNone)
	c.StartRound()
}

// Score returns the number of correct guesses since the last reset.
func (c *Controller) Score() int {
	return c.score
}

// Feedback returns the feedback currently shown.
func (c *Controller) Feedback() Feedback {
	return c.feedback
}

// Round returns the current round. The options slice must not be modified.
func (c *Controller) Round() options.Round {
	return c.round
}

func (c *Controller) setFeedback(f Feedback) {
	c.feedback = f
	c.display.ShowFeedback(f)
}
