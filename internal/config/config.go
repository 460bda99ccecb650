// Package config provides YAML-based game configuration with embedded
// defaults.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunable settings of the color guessing game.
type GameConfig struct {
	Feedback FeedbackConfig `yaml:"feedback"`
	Display  DisplayConfig  `yaml:"display"`
}

// FeedbackConfig defines the status line shown after a guess.
type FeedbackConfig struct {
	DelayMS     int    `yaml:"delay_ms"`     // How long feedback stays visible
	CorrectText string `yaml:"correct_text"` // Shown after a correct guess
	WrongText   string `yaml:"wrong_text"`   // Shown after a wrong guess
}

// DisplayConfig defines swatch sizes in terminal cells.
type DisplayConfig struct {
	SwatchWidth  int `yaml:"swatch_width"`
	SwatchHeight int `yaml:"swatch_height"`
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`
}

// Delay returns the feedback delay as a duration.
func (c GameConfig) Delay() time.Duration {
	return time.Duration(c.Feedback.DelayMS) * time.Millisecond
}

// Validate reports every setting that would make the game unplayable.
func (c GameConfig) Validate() error {
	var errs []error
	if c.Feedback.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("feedback.delay_ms must be positive, got %d", c.Feedback.DelayMS))
	}
	if c.Display.SwatchWidth <= 0 || c.Display.SwatchHeight <= 0 {
		errs = append(errs, fmt.Errorf("display swatch size must be positive, got %dx%d",
			c.Display.SwatchWidth, c.Display.SwatchHeight))
	}
	if c.Display.TargetWidth <= 0 || c.Display.TargetHeight <= 0 {
		errs = append(errs, fmt.Errorf("display target size must be positive, got %dx%d",
			c.Display.TargetWidth, c.Display.TargetHeight))
	}
	return errors.Join(errs...)
}
