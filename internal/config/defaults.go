package config

import (
	_ "embed"
)

//go:embed defaults/colorguess.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() GameConfig {
	return GameConfig{
		Feedback: FeedbackConfig{
			DelayMS:     1000,
			CorrectText: "Correct!",
			WrongText:   "Wrong! Try again.",
		},
		Display: DisplayConfig{
			SwatchWidth:  12,
			SwatchHeight: 3,
			TargetWidth:  24,
			TargetHeight: 4,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
