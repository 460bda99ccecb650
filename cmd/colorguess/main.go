// colorguess is a terminal color guessing game: match the target swatch
// among the options to score.
//
// Usage:
//
//	colorguess               - Play in this terminal
//	colorguess play          - Same as above
//	colorguess serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible rounds
//	--config <path>    - Load game config from a YAML file
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
//
// A .env file in the working directory is loaded at startup. COLORGUESS_CONFIG,
// COLORGUESS_LOG_FILE and COLORGUESS_SSH_ADDR provide defaults for the
// matching flags.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

// envFlags maps flag names to the environment variables that default them.
var envFlags = map[string]string{
	"config":   "COLORGUESS_CONFIG",
	"log-file": "COLORGUESS_LOG_FILE",
	"ssh":      "COLORGUESS_SSH_ADDR",
}

func main() {
	// Missing .env is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorguess",
	Short: "Color Guess - match the color swatch in your terminal",
	Long: `Color Guess shows a target color and a handful of swatches.
Pick the swatch that matches the target to score a point.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play

Examples:
  colorguess
  colorguess play --seed 42
  colorguess serve --ssh :2222`,
	PersistentPreRunE: applyEnvDefaults,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyEnvDefaults fills flags the user did not set from the environment.
func applyEnvDefaults(cmd *cobra.Command, _ []string) error {
	for name, env := range envFlags {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if v := os.Getenv(env); v != "" {
			if err := cmd.Flags().Set(name, v); err != nil {
				return fmt.Errorf("invalid %s: %w", env, err)
			}
		}
	}
	return nil
}
