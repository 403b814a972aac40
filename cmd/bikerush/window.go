package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Ride in a desktop window",
	Long: `Start a ride in a desktop window. Keys are read as real holds and releases.

Controls:
  A / D        - Pedal (match the lit half of the dial)
  Up/W, Down/S - Steer
  Left, Right  - Shift down, up
  1 2 3        - Select gear
  P/Esc        - Pause
  R            - Restart (after the level ends)
  Q            - Quit

Examples:
  bikerush window
  bikerush window --scale 0.75 --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 1200x700 field")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := openLogger("window", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return window.Run(game, cfg, window.Options{Scale: flagScale, Logger: logger})
}
