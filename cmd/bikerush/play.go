package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bike-rush/internal/core"
	"github.com/vovakirdan/bike-rush/internal/platform/tui"
)

var flagHoldWindow int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Ride in the terminal",
	Long: `Start a ride in the terminal.

Controls:
  A / D        - Pedal (match the lit half of the dial)
  Up/W, Down/S - Steer
  Left, Right  - Shift down, up
  1 2 3        - Select gear
  P/Esc        - Pause
  R            - Restart (after the level ends)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Terminals report key presses but not releases, so a key counts as held
until no repeat arrives for --hold-ms milliseconds.

Examples:
  bikerush play
  bikerush play --seed 7 --log-file ride.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldWindow, "hold-ms", int(tui.DefaultHoldWindow.Milliseconds()), "How long a terminal key stays held after its last repeat")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so logs go nowhere unless --log-file is set
	logger, closeLog, err := openLogger("play", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.Run(game, cfg, tui.Options{
		HoldWindow: msDuration(flagHoldWindow),
		Logger:     logger,
	})
}
