package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts)
	ScreenH  int   // Screen height in characters (terminal hosts)
	TickRate int   // Host frame rate, frames per second
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDuration returns the nominal duration of one host frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState summarizes the game for the host after each step.
type GameState struct {
	Score    int  // Whole meters covered
	GameOver bool // The level reached a terminal state
	Won      bool // Terminal state was a completed level
	Paused   bool // Simulation is frozen
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
