package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the host steps the game (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// FrameDuration is the slice of game time one Step covers.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState is the coarse status a game reports to the platform after a step.
type GameState struct {
	Score     int           // Current score
	HighScore int           // Best score in this host lifetime
	Started   bool          // A session has been started at least once
	GameOver  bool          // The current session has ended
	NewRecord bool          // Captured when the session ended
	EndReason string        // Why the session ended ("crash", "timeout")
	Elapsed   time.Duration // Game time since the session started
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
