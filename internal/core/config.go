package core

// RuntimeConfig is handed to a game on Reset.
// ScreenW/ScreenH only affect layout; simulation depends on TickRate and Seed alone.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second delivered by the platform loop
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Score    int
	Length   int    // Snake length
	Ticks    uint64 // Simulation ticks since Reset
	GameOver bool
	Paused   bool
}

// StepResult is returned from every Game.Step call.
type StepResult struct {
	State GameState
	// Ticks is how many simulation ticks the frame advanced (0 while paused
	// or between pacer intervals).
	Ticks int
}
