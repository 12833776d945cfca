package core

// RuntimeConfig contains shell-supplied settings passed to the game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal shell only)
	ScreenH  int   // Terminal height in characters (terminal shell only)
	TickRate int   // Frames per second requested from the shell (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
}

// GameState is a read-only snapshot of the game, used by shells to decide
// on help text and by tests.
type GameState struct {
	Score     int  // Current round score
	HighScore int  // Best score seen by this process
	InMenu    bool // Title screen is showing
	Paused    bool // Simulation is frozen
	GameOver  bool // Round is lost; the next tick returns to the menu
}
