package config

// GameConfig holds settings for a single run of the engine.
type GameConfig struct {
	// StartFEN is the starting position. Empty means the standard setup.
	// The side to move is taken from the FEN when present.
	StartFEN string

	// AutoRestart starts a fresh run after each game over.
	AutoRestart bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}
