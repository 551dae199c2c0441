package game

import (
	"fmt"
	"time"
)

// Version of the game.
// Bumping this number will eventually make clients reload the WASM.
//
// If you set this to an empty string, a random version number will be
// used, and force the reload of the WASM on every restart (the reload
// still only happens after the first page is loaded, so there is a delay).
// This is useful during development.
var Version = "v0.1.0"

// DefaultMatchDelay is how long the two cards of a turn stay face up before
// they are compared.
const DefaultMatchDelay = 1000 * time.Millisecond

// Config holds the parameters of an Engine.
type Config struct {
	// MatchDelay between the second flip of a turn and its match-check.
	MatchDelay time.Duration

	// Seed for the deck shuffling. 0 uses a time based seed.
	Seed int64
}

// DefaultConfig returns the configuration of the classic game.
func DefaultConfig() Config {
	return Config{
		MatchDelay: DefaultMatchDelay,
	}
}

// Validate returns an error if the configuration can't drive an Engine.
func (c Config) Validate() error {
	if c.MatchDelay < 0 {
		return fmt.Errorf("MatchDelay must be >= 0, got %s", c.MatchDelay)
	}
	return nil
}
