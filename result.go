package enginehost

import "github.com/notnil/chess"

// Info holds one search's metadata keyed by stat name ("depth", "nodes",
// "nps", "score", "string"). Engines report what they report; absent keys
// stay absent rather than defaulting.
type Info map[string]any

// MoveResult is what a Proc hands back after a search.
type MoveResult struct {
	// Move is the engine's chosen move. Nil only when the search was
	// stopped before the engine settled on anything.
	Move *chess.Move

	// Ponder is the reply the engine expects, when the protocol
	// reports one.
	Ponder *chess.Move

	// Info is the metadata of the search that produced Move.
	Info Info
}
