package enginehost

// Player identifies one side of a game as the game server reports it.
type Player struct {
	Name string

	// Rating is zero when unknown.
	Rating int

	// Title is the server-granted title, empty when none. "BOT" marks
	// a computer account.
	Title string
}

// Game carries the per-game metadata adapters forward to the engine.
// Value type; the game server owns the authoritative state.
type Game struct {
	Me       Player
	Opponent Player

	// ClockInitialMillis and ClockIncrementMillis describe the game's
	// time control.
	ClockInitialMillis   int64
	ClockIncrementMillis int64
}
