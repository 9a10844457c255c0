package enginehost

import (
	"context"
	"io"

	"github.com/notnil/chess"
)

// Engine drives one chess engine process through a protocol-neutral
// capability set.
//
// Implementations include the structured-protocol adapter (engine/uci)
// and the line-based adapter (engine/xboard); New selects between them
// from configuration.
//
// An Engine is single-owner: one goroutine issues lifecycle and search
// calls, and at most one search is in flight at a time. Stop and
// Ponderhit are the only methods safe to call while a search is blocked.
type Engine interface {
	// FirstSearch runs one search bounded by a fixed move time in
	// milliseconds and returns the engine's move. Returns ErrNoMove
	// when the engine has nothing to play.
	FirstSearch(ctx context.Context, pos *chess.Position, movetimeMillis int64) (*chess.Move, error)

	// SearchWithPonder runs a clock-bounded search. Clocks and
	// increments are per side in milliseconds; ponder enables searching
	// on the opponent's time. The returned ponder move is nil when the
	// protocol cannot report one.
	SearchWithPonder(ctx context.Context, pos *chess.Position, wtimeMillis, btimeMillis, wincMillis, bincMillis int64, ponder bool) (move, ponderMove *chess.Move, err error)

	// Stop interrupts the in-flight search. It does not wait: the
	// blocked search call returns on its own with the best move found
	// so far.
	Stop() error

	// Ponderhit confirms the opponent played the pondered move.
	// Protocols without ponder reporting treat it as a no-op.
	Ponderhit() error

	// SetOpponent tells the engine who it is playing. Engines that do
	// not advertise opponent fields are skipped silently.
	SetOpponent(game Game) error

	// Name reports the engine's self-declared name.
	Name() string

	// Stats returns "key: value" lines for the last search's metadata.
	// Keys the engine did not report are omitted.
	Stats() []string

	// WriteStats writes the last search's stats to w in display form.
	WriteStats(w io.Writer)

	// Quit shuts the engine process down. Call exactly once; the Engine
	// is unusable afterwards.
	Quit() error
}

// TimeControlSetter is implemented by adapters whose protocol requires the
// game clock to be announced before the first clock-bounded search.
// Callers discover it by type assertion:
//
//	if tc, ok := eng.(TimeControlSetter); ok {
//	    tc.SetTimeControl(game.ClockInitialMillis, game.ClockIncrementMillis)
//	}
type TimeControlSetter interface {
	// SetTimeControl records the game clock for later transmission.
	// It performs no engine I/O.
	SetTimeControl(initialMillis, incrementMillis int64)
}
