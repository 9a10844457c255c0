package xboard

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/notnil/chess"

	"github.com/ajoly/enginehost"
	"github.com/ajoly/enginehost/engine/internal/errfmt"
	"github.com/ajoly/enginehost/engine/internal/optval"
)

func init() {
	enginehost.RegisterAdapter(enginehost.ProtocolXBoard,
		func(proc enginehost.Proc, options map[string]any) (enginehost.Engine, error) {
			return New(proc, options)
		})
}

// statKeys is the reduced field set this protocol surfaces: no
// nodes-per-second, no free-text info line.
var statKeys = []string{"depth", "nodes", "score"}

// Engine drives one engine process over the line-based XBoard protocol.
type Engine struct {
	proc     enginehost.Proc
	features enginehost.FeatureSet // nil when the proc negotiated nothing
	lastInfo enginehost.Info

	minutes         int64
	seconds         int64
	inc             int64
	timeControlSent bool
}

var (
	_ enginehost.Engine            = (*Engine)(nil)
	_ enginehost.TimeControlSetter = (*Engine)(nil)
)

// New wraps a connected XBoard process. The "egtpath" key is popped out
// of options and resolved against the engine's advertised endgame-table
// types before the merged options are forwarded: each advertised type
// becomes an "egtpath <type>" entry, and an advertised type with no
// configured path is a configuration error. Types the engine does not
// advertise are dropped silently. options is not mutated.
func New(proc enginehost.Proc, options map[string]any) (*Engine, error) {
	if proc == nil {
		return nil, fmt.Errorf("xboard: nil proc")
	}
	e := &Engine{proc: proc}
	e.features, _ = proc.(enginehost.FeatureSet)

	rest := make(map[string]any, len(options))
	for k, v := range options {
		rest[k] = v
	}
	egtPaths := optval.GetMap(rest, "egtpath")
	delete(rest, "egtpath")

	if e.features != nil {
		if csv, ok := e.features.Feature("egt"); ok {
			for _, typ := range strings.Split(csv, ",") {
				if typ == "" {
					continue
				}
				path, ok := egtPaths[typ]
				if !ok {
					return nil, fmt.Errorf("xboard: engine supports %q endgame tables but no egtpath is configured for it", errfmt.Truncate(typ))
				}
				rest["egtpath "+typ] = fmt.Sprintf("%v", path)
			}
		}
	}

	if err := e.proc.Configure(rest); err != nil {
		return nil, fmt.Errorf("xboard: configure: %w", err)
	}
	return e, nil
}

// SetTimeControl records the game clock for the level command. No engine
// I/O happens until the first clock-bounded search sends it.
func (e *Engine) SetTimeControl(initialMillis, incrementMillis int64) {
	e.minutes = initialMillis / 1000 / 60
	e.seconds = initialMillis / 1000 % 60
	e.inc = incrementMillis / 1000
}

// sendTime transmits the level command and latches timeControlSent, which
// is what keeps SearchWithPonder from re-sending it within a game.
func (e *Engine) sendTime() error {
	line := fmt.Sprintf("level 0 %d:%d %d", e.minutes, e.seconds, e.inc)
	if err := e.proc.SendLine(line); err != nil {
		return fmt.Errorf("xboard: send time control: %w", err)
	}
	e.timeControlSent = true
	return nil
}

// FirstSearch runs one fixed-time search. The protocol takes whole
// seconds, so the millisecond bound truncates.
func (e *Engine) FirstSearch(ctx context.Context, pos *chess.Position, movetimeMillis int64) (*chess.Move, error) {
	limit := enginehost.Limit{MoveTime: time.Duration(movetimeMillis/1000) * time.Second}
	res, err := e.proc.Play(ctx, pos, limit, false)
	if err != nil {
		return nil, fmt.Errorf("xboard: search: %w", err)
	}
	e.lastInfo = res.Info
	if res.Move == nil {
		return nil, enginehost.ErrNoMove
	}
	return res.Move, nil
}

// SearchWithPonder runs a clock-bounded search, announcing the time
// control first if this game has not sent it yet. Only the two clocks
// bound the search; the protocol has no per-move increment or cap grammar
// in this mode. The returned ponder move is always nil because the
// protocol does not report one.
func (e *Engine) SearchWithPonder(ctx context.Context, pos *chess.Position, wtimeMillis, btimeMillis, wincMillis, bincMillis int64, ponder bool) (*chess.Move, *chess.Move, error) {
	if !e.timeControlSent {
		if err := e.sendTime(); err != nil {
			return nil, nil, err
		}
	}
	limit := enginehost.Limit{
		WhiteClock: time.Duration(wtimeMillis) * time.Millisecond,
		BlackClock: time.Duration(btimeMillis) * time.Millisecond,
	}
	res, err := e.proc.Play(ctx, pos, limit, ponder)
	if err != nil {
		return nil, nil, fmt.Errorf("xboard: search: %w", err)
	}
	e.lastInfo = res.Info
	if res.Move == nil {
		return nil, nil, enginehost.ErrNoMove
	}
	return res.Move, nil, nil
}

// Stop sends the protocol's move-now interrupt.
func (e *Engine) Stop() error {
	return e.proc.SendLine("?")
}

// Ponderhit is a no-op: the protocol has no ponder confirmation.
func (e *Engine) Ponderhit() error {
	return nil
}

// SetOpponent sends up to three independent lines: the opponent's name
// (when the negotiated feature set allows one), the rating pair (when
// both ratings are known), and the literal computer announcement (when
// the opponent's title marks a bot).
func (e *Engine) SetOpponent(game enginehost.Game) error {
	if game.Opponent.Name != "" && e.nameAllowed() {
		title := ""
		if game.Opponent.Title != "" {
			title = game.Opponent.Title + " "
		}
		if err := e.proc.SendLine("name " + title + game.Opponent.Name); err != nil {
			return fmt.Errorf("xboard: set opponent: %w", err)
		}
	}
	if game.Me.Rating != 0 && game.Opponent.Rating != 0 {
		line := fmt.Sprintf("rating %d %d", game.Me.Rating, game.Opponent.Rating)
		if err := e.proc.SendLine(line); err != nil {
			return fmt.Errorf("xboard: set opponent: %w", err)
		}
	}
	if game.Opponent.Title == "BOT" {
		if err := e.proc.SendLine("computer"); err != nil {
			return fmt.Errorf("xboard: set opponent: %w", err)
		}
	}
	return nil
}

// nameAllowed reports whether the engine accepts a name line. An engine
// that never negotiated the feature accepts one.
func (e *Engine) nameAllowed() bool {
	if e.features == nil {
		return true
	}
	v, ok := e.features.Feature("name")
	if !ok {
		return true
	}
	return v != "0" && v != ""
}

// Name reports the engine's self-declared name, sanitized for display.
func (e *Engine) Name() string {
	return errfmt.SanitizeName(e.proc.ID()["name"])
}

// Stats returns "key: value" lines from the last search's metadata.
func (e *Engine) Stats() []string {
	return enginehost.FormatStats(e.lastInfo, statKeys)
}

// WriteStats writes the same reduced field set in display form.
func (e *Engine) WriteStats(w io.Writer) {
	enginehost.WriteStats(w, e.lastInfo, statKeys)
}

// Quit shuts the engine process down.
func (e *Engine) Quit() error {
	return e.proc.Quit()
}
