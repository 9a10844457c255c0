package uci

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/notnil/chess"

	"github.com/ajoly/enginehost"
	"github.com/ajoly/enginehost/engine/internal/errfmt"
	"github.com/ajoly/enginehost/engine/internal/optval"
)

func init() {
	enginehost.RegisterAdapter(enginehost.ProtocolUCI,
		func(proc enginehost.Proc, options map[string]any) (enginehost.Engine, error) {
			return New(proc, options)
		})
}

// statKeys is the metadata Stats reports; displayKeys additionally carries
// the engine's free-text info line, which is display-only.
var (
	statKeys    = []string{"depth", "nps", "nodes", "score"}
	displayKeys = []string{"string", "depth", "nps", "nodes", "score"}
)

// GoCommands are the per-search overrides configured under the
// "go_commands" options key.
type GoCommands struct {
	// MoveTimeMillis overrides the clock-derived time bound when nonzero.
	MoveTimeMillis int64

	// Depth and Nodes cap clock-bounded searches when nonzero.
	Depth int
	Nodes int
}

// Engine drives one engine process over the structured UCI protocol.
type Engine struct {
	proc     enginehost.Proc
	declares enginehost.OptionDeclarer // nil when the proc declares nothing
	goCmds   GoCommands
	lastInfo enginehost.Info
}

var _ enginehost.Engine = (*Engine)(nil)

// New wraps a connected UCI process. The "go_commands" key is popped out
// of options as search overrides; everything else is forwarded to the
// engine's configuration. options is not mutated.
func New(proc enginehost.Proc, options map[string]any) (*Engine, error) {
	if proc == nil {
		return nil, fmt.Errorf("uci: nil proc")
	}
	e := &Engine{proc: proc}
	e.declares, _ = proc.(enginehost.OptionDeclarer)

	rest := make(map[string]any, len(options))
	for k, v := range options {
		rest[k] = v
	}
	if raw := optval.GetMap(rest, "go_commands"); raw != nil {
		e.goCmds = GoCommands{
			MoveTimeMillis: optval.GetInt64(raw, "movetime"),
			Depth:          int(optval.GetInt64(raw, "depth")),
			Nodes:          int(optval.GetInt64(raw, "nodes")),
		}
	}
	delete(rest, "go_commands")

	if err := e.proc.Configure(rest); err != nil {
		return nil, fmt.Errorf("uci: configure: %w", err)
	}
	return e, nil
}

// FirstSearch runs one search bounded by movetimeMillis and returns the
// engine's move. The conversion keeps sub-second precision.
func (e *Engine) FirstSearch(ctx context.Context, pos *chess.Position, movetimeMillis int64) (*chess.Move, error) {
	limit := enginehost.Limit{MoveTime: time.Duration(movetimeMillis) * time.Millisecond}
	res, err := e.proc.Play(ctx, pos, limit, false)
	if err != nil {
		return nil, fmt.Errorf("uci: search: %w", err)
	}
	e.lastInfo = res.Info
	if res.Move == nil {
		return nil, enginehost.ErrNoMove
	}
	return res.Move, nil
}

// SearchWithPonder runs a clock-bounded search, folding in any configured
// go_commands overrides. The second return value is the engine's expected
// reply when it reported one.
func (e *Engine) SearchWithPonder(ctx context.Context, pos *chess.Position, wtimeMillis, btimeMillis, wincMillis, bincMillis int64, ponder bool) (*chess.Move, *chess.Move, error) {
	limit := enginehost.Limit{
		WhiteClock: time.Duration(wtimeMillis) * time.Millisecond,
		BlackClock: time.Duration(btimeMillis) * time.Millisecond,
		WhiteInc:   time.Duration(wincMillis) * time.Millisecond,
		BlackInc:   time.Duration(bincMillis) * time.Millisecond,
		Depth:      e.goCmds.Depth,
		Nodes:      e.goCmds.Nodes,
	}
	if e.goCmds.MoveTimeMillis > 0 {
		limit.MoveTime = time.Duration(e.goCmds.MoveTimeMillis) * time.Millisecond
	}
	res, err := e.proc.Play(ctx, pos, limit, ponder)
	if err != nil {
		return nil, nil, fmt.Errorf("uci: search: %w", err)
	}
	e.lastInfo = res.Info
	if res.Move == nil {
		return nil, nil, enginehost.ErrNoMove
	}
	return res.Move, res.Ponder, nil
}

// Stop interrupts the in-flight search without waiting for it to return.
func (e *Engine) Stop() error {
	return e.proc.SendLine("stop")
}

// Ponderhit tells the engine the opponent played the pondered move.
func (e *Engine) Ponderhit() error {
	return e.proc.SendLine("ponderhit")
}

// SetOpponent announces the opponent through the UCI_Opponent option,
// composed as "title rating kind name". Skipped silently when the
// opponent has no name or the engine never declared the option.
func (e *Engine) SetOpponent(game enginehost.Game) error {
	name := game.Opponent.Name
	if name == "" || e.declares == nil || !e.declares.DeclaresOption("UCI_Opponent") {
		return nil
	}
	rating := "none"
	if game.Opponent.Rating != 0 {
		rating = strconv.Itoa(game.Opponent.Rating)
	}
	title := game.Opponent.Title
	if title == "" {
		title = "none"
	}
	kind := "human"
	if title == "BOT" {
		kind = "computer"
	}
	value := fmt.Sprintf("%s %s %s %s", title, rating, kind, name)
	if err := e.proc.Configure(map[string]any{"UCI_Opponent": value}); err != nil {
		return fmt.Errorf("uci: set opponent: %w", err)
	}
	return nil
}

// Name reports the engine's self-declared name, sanitized for display.
func (e *Engine) Name() string {
	return errfmt.SanitizeName(e.proc.ID()["name"])
}

// Stats returns "key: value" lines from the last search's metadata.
func (e *Engine) Stats() []string {
	return enginehost.FormatStats(e.lastInfo, statKeys)
}

// WriteStats writes the display form, free-text info line included.
func (e *Engine) WriteStats(w io.Writer) {
	enginehost.WriteStats(w, e.lastInfo, displayKeys)
}

// Quit shuts the engine process down.
func (e *Engine) Quit() error {
	return e.proc.Quit()
}
