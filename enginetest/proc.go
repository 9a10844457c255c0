package enginetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/notnil/chess"

	"github.com/ajoly/enginehost"
)

// PlayCall records one Play invocation.
type PlayCall struct {
	FEN    string
	Limit  enginehost.Limit
	Ponder bool
}

// Proc is a scripted enginehost.Proc. The zero value is usable: each Play
// pops the next entry off Moves (a UCI move string decoded against the
// searched position) and attaches Info as metadata. An exhausted queue
// plays a result with no move.
//
// Proc implements both optional capability interfaces; declared options
// and negotiated features are configured through Declared and
// FeaturePairs. Script fields are read during calls, so set them before
// handing the Proc to an adapter.
type Proc struct {
	// Moves are UCI move strings consumed one per Play.
	Moves []string

	// Ponders pairs with Moves by index; a non-empty entry is decoded
	// against the position after the played move and returned as the
	// ponder move.
	Ponders []string

	// Info is attached to every play result.
	Info enginehost.Info

	// Identity is what ID reports.
	Identity map[string]string

	// Declared lists the option names DeclaresOption admits.
	Declared []string

	// FeaturePairs is the negotiated feature set Feature consults.
	FeaturePairs map[string]string

	// Block parks each Play until a stop line ("stop" or "?") arrives
	// or ctx ends.
	Block bool

	// Injected errors.
	ConfigureErr error
	PlayErr      error
	SendLineErr  error
	QuitErr      error

	mu         sync.Mutex
	configured []map[string]any
	lines      []string
	plays      []PlayCall
	quitCalls  int
	consumed   int
	release    chan struct{}
}

var (
	_ enginehost.Proc           = (*Proc)(nil)
	_ enginehost.OptionDeclarer = (*Proc)(nil)
	_ enginehost.FeatureSet     = (*Proc)(nil)
)

// Configure records the options and returns ConfigureErr.
func (p *Proc) Configure(options map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copied := make(map[string]any, len(options))
	for k, v := range options {
		copied[k] = v
	}
	p.configured = append(p.configured, copied)
	return p.ConfigureErr
}

// Play records the call and plays the next scripted move. With Block set
// it first waits for a stop line or ctx.
func (p *Proc) Play(ctx context.Context, pos *chess.Position, limit enginehost.Limit, ponder bool) (enginehost.MoveResult, error) {
	p.mu.Lock()
	p.plays = append(p.plays, PlayCall{FEN: pos.String(), Limit: limit, Ponder: ponder})
	if p.PlayErr != nil {
		err := p.PlayErr
		p.mu.Unlock()
		return enginehost.MoveResult{}, err
	}
	var release chan struct{}
	if p.Block {
		release = make(chan struct{})
		p.release = release
	}
	idx := p.consumed
	p.consumed++
	p.mu.Unlock()

	if release != nil {
		select {
		case <-ctx.Done():
			return enginehost.MoveResult{}, ctx.Err()
		case <-release:
		}
	}

	res := enginehost.MoveResult{Info: p.Info}
	if idx < len(p.Moves) {
		mv, err := decodeMove(pos, p.Moves[idx])
		if err != nil {
			return enginehost.MoveResult{}, err
		}
		res.Move = mv
		if idx < len(p.Ponders) && p.Ponders[idx] != "" {
			pm, err := decodeMove(pos.Update(mv), p.Ponders[idx])
			if err != nil {
				return enginehost.MoveResult{}, err
			}
			res.Ponder = pm
		}
	}
	return res, nil
}

// SendLine records the line. A stop line ("stop" or "?") releases a
// blocked Play.
func (p *Proc) SendLine(line string) error {
	p.mu.Lock()
	p.lines = append(p.lines, line)
	var release chan struct{}
	if (line == "stop" || line == "?") && p.release != nil {
		release = p.release
		p.release = nil
	}
	err := p.SendLineErr
	p.mu.Unlock()

	if release != nil {
		close(release)
	}
	return err
}

// ID reports the scripted identity fields.
func (p *Proc) ID() map[string]string {
	return p.Identity
}

// Quit counts the call and returns QuitErr.
func (p *Proc) Quit() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quitCalls++
	return p.QuitErr
}

// DeclaresOption reports whether name is in Declared.
func (p *Proc) DeclaresOption(name string) bool {
	for _, d := range p.Declared {
		if d == name {
			return true
		}
	}
	return false
}

// Feature looks name up in FeaturePairs.
func (p *Proc) Feature(name string) (string, bool) {
	v, ok := p.FeaturePairs[name]
	return v, ok
}

// Configured returns the recorded Configure calls in order.
func (p *Proc) Configured() []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]map[string]any(nil), p.configured...)
}

// Lines returns the recorded raw lines in order.
func (p *Proc) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

// Plays returns the recorded Play calls in order.
func (p *Proc) Plays() []PlayCall {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]PlayCall(nil), p.plays...)
}

// QuitCalls returns how many times Quit ran.
func (p *Proc) QuitCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quitCalls
}

// Blocked reports whether a Play is currently parked waiting for a stop
// line.
func (p *Proc) Blocked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.release != nil
}

func decodeMove(pos *chess.Position, s string) (*chess.Move, error) {
	mv, err := chess.UCINotation{}.Decode(pos, s)
	if err != nil {
		return nil, fmt.Errorf("enginetest: decode move %q: %w", s, err)
	}
	return mv, nil
}
