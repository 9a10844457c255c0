package enginehost

import (
	"context"
	"os/exec"

	"github.com/notnil/chess"
)

// Protocol identifies an engine wire-protocol family.
type Protocol string

const (
	// ProtocolUCI is the structured protocol spoken by most modern engines.
	ProtocolUCI Protocol = "uci"

	// ProtocolXBoard is the legacy line-based protocol with feature
	// negotiation.
	ProtocolXBoard Protocol = "xboard"
)

// ParseProtocol maps a configuration string to a Protocol. "xboard"
// selects the line-based protocol; anything else, including the empty
// string, selects UCI.
func ParseProtocol(s string) Protocol {
	if s == string(ProtocolXBoard) {
		return ProtocolXBoard
	}
	return ProtocolUCI
}

// Proc is an already-connected engine process. The wire grammar lives
// entirely behind it: adapters consume this capability and never parse
// protocol output themselves.
//
// A Proc is owned by exactly one adapter for its whole lifetime. SendLine
// is the only method safe to call while Play is blocked; it is how stop
// and ponderhit reach a thinking engine.
type Proc interface {
	// Configure sends configuration options to the engine.
	Configure(options map[string]any) error

	// Play runs one bounded search from pos and blocks until the engine
	// produces a move, the limit expires, or an interrupt line arrives.
	Play(ctx context.Context, pos *chess.Position, limit Limit, ponder bool) (MoveResult, error)

	// SendLine writes one raw protocol line to the engine.
	SendLine(line string) error

	// ID reports the identity fields the engine declared during the
	// handshake ("name", "author", ...).
	ID() map[string]string

	// Quit asks the engine to exit and releases the process.
	Quit() error
}

// OptionDeclarer is implemented by Procs that expose which configuration
// options the engine declared during the structured handshake. Adapters
// probe it by type assertion; a Proc without it declares nothing.
type OptionDeclarer interface {
	DeclaresOption(name string) bool
}

// FeatureSet is implemented by Procs that expose the line-based
// protocol's negotiated feature pairs.
type FeatureSet interface {
	// Feature returns the negotiated value for name and whether the
	// engine sent the feature at all.
	Feature(name string) (value string, ok bool)
}

// Dialer starts a prepared launch command under a protocol handshake and
// returns the connected process. Implementations own the handshake and
// the I/O plumbing; enginetest provides a scripted one.
type Dialer interface {
	Dial(ctx context.Context, protocol Protocol, cmd *exec.Cmd) (Proc, error)
}
