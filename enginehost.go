// Package enginehost provides a uniform interface for driving chess engine
// subprocesses.
//
// enginehost abstracts over the two engine protocol families (structured
// UCI and line-based XBoard) with a uniform [Engine]/[Proc] model. Adapters
// translate generic search and time-control requests into protocol-specific
// calls; the wire grammar itself stays behind the [Proc] capability.
//
// # Core Types
//
//   - [Engine] — protocol-neutral handle for searches, signals, and stats
//   - [Proc] — an already-connected engine process (the wire codec lives behind it)
//   - [Dialer] — starts a launch command under a protocol handshake
//   - [Limit]/[MoveResult] — search bounds in, move plus metadata out
//   - [Game]/[Player] — per-game metadata forwarded to the engine
//   - [Option] — functional options for [New]
//
// # Vocabulary
//
// The root package defines the shared vocabulary for both adapters:
//
//   - Input vocabulary: [Limit] fields describe every bound a search can carry
//   - Output vocabulary: [Info] keys name the stats engines report
//
// Adapter packages translate this vocabulary into their protocol's terms and
// register themselves with [RegisterAdapter] on import, in the manner of
// database/sql drivers:
//
//	import (
//	    _ "github.com/ajoly/enginehost/engine/uci"
//	    _ "github.com/ajoly/enginehost/engine/xboard"
//	)
//
// # Quick Start
//
//	cfg, err := enginehost.LoadConfig(f)
//	if err != nil { log.Fatal(err) }
//	eng, err := enginehost.New(ctx, dialer, cfg)
//	if err != nil { log.Fatal(err) }
//	defer eng.Quit()
//	move, err := eng.FirstSearch(ctx, game.Position(), 1000)
package enginehost
