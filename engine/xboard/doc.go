// Package xboard provides the line-based-protocol adapter for enginehost.
//
// XBoard engines negotiate a feature set at handshake time and are driven
// by free-form text lines. The protocol needs the game clock announced
// with a level command before the first clock-bounded search, takes whole
// seconds for fixed-time searches, and never reports a ponder move; the
// adapter preserves those protocol-level differences rather than papering
// over them.
//
// [New] wraps an already-connected [enginehost.Proc]. The optional
// [enginehost.FeatureSet] capability is discovered via type assertion at
// construction; without it the adapter skips tablebase resolution and
// assumes name lines are welcome.
//
// Importing the package registers the adapter with the create facade:
//
//	import _ "github.com/ajoly/enginehost/engine/xboard"
package xboard
