// Package uci provides the structured-protocol adapter for enginehost.
//
// UCI engines take discrete option updates and report structured search
// results, including the move they expect in reply (the ponder move).
// The adapter translates generic search requests into [enginehost.Limit]
// values with sub-second precision and drives stop/ponderhit through raw
// protocol lines.
//
// [New] wraps an already-connected [enginehost.Proc]. The optional
// [enginehost.OptionDeclarer] capability is discovered via type assertion
// at construction; without it the adapter assumes the engine declared no
// options and skips opponent announcements.
//
// Importing the package registers the adapter with the create facade:
//
//	import _ "github.com/ajoly/enginehost/engine/uci"
package uci
