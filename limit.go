package enginehost

import "time"

// Limit bounds one search. Zero fields are unset; adapters populate only
// the subset their protocol supports.
//
// The duration fields carry whatever precision the adapter chose. The
// structured adapter converts milliseconds exactly; the line-based
// adapter's fixed-time searches truncate to whole seconds, matching that
// protocol's coarser clock grammar.
type Limit struct {
	// WhiteClock and BlackClock are the remaining time per side.
	WhiteClock time.Duration
	BlackClock time.Duration

	// WhiteInc and BlackInc are the per-move increments.
	WhiteInc time.Duration
	BlackInc time.Duration

	// MoveTime fixes the thinking time for this single move.
	MoveTime time.Duration

	// Depth and Nodes cap the search when nonzero.
	Depth int
	Nodes int
}
