// Package filter strips engine-managed option names from configuration
// before it reaches the engine.
//
// Some option names are reserved for automatic control by the protocol
// layer (ponder toggles, multi-PV counts, opponent identity). Forwarding
// them from user configuration would fight the protocol layer's own
// bookkeeping, so the create facade removes them up front.
package filter

import "strings"

// managed lists the option names the protocol layer controls itself.
// Matching is case-insensitive, same as engine option handling.
var managed = []string{
	"UCI_Chess960",
	"UCI_Variant",
	"UCI_AnalyseMode",
	"UCI_Opponent",
	"Ponder",
	"MultiPV",
}

// Managed reports whether name is reserved for the protocol layer.
// Names it cannot classify are not managed (fail-open).
func Managed(name string) bool {
	for _, m := range managed {
		if strings.EqualFold(name, m) {
			return true
		}
	}
	return false
}

// RemoveManaged returns options without the managed names. Pure and
// idempotent: the input map is never mutated, non-managed entries pass
// through unchanged, and the result is always non-nil.
func RemoveManaged(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for name, value := range options {
		if !Managed(name) {
			out[name] = value
		}
	}
	return out
}
