// Package optval provides tolerant option-value extraction for protocol
// adapters. Configuration blocks arrive as map[string]any decoded from
// YAML or JSON, so numeric values may be int, int64, float64, or a
// numeric string depending on the decoder. No validation logic.
//
// Exported within internal/ — visible to the adapter packages (uci/,
// xboard/) but not to library consumers.
package optval

import "strconv"

// Int64 coerces a single value to int64. Values that are not numeric
// yield 0.
func Int64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// GetInt64 extracts a numeric field from a map. Missing keys and
// non-numeric values yield 0.
func GetInt64(m map[string]any, key string) int64 {
	return Int64(m[key])
}

// GetMap extracts a nested mapping from a map. Missing keys and
// non-mapping values yield nil.
func GetMap(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}
