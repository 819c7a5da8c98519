// Package scoring computes a 0-100 job readiness score for a user's skill map
// against a target role. Scoring runs one of two strategies: a predictive
// model injected at startup, or a deterministic weighted formula used when no
// model is available. The fallback is pure and doubles as the reference
// oracle in tests.
package scoring

import "strings"

// Numeric values for proficiency levels. Unknown or absent levels count as 0.
const (
	valueBeginner     = 1
	valueIntermediate = 2
	valueAdvanced     = 3
)

// LevelValue maps a proficiency level to its numeric value. Input is
// case-insensitive; unrecognized levels map to 0.
func LevelValue(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner":
		return valueBeginner
	case "intermediate":
		return valueIntermediate
	case "advanced":
		return valueAdvanced
	default:
		return 0
	}
}
