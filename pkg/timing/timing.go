// Package timing normalizes the ambiguous duration values found in vendor
// exports (seconds, milliseconds or 1/10000s ticks) and renders them as
// clock strings.
package timing

import (
	"fmt"
	"math"
)

// Unknown marks a duration that could not be resolved.
const Unknown int64 = -1

// Placeholder is rendered for any unknown value.
const Placeholder = "—"

// Thresholds for the tick heuristic. Raw values above the threshold are
// treated as tick counts (1/10000 s), smaller positive values as seconds.
// The JSON and CSV exports use different magnitudes for the same field
// families, so the thresholds must stay distinct per origin format.
const (
	ThresholdJSON float64 = 1_000_000
	ThresholdCSV  float64 = 100_000
)

// Clock renders a millisecond count as M:SS.mmm with unbounded minutes.
// Negative values yield the placeholder.
func Clock(ms int64) string {
	if ms < 0 {
		return Placeholder
	}
	return fmt.Sprintf("%d:%02d.%03d", ms/60_000, (ms%60_000)/1000, ms%1000)
}

// ClockFromRaw is Clock for untrusted float input (NaN, Inf, negative all
// yield the placeholder).
func ClockFromRaw(ms float64) string {
	if !isUsable(ms) {
		return Placeholder
	}
	return Clock(int64(ms))
}

// ResolveDuration converts a raw vendor duration into milliseconds.
// Values above the threshold are tick counts (divided by 10), smaller
// positive values are seconds (multiplied by 1000). Zero is a valid
// leader/winner sentinel and stays zero. Anything negative or non-finite
// resolves to Unknown.
func ResolveDuration(raw, threshold float64) int64 {
	if !isUsable(raw) {
		return Unknown
	}
	switch {
	case raw == 0:
		return 0
	case raw > threshold:
		return int64(raw / 10)
	default:
		return int64(raw * 1000)
	}
}

// ResolveDurationMs works like ResolveDuration for fields whose small
// values are already milliseconds (passed through unchanged).
func ResolveDurationMs(raw, threshold float64) int64 {
	if !isUsable(raw) {
		return Unknown
	}
	if raw > threshold {
		return int64(raw / 10)
	}
	return int64(raw)
}

// Gap formats a margin to the leader: the placeholder when unknown,
// "WIN" for the leader, otherwise "+" followed by the clock string.
func Gap(raw, threshold float64) string {
	ms := ResolveDuration(raw, threshold)
	switch {
	case ms == Unknown:
		return Placeholder
	case ms == 0:
		return "WIN"
	default:
		return "+" + Clock(ms)
	}
}

// GapMs formats an already resolved millisecond margin.
func GapMs(ms int64) string {
	switch {
	case ms < 0:
		return Placeholder
	case ms == 0:
		return "WIN"
	default:
		return "+" + Clock(ms)
	}
}

func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
