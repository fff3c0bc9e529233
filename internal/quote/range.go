package quote

// Range is a named time window requested by the UI.
type Range string

const (
	Range1d  Range = "1d"
	Range5d  Range = "5d"
	Range1w  Range = "1w"
	Range1mo Range = "1mo"
	Range3mo Range = "3mo"
	Range6mo Range = "6mo"
	Range1y  Range = "1y"
)

// Resolve maps a Range to the upstream (span, interval) query pair.
// The sampling interval scales with the span so charts keep a usable
// number of points. Unrecognized ranges fall back to a one-day span
// with daily sampling.
func Resolve(r Range) (span, interval string) {
	switch r {
	case Range1d:
		return "1d", "5m"
	case Range5d, Range1w:
		// the UI's "1w" is served by the upstream's 5-trading-day span
		return "5d", "15m"
	case Range1mo:
		return "1mo", "1d"
	case Range3mo:
		return "3mo", "1d"
	case Range6mo:
		return "6mo", "1d"
	case Range1y:
		return "1y", "1wk"
	default:
		return "1d", "1d"
	}
}
