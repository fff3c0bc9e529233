package portfolio

// GrowthTicker is a curated growth candidate shown on the discovery view.
// The list is static; these symbols are not part of the tracked portfolio.
type GrowthTicker struct {
	Symbol    string
	Name      string
	Potential string
}

var growthTickers = []GrowthTicker{
	{Symbol: "NVDA", Name: "NVIDIA Corp.", Potential: "High"},
	{Symbol: "AMD", Name: "Adv. Micro Devices", Potential: "High"},
	{Symbol: "PLTR", Name: "Palantir Tech", Potential: "Medium"},
	{Symbol: "U", Name: "Unity Software", Potential: "High"},
}

// GrowthTickers returns the curated growth list.
func GrowthTickers() []GrowthTicker {
	out := make([]GrowthTicker, len(growthTickers))
	copy(out, growthTickers)
	return out
}
