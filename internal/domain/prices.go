package domain

// PriceMap holds daily USD-per-SOL prices keyed by ISO date string.
// Append-only within a run; populated by the price-fetch collaborator.
type PriceMap map[string]float64

// PricePoint is one stored daily price observation.
type PricePoint struct {
	Date     string  // ISO date "YYYY-MM-DD"
	PriceUSD float64 // USD per SOL
	Source   string  // where the observation came from
}
