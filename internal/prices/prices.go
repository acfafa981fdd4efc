// Package prices resolves USD prices for dates against an already-fetched
// daily price map. Fetching is the collaborator's job; resolution never
// fails and never performs I/O.
package prices

import (
	"time"

	"validator-ledger/internal/domain"
)

// FallbackUSD is returned when the map is empty or the query date cannot
// be parsed. Reports built on the fallback are flagged by the caller.
const FallbackUSD = 170.0

const dateLayout = "2006-01-02"

// Resolve returns the USD price for date. An exact key match wins;
// otherwise the cached date with the minimum absolute day-distance is used,
// with ties broken toward the earlier date so resolution is deterministic.
func Resolve(prices domain.PriceMap, date string) float64 {
	if p, ok := prices[date]; ok {
		return p
	}

	target, err := time.Parse(dateLayout, date)
	if err != nil {
		return FallbackUSD
	}

	closest := FallbackUSD
	closestDiff := int64(-1)
	var closestDate time.Time

	for d, p := range prices {
		cached, err := time.Parse(dateLayout, d)
		if err != nil {
			continue
		}
		diff := int64(target.Sub(cached).Hours() / 24)
		if diff < 0 {
			diff = -diff
		}
		better := closestDiff < 0 || diff < closestDiff ||
			(diff == closestDiff && cached.Before(closestDate))
		if better {
			closestDiff = diff
			closestDate = cached
			closest = p
		}
	}

	return closest
}
