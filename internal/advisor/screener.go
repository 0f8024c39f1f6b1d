package advisor

import (
	"strconv"
	"strings"

	"InvestSmart/internal/model"
)

// screen filters the screener universe. Order is preserved; an empty result
// is a valid answer, never an error.
func screen(f model.ScreenerFilters) []model.ScreenerEntry {
	results := make([]model.ScreenerEntry, 0, len(screenerUniverse))

	var maxPE float64
	filterPE := false
	if f.PERatio != "" && f.PERatio != "all" {
		if v, err := strconv.ParseFloat(f.PERatio, 64); err == nil {
			maxPE = v
			filterPE = true
		}
	}

	for _, s := range screenerUniverse {
		if f.Sector != "" && f.Sector != "all" && s.Sector != f.Sector {
			continue
		}
		if f.MarketCap != "" && f.MarketCap != "all" && !capBucketMatches(f.MarketCap, s.MarketCap) {
			continue
		}
		if filterPE {
			pe, err := strconv.ParseFloat(s.PE, 64)
			if err != nil || pe > maxPE {
				continue
			}
		}
		results = append(results, s)
	}
	return results
}

// capBucketMatches classifies a capitalization display string against a
// bucket. The numeric part is compared in the instrument's stated unit
// (so "$2.8T" is 2.8), reproducing the upstream bucketing exactly.
func capBucketMatches(bucket, display string) bool {
	value := parseCapValue(display)
	switch bucket {
	case "large":
		return value >= 10
	case "mid":
		return value >= 2 && value < 10
	case "small":
		return value < 2
	default:
		return true
	}
}

// parseCapValue strips the currency and unit suffixes and parses the rest.
func parseCapValue(display string) float64 {
	trimmed := strings.TrimFunc(display, func(r rune) bool {
		return r == '$' || r == 'T' || r == 'B'
	})
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return v
}
