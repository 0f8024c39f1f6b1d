package advisor

import (
	"fmt"
	"math/rand"
	"sort"

	"InvestSmart/internal/model"
)

const maxPicks = 5

// allowedTiers resolves the accepted risk tiers for a tolerance, defaulting
// to moderate for unrecognized input.
func allowedTiers(riskLevel string) []model.RiskTier {
	if tiers, ok := riskTierSets[riskLevel]; ok {
		return tiers
	}
	return riskTierSets["moderate"]
}

func tierAllowed(tiers []model.RiskTier, tier model.RiskTier) bool {
	for _, t := range tiers {
		if t == tier {
			return true
		}
	}
	return false
}

// generatePicks filters the candidate universe by risk tolerance, ranks the
// survivors by quality score (stable, so ties keep universe order), and
// dresses the top five with synthetic targets and upside estimates.
func generatePicks(rng *rand.Rand, riskLevel string) []model.Pick {
	tiers := allowedTiers(riskLevel)

	suitable := make([]model.CandidateStock, 0, len(pickUniverse))
	for _, c := range pickUniverse {
		if tierAllowed(tiers, c.Risk) {
			suitable = append(suitable, c)
		}
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return suitable[i].Score > suitable[j].Score
	})
	if len(suitable) > maxPicks {
		suitable = suitable[:maxPicks]
	}

	picks := make([]model.Pick, 0, len(suitable))
	for _, c := range suitable {
		picks = append(picks, model.Pick{
			Symbol:     c.Symbol,
			Rating:     ratingFor(c.Score),
			Confidence: int(c.Score),
			Target:     targetPrice(rng, c),
			Upside:     upsidePercent(rng, c),
			Reasoning:  reasoningFor(c.Symbol),
		})
	}
	return picks
}

func ratingFor(score float64) string {
	switch {
	case score >= 90:
		return "Strong Buy"
	case score >= 80:
		return "Buy"
	default:
		return "Hold"
	}
}

// targetPrice synthesizes a target from a mock current price scaled by the
// growth-tier multiplier.
func targetPrice(rng *rand.Rand, c model.CandidateStock) string {
	basePrice := rng.Float64()*200 + 100
	return fmt.Sprintf("%.2f", basePrice*growthMultipliers[c.Growth])
}

// upsidePercent is the growth-tier base plus jitter bounded to ±2.5.
func upsidePercent(rng *rand.Rand, c model.CandidateStock) string {
	return fmt.Sprintf("%.1f", upsideBases[c.Growth]+rng.Float64()*5-2.5)
}

func reasoningFor(symbol string) string {
	if r, ok := pickReasonings[symbol]; ok {
		return r
	}
	return defaultReasoning
}
