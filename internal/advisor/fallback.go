package advisor

import (
	"time"

	"InvestSmart/internal/model"
)

// fallbackProvider owns every hand-authored fail-open payload. All provider
// and assembly failures funnel through here so the canned content lives in
// exactly one place.
type fallbackProvider struct {
	now func() time.Time
}

// Suggestions is the canned bundle returned when live assembly fails.
func (f fallbackProvider) Suggestions(riskLevel string) *model.SuggestionBundle {
	return &model.SuggestionBundle{
		Strategy:   "Balanced Growth",
		Allocation: model.Allocation{Stocks: "70%", Bonds: "20%", Cash: "10%"},
		Sectors:    f.Sectors(),
		Picks:      f.Picks(riskLevel),
		Risk:       assessRisk(riskLevel),
		MarketContext: model.MarketConditions{
			Sentiment:  "Neutral",
			Volatility: "Medium",
		},
		LastUpdated: f.now().Format(time.RFC3339),
	}
}

// Picks returns the per-tolerance canned pick list.
func (f fallbackProvider) Picks(riskLevel string) []model.Pick {
	switch riskLevel {
	case "conservative":
		return []model.Pick{
			{Symbol: "JNJ", Rating: "Buy", Confidence: 85, Target: "175", Upside: "4.0", Reasoning: "Dividend aristocrat with healthcare stability"},
			{Symbol: "PG", Rating: "Hold", Confidence: 78, Target: "160", Upside: "3.1", Reasoning: "Consumer staples leader with consistent growth"},
		}
	case "aggressive":
		return []model.Pick{
			{Symbol: "NVDA", Rating: "Buy", Confidence: 88, Target: "950", Upside: "8.5", Reasoning: "AI chip dominance and data center growth"},
			{Symbol: "TSLA", Rating: "Hold", Confidence: 72, Target: "280", Upside: "12.5", Reasoning: "EV leadership and energy storage potential"},
		}
	default:
		return []model.Pick{
			{Symbol: "MSFT", Rating: "Strong Buy", Confidence: 92, Target: "450", Upside: "8.3", Reasoning: "Cloud leadership and AI innovation"},
			{Symbol: "AAPL", Rating: "Buy", Confidence: 87, Target: "210", Upside: "9.1", Reasoning: "Strong ecosystem and services growth"},
		}
	}
}

// Sectors is the abbreviated sector table used when the full analysis is
// unavailable.
func (f fallbackProvider) Sectors() []model.SectorOutlook {
	return []model.SectorOutlook{
		{Name: "Technology", Rating: "Bullish", Analysis: "AI and cloud computing driving growth"},
		{Name: "Healthcare", Rating: "Neutral", Analysis: "Mixed signals across subsectors"},
		{Name: "Finance", Rating: "Bullish", Analysis: "Benefiting from higher interest rates"},
	}
}

// Overview is the canned market overview.
func (f fallbackProvider) Overview() *model.MarketOverview {
	o := &model.MarketOverview{
		VIX:           20.0,
		TreasuryYield: 4.5,
		DollarIndex:   105.0,
	}
	o.FearGreedIndex.Value = 50
	o.FearGreedIndex.Label = "Neutral"
	return o
}
