package advisor

import "InvestSmart/internal/model"

// strategyKey indexes the allocation-strategy matrix.
type strategyKey struct {
	Risk string
	Term string
}

// strategyMatrix maps (risk level, investment term) to an allocation
// strategy. Percentages in every cell sum to 100.
var strategyMatrix = map[strategyKey]model.AllocationStrategy{
	{"conservative", "short"}:  {Name: "Conservative Income", StockPct: 40, BondPct: 50, CashPct: 10, Focus: "Capital preservation with steady income"},
	{"conservative", "medium"}: {Name: "Balanced Conservative", StockPct: 50, BondPct: 40, CashPct: 10, Focus: "Moderate growth with income generation"},
	{"conservative", "long"}:   {Name: "Conservative Growth", StockPct: 60, BondPct: 35, CashPct: 5, Focus: "Long-term stability with modest growth"},
	{"moderate", "short"}:      {Name: "Balanced Portfolio", StockPct: 60, BondPct: 30, CashPct: 10, Focus: "Balanced approach to growth and stability"},
	{"moderate", "medium"}:     {Name: "Moderate Growth", StockPct: 70, BondPct: 25, CashPct: 5, Focus: "Growth-oriented with risk management"},
	{"moderate", "long"}:       {Name: "Growth Portfolio", StockPct: 80, BondPct: 15, CashPct: 5, Focus: "Long-term wealth building"},
	{"aggressive", "short"}:    {Name: "Aggressive Trading", StockPct: 85, BondPct: 10, CashPct: 5, Focus: "High-growth potential with volatility"},
	{"aggressive", "medium"}:   {Name: "Growth Focus", StockPct: 90, BondPct: 5, CashPct: 5, Focus: "Maximum growth potential"},
	{"aggressive", "long"}:     {Name: "Maximum Growth", StockPct: 95, BondPct: 0, CashPct: 5, Focus: "All-in growth strategy"},
}

// defaultStrategyKey is used when the risk/term pair is unrecognized.
var defaultStrategyKey = strategyKey{"moderate", "medium"}

// lookupStrategy resolves the allocation strategy for a risk/term pair,
// falling back to moderate/medium for unknown inputs.
func lookupStrategy(risk, term string) model.AllocationStrategy {
	if s, ok := strategyMatrix[strategyKey{risk, term}]; ok {
		return s
	}
	return strategyMatrix[defaultStrategyKey]
}

// pickUniverse is the static candidate universe for pick generation,
// ordered; ranking ties are broken by this order.
var pickUniverse = []model.CandidateStock{
	// Technology
	{Symbol: "AAPL", Score: 85, Sector: "Technology", Risk: model.RiskMedium, Growth: model.GrowthHigh},
	{Symbol: "MSFT", Score: 92, Sector: "Technology", Risk: model.RiskMedium, Growth: model.GrowthHigh},
	{Symbol: "GOOGL", Score: 88, Sector: "Technology", Risk: model.RiskMedium, Growth: model.GrowthHigh},
	{Symbol: "NVDA", Score: 78, Sector: "Technology", Risk: model.RiskHigh, Growth: model.GrowthVeryHigh},
	{Symbol: "TSLA", Score: 72, Sector: "Technology", Risk: model.RiskVeryHigh, Growth: model.GrowthVeryHigh},

	// Healthcare
	{Symbol: "JNJ", Score: 89, Sector: "Healthcare", Risk: model.RiskLow, Growth: model.GrowthMedium},
	{Symbol: "PFE", Score: 82, Sector: "Healthcare", Risk: model.RiskLow, Growth: model.GrowthMedium},
	{Symbol: "UNH", Score: 91, Sector: "Healthcare", Risk: model.RiskMedium, Growth: model.GrowthHigh},

	// Finance
	{Symbol: "JPM", Score: 86, Sector: "Finance", Risk: model.RiskMedium, Growth: model.GrowthMedium},
	{Symbol: "BAC", Score: 79, Sector: "Finance", Risk: model.RiskMedium, Growth: model.GrowthMedium},
	{Symbol: "BRK.B", Score: 94, Sector: "Finance", Risk: model.RiskLow, Growth: model.GrowthMedium},

	// Consumer
	{Symbol: "PG", Score: 87, Sector: "Consumer Staples", Risk: model.RiskLow, Growth: model.GrowthLow},
	{Symbol: "KO", Score: 83, Sector: "Consumer Staples", Risk: model.RiskLow, Growth: model.GrowthLow},
	{Symbol: "AMZN", Score: 81, Sector: "Consumer Discretionary", Risk: model.RiskMedium, Growth: model.GrowthHigh},
}

// riskTierSets maps a risk tolerance to the instrument tiers it accepts.
var riskTierSets = map[string][]model.RiskTier{
	"conservative": {model.RiskLow},
	"moderate":     {model.RiskLow, model.RiskMedium},
	"aggressive":   {model.RiskLow, model.RiskMedium, model.RiskHigh, model.RiskVeryHigh},
}

// growthMultipliers scale the synthetic current price into a target price.
var growthMultipliers = map[model.GrowthTier]float64{
	model.GrowthLow:      1.02,
	model.GrowthMedium:   1.05,
	model.GrowthHigh:     1.10,
	model.GrowthVeryHigh: 1.15,
}

// upsideBases seed the upside percentage before jitter.
var upsideBases = map[model.GrowthTier]float64{
	model.GrowthLow:      2,
	model.GrowthMedium:   5,
	model.GrowthHigh:     10,
	model.GrowthVeryHigh: 15,
}

// pickReasonings carries the hand-authored one-line theses per symbol.
var pickReasonings = map[string]string{
	"AAPL":  "Strong ecosystem, loyal customer base, services growth",
	"MSFT":  "Cloud dominance, AI leadership, enterprise strength",
	"GOOGL": "Search monopoly, AI investments, diverse revenue streams",
	"NVDA":  "AI chip leader, data center growth, gaming strength",
	"TSLA":  "EV market leader, energy storage, autonomous driving",
	"JNJ":   "Diversified healthcare, strong pipeline, dividend aristocrat",
	"PFE":   "Pharmaceutical innovation, COVID learnings, global reach",
	"UNH":   "Healthcare ecosystem, market leadership, growth prospects",
	"JPM":   "Leading bank, diverse services, strong balance sheet",
	"BAC":   "Interest rate beneficiary, cost efficiency, market position",
	"BRK.B": "Berkshire quality, diversified holdings, Buffett leadership",
	"PG":    "Consumer staples leader, brand portfolio, dividend growth",
	"KO":    "Global brand, dividend consistency, emerging market exposure",
	"AMZN":  "E-commerce dominance, AWS growth, innovation culture",
}

const defaultReasoning = "Strong fundamentals and growth prospects"

// screenerUniverse is the static screener table; display strings are kept
// verbatim from the upstream feed. Screening preserves this order.
var screenerUniverse = []model.ScreenerEntry{
	{Symbol: "AAPL", Name: "Apple Inc.", Price: "192.50", Change: "+1.2%", Volume: "45.2M", MarketCap: "$2.8T", PE: "24.5", Sector: "technology"},
	{Symbol: "MSFT", Name: "Microsoft Corp.", Price: "415.80", Change: "-0.5%", Volume: "28.1M", MarketCap: "$3.1T", PE: "28.2", Sector: "technology"},
	{Symbol: "GOOGL", Name: "Alphabet Inc.", Price: "142.30", Change: "+0.8%", Volume: "32.5M", MarketCap: "$1.8T", PE: "22.1", Sector: "technology"},
	{Symbol: "JNJ", Name: "Johnson & Johnson", Price: "168.45", Change: "+0.3%", Volume: "15.8M", MarketCap: "$445B", PE: "16.2", Sector: "healthcare"},
	{Symbol: "JPM", Name: "JPMorgan Chase", Price: "172.85", Change: "+1.5%", Volume: "22.3M", MarketCap: "$505B", PE: "12.8", Sector: "finance"},
	{Symbol: "PG", Name: "Procter & Gamble", Price: "155.20", Change: "-0.2%", Volume: "8.9M", MarketCap: "$368B", PE: "25.1", Sector: "consumer"},
	{Symbol: "XOM", Name: "Exxon Mobil", Price: "108.75", Change: "+2.1%", Volume: "18.5M", MarketCap: "$459B", PE: "14.5", Sector: "energy"},
}

// sectorOutlooks is the static per-sector rating/analysis table.
var sectorOutlooks = []model.SectorOutlook{
	{Name: "Technology", Rating: "Bullish", Analysis: "AI revolution driving growth. Cloud computing and digital transformation continue to accelerate. Strong earnings growth expected."},
	{Name: "Healthcare", Rating: "Neutral", Analysis: "Mixed signals with biotech innovation offset by pricing pressures. Aging demographics provide long-term tailwinds."},
	{Name: "Finance", Rating: "Bullish", Analysis: "Rising interest rates benefit banks. Strong loan demand and improving credit quality support sector outlook."},
	{Name: "Energy", Rating: "Neutral", Analysis: "Commodity price volatility and transition to renewables create uncertainty. Value opportunities exist in established players."},
	{Name: "Consumer Staples", Rating: "Bearish", Analysis: "Margin pressure from inflation and changing consumer preferences. Defensive characteristics remain attractive in uncertainty."},
}

// riskScores maps a risk tolerance to the reported portfolio risk score.
var riskScores = map[string]float64{
	"conservative": 3.5,
	"moderate":     6.5,
	"aggressive":   8.5,
}

const defaultRiskScore = 5.0

// riskRecommendations carries per-tolerance canned guidance.
var riskRecommendations = map[string][]string{
	"conservative": {
		"Consider adding more defensive stocks (utilities, consumer staples)",
		"Increase bond allocation for stability",
		"Focus on dividend-paying stocks for income",
	},
	"moderate": {
		"Maintain balanced approach across sectors",
		"Consider international diversification",
		"Monitor position sizes and rebalance quarterly",
	},
	"aggressive": {
		"High growth potential comes with volatility",
		"Consider taking profits on winners periodically",
		"Maintain emergency cash reserves",
	},
}

// marketMovers holds the static gainers/losers tables.
var marketMovers = map[string][]model.Mover{
	"gainers": {
		{Symbol: "NVDA", Price: "$875.20", Change: "+5.2%", Volume: "52.3M"},
		{Symbol: "AMD", Price: "$142.50", Change: "+3.8%", Volume: "48.1M"},
		{Symbol: "TSLA", Price: "$248.90", Change: "+2.1%", Volume: "85.7M"},
		{Symbol: "META", Price: "$385.45", Change: "+1.9%", Volume: "25.8M"},
		{Symbol: "NFLX", Price: "$485.32", Change: "+1.7%", Volume: "15.4M"},
	},
	"losers": {
		{Symbol: "NFLX", Price: "$445.30", Change: "-2.8%", Volume: "28.5M"},
		{Symbol: "PYPL", Price: "$58.75", Change: "-1.9%", Volume: "22.3M"},
		{Symbol: "ZOOM", Price: "$67.45", Change: "-1.5%", Volume: "18.7M"},
		{Symbol: "ROKU", Price: "$52.18", Change: "-1.3%", Volume: "12.9M"},
		{Symbol: "SHOP", Price: "$65.83", Change: "-1.1%", Volume: "15.2M"},
	},
}

// marketInsights is the static insight feed.
var marketInsights = []model.Insight{
	{Type: "Bullish Signal", Confidence: "85%", Text: "Technology sector showing strong momentum with AI stocks leading gains. Institutional buying accelerating."},
	{Type: "Risk Alert", Confidence: "70%", Text: "High correlation detected in growth stocks. Consider diversification into value or defensive sectors."},
	{Type: "Opportunity", Confidence: "78%", Text: "Healthcare biotech showing oversold conditions. Quality names trading at attractive valuations."},
}

// educationalContent is the static investor-education library.
var educationalContent = []model.EducationalItem{
	{Title: "Understanding P/E Ratios", Content: "Guide to valuation metrics"},
	{Title: "Portfolio Diversification", Content: "Risk management strategies"},
}

// defaultWatchlist seeds a user's first watchlist.
var defaultWatchlist = []string{"AAPL", "MSFT", "GOOGL"}

// currentConditions is the static market backdrop attached to suggestions.
var currentConditions = model.MarketConditions{
	Sentiment:      "Cautiously Optimistic",
	Volatility:     "Medium",
	Trend:          "Upward",
	FearGreedIndex: 52,
	VIX:            18.5,
	EconomicIndicators: &model.EconomicIndicators{
		Inflation:    3.2,
		Unemployment: 3.8,
		GDPGrowth:    2.1,
		InterestRate: 5.25,
	},
}
