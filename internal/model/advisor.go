package model

// RiskTier buckets an instrument's base risk.
type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskVeryHigh RiskTier = "very high"
)

// GrowthTier buckets an instrument's expected growth.
type GrowthTier string

const (
	GrowthLow      GrowthTier = "low"
	GrowthMedium   GrowthTier = "medium"
	GrowthHigh     GrowthTier = "high"
	GrowthVeryHigh GrowthTier = "very high"
)

// CandidateStock is one immutable entry of the pick universe.
type CandidateStock struct {
	Symbol  string
	Score   float64 // quality score 0-100
	Sector  string
	Risk    RiskTier
	Growth  GrowthTier
}

// Pick is a ranked stock recommendation derived from a CandidateStock.
type Pick struct {
	Symbol     string `json:"symbol"`
	Rating     string `json:"rating"`
	Confidence int    `json:"confidence"`
	Target     string `json:"target"`
	Upside     string `json:"upside"`
	Reasoning  string `json:"reasoning"`
}

// AllocationStrategy is one cell of the risk x term strategy matrix.
// Invariant: StockPct + BondPct + CashPct == 100.
type AllocationStrategy struct {
	Name     string
	StockPct int
	BondPct  int
	CashPct  int
	Focus    string
}

// Allocation is the presentation form of an AllocationStrategy.
type Allocation struct {
	Stocks string `json:"stocks"`
	Bonds  string `json:"bonds"`
	Cash   string `json:"cash"`
}

// SectorOutlook is one row of the sector analysis table.
type SectorOutlook struct {
	Name     string `json:"name"`
	Rating   string `json:"rating"`
	Analysis string `json:"analysis"`
}

// RiskAssessment carries the numeric risk score plus canned guidance.
type RiskAssessment struct {
	Score           float64  `json:"score"`
	Recommendations []string `json:"recommendations"`
}

// EconomicIndicators is the macro backdrop attached to market context.
type EconomicIndicators struct {
	Inflation    float64 `json:"inflation"`
	Unemployment float64 `json:"unemployment"`
	GDPGrowth    float64 `json:"gdpGrowth"`
	InterestRate float64 `json:"interestRate"`
}

// MarketConditions describes overall market sentiment and volatility.
type MarketConditions struct {
	Sentiment          string              `json:"sentiment"`
	Volatility         string              `json:"volatility"`
	Trend              string              `json:"trend,omitempty"`
	FearGreedIndex     int                 `json:"fearGreedIndex,omitempty"`
	VIX                float64             `json:"vix,omitempty"`
	EconomicIndicators *EconomicIndicators `json:"economicIndicators,omitempty"`
}

// SuggestionBundle is the full suggestions response.
type SuggestionBundle struct {
	Strategy      string           `json:"strategy"`
	Allocation    Allocation       `json:"allocation"`
	Sectors       []SectorOutlook  `json:"sectors"`
	Picks         []Pick           `json:"picks"`
	Risk          RiskAssessment   `json:"risk"`
	MarketContext MarketConditions `json:"marketContext"`
	LastUpdated   string           `json:"lastUpdated"`
}

// ScreenerFilters narrows the screener universe. Empty or "all" fields
// leave the corresponding dimension unfiltered.
type ScreenerFilters struct {
	Sector    string
	MarketCap string // "large", "mid", "small"
	PERatio   string // inclusive upper bound
}

// ScreenerEntry is one screener result row. Display strings are kept as the
// upstream data source formats them.
type ScreenerEntry struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Change    string `json:"change"`
	Volume    string `json:"volume"`
	MarketCap string `json:"marketCap"`
	PE        string `json:"pe"`
	Sector    string `json:"sector"`
}

// Fundamentals is the mock per-ticker fundamentals sheet.
type Fundamentals struct {
	PERatio         string `json:"peRatio"`
	MarketCap       string `json:"marketCap"`
	FiftyTwoWeekHi  string `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLo  string `json:"fiftyTwoWeekLow"`
	EPS             string `json:"eps"`
	DividendYield   string `json:"dividendYield"`
	BookValue       string `json:"bookValue"`
	DebtToEquity    string `json:"debtToEquity"`
	ReturnOnEquity  string `json:"roe"`
	ReturnOnAssets  string `json:"roa"`
}

// IndexQuote is a single index level with its daily change.
type IndexQuote struct {
	Value  float64 `json:"value"`
	Change string  `json:"change"`
}

// MarketOverview is the dashboard's market-wide summary block.
type MarketOverview struct {
	FearGreedIndex struct {
		Value int    `json:"value"`
		Label string `json:"label"`
	} `json:"fearGreedIndex"`
	VIX           float64               `json:"vix"`
	TreasuryYield float64               `json:"treasuryYield"`
	DollarIndex   float64               `json:"dollarIndex"`
	Commodities   map[string]float64    `json:"commodities,omitempty"`
	Indices       map[string]IndexQuote `json:"indices,omitempty"`
}

// Mover is one row of the top gainers/losers table.
type Mover struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
	Change string `json:"change"`
	Volume string `json:"volume"`
}

// Insight is an AI-style market observation.
type Insight struct {
	Type       string `json:"type"`
	Confidence string `json:"confidence"`
	Text       string `json:"text"`
}

// EducationalItem is one article of investor education content.
type EducationalItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PortfolioAnalysis is the canned response for portfolio review requests.
type PortfolioAnalysis struct {
	TotalValue      float64 `json:"totalValue"`
	DayChange       float64 `json:"dayChange"`
	TotalReturn     float64 `json:"totalReturn"`
	Diversification string  `json:"diversification"`
	RiskScore       float64 `json:"riskScore"`
}

// RiskReview is the canned response for holdings risk assessment requests.
type RiskReview struct {
	OverallRisk       string   `json:"overallRisk"`
	ConcentrationRisk string   `json:"concentrationRisk"`
	SectorExposure    string   `json:"sectorExposure"`
	Recommendations   []string `json:"recommendations"`
}

// StockComparison scores one ticker in a side-by-side comparison.
type StockComparison struct {
	Symbol         string  `json:"symbol"`
	Score          float64 `json:"score"`
	Recommendation string  `json:"recommendation"`
}

// MacroIndicators is the standalone economic-indicators response.
type MacroIndicators struct {
	GDP          float64 `json:"gdp"`
	Inflation    float64 `json:"inflation"`
	Unemployment float64 `json:"unemployment"`
	InterestRate float64 `json:"interestRate"`
}

// SentimentReading is the aggregate market sentiment response.
type SentimentReading struct {
	Sentiment  string `json:"sentiment"`
	Confidence int    `json:"confidence"`
}
