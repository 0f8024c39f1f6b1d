package model

// SimulatedTrade is one synthetic entry of the backtest trade log.
type SimulatedTrade struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"` // "buy" or "sell"
	Price  float64 `json:"price"`
	Return float64 `json:"return"`
}

// StrategyProfile carries the fixed reference metrics for one strategy
// archetype. The metrics are reported verbatim in simulation results; they
// are not derived from the generated performance curve.
type StrategyProfile struct {
	Name        string
	SharpeRatio float64
	MaxDrawdown float64
	WinRate     float64
	TotalReturn float64
}

// SimulationResult is the full backtest response for one run.
type SimulationResult struct {
	RunID        string           `json:"run_id"`
	Ticker       string           `json:"ticker"`
	StrategyName string           `json:"strategy_name"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	SharpeRatio  float64          `json:"sharpe_ratio"`
	MaxDrawdown  float64          `json:"max_drawdown"`
	WinRate      float64          `json:"win_rate"`
	TotalReturn  float64          `json:"total_return"`
	Performance  []float64        `json:"performance"`
	KeyTrades    []SimulatedTrade `json:"key_trades"`
}
