package strategy

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"InvestSmart/internal/model"
)

const (
	simulationSteps  = 30
	simulationTrades = 5
	startingEquity   = 10000.0
	tradeSpacingDays = 7
	defaultArchetype = "momentum"
)

// Profiles maps strategy archetypes to their fixed reference metrics. The
// metrics are reported verbatim in results; they are independent of the
// generated performance curve.
var Profiles = map[string]model.StrategyProfile{
	"momentum": {
		Name:        "Momentum Strategy",
		SharpeRatio: 1.2,
		MaxDrawdown: -0.15,
		WinRate:     0.65,
		TotalReturn: 0.32,
	},
	"mean_reversion": {
		Name:        "Mean Reversion Strategy",
		SharpeRatio: 0.9,
		MaxDrawdown: -0.22,
		WinRate:     0.58,
		TotalReturn: 0.18,
	},
	"ml_strategy": {
		Name:        "ML-Based Strategy",
		SharpeRatio: 1.5,
		MaxDrawdown: -0.12,
		WinRate:     0.7,
		TotalReturn: 0.45,
	},
}

// Simulator generates illustrative equity curves and trade logs. The random
// source and clock are injectable so tests can pin the output.
type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSimulator creates a simulator. A nil rng falls back to a time-seeded
// source.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{rng: rng, now: time.Now}
}

// Run executes one simulated backtest for the ticker. Unknown archetypes
// default to momentum. currentPrice anchors the synthetic trade prices.
func (s *Simulator) Run(ticker, archetype string, currentPrice float64) *model.SimulationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := Profiles[archetype]
	if !ok {
		profile = Profiles[defaultArchetype]
	}

	// Bounded random walk, compounding from the starting equity. The curve
	// is illustrative only; reported metrics come from the profile above.
	performance := make([]float64, 0, simulationSteps)
	value := startingEquity
	for i := 0; i < simulationSteps; i++ {
		dailyReturn := s.rng.Float64()*0.02 - 0.005
		value *= 1 + dailyReturn
		performance = append(performance, value)
	}

	now := s.now()
	trades := make([]model.SimulatedTrade, 0, simulationTrades)
	for i := 0; i < simulationTrades; i++ {
		side := "sell"
		if s.rng.Float64() > 0.5 {
			side = "buy"
		}
		trades = append(trades, model.SimulatedTrade{
			Date:   now.AddDate(0, 0, -i*tradeSpacingDays).Format("2006-01-02"),
			Type:   side,
			Price:  currentPrice * (0.95 + s.rng.Float64()*0.1),
			Return: s.rng.Float64()*0.1 - 0.02,
		})
	}

	return &model.SimulationResult{
		RunID:        uuid.NewString(),
		Ticker:       ticker,
		StrategyName: profile.Name,
		StartDate:    now.AddDate(0, 0, -30).Format("2006-01-02"),
		EndDate:      now.Format("2006-01-02"),
		SharpeRatio:  profile.SharpeRatio,
		MaxDrawdown:  profile.MaxDrawdown,
		WinRate:      profile.WinRate,
		TotalReturn:  profile.TotalReturn,
		Performance:  performance,
		KeyTrades:    trades,
	}
}
