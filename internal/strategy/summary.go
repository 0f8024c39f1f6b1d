package strategy

import (
	"fmt"
	"math"

	"InvestSmart/internal/calculator"
	"InvestSmart/internal/model"
)

// Summarize produces the plain-language market analysis for a snapshot.
func Summarize(snap *model.MarketSnapshot) *model.MarketSummary {
	var dayChange float64
	if snap.PrevClose != 0 {
		dayChange = (snap.CurrentPrice - snap.PrevClose) / snap.PrevClose * 100
	}
	rsi := calculator.RSI(snap.Prices, calculator.DefaultRSIPeriod)

	direction := "gained"
	if dayChange < 0 {
		direction = "lost"
	}
	zone := "in neutral territory"
	switch {
	case rsi > 70:
		zone = "overbought"
	case rsi < 30:
		zone = "oversold"
	}

	summary := fmt.Sprintf("%s is currently trading at $%.2f. The stock has %s %.2f%% since the previous close. The RSI indicator suggests the stock is %s.",
		snap.Ticker, snap.CurrentPrice, direction, math.Abs(dayChange), zone)

	return &model.MarketSummary{
		Summary:      summary,
		CurrentPrice: snap.CurrentPrice,
		DayChange:    dayChange,
		RSI:          rsi,
		Volume:       snap.Volume,
	}
}
