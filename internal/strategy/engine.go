// Package strategy derives trading recommendations from price snapshots and
// runs the toy single-path strategy simulations.
package strategy

import (
	"fmt"

	"InvestSmart/internal/calculator"
	"InvestSmart/internal/model"
)

// ComputeIndicators derives the indicator set used by the rules engine.
func ComputeIndicators(snap *model.MarketSnapshot) model.Indicators {
	return model.Indicators{
		RSI14:  calculator.RSI(snap.Prices, calculator.DefaultRSIPeriod),
		SMA50:  calculator.SMA(snap.Prices, 50),
		SMA200: calculator.SMA(snap.Prices, 200),
	}
}

// Advise maps a snapshot's indicators to a discrete recommendation.
//
// The decision table is evaluated first-match-wins:
//  1. RSI < 30 and price above the 200-day SMA -> BUY
//  2. RSI > 70 or price below the 200-day SMA  -> SELL
//  3. otherwise                                -> HOLD
//
// Supplied context only colors the rationale; it never changes the action.
func Advise(snap *model.MarketSnapshot, contexts []model.TickerContext) *model.Recommendation {
	ind := ComputeIndicators(snap)

	var action model.Action
	var rationale string

	switch {
	case ind.RSI14 < 30 && snap.CurrentPrice > ind.SMA200:
		action = model.ActionBuy
		rationale = fmt.Sprintf("Oversold conditions (RSI: %.1f) with price above 200-day SMA suggests a buying opportunity.", ind.RSI14)
	case ind.RSI14 > 70 || snap.CurrentPrice < ind.SMA200:
		action = model.ActionSell
		rationale = fmt.Sprintf("Overbought conditions (RSI: %.1f) or price below 200-day SMA suggests caution.", ind.RSI14)
	default:
		action = model.ActionHold
		rationale = "Neutral technical indicators suggest maintaining current position."
	}

	if len(contexts) > 0 {
		rationale += fmt.Sprintf(" News sentiment is %s.", contexts[0].Sentiment)
	}

	return &model.Recommendation{
		Action:    action,
		Rationale: rationale,
		Indicators: []string{
			fmt.Sprintf("RSI (14): %.1f", ind.RSI14),
			fmt.Sprintf("50-day SMA: $%.2f", ind.SMA50),
			fmt.Sprintf("200-day SMA: $%.2f", ind.SMA200),
			fmt.Sprintf("Current Price: $%.2f", snap.CurrentPrice),
		},
	}
}
