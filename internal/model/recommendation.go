package model

// Action is the discrete trading recommendation.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionHold Action = "HOLD"
)

// Indicators holds the technical indicators derived from one snapshot.
type Indicators struct {
	RSI14  float64
	SMA50  float64
	SMA200 float64
}

// Recommendation is the output of the rules engine. Stateless per call.
type Recommendation struct {
	Action     Action   `json:"recommendation"`
	Rationale  string   `json:"reason"`
	Indicators []string `json:"indicators"`
}
