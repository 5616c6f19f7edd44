package backtest

import "github.com/quantbt/enginecore/pkg/types"

// CloseReason records which exit predicate closed a Position.
type CloseReason string

const (
	CloseStrategy   CloseReason = "strategy"
	CloseStopLoss   CloseReason = "stop_loss"
	CloseTakeProfit CloseReason = "take_profit"
)

// Position is one complete open/close round-trip recorded by the simulator.
type Position struct {
	Side       types.Side  `json:"side"`
	OpenTime   int64       `json:"open_time"`
	CloseTime  int64       `json:"close_time"`
	OpenPrice  float64     `json:"open_price"`
	ClosePrice float64     `json:"close_price"`
	Size       float64     `json:"size"`
	Quote      float64     `json:"quote"`
	Borrowed   float64     `json:"borrowed,omitempty"`
	Interest   float64     `json:"interest,omitempty"`
	Reason     CloseReason `json:"reason"`
}

// TradingSummary is the complete output of one Trade call.
type TradingSummary struct {
	Start        int64      `json:"start"`
	End          int64      `json:"end"`
	InitialQuote float64    `json:"initial_quote"`
	FinalQuote   float64    `json:"final_quote"`
	Positions    []Position `json:"positions"`
}

// Profit is the fractional return over the run: final_quote/initial_quote - 1.
func (s TradingSummary) Profit() float64 {
	if s.InitialQuote == 0 {
		return 0
	}
	return s.FinalQuote/s.InitialQuote - 1
}

type state int

const (
	stateFlat state = iota
	stateLong
	stateShort
)
