package backtest

import (
	"github.com/quantbt/enginecore/internal/risk"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/types"
)

// TradeContext bundles everything Trade needs to run one simulation.
// Signal, StopLoss, and TakeProfit are supplied as factories rather than
// built instances so the Restart missed-candle policy can rebuild fresh
// state mid-stream without Trade knowing the concrete types involved.
type TradeContext struct {
	NewSignal     func() strategy.Signal
	NewStopLoss   func() risk.StopLoss
	NewTakeProfit func() risk.TakeProfit

	Candles []types.Candle

	Fees             types.Fees
	Filters          types.Filters
	BorrowInfo       types.BorrowInfo
	MarginMultiplier float64
	Interval         int64
	Quote            float64

	MissedCandlePolicy types.MissedCandlePolicy
	EnableLong         bool
	EnableShort        bool
}
