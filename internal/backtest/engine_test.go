package backtest

import (
	"context"
	"math"
	"testing"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/risk"
	"github.com/quantbt/enginecore/internal/strategy"
	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSignal replays a fixed advice sequence, one per Update call, for
// tests that need control over exactly when entries/exits fire.
type scriptedSignal struct {
	advices []types.Advice
	i       int
}

func (s *scriptedSignal) Params() chromosome.Chromosome { return nil }
func (s *scriptedSignal) Maturity() int                 { return 0 }
func (s *scriptedSignal) Mature() bool                  { return true }
func (s *scriptedSignal) Update(types.Candle) {
	if s.i < len(s.advices) {
		s.i++
	}
}
func (s *scriptedSignal) Advice() types.Advice {
	if s.i == 0 || s.i > len(s.advices) {
		return types.None
	}
	return s.advices[s.i-1]
}

func newScripted(advices ...types.Advice) func() strategy.Signal {
	return func() strategy.Signal { return &scriptedSignal{advices: advices} }
}

func mkCandle(time int64, close float64) types.Candle {
	return types.Candle{Time: time, Open: close, High: close, Low: close, Close: close, Volume: 1}
}

func noSL() risk.StopLoss   { return risk.NoopStopLoss{} }
func noTP() risk.TakeProfit { return risk.NoopTakeProfit{} }

func TestTrade_SingleLongRoundTrip(t *testing.T) {
	tc := TradeContext{
		NewSignal:          newScripted(types.Long, types.Liquidate),
		NewStopLoss:        noSL,
		NewTakeProfit:      noTP,
		Candles:            []types.Candle{mkCandle(0, 100), mkCandle(types.MinuteMS, 110)},
		Fees:               types.Fees{Taker: 0.001},
		Interval:           types.MinuteMS,
		Quote:              100,
		MissedCandlePolicy: types.Ignore,
		EnableLong:         true,
	}

	summary, err := Trade(context.Background(), tc)
	require.NoError(t, err)
	require.Len(t, summary.Positions, 1)

	want := 1.1*math.Pow(1-0.001, 2) - 1
	assert.InDelta(t, want, summary.Profit(), 1e-9)
	assert.Equal(t, CloseStrategy, summary.Positions[0].Reason)
}

func TestTrade_MarginShort(t *testing.T) {
	tc := TradeContext{
		NewSignal:          newScripted(types.Short, types.Liquidate),
		NewStopLoss:        noSL,
		NewTakeProfit:      noTP,
		Candles:            []types.Candle{mkCandle(0, 100), mkCandle(types.MinuteMS, 90)},
		Fees:               types.Fees{Taker: 0},
		BorrowInfo:         types.BorrowInfo{DailyInterestRate: 0, Limit: 1},
		MarginMultiplier:   1,
		Interval:           types.MinuteMS,
		Quote:              100,
		MissedCandlePolicy: types.Ignore,
		EnableShort:        true,
	}

	summary, err := Trade(context.Background(), tc)
	require.NoError(t, err)
	require.Len(t, summary.Positions, 1)

	want := (100.0 - 90.0) / 100.0
	assert.InDelta(t, want, summary.Profit(), 1e-9)
}

func TestTrade_QuoteDeltaInvariant(t *testing.T) {
	tc := TradeContext{
		NewSignal:          newScripted(types.Long, types.None, types.Liquidate, types.Short, types.Liquidate),
		NewStopLoss:        noSL,
		NewTakeProfit:      noTP,
		Candles: []types.Candle{
			mkCandle(0, 100),
			mkCandle(types.MinuteMS, 105),
			mkCandle(2*types.MinuteMS, 102),
			mkCandle(3*types.MinuteMS, 101),
			mkCandle(4*types.MinuteMS, 95),
		},
		Fees:               types.Fees{Taker: 0.001},
		BorrowInfo:         types.BorrowInfo{DailyInterestRate: 0.0001, Limit: 100},
		MarginMultiplier:   1,
		Interval:           types.MinuteMS,
		Quote:              100,
		MissedCandlePolicy: types.Ignore,
		EnableLong:         true,
		EnableShort:        true,
	}

	summary, err := Trade(context.Background(), tc)
	require.NoError(t, err)

	sum := 0.0
	for _, p := range summary.Positions {
		sum += p.Quote
	}
	assert.InDelta(t, summary.FinalQuote-summary.InitialQuote, sum, 1e-6)
}

func TestTrade_InsufficientData(t *testing.T) {
	tc := TradeContext{
		NewSignal:          newScripted(types.Long),
		NewStopLoss:        noSL,
		NewTakeProfit:      noTP,
		Candles:            nil,
		Interval:           types.MinuteMS,
		MissedCandlePolicy: types.Ignore,
	}

	_, err := Trade(context.Background(), tc)
	require.Error(t, err)
}
