package stats

import (
	"testing"

	"github.com/quantbt/enginecore/internal/backtest"
	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestCompose_ProfitMatchesSummary(t *testing.T) {
	summary := backtest.TradingSummary{
		Start:        0,
		End:          3 * types.MinuteMS,
		InitialQuote: 100,
		FinalQuote:   110,
		Positions: []backtest.Position{
			{
				Side: types.SideLong, OpenTime: 0, CloseTime: 2 * types.MinuteMS,
				OpenPrice: 100, ClosePrice: 110, Size: 1, Quote: 10,
			},
		},
	}
	basePrices := []types.Candle{
		{Time: 0, Open: 100, High: 100, Low: 100, Close: 100, Volume: 1},
		{Time: types.MinuteMS, Open: 105, High: 105, Low: 105, Close: 105, Volume: 1},
		{Time: 2 * types.MinuteMS, Open: 110, High: 110, Low: 110, Close: 110, Volume: 1},
	}

	st := Compose(summary, basePrices, nil, types.MinuteMS)
	assert.InDelta(t, 0.1, st.Profit, 1e-9)
	assert.Equal(t, 1, st.NumPositions)
	assert.Equal(t, 1, st.NumPositionsInProfit)
	assert.Equal(t, 0, st.NumPositionsInLoss)
}

func TestEvaluationAggregation_Linear(t *testing.T) {
	assert.InDelta(t, 0.15, Linear.Aggregate([]float64{0.1, 0.2}), 1e-9)
}

func TestEvaluationStatistic_Select(t *testing.T) {
	st := Statistics{Profit: 0.2, SharpeRatio: 1.5}
	assert.Equal(t, 0.2, Profit.Select(st))
	assert.Equal(t, 1.5, SharpeRatio.Select(st))
}
