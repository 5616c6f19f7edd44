package strategy

import (
	"testing"

	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
)

func smaChoice() indicators.MAChoice {
	return indicators.MAChoices[0]
}

func candle(close float64) types.Candle {
	return types.Candle{Open: close, High: close, Low: close, Close: close, Volume: 1}
}

func TestSingleMA_CrossesAdvice(t *testing.T) {
	params := &MAParams{MA: smaChoice(), Period: 2}
	s := NewSingleMA(params)

	closes := []float64{1, 2, 3, 2, 1}
	var advices []types.Advice
	for _, c := range closes {
		s.Update(candle(c))
		advices = append(advices, s.Advice())
	}
	// SMA(2) matures at index 1; advice reflects close vs SMA thereafter.
	assert.Equal(t, types.None, advices[0])
	assert.Equal(t, types.Long, advices[1])  // close 2 vs sma 1.5
	assert.Equal(t, types.Long, advices[2])  // close 3 vs sma 2.5
	assert.Equal(t, types.Short, advices[3]) // close 2 vs sma 2.5
	assert.Equal(t, types.Short, advices[4]) // close 1 vs sma 1.5
}

func TestDoubleMA_EmitsOnlyOnCross(t *testing.T) {
	params := &DoubleMAParams{
		Short: MAParams{MA: smaChoice(), Period: 2},
		Long:  MAParams{MA: smaChoice(), Period: 3},
	}
	d := NewDoubleMA(params)

	closes := []float64{1, 2, 3, 4, 3, 2, 1}
	var nonNone int
	for _, c := range closes {
		d.Update(candle(c))
		if d.Advice() != types.None {
			nonNone++
		}
	}
	assert.GreaterOrEqual(t, nonNone, 1)
}

func TestTripleMA_OrderingRules(t *testing.T) {
	params := &TripleMAParams{
		Short:  MAParams{MA: smaChoice(), Period: 2},
		Medium: MAParams{MA: smaChoice(), Period: 3},
		Long:   MAParams{MA: smaChoice(), Period: 4},
	}
	tm := NewTripleMA(params)

	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	for _, c := range closes {
		tm.Update(candle(c))
	}
	// strictly increasing prices: short > medium > long once mature.
	assert.Equal(t, types.Long, tm.Advice())
}

func TestMacd_HistogramSignChange(t *testing.T) {
	params := &MacdParams{ShortPeriod: 2, LongPeriod: 4, SignalPeriod: 2}
	m := NewMacd(params)

	closes := []float64{1, 1, 1, 1, 1, 1, 1, 1, 5, 5, 5, 5}
	var sawLong bool
	for _, c := range closes {
		m.Update(candle(c))
		if m.Advice() == types.Long {
			sawLong = true
		}
	}
	assert.True(t, sawLong)
}
