package risk

import (
	"testing"

	"github.com/quantbt/enginecore/pkg/types"
	"github.com/stretchr/testify/assert"
)

// spec.md scenario: Basic stop-loss, threshold=0.1, long entry close=100.
// Closes [95, 92, 90.1, 89.9] trigger upside_hit exactly at index 3.
func TestBasicStopLoss_UpsideHitScenario(t *testing.T) {
	sl := NewBasicStopLoss(0.1)
	sl.Clear(100)
	closes := []float64{95, 92, 90.1, 89.9}
	hitIndex := -1
	for i, c := range closes {
		sl.Update(types.Candle{Close: c})
		if sl.UpsideHit() {
			hitIndex = i
			break
		}
	}
	assert.Equal(t, 3, hitIndex)
}

func TestNoopStopLoss_NeverHits(t *testing.T) {
	sl := NoopStopLoss{}
	sl.Clear(100)
	sl.Update(types.Candle{Close: 0.01})
	assert.False(t, sl.UpsideHit())
	assert.False(t, sl.DownsideHit())
}

func TestTrailingStopLoss_TracksExtremum(t *testing.T) {
	sl := NewTrailingStopLoss(0.1)
	sl.Clear(100)
	sl.Update(types.Candle{Close: 120}) // new peak
	assert.False(t, sl.UpsideHit())
	sl.Update(types.Candle{Close: 107}) // retraced >10% from 120
	assert.True(t, sl.UpsideHit())
}

func TestBasicTakeProfit_FiresAtGainThreshold(t *testing.T) {
	tp := NewBasicTakeProfit(0.05)
	tp.Clear(100)
	tp.Update(types.Candle{Close: 104})
	assert.False(t, tp.UpsideHit())
	tp.Update(types.Candle{Close: 105})
	assert.True(t, tp.UpsideHit())
}
