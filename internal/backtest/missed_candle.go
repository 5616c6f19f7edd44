package backtest

import (
	"github.com/quantbt/enginecore/internal/xmath"
	"github.com/quantbt/enginecore/pkg/types"
)

// isGap reports whether the move from prev to cur skips at least one
// interval, using floor_multiple so alignment is judged on interval
// boundaries rather than raw elapsed time.
func isGap(prevTime, curTime int64, interval int64) bool {
	prevBoundary := int64(xmath.FloorMultiple(float64(prevTime), float64(interval)))
	curBoundary := int64(xmath.FloorMultiple(float64(curTime), float64(interval)))
	return curBoundary-prevBoundary > interval
}

// resolveCandles applies the missed-candle policy to the raw candle stream.
// Ignore passes candles through unchanged. LastValid synthesizes the
// missing candles in a gap by repeating the last close at zero volume.
// Restart leaves the candle stream untouched but returns, for each index,
// whether a gap immediately precedes it so the caller can reset strategy
// state there.
func resolveCandles(candles []types.Candle, interval int64, policy types.MissedCandlePolicy) (out []types.Candle, restartAt []bool) {
	if len(candles) == 0 {
		return candles, nil
	}

	switch policy {
	case types.LastValid:
		out = append(out, candles[0])
		for i := 1; i < len(candles); i++ {
			prev := candles[i-1]
			cur := candles[i]
			for t := prev.Time + interval; t < cur.Time; t += interval {
				out = append(out, types.Candle{
					Time:   t,
					Open:   prev.Close,
					High:   prev.Close,
					Low:    prev.Close,
					Close:  prev.Close,
					Volume: 0,
				})
			}
			out = append(out, cur)
		}
		return out, nil

	case types.Restart:
		restartAt = make([]bool, len(candles))
		for i := 1; i < len(candles); i++ {
			if isGap(candles[i-1].Time, candles[i].Time, interval) {
				restartAt[i] = true
			}
		}
		return candles, restartAt

	default: // Ignore
		return candles, nil
	}
}
