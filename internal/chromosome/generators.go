package chromosome

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/internal/signal"
	"github.com/quantbt/enginecore/pkg/types"
)

// GenStopLoss draws 0 half the time (no stop-loss) and otherwise a uniform
// threshold in (0.0001, 0.9999).
func GenStopLoss(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return 0
	}
	return uniform(rng, 0.0001, 0.9999)
}

// GenTakeProfit draws 0 half the time and otherwise a uniform threshold in
// (0.0001, 9.9999).
func GenTakeProfit(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return 0
	}
	return uniform(rng, 0.0001, 9.9999)
}

// GenPersistence draws a uniform integer level in [0, 10].
func GenPersistence(rng *rand.Rand) int {
	return rng.Intn(11)
}

// GenMissedCandlePolicy draws uniformly from the three missed-candle
// policies.
func GenMissedCandlePolicy(rng *rand.Rand) types.MissedCandlePolicy {
	return types.MissedCandlePolicy(rng.Intn(3))
}

// GenMidTrendPolicy draws uniformly from the three mid-trend policies.
func GenMidTrendPolicy(rng *rand.Rand) signal.MidTrendPolicy {
	return signal.MidTrendPolicy(rng.Intn(3))
}

// GenMA draws uniformly from the fixed MA catalog.
func GenMA(rng *rand.Rand) indicators.MAChoice {
	return indicators.GenMA(rng)
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
