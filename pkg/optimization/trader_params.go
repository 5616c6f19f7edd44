package optimization

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/risk"
	"github.com/quantbt/enginecore/pkg/types"
)

// TraderParams is the trader-level chromosome every Individual carries
// alongside its strategy: missed-candle handling and the stop-loss/
// take-profit gates, each either disabled (threshold 0) or fixed/trailing.
// Mirrors the source's four-gene trader chromosome (missed_candle_policy,
// stop_loss, trail_stop_loss, take_profit), extended with trail_take_profit
// and the enable_long/enable_short genes Trade's signature exposes.
type TraderParams struct {
	MissedCandlePolicy types.MissedCandlePolicy
	StopLoss           float64
	TrailStopLoss      bool
	TakeProfit         float64
	TrailTakeProfit    bool
	EnableLong         bool
	EnableShort        bool
}

// TraderParams carries genes of three different types (enum, float64,
// bool), so — like strategy.MAParams — it implements Chromosome directly
// instead of through the single-typed Genes[T] table.
func (p *TraderParams) Len() int { return 7 }

func genMissedCandlePolicy(rng *rand.Rand) types.MissedCandlePolicy {
	return types.MissedCandlePolicy(rng.Intn(3))
}

func genThreshold(rng *rand.Rand) float64 {
	if rng.Float64() < 0.5 {
		return 0
	}
	return 0.0001 + rng.Float64()*0.9998
}

func genBool(rng *rand.Rand) bool { return rng.Float64() < 0.5 }

func (p *TraderParams) Generate(rng *rand.Rand) {
	p.MissedCandlePolicy = genMissedCandlePolicy(rng)
	p.StopLoss = genThreshold(rng)
	p.TrailStopLoss = genBool(rng)
	p.TakeProfit = chromosome.GenTakeProfit(rng)
	p.TrailTakeProfit = genBool(rng)
	p.EnableLong = true
	p.EnableShort = genBool(rng)
}

func (p *TraderParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*TraderParams)
	switch i {
	case 0:
		p.MissedCandlePolicy = other.MissedCandlePolicy
	case 1:
		p.StopLoss = other.StopLoss
	case 2:
		p.TrailStopLoss = other.TrailStopLoss
	case 3:
		p.TakeProfit = other.TakeProfit
	case 4:
		p.TrailTakeProfit = other.TrailTakeProfit
	case 5:
		p.EnableLong = other.EnableLong
	case 6:
		p.EnableShort = other.EnableShort
	}
}

func (p *TraderParams) Mutate(rng *rand.Rand, i int) {
	switch i {
	case 0:
		p.MissedCandlePolicy = genMissedCandlePolicy(rng)
	case 1:
		p.StopLoss = genThreshold(rng)
	case 2:
		p.TrailStopLoss = genBool(rng)
	case 3:
		p.TakeProfit = chromosome.GenTakeProfit(rng)
	case 4:
		p.TrailTakeProfit = genBool(rng)
	case 5:
		p.EnableLong = genBool(rng)
	case 6:
		p.EnableShort = genBool(rng)
	}
}

// NewStopLoss builds the risk.StopLoss gate these genes describe.
func (p *TraderParams) NewStopLoss() risk.StopLoss {
	if p.StopLoss == 0 {
		return risk.NoopStopLoss{}
	}
	if p.TrailStopLoss {
		return risk.NewTrailingStopLoss(p.StopLoss)
	}
	return risk.NewBasicStopLoss(p.StopLoss)
}

// NewTakeProfit builds the risk.TakeProfit gate these genes describe.
func (p *TraderParams) NewTakeProfit() risk.TakeProfit {
	if p.TakeProfit == 0 {
		return risk.NoopTakeProfit{}
	}
	if p.TrailTakeProfit {
		return risk.NewTrailingTakeProfit(p.TakeProfit)
	}
	return risk.NewBasicTakeProfit(p.TakeProfit)
}
