package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// FourWeekRuleParams holds the breakout window length and the exit MA
// configuration.
type FourWeekRuleParams struct {
	Period int
	MA     MAParams
}

func (p *FourWeekRuleParams) Len() int { return 1 + p.MA.Len() }

func (p *FourWeekRuleParams) Generate(rng *rand.Rand) {
	p.Period = genPeriod(rng)
	p.MA.Generate(rng)
}

func (p *FourWeekRuleParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*FourWeekRuleParams)
	if i == 0 {
		p.Period = other.Period
		return
	}
	p.MA.Cross(&other.MA, i-1)
}

func (p *FourWeekRuleParams) Mutate(rng *rand.Rand, i int) {
	if i == 0 {
		p.Period = genPeriod(rng)
		return
	}
	p.MA.Mutate(rng, i-1)
}

// FourWeekRule advises Long on a breakout above the rolling high of the
// last Period candles, Short on a breakout below the rolling low, and
// Liquidate when price crosses back through the exit moving average -
// a rolling-extrema breakout with an MA-based exit filter.
type FourWeekRule struct {
	maturityCounter
	params *FourWeekRuleParams
	ma     indicators.Indicator

	window     []float64
	pos        int
	filled     bool
	prevAbove  bool
	havePrev   bool
	inPosition bool
	advice     types.Advice
}

func NewFourWeekRule(params *FourWeekRuleParams) *FourWeekRule {
	ma := params.MA.New()
	t1 := maxInt(params.Period-1, ma.Maturity())
	return &FourWeekRule{
		maturityCounter: newMaturityCounter(t1),
		params:          params,
		ma:              ma,
		window:          make([]float64, params.Period),
	}
}

func (f *FourWeekRule) Params() chromosome.Chromosome { return f.params }

func (f *FourWeekRule) pushWindow(v float64) {
	f.window[f.pos] = v
	f.pos++
	if f.pos == len(f.window) {
		f.pos = 0
		f.filled = true
	}
}

func (f *FourWeekRule) rollingHighLow() (high, low float64) {
	n := len(f.window)
	if !f.filled {
		n = f.pos
	}
	high, low = f.window[0], f.window[0]
	for i := 1; i < n; i++ {
		if f.window[i] > high {
			high = f.window[i]
		}
		if f.window[i] < low {
			low = f.window[i]
		}
	}
	return high, low
}

func (f *FourWeekRule) Update(candle types.Candle) {
	f.ma.Update(candle.Close)
	high, low := 0.0, 0.0
	if f.filled || f.pos > 0 {
		high, low = f.rollingHighLow()
	}
	f.pushWindow(candle.Close)
	f.tick()

	f.advice = types.None
	if !f.Mature() {
		return
	}

	above := candle.Close > f.ma.Value()
	maCross := f.havePrev && above != f.prevAbove
	f.prevAbove = above
	f.havePrev = true

	switch {
	case f.inPosition && maCross:
		f.advice = types.Liquidate
		f.inPosition = false
	case candle.Close > high:
		f.advice = types.Long
		f.inPosition = true
	case candle.Close < low:
		f.advice = types.Short
		f.inPosition = true
	}
}

func (f *FourWeekRule) Advice() types.Advice { return f.advice }
