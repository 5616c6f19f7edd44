package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// RsiOscillatorParams holds the RSI period and its overbought/oversold
// thresholds.
type RsiOscillatorParams struct {
	Period               int
	Oversold, Overbought float64
}

func (p *RsiOscillatorParams) Len() int { return 3 }

func (p *RsiOscillatorParams) Generate(rng *rand.Rand) {
	p.Period = genMacdPeriod(rng)
	p.Oversold = chromoUniform(rng, 10, 40)
	p.Overbought = chromoUniform(rng, 60, 90)
}

func (p *RsiOscillatorParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*RsiOscillatorParams)
	switch i {
	case 0:
		p.Period = other.Period
	case 1:
		p.Oversold = other.Oversold
	case 2:
		p.Overbought = other.Overbought
	}
}

func (p *RsiOscillatorParams) Mutate(rng *rand.Rand, i int) {
	switch i {
	case 0:
		p.Period = genMacdPeriod(rng)
	case 1:
		p.Oversold = chromoUniform(rng, 10, 40)
	case 2:
		p.Overbought = chromoUniform(rng, 60, 90)
	}
}

// RsiOscillator is the Oscillator implementation Sig/SigOsc filter
// directional signals through: Oversold once RSI drops below its
// threshold, Overbought once it rises above.
type RsiOscillator struct {
	maturityCounter
	params *RsiOscillatorParams
	rsi    *indicators.RSI
}

func NewRsiOscillator(params *RsiOscillatorParams) *RsiOscillator {
	rsi := indicators.NewRSI(params.Period)
	return &RsiOscillator{
		maturityCounter: newMaturityCounter(rsi.Maturity()),
		params:          params,
		rsi:             rsi,
	}
}

func (r *RsiOscillator) Params() chromosome.Chromosome { return r.params }

func (r *RsiOscillator) Update(candle types.Candle) {
	r.rsi.Update(candle.Close)
	r.tick()
}

func (r *RsiOscillator) Overbought() bool { return r.Mature() && r.rsi.Value() > r.params.Overbought }
func (r *RsiOscillator) Oversold() bool   { return r.Mature() && r.rsi.Value() < r.params.Oversold }
