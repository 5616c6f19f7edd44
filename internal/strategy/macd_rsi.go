package strategy

import (
	"math/rand"

	"github.com/quantbt/enginecore/internal/chromosome"
	"github.com/quantbt/enginecore/internal/indicators"
	"github.com/quantbt/enginecore/pkg/types"
)

// MacdRsiParams composes Macd's params with an RSI period and the
// overbought/oversold thresholds that gate it.
type MacdRsiParams struct {
	Macd              MacdParams
	RsiPeriod         int
	Oversold, Overbought float64
}

func (p *MacdRsiParams) Len() int { return p.Macd.Len() + 3 }

func (p *MacdRsiParams) Generate(rng *rand.Rand) {
	p.Macd.Generate(rng)
	p.RsiPeriod = genMacdPeriod(rng)
	p.Oversold = chromoUniform(rng, 10, 40)
	p.Overbought = chromoUniform(rng, 60, 90)
}

func (p *MacdRsiParams) Cross(parent chromosome.Chromosome, i int) {
	other := parent.(*MacdRsiParams)
	base := p.Macd.Len()
	if i < base {
		p.Macd.Cross(&other.Macd, i)
		return
	}
	switch i - base {
	case 0:
		p.RsiPeriod = other.RsiPeriod
	case 1:
		p.Oversold = other.Oversold
	case 2:
		p.Overbought = other.Overbought
	}
}

func (p *MacdRsiParams) Mutate(rng *rand.Rand, i int) {
	base := p.Macd.Len()
	if i < base {
		p.Macd.Mutate(rng, i)
		return
	}
	switch i - base {
	case 0:
		p.RsiPeriod = genMacdPeriod(rng)
	case 1:
		p.Oversold = chromoUniform(rng, 10, 40)
	case 2:
		p.Overbought = chromoUniform(rng, 60, 90)
	}
}

// MacdRsi is Macd's histogram crossing, filtered by RSI: a Long signal only
// survives when RSI is below Oversold at the time of the cross (room to
// run up), a Short only when RSI is above Overbought. Anything else is
// suppressed to None.
type MacdRsi struct {
	maturityCounter
	params *MacdRsiParams
	macd   *indicators.MACD
	rsi    *indicators.RSI

	prevPositive bool
	havePrev     bool
	advice       types.Advice
}

func NewMacdRsi(params *MacdRsiParams) *MacdRsi {
	macd := indicators.NewMACD(params.Macd.ShortPeriod, params.Macd.LongPeriod, params.Macd.SignalPeriod)
	rsi := indicators.NewRSI(params.RsiPeriod)
	return &MacdRsi{
		maturityCounter: newMaturityCounter(maxInt(macd.Maturity(), rsi.Maturity())),
		params:          params,
		macd:            macd,
		rsi:             rsi,
	}
}

func (m *MacdRsi) Params() chromosome.Chromosome { return m.params }

func (m *MacdRsi) Update(candle types.Candle) {
	m.macd.Update(candle.Close)
	m.rsi.Update(candle.Close)
	m.tick()

	m.advice = types.None
	if !m.Mature() {
		return
	}

	positive := m.macd.Histogram() > 0
	crossed := m.havePrev && positive != m.prevPositive
	m.prevPositive = positive
	m.havePrev = true

	if !crossed {
		return
	}

	rsi := m.rsi.Value()
	switch {
	case positive && rsi < m.params.Oversold:
		m.advice = types.Long
	case !positive && rsi > m.params.Overbought:
		m.advice = types.Short
	}
}

func (m *MacdRsi) Advice() types.Advice { return m.advice }
